package genre

import (
	"context"
	"sort"
)

// DefaultAliases maps misspelled or overly narrow labels to the canonical genre.
var DefaultAliases = map[string]string{
	"Biografi":               "Biyografi",
	"Siir":                   "Şiir",
	"Öykü":                   "Hikaye",
	"Bilinmiyor":             "Diğer",
	"Bilinmeyen":             "Diğer",
	"Tür1":                   "Diğer",
	"Macera":                 "Fantastik",
	"Romantik":               "Roman",
	"Klasik":                 "Roman",
	"Drama":                  "Roman",
	"Otobiyografi":           "Biyografi",
	"Aforizma":               "Deneme",
	"Makale":                 "Deneme",
	"Gezi":                   "Seyahat",
	"Hukuk Öyküleri":         "Hikaye",
	"Masal":                  "Çocuk",
	"Destan":                 "Edebiyat",
	"Defter":                 "Edebiyat",
	"Feminist Olarak Okumak": "Felsefe",
	"Other":                  "Diğer",
}

// Renamer renames genres in bulk.
type Renamer interface {
	RenameGenres(ctx context.Context, aliases map[string]string) (map[string]int64, error)
}

// Rename is one applied alias.
type Rename struct {
	From  string `json:"from"`
	To    string `json:"to"`
	Count int64  `json:"count"`
}

// MergeReport lists the aliases that changed at least one book.
type MergeReport struct {
	Renames []Rename `json:"renames"`
	Total   int64    `json:"total"`
}

// Merge applies aliases in one transaction. A nil map uses DefaultAliases.
func Merge(ctx context.Context, store Renamer, aliases map[string]string) (*MergeReport, error) {
	if aliases == nil {
		aliases = DefaultAliases
	}
	changed, err := store.RenameGenres(ctx, aliases)
	if err != nil {
		return nil, err
	}

	report := &MergeReport{Renames: []Rename{}}
	for from, count := range changed {
		if count == 0 {
			continue
		}
		report.Renames = append(report.Renames, Rename{From: from, To: aliases[from], Count: count})
		report.Total += count
	}
	sort.Slice(report.Renames, func(i, j int) bool {
		if report.Renames[i].Count != report.Renames[j].Count {
			return report.Renames[i].Count > report.Renames[j].Count
		}
		return report.Renames[i].From < report.Renames[j].From
	})
	return report, nil
}
