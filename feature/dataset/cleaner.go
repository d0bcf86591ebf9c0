package dataset

import (
	"context"
	"regexp"
	"strings"
	"unicode"

	"ebook-library/core/catalog"

	"go.uber.org/zap"
	"golang.org/x/text/unicode/norm"
)

var (
	bracketed       = regexp.MustCompile(`\s*[(\[{<][^)\]}>]*[)\]}>]\s*`)
	spaces          = regexp.MustCompile(`\s+`)
	leadingJunk     = regexp.MustCompile(`^[-–—:;,.]+\s*`)
	trailingJunk    = regexp.MustCompile(`\s*[-–—:;,.]+$`)
	mathSymbols     = runeSet("+*/=^%≈≠≤≥±×÷√∑∏∫∂∆∞∇∈∋∩∪∧∨⊂⊃⊆⊇⊕⊗⊥∴∵≃≅≡≪≫∝∠∟∥∦")
	aggressiveExtra = runeSet("#@~`|•·…“”‘’'\"°§©®™½¼¾†‡_")
)

func runeSet(s string) map[rune]struct{} {
	m := make(map[rune]struct{}, len(s))
	for _, r := range s {
		m[r] = struct{}{}
	}
	return m
}

// CleanText strips bracketed segments and math symbols, collapses whitespace and trims
// separators left at either end. Aggressive mode also drops all punctuation and symbols.
// Hyphens inside a name are kept.
func CleanText(s string, aggressive bool) string {
	s = norm.NFC.String(s)

	for prev := ""; prev != s; {
		prev = s
		s = bracketed.ReplaceAllString(s, " ")
	}

	s = strings.Map(func(r rune) rune {
		if unicode.In(r, unicode.Sm, unicode.Sk) {
			return -1
		}
		if _, ok := mathSymbols[r]; ok {
			return -1
		}
		return r
	}, s)

	if aggressive {
		s = strings.Map(func(r rune) rune {
			if unicode.IsPunct(r) || unicode.IsSymbol(r) {
				return -1
			}
			if _, ok := aggressiveExtra[r]; ok {
				return -1
			}
			return r
		}, s)
	}

	s = strings.TrimSpace(spaces.ReplaceAllString(s, " "))
	s = leadingJunk.ReplaceAllString(s, "")
	s = trailingJunk.ReplaceAllString(s, "")
	return s
}

// CleanOptions controls a cleanup run.
type CleanOptions struct {
	Aggressive bool
	// Apply writes the changes; otherwise the run is a preview.
	Apply bool
	// Preview is how many changes to include in the report.
	Preview int
}

// Change is one record's proposed rename.
type Change struct {
	ID        uint   `json:"id"`
	OldTitle  string `json:"oldTitle"`
	NewTitle  string `json:"newTitle"`
	OldAuthor string `json:"oldAuthor"`
	NewAuthor string `json:"newAuthor"`
}

// CleanReport summarizes a cleanup run.
type CleanReport struct {
	Total          int      `json:"total"`
	Changed        int      `json:"changed"`
	TitlesChanged  int      `json:"titlesChanged"`
	AuthorsChanged int      `json:"authorsChanged"`
	Applied        bool     `json:"applied"`
	Preview        []Change `json:"preview"`
}

// Cleaner tidies titles and authors across the catalog.
type Cleaner struct {
	store  *catalog.Store
	logger *zap.Logger
}

// NewCleaner creates a cleaner.
func NewCleaner(store *catalog.Store, logger *zap.Logger) *Cleaner {
	return &Cleaner{store: store, logger: logger}
}

// Run computes cleaned names for every book and, with opts.Apply, writes them in one transaction.
// A field that would become empty keeps its old value.
func (c *Cleaner) Run(ctx context.Context, opts CleanOptions) (*CleanReport, error) {
	report := &CleanReport{Preview: []Change{}}
	var updates []catalog.NameUpdate

	err := c.store.Each(ctx, exportBatch, func(books []catalog.Book) error {
		for _, b := range books {
			report.Total++

			title := CleanText(b.Title, opts.Aggressive)
			if title == "" {
				title = b.Title
			}
			author := CleanText(b.Author, opts.Aggressive)
			if author == "" {
				author = b.Author
			}
			if title == b.Title && author == b.Author {
				continue
			}

			report.Changed++
			if title != b.Title {
				report.TitlesChanged++
			}
			if author != b.Author {
				report.AuthorsChanged++
			}
			updates = append(updates, catalog.NameUpdate{ID: b.ID, Title: title, Author: author})
			if len(report.Preview) < opts.Preview {
				report.Preview = append(report.Preview, Change{
					ID: b.ID, OldTitle: b.Title, NewTitle: title, OldAuthor: b.Author, NewAuthor: author,
				})
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if opts.Apply && len(updates) > 0 {
		if err := c.store.UpdateNames(ctx, updates); err != nil {
			return nil, err
		}
		report.Applied = true
	}

	c.logger.Info("Title cleanup finished",
		zap.Int("total", report.Total),
		zap.Int("changed", report.Changed),
		zap.Bool("applied", report.Applied),
	)
	return report, nil
}
