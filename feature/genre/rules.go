package genre

import (
	"strings"

	"golang.org/x/text/cases"
)

// Known genre labels offered to the remote classifier.
var Genres = []string{
	"Roman", "Bilim Kurgu", "Fantastik", "Polisiye", "Tarih", "Felsefe",
	"Bilim", "Biyografi", "Şiir", "Deneme", "Kişisel Gelişim", "İş & Ekonomi",
	"Çocuk", "Gençlik", "Sanat", "Din", "Psikoloji", "Sağlık", "Yemek",
	"Seyahat", "Edebiyat", "Klasik", "Ansiklopedi", "Referans", "Korku",
	"Hikaye", "Mektup", "Diğer",
}

type keywordRule struct {
	keyword    string
	genre      string
	confidence float64
}

type authorRule struct {
	author string
	genre  string
}

// Order matters: the first of equally confident keywords wins.
var keywordRules = []keywordRule{
	{"roman", "Roman", 0.8},
	{"hikaye", "Hikaye", 0.8},
	{"öykü", "Hikaye", 0.8},
	{"anı", "Biyografi", 0.7},
	{"mektup", "Mektup", 0.8},

	{"uzay", "Bilim Kurgu", 0.9},
	{"galaksi", "Bilim Kurgu", 0.9},
	{"robot", "Bilim Kurgu", 0.9},
	{"vakıf", "Bilim Kurgu", 0.9},
	{"zaman makine", "Bilim Kurgu", 0.9},
	{"ejderha", "Fantastik", 0.9},
	{"büyü", "Fantastik", 0.9},
	{"sihir", "Fantastik", 0.9},
	{"yüzük", "Fantastik", 0.9},
	{"hobbit", "Fantastik", 0.9},
	{"harry potter", "Fantastik", 0.95},
	{"narnia", "Fantastik", 0.95},

	{"felsefe", "Felsefe", 0.9},
	{"tasavvuf", "Din", 0.9},
	{"kuran", "Din", 0.95},
	{"mevlana", "Din", 0.9},
	{"allah", "Din", 0.9},
	{"islam", "Din", 0.85},

	{"tarih", "Tarih", 0.9},
	{"osmanlı", "Tarih", 0.9},
	{"türk", "Tarih", 0.7},
	{"savaş", "Tarih", 0.7},

	{"bilim", "Bilim", 0.9},
	{"fizik", "Bilim", 0.9},
	{"evren", "Bilim", 0.8},
	{"kuantum", "Bilim", 0.9},

	{"psikoloji", "Psikoloji", 0.9},
	{"başarı", "Kişisel Gelişim", 0.8},
	{"motivasyon", "Kişisel Gelişim", 0.8},

	{"cinayet", "Polisiye", 0.9},
	{"dedektif", "Polisiye", 0.9},
	{"sır", "Polisiye", 0.7},

	{"şiir", "Şiir", 0.9},
	{"divan", "Şiir", 0.85},

	{"çocuk", "Çocuk", 0.8},
	{"masal", "Çocuk", 0.8},
}

var authorRules = []authorRule{
	{"isaac asimov", "Bilim Kurgu"},
	{"j.r.r. tolkien", "Fantastik"},
	{"j.k. rowling", "Fantastik"},
	{"stephen king", "Korku"},
	{"agatha christie", "Polisiye"},
	{"dan brown", "Polisiye"},
	{"fyodor dostoyevski", "Roman"},
	{"leo tolstoy", "Roman"},
	{"orhan pamuk", "Roman"},
	{"mevlana", "Din"},
	{"yunus emre", "Şiir"},
	{"nazim hikmet", "Şiir"},
	{"platon", "Felsefe"},
	{"aristoteles", "Felsefe"},
}

// Source names where a genre came from.
const (
	SourceAuthor   = "author"
	SourceKeyword  = "keyword"
	SourceRemote   = "remote"
	SourceFallback = "fallback"
)

// authorConfidence is reported for author table hits.
const authorConfidence = 0.9

// Match is a rule classification result.
type Match struct {
	Genre      string
	Confidence float64
	Source     string
}

// RuleClassifier assigns genres from the author and keyword tables.
type RuleClassifier struct {
	minConfidence float64
}

// NewRuleClassifier creates a classifier that accepts keyword hits scoring at least minConfidence.
func NewRuleClassifier(minConfidence float64) *RuleClassifier {
	if minConfidence <= 0 {
		minConfidence = 0.75
	}
	return &RuleClassifier{minConfidence: minConfidence}
}

// Classify matches "title author" case-insensitively. Known authors win over keywords.
func (r *RuleClassifier) Classify(title, author string) (Match, bool) {
	text := cases.Fold().String(title + " " + author)

	for _, rule := range authorRules {
		if strings.Contains(text, rule.author) {
			return Match{Genre: rule.genre, Confidence: authorConfidence, Source: SourceAuthor}, true
		}
	}

	var best Match
	for _, rule := range keywordRules {
		if rule.confidence > best.Confidence && strings.Contains(text, cases.Fold().String(rule.keyword)) {
			best = Match{Genre: rule.genre, Confidence: rule.confidence, Source: SourceKeyword}
		}
	}
	if best.Confidence >= r.minConfidence {
		return best, true
	}
	return Match{}, false
}
