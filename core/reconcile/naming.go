package reconcile

import (
	"path/filepath"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// DefaultUnknownAuthor is stored when a file name has no "Author - Title" form.
const DefaultUnknownAuthor = "Bilinmiyor"

const nameSeparator = " - "

// ParseName derives title and author from a file name such as "Orwell, George - 1984.pdf".
// The first " - " separated segment is the author and the rest is the title. Without a
// separator the whole stem is the title and the author is unknownAuthor.
func ParseName(fileName, unknownAuthor string) (title, author string) {
	if unknownAuthor == "" {
		unknownAuthor = DefaultUnknownAuthor
	}

	stem := norm.NFC.String(strings.TrimSuffix(fileName, filepath.Ext(fileName)))

	parts := strings.Split(stem, nameSeparator)
	if len(parts) < 2 {
		return stem, unknownAuthor
	}
	return strings.TrimSpace(strings.Join(parts[1:], nameSeparator)), strings.TrimSpace(parts[0])
}
