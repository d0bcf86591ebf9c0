package catalog

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// likeEscape is the ESCAPE character used in every LIKE clause.
const likeEscape = "!"

var likeReplacer = strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")

// containsPattern builds a LIKE pattern matching s anywhere, with wildcards in s escaped.
// Case is left to the database: LIKE folds ASCII on SQLite, the column collation folds on MySQL.
func containsPattern(s string) string {
	return "%" + likeReplacer.Replace(norm.NFC.String(s)) + "%"
}

// prefixPattern builds a LIKE pattern matching strings starting with s.
func prefixPattern(s string) string {
	return likeReplacer.Replace(s) + "%"
}
