// Package skills provides skill name normalization and fuzzy skill equivalence
// used by candidate ranking.
package skills

import "strings"

// separatorReplacer strips the characters that commonly vary between spellings
// of the same technology ("Node.js", "node js", "node_js").
var separatorReplacer = strings.NewReplacer(
	".", "",
	"-", "",
	"_", "",
	" ", "",
	"\t", "",
	"\n", "",
	"\r", "",
)

// Normalize canonicalizes a skill string for comparison: lowercase, trimmed,
// with separator characters and whitespace removed entirely. It never fails;
// empty input yields empty output.
func Normalize(skill string) string {
	return separatorReplacer.Replace(strings.ToLower(strings.TrimSpace(skill)))
}
