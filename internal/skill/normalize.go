package skill

import (
	"strings"
	"unicode"
)

// Normalize reduces a skill name to its comparison form: lower case, with
// whitespace, periods and hyphens removed. "Node.js", "node js" and "NODE-JS"
// all become "nodejs". Only use it for comparisons, never for display.
func Normalize(token string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) || r == '.' || r == '-' {
			return -1
		}
		return unicode.ToLower(r)
	}, token)
}

// NormalizedSet builds a membership set of normalized skill names.
func NormalizedSet(skills []string) map[string]struct{} {
	set := make(map[string]struct{}, len(skills))
	for _, s := range skills {
		set[Normalize(s)] = struct{}{}
	}
	return set
}
