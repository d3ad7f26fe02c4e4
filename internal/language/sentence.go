package language

import (
	"strings"

	"golang.org/x/text/cases"
	xlanguage "golang.org/x/text/language"
)

// FancyJoin joins phrases as English prose: "A", "A and B", "A, B and C".
func FancyJoin(parts []string) string {
	switch len(parts) {
	case 0:
		return ""
	case 1:
		return parts[0]
	default:
		return strings.Join(parts[:len(parts)-1], ", ") + " and " + parts[len(parts)-1]
	}
}

// Capitalize upper-cases the first word of a sentence without touching the
// rest, so proper names keep their spelling.
func Capitalize(sentence string) string {
	if sentence == "" {
		return sentence
	}
	first, rest := sentence, ""
	if i := strings.IndexByte(sentence, ' '); i >= 0 {
		first, rest = sentence[:i], sentence[i:]
	}
	// casers carry state, so each call gets its own
	return cases.Title(xlanguage.English, cases.NoLower).String(first) + rest
}
