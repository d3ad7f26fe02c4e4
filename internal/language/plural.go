package language

import "strings"

var irregularPlurals = map[string]string{
	"man":    "men",
	"woman":  "women",
	"person": "people",
	"child":  "children",
	"mouse":  "mice",
	"goose":  "geese",
	"foot":   "feet",
	"tooth":  "teeth",
	"wolf":   "wolves",
	"elf":    "elves",
	"dwarf":  "dwarves",
	"thief":  "thieves",
	"knife":  "knives",
	"sheep":  "sheep",
	"deer":   "deer",
	"fish":   "fish",
}

var regularMan = map[string]bool{
	"human":    true,
	"shaman":   true,
	"talisman": true,
	"caiman":   true,
}

// Plural returns the plural form of a noun phrase by inflecting its last
// word. Leading articles are dropped: "a guard" becomes "guards".
func Plural(phrase string) string {
	phrase = StripArticle(phrase)
	if phrase == "" {
		return ""
	}

	head, last := "", phrase
	if i := strings.LastIndexByte(phrase, ' '); i >= 0 {
		head, last = phrase[:i+1], phrase[i+1:]
	}

	return head + pluralWord(last)
}

func pluralWord(word string) string {
	lower := strings.ToLower(word)
	if p, ok := irregularPlurals[lower]; ok {
		return matchCase(word, p)
	}
	if strings.HasSuffix(lower, "man") && !regularMan[lower] {
		// compounds such as "guardsman" or "swordswoman"
		return word[:len(word)-len("man")] + "men"
	}

	switch {
	case strings.HasSuffix(lower, "s"), strings.HasSuffix(lower, "x"), strings.HasSuffix(lower, "z"),
		strings.HasSuffix(lower, "sh"), strings.HasSuffix(lower, "ch"):
		return word + "es"
	case strings.HasSuffix(lower, "y") && len(lower) > 1 && !isVowel(lower[len(lower)-2]):
		return word[:len(word)-1] + "ies"
	default:
		return word + "s"
	}
}

// StripArticle removes a leading a, an or the
func StripArticle(phrase string) string {
	phrase = strings.TrimSpace(phrase)
	lower := strings.ToLower(phrase)
	for _, article := range []string{"a ", "an ", "the "} {
		if strings.HasPrefix(lower, article) {
			return strings.TrimSpace(phrase[len(article):])
		}
	}
	return phrase
}

// WithArticle prefixes a bare noun with "a" or "an". Phrases that already
// start with an article are returned unchanged.
func WithArticle(noun string) string {
	noun = strings.TrimSpace(noun)
	if noun == "" || StripArticle(noun) != noun {
		return noun
	}
	if isVowel(strings.ToLower(noun)[0]) {
		return "an " + noun
	}
	return "a " + noun
}

func isVowel(c byte) bool {
	switch c {
	case 'a', 'e', 'i', 'o', 'u':
		return true
	}
	return false
}

func matchCase(original, replacement string) string {
	if original != "" && original[0] >= 'A' && original[0] <= 'Z' {
		return strings.ToUpper(replacement[:1]) + replacement[1:]
	}
	return replacement
}
