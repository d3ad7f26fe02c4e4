package perception

import (
	"strings"

	"github.com/KirkDiggler/rpg-perception/internal/entities"
	"github.com/KirkDiggler/rpg-perception/internal/errors"
	"github.com/KirkDiggler/rpg-perception/internal/language"
)

// Role is who a narrated sentence is addressed to
type Role int

const (
	RoleBystander Role = iota
	RoleAttacker
	RoleDefendant
)

func (r Role) String() string {
	switch r {
	case RoleAttacker:
		return "attacker"
	case RoleDefendant:
		return "defendant"
	default:
		return "bystander"
	}
}

// SegmentKind tells how a template segment is resolved
type SegmentKind int

const (
	SegmentLiteral             SegmentKind = iota
	SegmentAttacker                        // %a
	SegmentDefendant                       // %d
	SegmentAttackerObject                  // %oa
	SegmentDefendantObject                 // %od
	SegmentAttackerPossessive              // %pa
	SegmentDefendantPossessive             // %pd
	SegmentAttackerVerb                    // [hits]
	SegmentDefendantVerb                   // [d:dodges]
)

var placeholders = map[string]SegmentKind{
	"a":  SegmentAttacker,
	"d":  SegmentDefendant,
	"oa": SegmentAttackerObject,
	"od": SegmentDefendantObject,
	"pa": SegmentAttackerPossessive,
	"pd": SegmentDefendantPossessive,
}

// Segment is a literal run of text or a placeholder. Verb segments carry
// the third person singular form in Text.
type Segment struct {
	Kind SegmentKind
	Text string
}

// Template is a parsed combat sentence such as
// "%a [slashes] at %d with %pa sword, but %d [d:parries]."
// Placeholders are resolved in a single pass, so a name that happens to
// contain "%d" is never substituted again.
type Template struct {
	Segments []Segment
}

// ParseTemplate parses a combat sentence. "%%" is a literal percent sign.
func ParseTemplate(s string) (*Template, error) {
	t := &Template{}
	var lit strings.Builder

	flush := func() {
		if lit.Len() > 0 {
			t.Segments = append(t.Segments, Segment{Kind: SegmentLiteral, Text: lit.String()})
			lit.Reset()
		}
	}

	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '%':
			if strings.HasPrefix(s[i+1:], "%") {
				lit.WriteByte('%')
				i++
				continue
			}
			kind, width, ok := placeholderAt(s[i+1:])
			if !ok {
				return nil, errors.InvalidArgumentf("unknown placeholder at offset %d in %q", i, s)
			}
			flush()
			t.Segments = append(t.Segments, Segment{Kind: kind})
			i += width

		case '[':
			end := strings.IndexByte(s[i:], ']')
			if end < 0 {
				return nil, errors.InvalidArgumentf("unclosed verb at offset %d in %q", i, s)
			}
			verb := s[i+1 : i+end]
			kind := SegmentAttackerVerb
			if rest, ok := strings.CutPrefix(verb, "d:"); ok {
				kind, verb = SegmentDefendantVerb, rest
			}
			if strings.TrimSpace(verb) == "" {
				return nil, errors.InvalidArgumentf("empty verb at offset %d in %q", i, s)
			}
			flush()
			t.Segments = append(t.Segments, Segment{Kind: kind, Text: verb})
			i += end

		default:
			lit.WriteByte(s[i])
		}
	}
	flush()

	return t, nil
}

// placeholderAt matches the longest placeholder name at the start of s
func placeholderAt(s string) (SegmentKind, int, bool) {
	if len(s) >= 2 {
		if kind, ok := placeholders[s[:2]]; ok {
			return kind, 2, true
		}
	}
	if len(s) >= 1 {
		if kind, ok := placeholders[s[:1]]; ok {
			return kind, 1, true
		}
	}
	return 0, 0, false
}

// Render evaluates the template for one audience. The attacker and the
// defendant read about themselves in the second person, bystanders read
// names and third person pronouns.
func (t *Template) Render(attacker, defendant *entities.Character, role Role) string {
	attackerIsYou := role == RoleAttacker
	defendantIsYou := role == RoleDefendant

	var b strings.Builder
	for _, seg := range t.Segments {
		switch seg.Kind {
		case SegmentLiteral:
			b.WriteString(seg.Text)
		case SegmentAttacker:
			b.WriteString(subject(attacker, attackerIsYou))
		case SegmentDefendant:
			b.WriteString(subject(defendant, defendantIsYou))
		case SegmentAttackerObject:
			b.WriteString(object(attacker, attackerIsYou))
		case SegmentDefendantObject:
			b.WriteString(object(defendant, defendantIsYou))
		case SegmentAttackerPossessive:
			b.WriteString(possessive(attacker, attackerIsYou))
		case SegmentDefendantPossessive:
			b.WriteString(possessive(defendant, defendantIsYou))
		case SegmentAttackerVerb:
			b.WriteString(conjugate(seg.Text, attackerIsYou))
		case SegmentDefendantVerb:
			b.WriteString(conjugate(seg.Text, defendantIsYou))
		}
	}

	return language.Capitalize(b.String())
}

// Narrate parses a template and renders it for one audience role
func Narrate(template string, attacker, defendant *entities.Character, role Role) (string, error) {
	if attacker == nil || defendant == nil {
		return "", errors.InvalidArgument("attacker and defendant are required")
	}
	t, err := ParseTemplate(template)
	if err != nil {
		return "", err
	}
	return t.Render(attacker, defendant, role), nil
}

func subject(c *entities.Character, you bool) string {
	if you {
		return "you"
	}
	return c.DisplayName()
}

func object(c *entities.Character, you bool) string {
	if you {
		return "you"
	}
	return language.ObjectPronoun(c.Gender)
}

func possessive(c *entities.Character, you bool) string {
	if you {
		return "your"
	}
	return language.PossessivePronoun(c.Gender)
}

func conjugate(verb string, you bool) string {
	if !you {
		return verb
	}
	return SecondPerson(verb)
}

var irregularSecondPerson = map[string]string{
	"is":   "are",
	"has":  "have",
	"does": "do",
	"goes": "go",
}

// SecondPerson turns a third person singular verb into the form used with
// "you": "slashes" -> "slash", "parries" -> "parry", "bites" -> "bite".
func SecondPerson(verb string) string {
	lower := strings.ToLower(verb)
	if v, ok := irregularSecondPerson[lower]; ok {
		return v
	}

	switch {
	case strings.HasSuffix(lower, "ies") && len(lower) > 4:
		return verb[:len(verb)-3] + "y"
	case strings.HasSuffix(lower, "es") && hasSibilantStem(lower[:len(lower)-2]):
		return verb[:len(verb)-2]
	case strings.HasSuffix(lower, "s") && !strings.HasSuffix(lower, "ss"):
		return verb[:len(verb)-1]
	default:
		return verb
	}
}

func hasSibilantStem(stem string) bool {
	for _, suffix := range []string{"sh", "ch", "ss", "x", "z", "o"} {
		if strings.HasSuffix(stem, suffix) {
			return true
		}
	}
	return false
}
