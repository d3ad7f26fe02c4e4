package perception

import (
	"strings"

	"github.com/KirkDiggler/rpg-perception/internal/language"
)

type zoneSentence struct {
	prefix   string
	singular string
	plural   string
}

var zoneSentences = map[Zone]zoneSentence{
	ZoneCharacters: {"Beside you", "is", "are"},
	ZoneAhead:      {"Ahead of you", "is", "are"},
	ZoneLeft:       {"To your left", "is", "are"},
	ZoneRight:      {"To your right", "is", "are"},
	ZoneBehind:     {"Behind you", "is", "are"},
	ZoneAbove:      {"Above you", "is", "are"},
	ZoneBelow:      {"Below you", "is", "are"},
	ZoneCenter:     {"In the middle of the room", "is", "are"},
	ZoneLeftWall:   {"On the wall to your left", "hangs", "hang"},
	ZoneRightWall:  {"On the wall to your right", "hangs", "hang"},
	ZoneWall:       {"On the wall", "hangs", "hang"},
	ZoneCeiling:    {"From the ceiling", "hangs", "hang"},
}

// Render turns per-zone phrases into sentences, one per non-empty zone in
// ZoneOrder, joined by a single space. Nothing to report yields "".
func Render(zones map[Zone][]Phrase) string {
	var sentences []string
	for _, zone := range ZoneOrder {
		if s := RenderZone(zone, zones[zone]); s != "" {
			sentences = append(sentences, s)
		}
	}
	return strings.Join(sentences, " ")
}

// RenderZone renders "<prefix>, there <verb> <list>." for one zone. The verb
// is singular only when the zone holds a single phrase standing for a single
// entity.
func RenderZone(zone Zone, phrases []Phrase) string {
	if len(phrases) == 0 {
		return ""
	}
	tmpl, ok := zoneSentences[zone]
	if !ok {
		return ""
	}

	verb := tmpl.plural
	if len(phrases) == 1 && phrases[0].Count <= 1 {
		verb = tmpl.singular
	}

	texts := make([]string, len(phrases))
	for i, p := range phrases {
		texts[i] = p.Text
	}

	return tmpl.prefix + ", there " + verb + " " + language.FancyJoin(texts) + "."
}
