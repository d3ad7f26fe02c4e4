package perception

import (
	"github.com/KirkDiggler/rpg-perception/internal/entities"
	"github.com/KirkDiggler/rpg-perception/internal/errors"
	"github.com/KirkDiggler/rpg-perception/internal/language"
	"github.com/KirkDiggler/rpg-perception/internal/world"
)

// Description is everything one character perceives of their surroundings
type Description struct {
	ObserverID   string
	Text         string
	Zones        map[Zone][]Phrase
	Tally        Tally
	Observations []Observation
}

// DescribeRoom describes the observer's room: the items in it, the exits
// they can make out and every character visible from where they stand.
// Within a zone items come first, then exits, then characters.
func DescribeRoom(snap *world.Snapshot, observerID string) (*Description, error) {
	if snap == nil {
		return nil, errors.InvalidArgument("world snapshot is required")
	}
	observer, ok := snap.Character(observerID)
	if !ok {
		return nil, errors.NotFoundf("character %s not found in world %s", observerID, snap.ID)
	}

	room := observer.Room
	zones := make(map[Zone][]Phrase)

	for zone, items := range ClassifyItems(room.Items, observer.Facing) {
		zones[zone] = append(zones[zone], itemPhrases(items)...)
	}

	var exits []*entities.Portal
	for _, p := range room.Portals {
		if !p.HiddenFrom(room) {
			exits = append(exits, p)
		}
	}
	for zone, portals := range ClassifyPortals(exits, room, observer.Facing) {
		zones[zone] = append(zones[zone], portalPhrases(portals)...)
	}

	obs := FindVisibleActors(observer)
	agg := Aggregate(obs, observer, snap)
	for zone, summary := range agg.Zones {
		zones[zone] = append(zones[zone], summary.Phrases...)
	}

	return &Description{
		ObserverID:   observer.ID,
		Text:         Render(zones),
		Zones:        zones,
		Tally:        agg.Tally,
		Observations: obs,
	}, nil
}

func itemPhrases(items []*entities.Item) []Phrase {
	return countPhrases(len(items), func(i int) (string, string) {
		return items[i].Name, items[i].Plural
	})
}

func portalPhrases(portals []*entities.Portal) []Phrase {
	return countPhrases(len(portals), func(i int) (string, string) {
		if portals[i].Name == "" {
			return "an opening", "openings"
		}
		return portals[i].Name, ""
	})
}

// countPhrases merges identical names into counted phrases, keeping the
// order in which names first appear
func countPhrases(n int, nameAt func(i int) (name, plural string)) []Phrase {
	var phrases []Phrase
	index := make(map[string]int)
	plurals := make(map[string]string)

	for i := 0; i < n; i++ {
		name, plural := nameAt(i)
		if at, ok := index[name]; ok {
			phrases[at].Count++
			continue
		}
		index[name] = len(phrases)
		plurals[name] = plural
		phrases = append(phrases, Phrase{Text: name, Count: 1})
	}

	for i, p := range phrases {
		if p.Count > 1 {
			phrases[i].Text = language.Counted(p.Count, p.Text, plurals[p.Text])
		}
	}
	return phrases
}

// Narration is one combat sentence told to everyone who can see it
type Narration struct {
	Attacker  string
	Defendant string
	// Bystanders maps the id of every other character who can see the
	// attacker to the line they read
	Bystanders map[string]string
}

// NarrateToAudience renders a combat template for the attacker, the
// defendant and every other character in the world who can see the attacker.
func NarrateToAudience(snap *world.Snapshot, template, attackerID, defendantID string) (*Narration, error) {
	if snap == nil {
		return nil, errors.InvalidArgument("world snapshot is required")
	}
	attacker, ok := snap.Character(attackerID)
	if !ok {
		return nil, errors.NotFoundf("attacker %s not found in world %s", attackerID, snap.ID)
	}
	defendant, ok := snap.Character(defendantID)
	if !ok {
		return nil, errors.NotFoundf("defendant %s not found in world %s", defendantID, snap.ID)
	}

	t, err := ParseTemplate(template)
	if err != nil {
		return nil, err
	}

	n := &Narration{
		Attacker:   t.Render(attacker, defendant, RoleAttacker),
		Defendant:  t.Render(attacker, defendant, RoleDefendant),
		Bystanders: make(map[string]string),
	}

	var bystanderLine string
	for _, c := range snap.Characters() {
		if c == attacker || c == defendant || c.Animal {
			continue
		}
		if !canSee(c, attacker) {
			continue
		}
		if bystanderLine == "" {
			bystanderLine = t.Render(attacker, defendant, RoleBystander)
		}
		n.Bystanders[c.ID] = bystanderLine
	}

	return n, nil
}

func canSee(observer, target *entities.Character) bool {
	for _, o := range FindVisibleActors(observer) {
		if o.Character == target {
			return true
		}
	}
	return false
}
