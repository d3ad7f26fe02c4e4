package perception

import (
	"github.com/KirkDiggler/rpg-perception/internal/entities"
	"github.com/KirkDiggler/rpg-perception/internal/geometry"
	"github.com/KirkDiggler/rpg-perception/internal/language"
	"github.com/KirkDiggler/rpg-perception/internal/world"
)

// RecognizeStrength is the strength above which a character is known by
// name or description. Fainter people only show up as "a man", "a woman"
// or "someone".
const RecognizeStrength = 0.5

// Strengths above which a group is listed member by member, or counted by gender
const (
	GroupListStrength  = 0.9
	GroupCountStrength = 0.8
)

// Phrase is one entry in a zone's list, e.g. "two guards walking north"
type Phrase struct {
	Text  string `json:"text"`
	Count int    `json:"count"` // entities the phrase stands for
}

// Tally counts people. Men, Women and Unknown only count the anonymous ones
// that were folded into trailing phrases; Total counts every person seen.
// Animals are never counted.
type Tally struct {
	Men     int `json:"men"`
	Women   int `json:"women"`
	Unknown int `json:"unknown"`
	Total   int `json:"total"`
}

func (t *Tally) add(o Tally) {
	t.Men += o.Men
	t.Women += o.Women
	t.Unknown += o.Unknown
	t.Total += o.Total
}

// ZoneSummary is the aggregated content of one zone
type ZoneSummary struct {
	Phrases []Phrase
	Tally   Tally
}

// Aggregation holds every non-empty zone plus the tally over all of them
type Aggregation struct {
	Zones map[Zone]*ZoneSummary
	Tally Tally
}

// Aggregate buckets observations by zone around the observer and collapses
// each zone into phrases. The snapshot supplies group membership and action
// targets; a nil snapshot disables group collapsing.
func Aggregate(obs []Observation, observer *entities.Character, snap *world.Snapshot) Aggregation {
	agg := Aggregation{Zones: make(map[Zone]*ZoneSummary)}
	if observer == nil || observer.Room == nil {
		return agg
	}

	for zone, zoneObs := range ClassifyObservations(obs, observer.Room, observer.Facing) {
		summary := AggregateZone(zoneObs, observer, snap)
		agg.Zones[zone] = summary
		agg.Tally.add(summary.Tally)
	}
	return agg
}

// AggregateZone collapses the observations of a single zone. Groups whose
// leader and at least one member are present become one phrase, identical
// (name, action) pairs are counted together, and people too faint to
// recognise are folded into trailing tally phrases.
func AggregateZone(obs []Observation, observer *entities.Character, snap *world.Snapshot) *ZoneSummary {
	z := &zoneAggregator{
		observer: observer,
		snap:     snap,
		index:    make(map[entryKey]*entry),
	}
	z.findParties(obs)

	for _, o := range obs {
		z.add(o)
	}
	return z.summary()
}

type entryKey struct {
	name   string
	action string
}

type entry struct {
	name   string
	action string
	plural string
	count  int

	// party entries already name everyone they stand for
	party bool
}

func (e *entry) text() string {
	text := e.name
	if e.count > 1 && !e.party {
		text = language.WrittenAmount(e.count) + " " + e.plural
	}
	if e.action != "" {
		text += " " + e.action
	}
	return text
}

type zoneAggregator struct {
	observer *entities.Character
	snap     *world.Snapshot

	// parties maps a present leader to the members seen with them
	parties map[*entities.Character][]*entities.Character
	grouped map[*entities.Character]bool

	entries []*entry
	index   map[entryKey]*entry

	hasMan   bool
	hasWoman bool
	tally    Tally
}

func (z *zoneAggregator) groupOf(c *entities.Character) *entities.Group {
	if z.snap == nil {
		return nil
	}
	return z.snap.GroupOf(c)
}

func (z *zoneAggregator) findParties(obs []Observation) {
	z.parties = make(map[*entities.Character][]*entities.Character)
	z.grouped = make(map[*entities.Character]bool)

	for _, leader := range obs {
		g := z.groupOf(leader.Character)
		if g == nil || !g.IsLeader(leader.Character.ID) {
			continue
		}

		var members []*entities.Character
		for _, o := range obs {
			if o.Character != leader.Character && z.groupOf(o.Character) == g {
				members = append(members, o.Character)
			}
		}
		if len(members) == 0 {
			continue
		}

		z.parties[leader.Character] = members
		for _, m := range members {
			z.grouped[m] = true
		}
	}
}

func (z *zoneAggregator) add(o Observation) {
	c := o.Character
	if members, ok := z.parties[c]; ok {
		z.addParty(c, members, o.Strength)
		return
	}
	if z.grouped[c] {
		return
	}

	if !c.Animal {
		z.tally.Total++
		if o.Strength <= RecognizeStrength {
			// too faint to recognise: only the gender token is left
			switch language.GenderToken(c.Gender) {
			case language.TokenMan:
				z.tally.Men++
			case language.TokenWoman:
				z.tally.Women++
			default:
				z.tally.Unknown++
			}
			return
		}
		z.noteGender(c)
	}

	key := entryKey{name: c.DisplayName(), action: z.actionPhrase(c)}
	if e, ok := z.index[key]; ok {
		e.count++
		return
	}
	e := &entry{name: key.name, action: key.action, plural: c.PluralName(), count: 1}
	z.index[key] = e
	z.entries = append(z.entries, e)
}

func (z *zoneAggregator) addParty(leader *entities.Character, members []*entities.Character, strength float64) {
	party := append([]*entities.Character{leader}, members...)
	for _, c := range party {
		if !c.Animal {
			z.tally.Total++
			z.noteGender(c)
		}
	}

	z.entries = append(z.entries, &entry{
		name:   groupName(party, strength),
		action: z.actionPhrase(leader),
		count:  len(party),
		party:  true,
	})
}

func (z *zoneAggregator) noteGender(c *entities.Character) {
	switch c.Gender {
	case language.GenderMale:
		z.hasMan = true
	case language.GenderFemale:
		z.hasWoman = true
	}
}

func (z *zoneAggregator) summary() *ZoneSummary {
	phrases := make([]Phrase, 0, len(z.entries)+3)
	for _, e := range z.entries {
		phrases = append(phrases, Phrase{Text: e.text(), Count: e.count})
	}

	if n := z.tally.Men; n > 0 {
		phrases = append(phrases, Phrase{Text: genderedTally(n, "man", "men", z.hasMan), Count: n})
	}
	if n := z.tally.Women; n > 0 {
		phrases = append(phrases, Phrase{Text: genderedTally(n, "woman", "women", z.hasWoman), Count: n})
	}
	if n := z.tally.Unknown; n > 0 {
		phrases = append(phrases, Phrase{Text: unknownTally(n, len(phrases) > 0), Count: n})
	}

	return &ZoneSummary{Phrases: phrases, Tally: z.tally}
}

// genderedTally phrases anonymous men or women. "another" and "other" keep
// the reader from taking them for someone of the same gender already listed.
func genderedTally(n int, singular, plural string, sameListed bool) string {
	switch {
	case n == 1 && sameListed:
		return "another " + singular
	case n == 1:
		return language.WithArticle(singular)
	case sameListed:
		return language.WrittenAmount(n) + " other " + plural
	default:
		return language.WrittenAmount(n) + " " + plural
	}
}

func unknownTally(n int, anythingListed bool) string {
	switch {
	case n == 1 && anythingListed:
		return "someone else"
	case n == 1:
		return language.TokenSomeone
	case anythingListed:
		return language.WrittenAmount(n) + " other people"
	default:
		return language.WrittenAmount(n) + " people"
	}
}

// groupName describes a party of two or more. The clearer the view, the
// more specific the description.
func groupName(party []*entities.Character, strength float64) string {
	switch {
	case strength > GroupListStrength:
		return language.FancyJoin(countedNames(party))
	case strength > GroupCountStrength:
		gender := party[0].Gender
		for _, c := range party[1:] {
			if c.Gender != gender || c.Animal {
				gender = language.GenderUnspecified
				break
			}
		}
		switch gender {
		case language.GenderMale:
			return language.WrittenAmount(len(party)) + " men"
		case language.GenderFemale:
			return language.WrittenAmount(len(party)) + " women"
		}
		return "a group of people"
	case len(party) >= 6:
		return "a lot of people"
	default:
		return "some people"
	}
}

// countedNames lists display names in order of appearance, counting repeats:
// "Aragorn", "two hobbits"
func countedNames(party []*entities.Character) []string {
	var (
		order  []string
		counts = make(map[string]int)
		plural = make(map[string]string)
	)
	for _, c := range party {
		name := c.DisplayName()
		if counts[name] == 0 {
			order = append(order, name)
			plural[name] = c.PluralName()
		}
		counts[name]++
	}

	names := make([]string, len(order))
	for i, name := range order {
		if n := counts[name]; n > 1 {
			names[i] = language.WrittenAmount(n) + " " + plural[name]
		} else {
			names[i] = name
		}
	}
	return names
}

// actionPhrase describes what a character is busy with: "walking north",
// "fighting you". Idle characters get an empty phrase.
func (z *zoneAggregator) actionPhrase(c *entities.Character) string {
	a := c.Action
	switch a.Kind {
	case entities.ActionWalking, entities.ActionRunning:
		if d, ok := geometry.DirectionByName(a.Direction); ok {
			return string(a.Kind) + " " + d.Name
		}
		return string(a.Kind)
	case entities.ActionFighting, entities.ActionGuarding:
		return string(a.Kind) + " " + z.targetName(a.TargetID)
	default:
		return ""
	}
}

func (z *zoneAggregator) targetName(id string) string {
	if z.observer != nil && id == z.observer.ID {
		return "you"
	}
	if z.snap != nil {
		if t, ok := z.snap.Character(id); ok {
			return t.DisplayName()
		}
	}
	return language.TokenSomeone
}
