package perception_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-perception/internal/perception"
)

type RendererTestSuite struct {
	suite.Suite
}

func TestRendererSuite(t *testing.T) {
	suite.Run(t, new(RendererTestSuite))
}

func (s *RendererTestSuite) TestNothingToReport() {
	s.Equal("", perception.Render(nil))
	s.Equal("", perception.Render(map[perception.Zone][]perception.Phrase{
		perception.ZoneAhead: {},
	}))
}

func (s *RendererTestSuite) TestVerbAgreement() {
	testCases := []struct {
		name    string
		phrases []perception.Phrase
		want    string
	}{
		{
			name:    "one entity",
			phrases: []perception.Phrase{{Text: "a guard", Count: 1}},
			want:    "To your left, there is a guard.",
		},
		{
			name:    "one phrase for many",
			phrases: []perception.Phrase{{Text: "some guards", Count: 3}},
			want:    "To your left, there are some guards.",
		},
		{
			name:    "several phrases",
			phrases: []perception.Phrase{{Text: "Bob", Count: 1}, {Text: "a woman", Count: 1}},
			want:    "To your left, there are Bob and a woman.",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Equal(tc.want, perception.RenderZone(perception.ZoneLeft, tc.phrases))
		})
	}
}

func (s *RendererTestSuite) TestZonesRenderInFixedOrder() {
	zones := map[perception.Zone][]perception.Phrase{
		perception.ZoneCeiling:    {{Text: "a chandelier", Count: 1}},
		perception.ZoneBehind:     {{Text: "a door", Count: 1}},
		perception.ZoneCharacters: {{Text: "Mary", Count: 1}, {Text: "someone else", Count: 1}},
		perception.ZoneRightWall:  {{Text: "two shields", Count: 2}},
	}

	s.Equal(
		"Beside you, there are Mary and someone else. "+
			"Behind you, there is a door. "+
			"On the wall to your right, there hang two shields. "+
			"From the ceiling, there hangs a chandelier.",
		perception.Render(zones),
	)
}

func (s *RendererTestSuite) TestEveryZoneHasASentence() {
	for _, zone := range perception.ZoneOrder {
		s.NotEmpty(perception.RenderZone(zone, []perception.Phrase{{Text: "a rat", Count: 1}}), zone)
	}
}
