package perception_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-perception/internal/geometry"
	"github.com/KirkDiggler/rpg-perception/internal/perception"
	"github.com/KirkDiggler/rpg-perception/internal/world"
)

type WalkerTestSuite struct {
	suite.Suite
}

func TestWalkerSuite(t *testing.T) {
	suite.Run(t, new(WalkerTestSuite))
}

func (s *WalkerTestSuite) build(def *world.Definition) *world.Snapshot {
	def.ID = "test"
	snap, err := world.Build(def)
	s.Require().NoError(err)
	return snap
}

func (s *WalkerTestSuite) look(snap *world.Snapshot, observerID string) map[string]perception.Observation {
	observer, ok := snap.Character(observerID)
	s.Require().True(ok)

	seen := make(map[string]perception.Observation)
	for _, o := range perception.FindVisibleActors(observer) {
		_, dup := seen[o.Character.ID]
		s.Require().False(dup, "%s observed twice", o.Character.ID)
		seen[o.Character.ID] = o
	}
	return seen
}

func room(id string, x, y, z int) world.RoomDef {
	return world.RoomDef{ID: id, Position: geometry.Vector{X: x, Y: y, Z: z}}
}

func window(id, a, b string) world.PortalDef {
	return world.PortalDef{ID: id, A: a, B: b, SideA: "Passable|SeeThrough", SideB: "Passable|SeeThrough"}
}

func person(id, roomID string) world.CharacterDef {
	return world.CharacterDef{ID: id, Name: id, Room: roomID}
}

func (s *WalkerTestSuite) TestStrengthDecaysAlongCorridor() {
	hall := room("r1", 0, 1, 0)
	hall.Multipliers = map[string]float64{"Visual": 0.5}
	far := room("r2", 0, 2, 0)
	far.Multipliers = map[string]float64{"Visual": 0.8}

	snap := s.build(&world.Definition{
		Rooms:      []world.RoomDef{room("r0", 0, 0, 0), hall, far},
		Portals:    []world.PortalDef{window("p1", "r0", "r1"), window("p2", "r1", "r2")},
		Characters: []world.CharacterDef{person("me", "r0"), person("near", "r0"), person("mid", "r1"), person("end", "r2")},
	})

	seen := s.look(snap, "me")
	s.Require().Len(seen, 3)
	s.NotContains(seen, "me")

	s.InDelta(1.0, seen["near"].Strength, 1e-9)
	s.InDelta(0.5, seen["mid"].Strength, 1e-9)
	s.InDelta(0.4, seen["end"].Strength, 1e-9)
	s.GreaterOrEqual(seen["near"].Strength, seen["mid"].Strength)
	s.GreaterOrEqual(seen["mid"].Strength, seen["end"].Strength)

	s.InDelta(0.0, seen["near"].Distance, 1e-9)
	s.InDelta(2.0, seen["end"].Distance, 1e-9)
}

func (s *WalkerTestSuite) TestPortalMultiplierApplies() {
	p := window("p1", "r0", "r1")
	p.Multipliers = map[string]float64{"Visual": 0.25}

	snap := s.build(&world.Definition{
		Rooms:      []world.RoomDef{room("r0", 0, 0, 0), room("r1", 0, 1, 0)},
		Portals:    []world.PortalDef{p},
		Characters: []world.CharacterDef{person("me", "r0"), person("them", "r1")},
	})

	s.InDelta(0.25, s.look(snap, "me")["them"].Strength, 1e-9)
}

func (s *WalkerTestSuite) TestCutoffIsStrict() {
	dim := room("r1", 0, 1, 0)
	dim.Multipliers = map[string]float64{"Visual": 0.1}
	beyond := room("r2", 0, 2, 0)
	beyond.Multipliers = map[string]float64{"Visual": 0.9}

	snap := s.build(&world.Definition{
		Rooms:      []world.RoomDef{room("r0", 0, 0, 0), dim, beyond},
		Portals:    []world.PortalDef{window("p1", "r0", "r1"), window("p2", "r1", "r2")},
		Characters: []world.CharacterDef{person("me", "r0"), person("dim", "r1"), person("lost", "r2")},
	})

	seen := s.look(snap, "me")
	s.Require().Contains(seen, "dim", "exactly 0.1 is still visible")
	s.InDelta(0.1, seen["dim"].Strength, 1e-9)
	s.NotContains(seen, "lost")
}

func (s *WalkerTestSuite) TestCyclesAndSelfLoopsVisitOnce() {
	snap := s.build(&world.Definition{
		Rooms: []world.RoomDef{room("r0", 0, 0, 0), room("r1", 0, 1, 0), room("r2", 0, 2, 0)},
		Portals: []world.PortalDef{
			window("p1", "r0", "r1"),
			window("p2", "r1", "r2"),
			window("p3", "r2", "r0"),
			window("loop", "r1", "r1"),
		},
		Characters: []world.CharacterDef{person("me", "r0"), person("a", "r1"), person("b", "r2")},
	})

	seen := s.look(snap, "me")
	s.Len(seen, 2)
}

func (s *WalkerTestSuite) TestStrongestPathWins() {
	murky := room("murky", 0, 1, 0)
	murky.Multipliers = map[string]float64{"Visual": 0.2}
	clear := room("clear", 0, 1, 0)
	clear.Multipliers = map[string]float64{"Visual": 0.9}

	snap := s.build(&world.Definition{
		Rooms: []world.RoomDef{room("r0", 0, 0, 0), murky, clear, room("goal", 0, 2, 0)},
		Portals: []world.PortalDef{
			window("p1", "r0", "murky"),
			window("p2", "r0", "clear"),
			window("p3", "murky", "goal"),
			window("p4", "clear", "goal"),
		},
		Characters: []world.CharacterDef{person("me", "r0"), person("target", "goal")},
	})

	s.InDelta(0.9, s.look(snap, "me")["target"].Strength, 1e-9)
}

func (s *WalkerTestSuite) TestForwardCone() {
	snap := s.build(&world.Definition{
		Rooms: []world.RoomDef{
			room("r0", 0, 0, 0),
			room("north", 0, 1, 0),
			room("northeast", 1, 1, 0),
			room("east", 1, 0, 0),
			room("south", 0, -1, 0),
		},
		Portals: []world.PortalDef{
			window("p1", "r0", "north"),
			window("p2", "r0", "northeast"),
			window("p3", "r0", "east"),
			window("p4", "r0", "south"),
		},
		Characters: []world.CharacterDef{
			person("me", "r0"),
			person("n", "north"),
			person("ne", "northeast"),
			person("e", "east"),
			person("s", "south"),
		},
	})

	seen := s.look(snap, "me")
	s.Contains(seen, "n")
	s.Contains(seen, "ne", "45 degrees sits inside the tolerance band")
	s.NotContains(seen, "e")
	s.NotContains(seen, "s")
}

func (s *WalkerTestSuite) TestWalledRoomOnlyPassesStraightLines() {
	walled := room("walled", 0, 1, 0)
	walled.Flags = "HasWalls"

	snap := s.build(&world.Definition{
		Rooms: []world.RoomDef{
			room("r0", 0, 0, 0),
			walled,
			room("straight", 0, 2, 0),
			room("corner", 1, 2, 0),
		},
		Portals: []world.PortalDef{
			window("p1", "r0", "walled"),
			window("p2", "walled", "straight"),
			window("p3", "walled", "corner"),
		},
		Characters: []world.CharacterDef{
			person("me", "r0"),
			person("ahead", "straight"),
			person("peeking", "corner"),
		},
	})

	seen := s.look(snap, "me")
	s.Contains(seen, "ahead")
	s.NotContains(seen, "peeking", "corner lies inside the cone but off the incoming axis")
}

func (s *WalkerTestSuite) TestWalledOriginUsesCone() {
	origin := room("r0", 0, 0, 0)
	origin.Flags = "HasWalls"

	snap := s.build(&world.Definition{
		Rooms:      []world.RoomDef{origin, room("ne", 1, 1, 0), room("e", 1, 0, 0)},
		Portals:    []world.PortalDef{window("p1", "r0", "ne"), window("p2", "r0", "e")},
		Characters: []world.CharacterDef{person("me", "r0"), person("diag", "ne"), person("side", "e")},
	})

	seen := s.look(snap, "me")
	s.Contains(seen, "diag")
	s.NotContains(seen, "side")
}

func (s *WalkerTestSuite) TestCeilingAndFloorOcclusion() {
	testCases := []struct {
		name    string
		flags   string
		targetZ int
		visible bool
	}{
		{name: "open sky above", targetZ: 1, visible: true},
		{name: "ceiling blocks above", flags: "HasCeiling", targetZ: 1, visible: false},
		{name: "ceiling does not block below", flags: "HasCeiling", targetZ: -1, visible: true},
		{name: "floor blocks below", flags: "HasFloor", targetZ: -1, visible: false},
		{name: "floor does not block above", flags: "HasFloor", targetZ: 1, visible: true},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			origin := room("r0", 0, 0, 0)
			origin.Flags = tc.flags

			snap := s.build(&world.Definition{
				Rooms:      []world.RoomDef{origin, room("r1", 0, 0, tc.targetZ)},
				Portals:    []world.PortalDef{window("p1", "r0", "r1")},
				Characters: []world.CharacterDef{person("me", "r0"), person("other", "r1")},
			})

			_, seen := s.look(snap, "me")["other"]
			s.Equal(tc.visible, seen)
		})
	}
}

func (s *WalkerTestSuite) TestPortalSightFlags() {
	testCases := []struct {
		name    string
		side    string
		open    bool
		visible bool
	}{
		{name: "see through", side: "SeeThrough", visible: true},
		{name: "open door", side: "Passable|SeeThroughIfOpen", open: true, visible: true},
		{name: "closed door", side: "Passable|SeeThroughIfOpen", visible: false},
		{name: "solid", side: "Passable", visible: false},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			snap := s.build(&world.Definition{
				Rooms: []world.RoomDef{room("r0", 0, 0, 0), room("r1", 0, 1, 0)},
				Portals: []world.PortalDef{
					{ID: "door", A: "r0", B: "r1", SideA: tc.side, Open: tc.open},
				},
				Characters: []world.CharacterDef{person("me", "r0"), person("other", "r1")},
			})

			_, seen := s.look(snap, "me")["other"]
			s.Equal(tc.visible, seen)
		})
	}
}

func (s *WalkerTestSuite) TestSidesAreIndependent() {
	snap := s.build(&world.Definition{
		Rooms:   []world.RoomDef{room("r0", 0, 0, 0), room("r1", 0, 1, 0)},
		Portals: []world.PortalDef{{ID: "mirror", A: "r0", B: "r1", SideB: "SeeThrough"}},
		Characters: []world.CharacterDef{
			person("me", "r0"),
			{ID: "watcher", Name: "watcher", Room: "r1", Facing: "south"},
		},
	})

	s.Empty(s.look(snap, "me"))
	s.Contains(s.look(snap, "watcher"), "me")
}
