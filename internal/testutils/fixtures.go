package testutils

import (
	"github.com/KirkDiggler/rpg-perception/internal/geometry"
	"github.com/KirkDiggler/rpg-perception/internal/testutils/builders"
	"github.com/KirkDiggler/rpg-perception/internal/world"
)

// Ids used by the tavern fixture
const (
	TestWorldID    = "prancing-pony"
	TestObserverID = "frodo"
	TestAttackerID = "bill"
	TestDefenderID = "strider"
)

// TestTavernText is what Frodo sees in the tavern fixture
const TestTavernText = "Beside you, there is Sam. " +
	"Ahead of you, there are a wooden door, Bill Ferny fighting Strider and Strider fighting Bill Ferny. " +
	"On the wall to your right, there hangs a torch."

// CreateTestWorld creates a small two room tavern: Frodo and Sam in the
// common room facing north, Bill Ferny fighting Strider in the back room
// behind an open door.
func CreateTestWorld() *world.Definition {
	return builders.NewWorldBuilder(TestWorldID).
		WithName("The Prancing Pony").
		WithRoom("common-room", geometry.Vector{}, "HasWalls|HasCeiling|HasFloor").
		WithItem("common-room", world.ItemDef{
			ID:         "torch",
			Name:       "a torch",
			Plural:     "torches",
			Offset:     geometry.Vector{X: 1},
			Attachment: "wall",
		}).
		WithRoom("back-room", geometry.Vector{Y: 1}, "HasWalls|HasCeiling|HasFloor").
		WithDoor("door", "a wooden door", "common-room", "back-room", true).
		WithCharacter(world.CharacterDef{ID: TestObserverID, Name: "Frodo", Gender: "male", Room: "common-room"}).
		WithCharacter(world.CharacterDef{ID: "sam", Name: "Sam", Gender: "male", Room: "common-room"}).
		WithCharacter(world.CharacterDef{
			ID:     TestAttackerID,
			Name:   "Bill Ferny",
			Gender: "male",
			Room:   "back-room",
			Facing: "south",
			Action: world.ActionDef{Kind: "fighting", Target: TestDefenderID},
		}).
		WithCharacter(world.CharacterDef{
			ID:     TestDefenderID,
			Name:   "Strider",
			Gender: "male",
			Room:   "back-room",
			Facing: "south",
			Action: world.ActionDef{Kind: "fighting", Target: TestAttackerID},
		}).
		Build()
}
