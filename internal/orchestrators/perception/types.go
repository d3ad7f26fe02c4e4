package perception

import (
	"time"

	percept "github.com/KirkDiggler/rpg-perception/internal/perception"
	"github.com/KirkDiggler/rpg-perception/internal/world"
)

// SaveWorldInput defines the request for storing a world
type SaveWorldInput struct {
	Definition *world.Definition
}

// SaveWorldOutput defines the response for storing a world
type SaveWorldOutput struct {
	WorldID  string
	Revision int64
}

// GetWorldInput defines the request for loading a world
type GetWorldInput struct {
	WorldID string
}

// GetWorldOutput defines the response for loading a world
type GetWorldOutput struct {
	Definition *world.Definition
	Revision   int64
	UpdatedAt  time.Time
}

// DeleteWorldInput defines the request for deleting a world
type DeleteWorldInput struct {
	WorldID string
}

// DeleteWorldOutput defines the response for deleting a world
type DeleteWorldOutput struct{}

// ListWorldsInput defines the request for listing worlds
type ListWorldsInput struct{}

// ListWorldsOutput defines the response for listing worlds
type ListWorldsOutput struct {
	WorldIDs []string
}

// DescribeRoomInput defines the request for describing what a character sees
type DescribeRoomInput struct {
	WorldID    string
	ObserverID string
}

// DescribeRoomOutput defines the response for describing what a character sees
type DescribeRoomOutput struct {
	Text     string
	Zones    map[percept.Zone][]percept.Phrase
	Tally    percept.Tally
	Revision int64
}

// NarrateActionInput defines the request for narrating a combat action
type NarrateActionInput struct {
	WorldID     string
	Template    string
	AttackerID  string
	DefendantID string
}

// NarrateActionOutput holds one line per audience
type NarrateActionOutput struct {
	Attacker   string
	Defendant  string
	Bystanders map[string]string
}
