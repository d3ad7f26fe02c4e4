package v1alpha1

import (
	"encoding/json"
	"time"

	percept "github.com/KirkDiggler/rpg-perception/internal/perception"
)

// SaveWorldRequest carries a world document in the same shape as the YAML
// world files
type SaveWorldRequest struct {
	World json.RawMessage `json:"world"`
}

// SaveWorldResponse reports the stored revision
type SaveWorldResponse struct {
	WorldID  string `json:"world_id"`
	Revision int64  `json:"revision"`
}

// WorldRequest names a single world
type WorldRequest struct {
	WorldID string `json:"world_id"`
}

// GetWorldResponse returns the stored document
type GetWorldResponse struct {
	World     interface{} `json:"world"`
	Revision  int64       `json:"revision"`
	UpdatedAt time.Time   `json:"updated_at"`
}

// ListWorldsResponse lists stored world ids
type ListWorldsResponse struct {
	WorldIDs []string `json:"world_ids"`
}

// DescribeRoomRequest asks what one character can see
type DescribeRoomRequest struct {
	WorldID    string `json:"world_id"`
	ObserverID string `json:"observer_id"`
}

// DescribeRoomResponse is the rendered description plus its parts
type DescribeRoomResponse struct {
	Text     string                            `json:"text"`
	Zones    map[percept.Zone][]percept.Phrase `json:"zones"`
	Tally    percept.Tally                     `json:"tally"`
	Revision int64                             `json:"revision"`
}

// NarrateActionRequest asks for a combat line from every point of view
type NarrateActionRequest struct {
	WorldID     string `json:"world_id"`
	Template    string `json:"template"`
	AttackerID  string `json:"attacker_id"`
	DefendantID string `json:"defendant_id"`
}

// NarrateActionResponse holds one line per audience, bystanders keyed by id
type NarrateActionResponse struct {
	Attacker   string            `json:"attacker"`
	Defendant  string            `json:"defendant"`
	Bystanders map[string]string `json:"bystanders"`
}
