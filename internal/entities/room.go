package entities

import "github.com/KirkDiggler/rpg-perception/internal/geometry"

// Room is a node of the world graph
type Room struct {
	ID          string
	Name        string
	Position    geometry.Vector
	Flags       RoomFlags
	Multipliers Multipliers

	// Portals only ever holds portals with this room as one endpoint
	Portals    []*Portal
	Characters []*Character
	Items      []*Item
}

// HasFlag reports whether the room carries f
func (r *Room) HasFlag(f RoomFlags) bool {
	return r.Flags.Has(f)
}

// EventMultiplier returns the ambient multiplier for a channel
func (r *Room) EventMultiplier(ch Channel) float64 {
	return r.Multipliers.Get(ch)
}

// ActorsPresent returns the characters currently in the room
func (r *Room) ActorsPresent() []*Character {
	return r.Characters
}
