// Package world turns world definition documents into immutable snapshots
// the perception engine can walk.
//
// A Definition is the storage and file format: plain strings and numbers,
// flags written as "HasWalls|HasCeiling", directions by name. Build resolves
// every reference and parses every flag once, so a malformed world fails at
// construction instead of half way through a traversal.
package world

import "github.com/KirkDiggler/rpg-perception/internal/geometry"

// Definition describes a whole world
type Definition struct {
	ID         string         `json:"id" yaml:"id"`
	Name       string         `json:"name,omitempty" yaml:"name,omitempty"`
	Rooms      []RoomDef      `json:"rooms" yaml:"rooms"`
	Portals    []PortalDef    `json:"portals,omitempty" yaml:"portals,omitempty"`
	Characters []CharacterDef `json:"characters,omitempty" yaml:"characters,omitempty"`
	Groups     []GroupDef     `json:"groups,omitempty" yaml:"groups,omitempty"`
}

// RoomDef describes one room
type RoomDef struct {
	ID          string             `json:"id" yaml:"id"`
	Name        string             `json:"name,omitempty" yaml:"name,omitempty"`
	Position    geometry.Vector    `json:"position" yaml:"position"`
	Flags       string             `json:"flags,omitempty" yaml:"flags,omitempty"`
	Multipliers map[string]float64 `json:"multipliers,omitempty" yaml:"multipliers,omitempty"`
	Items       []ItemDef          `json:"items,omitempty" yaml:"items,omitempty"`
}

// ItemDef describes a static item inside a room
type ItemDef struct {
	ID         string          `json:"id" yaml:"id"`
	Name       string          `json:"name" yaml:"name"`
	Plural     string          `json:"plural,omitempty" yaml:"plural,omitempty"`
	Offset     geometry.Vector `json:"offset" yaml:"offset"`
	Attachment string          `json:"attachment,omitempty" yaml:"attachment,omitempty"`
}

// PortalDef describes a connection between rooms A and B. SideA holds the
// flags for leaving A, SideB for leaving B.
type PortalDef struct {
	ID          string             `json:"id" yaml:"id"`
	Name        string             `json:"name,omitempty" yaml:"name,omitempty"`
	A           string             `json:"a" yaml:"a"`
	B           string             `json:"b" yaml:"b"`
	SideA       string             `json:"side_a,omitempty" yaml:"side_a,omitempty"`
	SideB       string             `json:"side_b,omitempty" yaml:"side_b,omitempty"`
	Open        bool               `json:"open,omitempty" yaml:"open,omitempty"`
	Multipliers map[string]float64 `json:"multipliers,omitempty" yaml:"multipliers,omitempty"`
}

// CharacterDef describes a character and where it stands
type CharacterDef struct {
	ID          string    `json:"id" yaml:"id"`
	Name        string    `json:"name,omitempty" yaml:"name,omitempty"`
	Description string    `json:"description,omitempty" yaml:"description,omitempty"`
	Plural      string    `json:"plural,omitempty" yaml:"plural,omitempty"`
	Gender      string    `json:"gender,omitempty" yaml:"gender,omitempty"`
	Race        string    `json:"race,omitempty" yaml:"race,omitempty"`
	Animal      bool      `json:"animal,omitempty" yaml:"animal,omitempty"`
	Room        string    `json:"room" yaml:"room"`
	Facing      string    `json:"facing,omitempty" yaml:"facing,omitempty"`
	Action      ActionDef `json:"action,omitempty" yaml:"action,omitempty"`
}

// ActionDef describes what a character is doing
type ActionDef struct {
	Kind      string `json:"kind,omitempty" yaml:"kind,omitempty"`
	Direction string `json:"direction,omitempty" yaml:"direction,omitempty"`
	Target    string `json:"target,omitempty" yaml:"target,omitempty"`
}

// GroupDef describes a leader and the members following them
type GroupDef struct {
	ID      string   `json:"id" yaml:"id"`
	Name    string   `json:"name,omitempty" yaml:"name,omitempty"`
	Leader  string   `json:"leader" yaml:"leader"`
	Members []string `json:"members,omitempty" yaml:"members,omitempty"`
}
