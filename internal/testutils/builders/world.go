// Package builders provides test data builders for creating test fixtures
package builders

import (
	"github.com/KirkDiggler/rpg-perception/internal/geometry"
	"github.com/KirkDiggler/rpg-perception/internal/world"
)

// WorldBuilder provides a fluent interface for building world definitions
type WorldBuilder struct {
	def *world.Definition
}

// NewWorldBuilder creates a builder for an empty world
func NewWorldBuilder(id string) *WorldBuilder {
	return &WorldBuilder{def: &world.Definition{ID: id}}
}

// WithName sets the world name
func (b *WorldBuilder) WithName(name string) *WorldBuilder {
	b.def.Name = name
	return b
}

// WithRoom adds a room
func (b *WorldBuilder) WithRoom(id string, position geometry.Vector, flags string) *WorldBuilder {
	b.def.Rooms = append(b.def.Rooms, world.RoomDef{ID: id, Position: position, Flags: flags})
	return b
}

// WithVisualMultiplier sets a room's Visual multiplier
func (b *WorldBuilder) WithVisualMultiplier(roomID string, m float64) *WorldBuilder {
	if r := b.room(roomID); r != nil {
		if r.Multipliers == nil {
			r.Multipliers = make(map[string]float64)
		}
		r.Multipliers["Visual"] = m
	}
	return b
}

// WithItem adds an item to an existing room
func (b *WorldBuilder) WithItem(roomID string, item world.ItemDef) *WorldBuilder {
	if r := b.room(roomID); r != nil {
		r.Items = append(r.Items, item)
	}
	return b
}

// WithWindow adds a portal that can be seen through but not passed
func (b *WorldBuilder) WithWindow(id, a, c string) *WorldBuilder {
	b.def.Portals = append(b.def.Portals, world.PortalDef{
		ID:    id,
		A:     a,
		B:     c,
		SideA: "SeeThrough",
		SideB: "SeeThrough",
	})
	return b
}

// WithDoor adds a door that can be seen through while open
func (b *WorldBuilder) WithDoor(id, name, a, c string, open bool) *WorldBuilder {
	b.def.Portals = append(b.def.Portals, world.PortalDef{
		ID:    id,
		Name:  name,
		A:     a,
		B:     c,
		SideA: "Passable|SeeThroughIfOpen",
		SideB: "Passable|SeeThroughIfOpen",
		Open:  open,
	})
	return b
}

// WithCharacter adds a character
func (b *WorldBuilder) WithCharacter(c world.CharacterDef) *WorldBuilder {
	b.def.Characters = append(b.def.Characters, c)
	return b
}

// WithGroup adds a group
func (b *WorldBuilder) WithGroup(id, leader string, members ...string) *WorldBuilder {
	b.def.Groups = append(b.def.Groups, world.GroupDef{ID: id, Leader: leader, Members: members})
	return b
}

// Build returns the definition
func (b *WorldBuilder) Build() *world.Definition {
	return b.def
}

func (b *WorldBuilder) room(id string) *world.RoomDef {
	for i := range b.def.Rooms {
		if b.def.Rooms[i].ID == id {
			return &b.def.Rooms[i]
		}
	}
	return nil
}
