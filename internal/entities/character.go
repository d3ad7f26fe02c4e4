package entities

import (
	"github.com/KirkDiggler/rpg-toolkit/core"

	"github.com/KirkDiggler/rpg-perception/internal/geometry"
	"github.com/KirkDiggler/rpg-perception/internal/language"
)

// EntityTypeCharacter is the rpg-toolkit entity type of every character
const EntityTypeCharacter = "character"

// ActionKind is what a character is currently busy with
type ActionKind string

const (
	ActionNone     ActionKind = ""
	ActionWalking  ActionKind = "walking"
	ActionRunning  ActionKind = "running"
	ActionFighting ActionKind = "fighting"
	ActionGuarding ActionKind = "guarding"
)

// Action is a character's current activity. Movement actions carry a
// direction name, fighting and guarding carry a target.
type Action struct {
	Kind      ActionKind
	Direction string
	TargetID  string
}

// Character is an actor that can observe and be observed
type Character struct {
	ID          string
	Name        string // proper name, empty for anonymous NPCs
	Description string // "a guard"
	Plural      string // "guards"; derived from Description when empty
	Gender      language.Gender
	Race        string
	Animal      bool
	Facing      geometry.Vector
	GroupID     string
	Action      Action

	Room *Room
}

var _ core.Entity = (*Character)(nil)

// GetID returns the character's ID
func (c *Character) GetID() string {
	return c.ID
}

// GetType returns the entity type for rpg-toolkit
func (c *Character) GetType() string {
	return EntityTypeCharacter
}

// DisplayName is what an observer who recognises the character calls them
func (c *Character) DisplayName() string {
	if c.Name != "" {
		return c.Name
	}
	return c.Description
}

// PluralName is used when several identical characters are counted together
func (c *Character) PluralName() string {
	if c.Plural != "" {
		return c.Plural
	}
	return language.Plural(c.DisplayName())
}
