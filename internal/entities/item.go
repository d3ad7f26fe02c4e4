package entities

import "github.com/KirkDiggler/rpg-perception/internal/geometry"

// Attachment tells where an item is fixed inside its room
type Attachment string

const (
	AttachedNone    Attachment = ""
	AttachedWall    Attachment = "wall"
	AttachedCeiling Attachment = "ceiling"
)

// Item is a static object inside a room
type Item struct {
	ID         string
	Name       string          // "a torch"
	Plural     string          // "torches"
	Offset     geometry.Vector // relative to the centre of the room
	Attachment Attachment
}
