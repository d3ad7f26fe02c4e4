package perception

import (
	"math"

	"github.com/KirkDiggler/rpg-perception/internal/entities"
	"github.com/KirkDiggler/rpg-perception/internal/geometry"
)

// Zone is a directional bucket relative to an observer
type Zone string

const (
	ZoneCharacters Zone = "characters"
	ZoneAhead      Zone = "ahead"
	ZoneLeft       Zone = "left"
	ZoneRight      Zone = "right"
	ZoneBehind     Zone = "behind"
	ZoneAbove      Zone = "above"
	ZoneBelow      Zone = "below"
	ZoneCenter     Zone = "center"
	ZoneLeftWall   Zone = "left wall"
	ZoneRightWall  Zone = "right wall"
	ZoneWall       Zone = "wall"
	ZoneCeiling    Zone = "ceiling"
)

// ZoneOrder is the order zones are rendered in
var ZoneOrder = []Zone{
	ZoneCharacters,
	ZoneAhead,
	ZoneLeft,
	ZoneRight,
	ZoneBehind,
	ZoneAbove,
	ZoneBelow,
	ZoneCenter,
	ZoneLeftWall,
	ZoneRightWall,
	ZoneWall,
	ZoneCeiling,
}

// Tolerance band around the 45 degree boundary between ahead and the sides
const (
	AngleUnder = 44.9
	AngleOver  = 45.1
)

// DirectionalZone buckets a signed horizontal angle into ahead, behind, left or right
func DirectionalZone(angle float64) Zone {
	switch a := math.Abs(angle); {
	case a < AngleUnder:
		return ZoneAhead
	case a > 3*AngleOver:
		return ZoneBehind
	case angle > 0:
		return ZoneRight
	default:
		return ZoneLeft
	}
}

// ClassifyItems places room items relative to someone facing along facing
// from the centre of the room.
func ClassifyItems(items []*entities.Item, facing geometry.Vector) map[Zone][]*entities.Item {
	return classify(items, func(item *entities.Item) Zone {
		return itemZone(item, facing)
	})
}

func itemZone(item *entities.Item, facing geometry.Vector) Zone {
	switch item.Attachment {
	case entities.AttachedCeiling:
		return ZoneCeiling
	case entities.AttachedWall:
		switch DirectionalZone(geometry.SignedAngle(facing, item.Offset)) {
		case ZoneLeft:
			return ZoneLeftWall
		case ZoneRight:
			return ZoneRightWall
		default:
			return ZoneWall
		}
	}

	if item.Offset.Horizontal().IsZero() {
		if item.Offset.Z > 0 {
			return ZoneAbove
		}
		return ZoneCenter
	}
	return DirectionalZone(geometry.SignedAngle(facing, item.Offset))
}

// ClassifyObservations places observed characters relative to the observer's room
func ClassifyObservations(obs []Observation, origin *entities.Room, facing geometry.Vector) map[Zone][]Observation {
	return classify(obs, func(o Observation) Zone {
		if o.Room == origin {
			return ZoneCharacters
		}
		return offsetZone(o.Room.Position.Sub(origin.Position), facing)
	})
}

// ClassifyPortals places the exits of a room by the direction of the room
// on their far side. A portal that leads back into origin counts as being
// right here.
func ClassifyPortals(portals []*entities.Portal, origin *entities.Room, facing geometry.Vector) map[Zone][]*entities.Portal {
	return classify(portals, func(p *entities.Portal) Zone {
		if p.OtherSide(origin) == origin {
			return ZoneCharacters
		}
		return offsetZone(p.DirectionFrom(origin), facing)
	})
}

func offsetZone(offset, facing geometry.Vector) Zone {
	if offset.Horizontal().IsZero() {
		if offset.Z > 0 {
			return ZoneAbove
		}
		return ZoneBelow
	}
	return DirectionalZone(geometry.SignedAngle(facing, offset))
}

func classify[T any](in []T, zoneOf func(T) Zone) map[Zone][]T {
	zones := make(map[Zone][]T)
	for _, v := range in {
		z := zoneOf(v)
		zones[z] = append(zones[z], v)
	}
	return zones
}
