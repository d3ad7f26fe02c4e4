package entities

import "github.com/KirkDiggler/rpg-perception/internal/geometry"

// Portal connects exactly two rooms. Each side carries its own flags, which
// apply when leaving the room on that side.
type Portal struct {
	ID          string
	Name        string
	A           *Room
	B           *Room
	SideA       PortalFlags
	SideB       PortalFlags
	Open        bool
	Multipliers Multipliers
}

// OtherSide returns the room opposite to from, or nil when from is not an endpoint
func (p *Portal) OtherSide(from *Room) *Room {
	switch from {
	case p.A:
		return p.B
	case p.B:
		return p.A
	default:
		return nil
	}
}

// FlagsFrom returns the flags for leaving through the portal from the given room
func (p *Portal) FlagsFrom(from *Room) PortalFlags {
	switch from {
	case p.A:
		return p.SideA
	case p.B:
		return p.SideB
	default:
		return 0
	}
}

// CanSeeThrough reports whether sight passes the portal when looking out of from
func (p *Portal) CanSeeThrough(from *Room) bool {
	flags := p.FlagsFrom(from)
	if flags.Has(SeeThrough) {
		return true
	}
	return flags.Has(SeeThroughIfOpen) && p.Open
}

// HiddenFrom reports whether the portal is concealed on the from side
func (p *Portal) HiddenFrom(from *Room) bool {
	return p.FlagsFrom(from).Has(Hidden)
}

// EventMultiplier returns the portal's own multiplier for a channel
func (p *Portal) EventMultiplier(ch Channel) float64 {
	return p.Multipliers.Get(ch)
}

// DirectionFrom is the vector from the given room towards the other side
func (p *Portal) DirectionFrom(from *Room) geometry.Vector {
	other := p.OtherSide(from)
	if other == nil {
		return geometry.Vector{}
	}
	return other.Position.Sub(from.Position)
}
