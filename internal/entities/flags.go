package entities

import (
	"fmt"
	"strings"
)

// RoomFlags is the fixed set of boolean room properties
type RoomFlags uint16

const (
	HasWalls RoomFlags = 1 << iota
	HasCeiling
	HasFloor
	IsRoof
	IsOutdoors
)

var roomFlagNames = []struct {
	flag RoomFlags
	name string
}{
	{HasWalls, "HasWalls"},
	{HasCeiling, "HasCeiling"},
	{HasFloor, "HasFloor"},
	{IsRoof, "IsRoof"},
	{IsOutdoors, "IsOutdoors"},
}

// Has reports whether every bit of f is set
func (r RoomFlags) Has(f RoomFlags) bool {
	return r&f == f
}

func (r RoomFlags) String() string {
	var names []string
	for _, rf := range roomFlagNames {
		if r.Has(rf.flag) {
			names = append(names, rf.name)
		}
	}
	return strings.Join(names, "|")
}

// ParseRoomFlags parses a "HasWalls|HasCeiling" style list
func ParseRoomFlags(s string) (RoomFlags, error) {
	var flags RoomFlags
	for _, part := range splitFlags(s) {
		found := false
		for _, rf := range roomFlagNames {
			if strings.EqualFold(rf.name, part) {
				flags |= rf.flag
				found = true
				break
			}
		}
		if !found {
			return 0, fmt.Errorf("unknown room flag %q", part)
		}
	}
	return flags, nil
}

// PortalFlags describe one side of a portal: what happens when leaving a
// room through it
type PortalFlags uint8

const (
	Passable PortalFlags = 1 << iota
	Hidden
	SeeThrough
	SeeThroughIfOpen
)

var portalFlagNames = []struct {
	flag PortalFlags
	name string
}{
	{Passable, "Passable"},
	{Hidden, "Hidden"},
	{SeeThrough, "SeeThrough"},
	{SeeThroughIfOpen, "SeeThroughIfOpen"},
}

// Has reports whether every bit of f is set
func (p PortalFlags) Has(f PortalFlags) bool {
	return p&f == f
}

func (p PortalFlags) String() string {
	var names []string
	for _, pf := range portalFlagNames {
		if p.Has(pf.flag) {
			names = append(names, pf.name)
		}
	}
	return strings.Join(names, "|")
}

// ParsePortalFlags parses a "Passable|SeeThrough" style list
func ParsePortalFlags(s string) (PortalFlags, error) {
	var flags PortalFlags
	for _, part := range splitFlags(s) {
		found := false
		for _, pf := range portalFlagNames {
			if strings.EqualFold(pf.name, part) {
				flags |= pf.flag
				found = true
				break
			}
		}
		if !found {
			return 0, fmt.Errorf("unknown portal flag %q", part)
		}
	}
	return flags, nil
}

func splitFlags(s string) []string {
	var parts []string
	for _, p := range strings.Split(s, "|") {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	return parts
}
