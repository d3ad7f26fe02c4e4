package geometry

import "strings"

// Direction is a named unit step on the world grid
type Direction struct {
	Name   string
	Vector Vector
}

var directions = [...]Direction{
	{Name: "north", Vector: Vector{Y: 1}},
	{Name: "northeast", Vector: Vector{X: 1, Y: 1}},
	{Name: "east", Vector: Vector{X: 1}},
	{Name: "southeast", Vector: Vector{X: 1, Y: -1}},
	{Name: "south", Vector: Vector{Y: -1}},
	{Name: "southwest", Vector: Vector{X: -1, Y: -1}},
	{Name: "west", Vector: Vector{X: -1}},
	{Name: "northwest", Vector: Vector{X: -1, Y: 1}},
	{Name: "up", Vector: Vector{Z: 1}},
	{Name: "down", Vector: Vector{Z: -1}},
}

var (
	byName   = make(map[string]Direction, len(directions))
	byVector = make(map[Vector]Direction, len(directions))
)

func init() {
	for _, d := range directions {
		byName[d.Name] = d
		byVector[d.Vector] = d
	}
}

// Directions returns every named direction in table order
func Directions() []Direction {
	out := make([]Direction, len(directions))
	copy(out[:], directions[:])
	return out
}

// DirectionByName looks a direction up by its (case-insensitive) name
func DirectionByName(name string) (Direction, bool) {
	d, ok := byName[strings.ToLower(strings.TrimSpace(name))]
	return d, ok
}

// DirectionByVector finds the direction whose unit step has the same signs as v.
// Longer vectors resolve to the direction they point along.
func DirectionByVector(v Vector) (Direction, bool) {
	d, ok := byVector[v.Signs()]
	return d, ok
}

// Opposite returns the direction pointing the other way
func (d Direction) Opposite() Direction {
	o := byVector[Vector{X: -d.Vector.X, Y: -d.Vector.Y, Z: -d.Vector.Z}]
	return o
}
