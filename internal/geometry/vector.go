// Package geometry provides integer grid vectors and the angle math used to
// relate positions in the world graph to an observer's facing.
package geometry

import (
	"fmt"
	"math"
)

// Vector is a position or offset on the integer world grid.
// X grows to the east, Y to the north and Z upwards.
type Vector struct {
	X int `json:"x" yaml:"x"`
	Y int `json:"y" yaml:"y"`
	Z int `json:"z" yaml:"z"`
}

// Add returns v + o
func (v Vector) Add(o Vector) Vector {
	return Vector{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z}
}

// Sub returns v - o
func (v Vector) Sub(o Vector) Vector {
	return Vector{X: v.X - o.X, Y: v.Y - o.Y, Z: v.Z - o.Z}
}

// Length returns the Euclidean length of the vector
func (v Vector) Length() float64 {
	return math.Sqrt(float64(v.X*v.X + v.Y*v.Y + v.Z*v.Z))
}

// Horizontal drops the vertical component
func (v Vector) Horizontal() Vector {
	return Vector{X: v.X, Y: v.Y}
}

// IsZero reports whether every component is zero
func (v Vector) IsZero() bool {
	return v.X == 0 && v.Y == 0 && v.Z == 0
}

// Signs returns the component-wise sign of the vector (-1, 0 or 1).
func (v Vector) Signs() Vector {
	return Vector{X: sign(v.X), Y: sign(v.Y), Z: sign(v.Z)}
}

// SameHorizontalAxis reports whether v and o point along the same 2D axis,
// meaning their X and Y signs match component-wise.
func (v Vector) SameHorizontalAxis(o Vector) bool {
	return sign(v.X) == sign(o.X) && sign(v.Y) == sign(o.Y)
}

func (v Vector) String() string {
	return fmt.Sprintf("(%d,%d,%d)", v.X, v.Y, v.Z)
}

// Distance returns the Euclidean distance between two positions
func Distance(a, b Vector) float64 {
	return a.Sub(b).Length()
}

// SignedAngle returns the angle in degrees from ref to v measured on the
// horizontal plane. The result lies in (-180, 180]; positive values mean v is
// clockwise of ref, i.e. to the right of someone facing along ref.
// A zero-length horizontal projection on either side yields 0.
func SignedAngle(ref, v Vector) float64 {
	if ref.Horizontal().IsZero() || v.Horizontal().IsZero() {
		return 0
	}

	dot := float64(ref.X*v.X + ref.Y*v.Y)
	cross := float64(ref.Y*v.X - ref.X*v.Y)

	angle := math.Atan2(cross, dot) * 180 / math.Pi
	if angle <= -180 {
		angle += 360
	}
	return angle
}

func sign(n int) int {
	switch {
	case n > 0:
		return 1
	case n < 0:
		return -1
	default:
		return 0
	}
}
