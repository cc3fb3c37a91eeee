// Package geom defines the capabilities shared by every shape in this
// module: reporting a center, moving by an offset, and placing a shape
// so that its center lands on a given point.
package geom

import (
	"math"

	"github.com/mindera-gaming/go-math/vector2"
)

// Point is a location in the plane.
type Point = vector2.Point

// Vector is a displacement between two points
type Vector struct {
	DX, DY float64
}

// Zero is the offset that leaves every shape where it is.
var Zero Vector

// Offset returns the vector that moves from onto to (to - from).
func Offset(from, to Point) Vector {
	return Vector{
		DX: to.X - from.X,
		DY: to.Y - from.Y,
	}
}

// Move returns p shifted by v.
func Move(p Point, v Vector) Point {
	return Point{
		X: p.X + v.DX,
		Y: p.Y + v.DY,
	}
}

func (v Vector) Add(other Vector) Vector {
	v.DX += other.DX
	v.DY += other.DY

	return v
}

func (v Vector) Neg() Vector {
	return Vector{DX: -v.DX, DY: -v.DY}
}

func (v Vector) IsZero() bool {
	return v == Zero
}

// AlmostEqual reports whether both coordinates of a and b are within threshold.
func AlmostEqual(a, b Point, threshold float64) bool {
	return math.Abs(a.X-b.X) <= threshold && math.Abs(a.Y-b.Y) <= threshold
}
