package geom

import "math"

var _ Placeable[Bounds] = Bounds{}

// Bounds is an axis-aligned bounding box. The zero value is empty.
type Bounds struct {
	Min, Max Point
	set      bool
}

// BoundsOf returns the smallest box containing every given point.
func BoundsOf(points ...Point) Bounds {
	var b Bounds
	for _, p := range points {
		b = b.Extend(p)
	}

	return b
}

// Empty reports whether the box contains no point at all.
func (b Bounds) Empty() bool {
	return !b.set
}

// Extend returns the box grown to contain p.
func (b Bounds) Extend(p Point) Bounds {
	if !b.set {
		return Bounds{Min: p, Max: p, set: true}
	}

	b.Min = Point{X: math.Min(b.Min.X, p.X), Y: math.Min(b.Min.Y, p.Y)}
	b.Max = Point{X: math.Max(b.Max.X, p.X), Y: math.Max(b.Max.Y, p.Y)}

	return b
}

// Union returns the smallest box containing both b and other.
func (b Bounds) Union(other Bounds) Bounds {
	if !other.set {
		return b
	}

	return b.Extend(other.Min).Extend(other.Max)
}

func (b Bounds) Width() float64 {
	return b.Max.X - b.Min.X
}

func (b Bounds) Height() float64 {
	return b.Max.Y - b.Min.Y
}

// Center returns the midpoint of the box, or the origin when it is empty.
func (b Bounds) Center() Point {
	if !b.set {
		return Point{}
	}

	return Point{
		X: 0.5 * (b.Min.X + b.Max.X),
		Y: 0.5 * (b.Min.Y + b.Max.Y),
	}
}

// Translate returns the box shifted by offset. An empty box stays empty.
func (b Bounds) Translate(offset Vector) Bounds {
	if !b.set {
		return b
	}

	b.Min = Move(b.Min, offset)
	b.Max = Move(b.Max, offset)

	return b
}
