package geom

// Centered is implemented by values that can report a reference point.
// Center must be a pure function of the value.
type Centered interface {
	Center() Point
}

// Translatable is implemented by values that can produce a copy of
// themselves shifted by an offset.
//
// Implementations must satisfy, for any value a and offsets v1, v2:
//
//	a.Translate(Zero) == a
//	a.Translate(v1).Translate(v2) == a.Translate(v1.Add(v2))
//
// and, when the type is also Centered:
//
//	a.Translate(v).Center() == Move(a.Center(), v)
type Translatable[T any] interface {
	Translate(offset Vector) T
}

// Placeable is implemented by every type that is both Centered and
// Translatable onto itself. Such types get Place for free.
type Placeable[T any] interface {
	Centered
	Translatable[T]
}

// Place returns a copy of value moved so that its center is dest.
func Place[T Placeable[T]](dest Point, value T) T {
	offset := Offset(value.Center(), dest)
	return value.Translate(offset)
}
