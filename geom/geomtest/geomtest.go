// Package geomtest checks that a placeable shape honours the laws
// geom.Place relies on.
package geomtest

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mindera-gaming/svg-placer/geom"
)

// Case is one set of inputs for CheckLaws.
type Case[T any] struct {
	Value  T
	V1, V2 geom.Vector
	Dest   geom.Point
}

// CheckLaws asserts that translating c.Value is an identity for the zero
// vector, composes, moves the center by exactly the offset, and that
// placing the value lands (and stays) on c.Dest. Centers are compared
// within threshold; equal decides the rest, so inputs that are not exact
// in binary need an equal that tolerates rounding.
func CheckLaws[T geom.Placeable[T]](t *testing.T, c Case[T], equal func(a, b T) bool, threshold float64) {
	t.Helper()

	a := c.Value

	assert.True(t, equal(a.Translate(geom.Zero), a), "translate by zero changed the value")
	assert.True(t, equal(a.Translate(c.V1).Translate(c.V2), a.Translate(c.V1.Add(c.V2))),
		"translate by %v then %v differs from translate by their sum", c.V1, c.V2)

	AssertPoint(t, geom.Move(a.Center(), c.V1), a.Translate(c.V1).Center(), threshold,
		"center did not follow translation by %v", c.V1)

	placed := geom.Place(c.Dest, a)
	AssertPoint(t, c.Dest, placed.Center(), threshold, "placed center")
	AssertPoint(t, placed.Center(), geom.Place(c.Dest, placed).Center(), threshold,
		"placing twice at %v moved the value", c.Dest)
}

// AssertPoint asserts that both coordinates of actual are within threshold of expected.
func AssertPoint(t *testing.T, expected, actual geom.Point, threshold float64, msgAndArgs ...interface{}) bool {
	t.Helper()

	ok := assert.InDelta(t, expected.X, actual.X, threshold, msgAndArgs...)
	return assert.InDelta(t, expected.Y, actual.Y, threshold, msgAndArgs...) && ok
}
