package geom_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mindera-gaming/svg-placer/geom"
	"github.com/mindera-gaming/svg-placer/geom/geomtest"
)

func TestBoundsOf(t *testing.T) {
	b := geom.BoundsOf(
		geom.Point{X: 1, Y: 5},
		geom.Point{X: -3, Y: 2},
		geom.Point{X: 4, Y: -1},
	)

	require.False(t, b.Empty())
	assert.Equal(t, geom.Point{X: -3, Y: -1}, b.Min)
	assert.Equal(t, geom.Point{X: 4, Y: 5}, b.Max)
	assert.Equal(t, 7.0, b.Width())
	assert.Equal(t, 6.0, b.Height())
	assert.Equal(t, geom.Point{X: 0.5, Y: 2}, b.Center())
}

func TestBoundsEmpty(t *testing.T) {
	var b geom.Bounds

	assert.True(t, b.Empty())
	assert.Equal(t, geom.Point{}, b.Center())
	assert.True(t, b.Translate(geom.Vector{DX: 3, DY: 3}).Empty())

	single := b.Extend(geom.Point{X: 2, Y: 2})
	assert.False(t, single.Empty())
	assert.Equal(t, geom.Point{X: 2, Y: 2}, single.Center())
	assert.Equal(t, 0.0, single.Width())
}

func TestBoundsUnion(t *testing.T) {
	a := geom.BoundsOf(geom.Point{X: 0, Y: 0}, geom.Point{X: 1, Y: 1})
	b := geom.BoundsOf(geom.Point{X: 4, Y: -2})

	u := a.Union(b)
	assert.Equal(t, geom.Point{X: 0, Y: -2}, u.Min)
	assert.Equal(t, geom.Point{X: 4, Y: 1}, u.Max)

	assert.Equal(t, a, a.Union(geom.Bounds{}))
	assert.Equal(t, b, geom.Bounds{}.Union(b))
}

func TestBoundsLaws(t *testing.T) {
	equal := func(a, b geom.Bounds) bool {
		return a.Empty() == b.Empty() &&
			geom.AlmostEqual(a.Min, b.Min, 1e-9) &&
			geom.AlmostEqual(a.Max, b.Max, 1e-9)
	}

	cases := []geomtest.Case[geom.Bounds]{
		{
			Value: geom.BoundsOf(geom.Point{X: 1, Y: 2}, geom.Point{X: 3, Y: 4}),
			V1:    geom.Vector{DX: 5, DY: -1},
			V2:    geom.Vector{DX: -2, DY: 8},
			Dest:  geom.Point{X: 10, Y: 10},
		},
		{
			Value: geom.BoundsOf(geom.Point{X: -8, Y: 0}, geom.Point{X: 0, Y: 16}),
			V1:    geom.Vector{DX: 0.5, DY: 0.25},
			V2:    geom.Vector{DX: 0.25, DY: 0.5},
			Dest:  geom.Point{X: -100, Y: 64},
		},
		{
			Value: geom.BoundsOf(geom.Point{X: 7, Y: 7}),
			Dest:  geom.Point{X: 7, Y: 7},
		},
		{
			Value: geom.BoundsOf(geom.Point{X: 0.3, Y: 0.7}, geom.Point{X: 1.1, Y: 2.9}),
			V1:    geom.Vector{DX: 0.1, DY: 0.2},
			V2:    geom.Vector{DX: 0.7, DY: -0.3},
			Dest:  geom.Point{X: 3.3, Y: -1.7},
		},
	}
	for _, c := range cases {
		geomtest.CheckLaws(t, c, equal, 1e-9)
	}
}
