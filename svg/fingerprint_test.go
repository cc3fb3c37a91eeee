package svg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mindera-gaming/svg-placer/geom"
)

func TestFingerprint(t *testing.T) {
	a := Path{ID: "a", Data: parse(t, "M 0 0 L 4 4", DefaultParserOptions())}
	b := Path{ID: "b", Data: parse(t, "m 0 0 l 4 4", DefaultParserOptions())}
	c := a.Translate(geom.Vector{DX: 1})

	fa, err := a.Fingerprint()
	require.NoError(t, err)
	fb, err := b.Fingerprint()
	require.NoError(t, err)
	fc, err := c.Fingerprint()
	require.NoError(t, err)

	assert.Equal(t, fa, fb)
	assert.NotEqual(t, fa, fc)
}

func TestDedupe(t *testing.T) {
	a := Path{ID: "a", Data: parse(t, "M 0 0 L 4 4", DefaultParserOptions())}
	b := Path{ID: "b", Data: parse(t, "M 0 0 L 4 4", DefaultParserOptions())}
	c := Path{ID: "c", Data: parse(t, "M 0 0 L 4 5", DefaultParserOptions())}

	unique, err := Dedupe([]Path{a, b, c, a})
	require.NoError(t, err)

	ids := make([]string, len(unique))
	for i, p := range unique {
		ids[i] = p.ID
	}
	assert.Equal(t, []string{"a", "c"}, ids)
}
