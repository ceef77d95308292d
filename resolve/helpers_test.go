package resolve

import (
	"testing"

	"github.com/osuushi/polycollide/geom"
	"github.com/osuushi/polycollide/shape"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func square(t *testing.T, center geom.Point, side, rotation float64) *shape.Rectangle {
	r, err := shape.NewRectangle(center, geom.Pt(side, side), rotation)
	require.NoError(t, err)
	return r
}

func regular(t *testing.T, center geom.Point, n int, radius float64) *shape.RegularPolygon {
	r, err := shape.NewRegularPolygon(center, n, radius, 0)
	require.NoError(t, err)
	return r
}

// resolveAndApply resolves self against obstacle and returns a copy of self
// moved by the offset.
func resolveAndApply(t *testing.T, r *Resolver, self, past, obstacle shape.Shape) (Resolution, shape.Shape) {
	t.Helper()
	result, err := r.Resolve(self, past, obstacle)
	require.NoError(t, err)
	moved := self.Clone()
	moved.Translate(result.Offset)
	return result, moved
}

func assertPointsInDelta(t *testing.T, expected, actual geom.Point, delta float64) {
	t.Helper()
	assert.InDelta(t, expected.X, actual.X, delta, "X of %v", actual)
	assert.InDelta(t, expected.Y, actual.Y, delta, "Y of %v", actual)
}
