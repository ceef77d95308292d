package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLine(t *testing.T) {
	_, err := NewLine(Pt(1, 1), Pt(2, 3))
	assert.NoError(t, err)

	_, err = NewLine(Pt(1, 1), Pt(1, 1))
	assert.ErrorIs(t, err, ErrDegenerate)

	t.Run("methods on a degenerate line panic", func(t *testing.T) {
		l := Line{A: Pt(1, 1), B: Pt(1, 1)}
		assert.Panics(t, func() { l.PerpendicularPoint(Pt(0, 0)) })
		assert.Panics(t, func() { l.SignedDistance(Pt(0, 0)) })
	})
}

func TestLineSituation(t *testing.T) {
	// Pointing right, so "right hand side" is below
	l := Line{A: Pt(0, 0), B: Pt(2, 0)}
	assert.Greater(t, l.Situation(Pt(1, -1)), 0.0)
	assert.Less(t, l.Situation(Pt(1, 1)), 0.0)
	assert.Equal(t, 0.0, l.Situation(Pt(5, 0)))

	// Situation scales with the direction vector, signed distance does not
	assert.InDelta(t, -3, l.SignedDistance(Pt(7, 3)), 1e-12)
	assert.InDelta(t, 3, l.Distance(Pt(7, 3)), 1e-12)

	n := l.Normal()
	assert.InDelta(t, 0, n.X, 1e-12)
	assert.InDelta(t, -1, n.Y, 1e-12)
}

func TestLineEquationForms(t *testing.T) {
	l := Line{A: Pt(0, 1), B: Pt(2, 5)}
	e := l.Equation()
	assert.InDelta(t, 0, e.At(Pt(1, 3)), 1e-12)
	assert.InDelta(t, 0, e.At(Pt(-1, -1)), 1e-12)

	si, ok := l.SlopeIntercept()
	require.True(t, ok)
	assert.InDelta(t, 2, si.M, 1e-12)
	assert.InDelta(t, 1, si.B, 1e-12)
	assert.InDelta(t, 7, si.Y(3), 1e-12)

	t.Run("vertical lines have no slope", func(t *testing.T) {
		_, ok := Line{A: Pt(3, 0), B: Pt(3, 1)}.SlopeIntercept()
		assert.False(t, ok)
	})
}

func TestLineIntersectionPoint(t *testing.T) {
	t.Run("crossing", func(t *testing.T) {
		p, ok := Line{A: Pt(0, 1), B: Pt(1, 1)}.IntersectionPoint(Line{A: Pt(2, 0), B: Pt(2, 1)})
		require.True(t, ok)
		assert.InDelta(t, 2, p.X, 1e-12)
		assert.InDelta(t, 1, p.Y, 1e-12)
	})

	t.Run("diagonals", func(t *testing.T) {
		p, ok := Line{A: Pt(0, 0), B: Pt(1, 1)}.IntersectionPoint(Line{A: Pt(0, 2), B: Pt(2, 0)})
		require.True(t, ok)
		assert.InDelta(t, 1, p.X, 1e-12)
		assert.InDelta(t, 1, p.Y, 1e-12)
	})

	t.Run("parallel lines do not intersect", func(t *testing.T) {
		p, ok := Line{A: Pt(0, 0), B: Pt(1, 1)}.IntersectionPoint(Line{A: Pt(0, 1), B: Pt(1, 2)})
		assert.False(t, ok)
		assert.False(t, math.IsNaN(p.X) || math.IsNaN(p.Y))
		assert.False(t, math.IsInf(p.X, 0) || math.IsInf(p.Y, 0))
	})

	t.Run("vertical parallel lines do not intersect", func(t *testing.T) {
		_, ok := Line{A: Pt(0, 0), B: Pt(0, 1)}.IntersectionPoint(Line{A: Pt(1, 5), B: Pt(1, -5)})
		assert.False(t, ok)
	})

	t.Run("coincident lines do not intersect", func(t *testing.T) {
		_, ok := Line{A: Pt(0, 0), B: Pt(1, 0)}.IntersectionPoint(Line{A: Pt(3, 0), B: Pt(5, 0)})
		assert.False(t, ok)
	})
}

func TestLinePerpendicularPoint(t *testing.T) {
	l := Line{A: Pt(0, 0), B: Pt(1, 1)}
	p := l.PerpendicularPoint(Pt(2, 0))
	assert.InDelta(t, 1, p.X, 1e-12)
	assert.InDelta(t, 1, p.Y, 1e-12)

	// Unbounded: the foot may be beyond B
	p = l.PerpendicularPoint(Pt(10, 10))
	assert.InDelta(t, 10, p.X, 1e-12)
	assert.True(t, l.Contains(p))
}

func TestLineTransforms(t *testing.T) {
	l := Line{A: Pt(0, 0), B: Pt(1, 0)}
	moved := l.Translate(Pt(0, 2))
	assert.True(t, moved.Contains(Pt(-4, 2)))
	assert.True(t, l.IsParallel(moved))

	turned := l.Rotate(Pt(0, 0), 90)
	assert.InDelta(t, 0, turned.B.X, 1e-12)
	assert.InDelta(t, 1, turned.B.Y, 1e-12)
	assert.False(t, l.IsParallel(turned))
}
