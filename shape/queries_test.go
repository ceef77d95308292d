package shape

import (
	"testing"

	"github.com/osuushi/polycollide/geom"
	"github.com/stretchr/testify/assert"
)

func TestClosestAndFurthestPoints(t *testing.T) {
	a := unitSquare(t)

	assert.Equal(t, geom.Pt(0, 1), a.ClosestPointTo(geom.Pt(0, 5)))
	assert.Equal(t, geom.Pt(0, 1), a.ClosestPointTo(geom.Pt(0, 0.5)), "from inside")
	assert.Equal(t, geom.Pt(-1, -1), a.FurthestPointFrom(geom.Pt(0.5, 5)))
	assert.Equal(t, geom.Pt(1, 1), a.ClosestPerpendicularPointTo(geom.Pt(3, 3)))
	assert.Len(t, a.PerpendicularPointsTo(geom.Pt(0, 5)), 4)

	segment := geom.Seg(geom.Pt(3, -0.5), geom.Pt(3, 0.5))
	assert.InDelta(t, 1, a.ClosestPointToSegment(segment).X, 1e-9)
	assert.InDelta(t, -1, a.FurthestPointFromSegment(segment).X, 1e-9)

	other := mustRectangle(t, geom.Pt(5, 0.2), geom.Pt(2, 1), 0)
	assert.InDelta(t, 1, a.ClosestPointToPolygon(other).X, 1e-9)
	assert.InDelta(t, -1, a.FurthestPointFromPolygon(other).X, 1e-9)
}

func TestClosestAndFurthestVertices(t *testing.T) {
	a := unitSquare(t)

	assert.Equal(t, geom.Pt(1, 1), a.ClosestVertexTo(geom.Pt(5, 5)))
	assert.Equal(t, geom.Pt(-1, -1), a.FurthestVertexFrom(geom.Pt(5, 5)))

	segment := geom.Seg(geom.Pt(3, 0.5), geom.Pt(3, 5))
	assert.Equal(t, geom.Pt(1, 1), a.ClosestVertexToSegment(segment))
	assert.Equal(t, geom.Pt(-1, -1), a.FurthestVertexFromSegment(segment))

	// A vertex inside the other shape is closer than any outside
	b := mustRectangle(t, geom.Pt(1.5, -1.5), geom.Pt(2, 2), 0)
	assert.Equal(t, geom.Pt(1, -1), a.ClosestVertexToPolygon(b))
	assert.Equal(t, geom.Pt(-1, 1), a.FurthestVertexFromPolygon(b))
}

func TestClosestAndFurthestEdges(t *testing.T) {
	a := unitSquare(t)
	top := geom.Seg(geom.Pt(-1, 1), geom.Pt(1, 1))
	right := geom.Seg(geom.Pt(1, 1), geom.Pt(1, -1))
	bottom := geom.Seg(geom.Pt(1, -1), geom.Pt(-1, -1))
	left := geom.Seg(geom.Pt(-1, -1), geom.Pt(-1, 1))

	assert.Equal(t, top, a.ClosestEdgeTo(geom.Pt(0, 5)))
	assert.Equal(t, bottom, a.FurthestEdgeFrom(geom.Pt(0, 5)))

	segment := geom.Seg(geom.Pt(3, -0.5), geom.Pt(3, 0.5))
	assert.Equal(t, right, a.ClosestEdgeToSegment(segment))
	assert.Equal(t, left, a.FurthestEdgeFromSegment(segment))

	other := mustRectangle(t, geom.Pt(0, -5), geom.Pt(1, 1), 0)
	assert.Equal(t, bottom, a.ClosestEdgeToPolygon(other))
	assert.Equal(t, top, a.FurthestEdgeFromPolygon(other))
}

func TestFacingAndHiddenEdges(t *testing.T) {
	a := unitSquare(t)
	top := geom.Seg(geom.Pt(-1, 1), geom.Pt(1, 1))
	right := geom.Seg(geom.Pt(1, 1), geom.Pt(1, -1))
	left := geom.Seg(geom.Pt(-1, -1), geom.Pt(-1, 1))

	assert.Equal(t, top, a.EdgeFacingTowards(geom.Pt(0, 5)))
	// Closest to the top right corner, but looking mostly along +X
	assert.Equal(t, right, a.EdgeFacingTowards(geom.Pt(3, 1.5)))
	assert.Equal(t, left, a.HiddenEdgeFrom(geom.Pt(5, 0.5)))

	other := mustRegular(t, geom.Pt(0, 6), 3, 1, 0)
	assert.Equal(t, top, a.EdgeFacingTowardsPolygon(other))
	assert.Equal(t, geom.Seg(geom.Pt(1, -1), geom.Pt(-1, -1)), a.HiddenEdgeFromPolygon(mustRegular(t, geom.Pt(0.5, 6), 3, 1, 0)))
}
