package shape

import (
	"math"
	"testing"

	"github.com/osuushi/polycollide/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r2"
)

// Helpers shared by the shape tests

func mustRectangle(t *testing.T, center, size geom.Point, rotation float64) *Rectangle {
	r, err := NewRectangle(center, size, rotation)
	require.NoError(t, err)
	return r
}

func mustRegular(t *testing.T, center geom.Point, n int, radius, rotation float64) *RegularPolygon {
	r, err := NewRegularPolygon(center, n, radius, rotation)
	require.NoError(t, err)
	return r
}

func mustTriangle(t *testing.T, a, b, c geom.Point) *Triangle {
	tri, err := NewTriangle(a, b, c)
	require.NoError(t, err)
	return tri
}

func mustConvex(t *testing.T, points ...geom.Point) *Convex {
	c, err := NewConvex(points)
	require.NoError(t, err)
	return c
}

// Square of side 2 centered on the origin
func unitSquare(t *testing.T) *Rectangle {
	return mustRectangle(t, geom.Pt(0, 0), geom.Pt(2, 2), 0)
}

func sampleShapes(t *testing.T) map[string]Shape {
	return map[string]Shape{
		"rectangle": mustRectangle(t, geom.Pt(1, -2), geom.Pt(4, 1.5), 0),
		"hexagon":   mustRegular(t, geom.Pt(-3, 2), 6, 2, 0),
		"circle":    mustRegular(t, geom.Pt(0, 0), CircleVertices, 1.5, 0),
		"triangle":  mustTriangle(t, geom.Pt(0, 0), geom.Pt(4, 1), geom.Pt(1, 3)),
		"convex":    mustConvex(t, geom.Pt(0, 0), geom.Pt(3, -1), geom.Pt(5, 1), geom.Pt(4, 4), geom.Pt(1, 3)),
	}
}

// Twice the signed area. Negative for clockwise polygons.
func shoelace(vertices []geom.Point) float64 {
	var sum float64
	for i, v := range vertices {
		sum += r2.Cross(v, vertices[geom.CircularIndex(i+1, len(vertices))])
	}
	return sum
}

// Sample points across the padded bounding box of a shape, on a grid.
// The step size is 1/50 of the largest extent.
func samplePoints(s Shape) []geom.Point {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, v := range s.Vertices() {
		minX = math.Min(minX, v.X)
		minY = math.Min(minY, v.Y)
		maxX = math.Max(maxX, v.X)
		maxY = math.Max(maxY, v.Y)
	}
	step := math.Max(maxX-minX, maxY-minY) / 50
	pad := step * 3
	var points []geom.Point
	for x := minX - pad; x <= maxX+pad; x += step {
		for y := minY - pad; y <= maxY+pad; y += step {
			points = append(points, geom.Pt(x, y))
		}
	}
	return points
}

// The smallest signed distance from point to any edge line. Positive means
// inside every edge.
func minSignedDistance(s Shape, point geom.Point) float64 {
	result := math.Inf(1)
	for _, edge := range s.Edges() {
		result = math.Min(result, edge.SignedDistance(point))
	}
	return result
}

func assertPointsInDelta(t *testing.T, expected, actual geom.Point, delta float64) {
	t.Helper()
	assert.InDelta(t, expected.X, actual.X, delta, "X of %v", actual)
	assert.InDelta(t, expected.Y, actual.Y, delta, "Y of %v", actual)
}
