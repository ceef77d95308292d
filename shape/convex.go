package shape

import (
	"math"
	"sort"

	"github.com/osuushi/polycollide/geom"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/spatial/r2"
)

// Convex is any convex polygon given by its vertices. The center is the mean of
// the vertices.
type Convex struct {
	Polygon
}

// NewConvex sorts the points clockwise and checks that they form a convex
// polygon with a non-zero area.
func NewConvex(points []geom.Point) (*Convex, error) {
	if len(points) < MinVertices {
		return nil, errors.Wrapf(ErrInvalidShape, "convex polygon with %d points", len(points))
	}
	center := geom.Centroid(points)
	vertices := append([]geom.Point(nil), points...)
	sort.SliceStable(vertices, func(i, j int) bool {
		a := r2.Sub(vertices[i], center)
		b := r2.Sub(vertices[j], center)
		return math.Atan2(a.Y, a.X) > math.Atan2(b.Y, b.X)
	})

	n := len(vertices)
	var doubleArea float64
	for i, v := range vertices {
		next := vertices[geom.CircularIndex(i+1, n)]
		after := vertices[geom.CircularIndex(i+2, n)]
		if geom.EqualPoints(v, next) {
			return nil, errors.Wrapf(ErrInvalidShape, "repeated vertex %v", v)
		}
		// Clockwise turns have a negative cross product
		if r2.Cross(r2.Sub(next, v), r2.Sub(after, next)) > minDoubleArea {
			return nil, errors.Wrapf(ErrInvalidShape, "polygon is not convex at %v", next)
		}
		doubleArea += r2.Cross(v, next)
	}
	if -doubleArea < minDoubleArea {
		return nil, errors.Wrap(ErrInvalidShape, "polygon has no area")
	}

	c := &Convex{}
	c.init(center, 0, vertices, -doubleArea/2)
	return c, nil
}

func (c *Convex) Kind() string {
	return "convex"
}

func (c *Convex) Clone() Shape {
	clone := *c
	clone.Polygon = c.Polygon.clone()
	return &clone
}
