package shape

import (
	"math"

	"github.com/osuushi/polycollide/geom"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/spatial/r2"
)

// Twice the area below which three points are considered collinear.
const minDoubleArea = 1e-9

// Triangle is centered on its centroid.
type Triangle struct {
	Polygon
}

func NewTriangle(a, b, c geom.Point) (*Triangle, error) {
	cross := r2.Cross(r2.Sub(b, a), r2.Sub(c, a))
	if math.Abs(cross) < minDoubleArea {
		return nil, errors.Wrapf(ErrInvalidShape, "triangle %v %v %v is degenerate", a, b, c)
	}
	// Positive cross product means counterclockwise
	if cross > 0 {
		b, c = c, b
	}
	vertices := []geom.Point{a, b, c}
	t := &Triangle{}
	t.init(geom.Centroid(vertices), 0, vertices, math.Abs(cross)/2)
	return t, nil
}

// NewTriangleSAS builds a triangle from a vertex, the lengths of the two sides
// leaving it, and the angle between them in degrees. The side of length ab
// points along +X.
func NewTriangleSAS(a geom.Point, ab, ac, alpha float64) (*Triangle, error) {
	if !(ab > 0 && ac > 0 && alpha > 0 && alpha < 180) {
		return nil, errors.Wrapf(ErrInvalidShape, "triangle with sides %v, %v and angle %v°", ab, ac, alpha)
	}
	rad := geom.Radians(alpha)
	b := r2.Add(a, geom.Pt(ab, 0))
	c := r2.Add(a, geom.Pt(ac*math.Cos(rad), ac*math.Sin(rad)))
	return NewTriangle(a, b, c)
}

func (t *Triangle) Kind() string {
	return "triangle"
}

func (t *Triangle) Clone() Shape {
	c := *t
	c.Polygon = t.Polygon.clone()
	return &c
}

// Angles gives the interior angle at each vertex, in degrees, indexed like
// Vertices.
func (t *Triangle) Angles() [3]float64 {
	var angles [3]float64
	for i, v := range t.vertices {
		prev := t.vertices[geom.CircularIndex(i-1, 3)]
		next := t.vertices[geom.CircularIndex(i+1, 3)]
		angles[i] = geom.AngleBetween(r2.Sub(prev, v), r2.Sub(next, v))
	}
	return angles
}

// Heights gives, for each vertex, the segment from it to the foot of the
// perpendicular on the opposite side's line.
//
//	      v0
//	      /|\
//	     / | \
//	    /  |  \
//	  v2───┴───v1
func (t *Triangle) Heights() [3]geom.Segment {
	var heights [3]geom.Segment
	for i, v := range t.vertices {
		opposite := t.edges[geom.CircularIndex(i+1, 3)]
		heights[i] = geom.Seg(v, opposite.Line.PerpendicularPoint(v))
	}
	return heights
}
