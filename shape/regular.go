package shape

import (
	"math"

	"github.com/osuushi/polycollide/geom"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/spatial/r2"
)

const (
	MinVertices = 3
	MaxVertices = 60
	MinRadius   = 0.001

	// CircleVertices is how many vertices approximate a circle.
	CircleVertices = 32
)

// RegularPolygon has vertexCount vertices evenly spaced on a circle. With
// rotation 0, the first vertex is straight above the center.
type RegularPolygon struct {
	Polygon
	radius float64
}

func NewRegularPolygon(center geom.Point, vertexCount int, radius, rotation float64) (*RegularPolygon, error) {
	if vertexCount < MinVertices {
		return nil, errors.Wrapf(ErrInvalidShape, "regular polygon with %d vertices", vertexCount)
	}
	if !(radius > 0) {
		return nil, errors.Wrapf(ErrInvalidShape, "regular polygon of radius %v", radius)
	}

	// Walking the angle downwards gives clockwise order
	step := 360 / float64(vertexCount)
	vertices := make([]geom.Point, vertexCount)
	for k := range vertices {
		angle := geom.Radians(90 + rotation - float64(k)*step)
		vertices[k] = r2.Add(center, geom.Pt(radius*math.Cos(angle), radius*math.Sin(angle)))
	}

	n := float64(vertexCount)
	area := 0.5 * n * radius * radius * math.Sin(2*math.Pi/n)

	r := &RegularPolygon{radius: radius}
	r.init(center, rotation, vertices, area)
	return r, nil
}

// NewCircle approximates a circle with CircleVertices vertices.
func NewCircle(center geom.Point, radius float64) (*RegularPolygon, error) {
	return NewRegularPolygon(center, CircleVertices, radius, 0)
}

func (r *RegularPolygon) Kind() string {
	return "regular"
}

func (r *RegularPolygon) Radius() float64 {
	return r.radius
}

// Angle is the interior angle at every vertex, in degrees.
func (r *RegularPolygon) Angle() float64 {
	n := float64(len(r.vertices))
	return (n - 2) * 180 / n
}

// Apothem is the distance from the center to the middle of an edge.
func (r *RegularPolygon) Apothem() float64 {
	return r.radius * math.Cos(math.Pi/float64(len(r.vertices)))
}

func (r *RegularPolygon) Clone() Shape {
	c := *r
	c.Polygon = r.Polygon.clone()
	return &c
}
