package shape

import (
	"math"

	"github.com/osuushi/polycollide/geom"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/spatial/r2"
)

// Rectangle is an oriented box. At rotation 0 its vertices are, in order,
// top left, top right, bottom right and bottom left.
type Rectangle struct {
	Polygon
	size geom.Point
}

func NewRectangle(center, size geom.Point, rotation float64) (*Rectangle, error) {
	if !(size.X > 0 && size.Y > 0) {
		return nil, errors.Wrapf(ErrInvalidShape, "rectangle of size %v", size)
	}
	hx, hy := size.X/2, size.Y/2
	vertices := []geom.Point{
		{X: center.X - hx, Y: center.Y + hy},
		{X: center.X + hx, Y: center.Y + hy},
		{X: center.X + hx, Y: center.Y - hy},
		{X: center.X - hx, Y: center.Y - hy},
	}
	for i, v := range vertices {
		vertices[i] = geom.RotateAround(v, center, rotation)
	}
	r := &Rectangle{size: size}
	r.init(center, rotation, vertices, size.X*size.Y)
	return r, nil
}

func (r *Rectangle) Kind() string {
	return "rectangle"
}

func (r *Rectangle) Size() geom.Point {
	return r.size
}

func (r *Rectangle) Clone() Shape {
	c := *r
	c.Polygon = r.Polygon.clone()
	return &c
}

// Contains works in the rectangle's own frame, where the test is two
// comparisons. It agrees with the general edge test.
func (r *Rectangle) Contains(point geom.Point) bool {
	local := r2.Sub(geom.RotateAround(point, r.center, -r.rotation), r.center)
	return math.Abs(local.X) <= r.size.X/2+geom.Epsilon &&
		math.Abs(local.Y) <= r.size.Y/2+geom.Epsilon
}
