package scene

import (
	"math"
	"path/filepath"

	"github.com/osuushi/polycollide/geom"
	"github.com/osuushi/polycollide/shape"
	"github.com/pkg/errors"
)

// ShapeSpec describes a shape the way a host engine's collider would: a kind
// plus the parameters that kind needs. Fields a kind doesn't use are ignored.
type ShapeSpec struct {
	ID   string `yaml:"id" json:"id,omitempty"`
	Kind string `yaml:"kind" json:"kind" jsonschema:"required,enum=rectangle,enum=regular,enum=circle,enum=triangle,enum=convex,enum=svg"`

	// Center places rectangles, regular polygons and circles. For the point
	// based kinds it moves the shape's center there, and when absent the points
	// are taken as they are.
	Center *Vec `yaml:"center" json:"center,omitempty"`
	// Rotation in degrees, counterclockwise
	Rotation float64 `yaml:"rotation" json:"rotation,omitempty"`

	Size     Vec     `yaml:"size" json:"size,omitempty" jsonschema:"description=Rectangle width and height"`
	Radius   float64 `yaml:"radius" json:"radius,omitempty" jsonschema:"description=Circumradius of regular polygons and circles"`
	Vertices int     `yaml:"vertices" json:"vertices,omitempty" jsonschema:"description=Vertex count of regular polygons (clamped to 3..60)"`
	Points   []Vec   `yaml:"points" json:"points,omitempty" jsonschema:"description=Vertices of triangles and convex polygons"`
	File     string  `yaml:"file" json:"file,omitempty" jsonschema:"description=SVG file holding a polygon element"`
}

func (s ShapeSpec) center() geom.Point {
	if s.Center == nil {
		return geom.Point{}
	}
	return s.Center.Point()
}

func (s ShapeSpec) points() []geom.Point {
	points := make([]geom.Point, len(s.Points))
	for i, p := range s.Points {
		points[i] = p.Point()
	}
	return points
}

// Build creates the shape. Relative SVG paths are resolved against dir.
//
// Regular polygons are forgiving in the way collider components are: the
// vertex count is clamped into range and the radius raised to the minimum.
func (s ShapeSpec) Build(dir string) (shape.Shape, error) {
	var result shape.Shape
	var err error

	switch s.Kind {
	case "rectangle":
		r, err := shape.NewRectangle(s.center(), s.Size.Point(), s.Rotation)
		if err != nil {
			return nil, err
		}
		return r, nil

	case "regular":
		n := s.Vertices
		if n < shape.MinVertices {
			n = shape.MinVertices
		}
		if n > shape.MaxVertices {
			n = shape.MaxVertices
		}
		return s.regular(n)

	case "circle":
		return s.regular(shape.CircleVertices)

	case "triangle":
		if len(s.Points) != 3 {
			return nil, errors.Wrapf(shape.ErrInvalidShape, "triangle needs 3 points, got %d", len(s.Points))
		}
		p := s.points()
		result, err = shape.NewTriangle(p[0], p[1], p[2])

	case "convex":
		result, err = shape.NewConvex(s.points())

	case "svg":
		if s.File == "" {
			return nil, errors.New("svg shape without a file")
		}
		path := s.File
		if !filepath.IsAbs(path) {
			path = filepath.Join(dir, path)
		}
		result, err = LoadSVG(path)

	default:
		return nil, errors.Errorf("unknown shape kind %q", s.Kind)
	}

	if err != nil {
		return nil, err
	}
	if s.Center != nil {
		result.MoveTo(s.Center.Point())
	}
	if s.Rotation != 0 {
		result.Rotate(s.Rotation)
	}
	return result, nil
}

func (s ShapeSpec) regular(n int) (shape.Shape, error) {
	r, err := shape.NewRegularPolygon(s.center(), n, math.Max(s.Radius, shape.MinRadius), s.Rotation)
	if err != nil {
		return nil, err
	}
	return r, nil
}
