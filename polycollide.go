// Collision resolution for convex polygons in the plane.
//
// Shapes are built from explicit parameters (NewRectangle, NewRegularPolygon,
// NewTriangle, NewConvex). When a shape has moved into another, Resolve works
// out the translation that leaves the two touching instead of overlapping. A
// World keeps a set of bodies and moves them with that resolution applied.
//
// The sub-packages hold the details: geom for lines and segments, shape for the
// polygons and their queries, resolve for the resolver, world for the registry
// and scene for YAML scene files.
package polycollide

import (
	"github.com/osuushi/polycollide/geom"
	"github.com/osuushi/polycollide/resolve"
	"github.com/osuushi/polycollide/shape"
	"github.com/osuushi/polycollide/world"
)

type Point = geom.Point
type Line = geom.Line
type Segment = geom.Segment

type Shape = shape.Shape
type Rectangle = shape.Rectangle
type RegularPolygon = shape.RegularPolygon
type Triangle = shape.Triangle
type Convex = shape.Convex

type Config = resolve.Config
type Resolution = resolve.Resolution

type World = world.World
type Body = world.Body

var (
	ErrDegenerate          = geom.ErrDegenerate
	ErrInvalidShape        = shape.ErrInvalidShape
	ErrImpossibleCollision = resolve.ErrImpossibleCollision
)

func Pt(x, y float64) Point {
	return geom.Pt(x, y)
}

func NewRectangle(center, size Point, rotation float64) (*Rectangle, error) {
	return shape.NewRectangle(center, size, rotation)
}

func NewRegularPolygon(center Point, vertexCount int, radius, rotation float64) (*RegularPolygon, error) {
	return shape.NewRegularPolygon(center, vertexCount, radius, rotation)
}

func NewTriangle(a, b, c Point) (*Triangle, error) {
	return shape.NewTriangle(a, b, c)
}

func NewConvex(points []Point) (*Convex, error) {
	return shape.NewConvex(points)
}

func DefaultConfig() Config {
	return resolve.DefaultConfig()
}

// Resolve finds the translation that moves self, which got where it is from
// pastSelf, out of obstacle so that the two just touch. No shape is modified.
//
// If there is no such translation, the error wraps ErrImpossibleCollision.
func Resolve(self, pastSelf, obstacle Shape) (Resolution, error) {
	return resolve.Default().Resolve(self, pastSelf, obstacle)
}

// ResolveWith is Resolve with a custom configuration.
func ResolveWith(config Config, self, pastSelf, obstacle Shape) (Resolution, error) {
	r, err := resolve.New(config)
	if err != nil {
		return Resolution{}, err
	}
	return r.Resolve(self, pastSelf, obstacle)
}

// CheckSolution reports whether translating self by offset leaves it touching
// obstacle without overlapping it.
func CheckSolution(self, obstacle Shape, offset Point) (ok bool, err error) {
	defer func() {
		recoveredErr := resolve.HandleResolvePanicRecover(recover())
		if recoveredErr != nil {
			ok = false
			err = recoveredErr
		}
	}()
	return resolve.Default().CheckSolution(self, obstacle, offset), nil
}

// NewWorld creates an empty world whose moves are resolved with config.
func NewWorld(config Config) (*World, error) {
	r, err := resolve.New(config)
	if err != nil {
		return nil, err
	}
	return world.New(r), nil
}
