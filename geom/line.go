package geom

import (
	"fmt"
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/spatial/r2"
)

// ErrDegenerate is returned (or panicked with, from methods called on a zero
// value) when two coincident points are asked to define a line or segment.
var ErrDegenerate = errors.New("degenerate geometry")

// Shorter than this, a direction vector is treated as zero.
const minLength = 1e-12

// Lines whose directions make an angle with a sine below this are parallel.
const parallelTolerance = 1e-9

// Line is the infinite line through A and B, directed from A to B.
//
// The direction matters for Situation: points on the right hand side of A→B are
// positive. Polygons wind clockwise, so the interior of a polygon is on the
// positive side of every edge.
type Line struct {
	A, B Point
}

func NewLine(a, b Point) (Line, error) {
	l := Line{A: a, B: b}
	if l.IsDegenerate() {
		return Line{}, errors.Wrapf(ErrDegenerate, "line through %v and %v", a, b)
	}
	return l, nil
}

// Equation holds the coefficients of the implicit form Ax + By + C = 0.
type Equation struct {
	A, B, C float64
}

func (e Equation) At(p Point) float64 {
	return e.A*p.X + e.B*p.Y + e.C
}

// SlopeIntercept is the y = Mx + B form. Vertical lines have none.
type SlopeIntercept struct {
	M, B float64
}

func (s SlopeIntercept) Y(x float64) float64 {
	return s.M*x + s.B
}

func (l Line) Direction() Point {
	return r2.Sub(l.B, l.A)
}

func (l Line) IsDegenerate() bool {
	return r2.Norm(l.Direction()) < minLength
}

func (l Line) mustBeProper() {
	if l.IsDegenerate() {
		panic(errors.Wrapf(ErrDegenerate, "line through %v and %v", l.A, l.B))
	}
}

func (l Line) Equation() Equation {
	d := l.Direction()
	a := d.Y
	b := -d.X
	return Equation{A: a, B: b, C: -(a*l.A.X + b*l.A.Y)}
}

func (l Line) SlopeIntercept() (SlopeIntercept, bool) {
	d := l.Direction()
	if math.Abs(d.X) < minLength {
		return SlopeIntercept{}, false
	}
	m := d.Y / d.X
	return SlopeIntercept{M: m, B: l.A.Y - m*l.A.X}, true
}

// Situation is the implicit equation evaluated at p. Positive is the right hand
// side of A→B, negative the left, and zero is on the line.
func (l Line) Situation(p Point) float64 {
	return l.Equation().At(p)
}

// SignedDistance is Situation scaled to world units.
func (l Line) SignedDistance(p Point) float64 {
	l.mustBeProper()
	return l.Situation(p) / r2.Norm(l.Direction())
}

func (l Line) Distance(p Point) float64 {
	return math.Abs(l.SignedDistance(p))
}

func (l Line) Contains(p Point) bool {
	return l.Distance(p) <= Epsilon
}

// Normal is the unit vector perpendicular to the line, pointing to its positive
// (right hand) side.
func (l Line) Normal() Point {
	l.mustBeProper()
	d := r2.Unit(l.Direction())
	return Point{X: d.Y, Y: -d.X}
}

func (l Line) IsParallel(other Line) bool {
	l.mustBeProper()
	other.mustBeProper()
	u := r2.Unit(l.Direction())
	v := r2.Unit(other.Direction())
	return math.Abs(r2.Cross(u, v)) < parallelTolerance
}

// IntersectionPoint solves the two implicit equations. Parallel lines, including
// coincident ones, have no single intersection and report false.
func (l Line) IntersectionPoint(other Line) (Point, bool) {
	if l.IsParallel(other) {
		return Point{}, false
	}
	e1 := l.Equation()
	e2 := other.Equation()
	det := e1.A*e2.B - e2.A*e1.B
	x := (e1.B*e2.C - e2.B*e1.C) / det
	y := (e2.A*e1.C - e1.A*e2.C) / det
	return Point{X: x, Y: y}, true
}

// PerpendicularPoint is the foot of the perpendicular dropped from p.
func (l Line) PerpendicularPoint(p Point) Point {
	return r2.Add(l.A, r2.Scale(l.projection(p), l.Direction()))
}

// projection gives the parameter t of p's foot along A + t(B - A).
func (l Line) projection(p Point) float64 {
	l.mustBeProper()
	d := l.Direction()
	return r2.Dot(r2.Sub(p, l.A), d) / r2.Norm2(d)
}

func (l Line) Translate(delta Point) Line {
	return Line{A: r2.Add(l.A, delta), B: r2.Add(l.B, delta)}
}

func (l Line) Rotate(pivot Point, degrees float64) Line {
	return Line{A: RotateAround(l.A, pivot, degrees), B: RotateAround(l.B, pivot, degrees)}
}

func (l Line) String() string {
	return fmt.Sprintf("Line(%.4g,%.4g → %.4g,%.4g)", l.A.X, l.A.Y, l.B.X, l.B.Y)
}
