package geom

import (
	"fmt"
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/spatial/r2"
)

// Segment is the part of its Line between A and B.
//
// Containment uses the projection test: p is on the segment when it is within
// Epsilon of the line and its projection lands between the endpoints, again
// with Epsilon of slack at either end.
type Segment struct {
	Line
}

func NewSegment(a, b Point) (Segment, error) {
	s := Seg(a, b)
	if s.IsDegenerate() {
		return Segment{}, errors.Wrapf(ErrDegenerate, "segment from %v to %v", a, b)
	}
	return s, nil
}

// Seg builds a segment without checking for degeneracy. Polygon edges use it,
// since shape constructors already rule out coincident vertices.
func Seg(a, b Point) Segment {
	return Segment{Line{A: a, B: b}}
}

func (s Segment) Length() float64 {
	return r2.Norm(s.Direction())
}

func (s Segment) Midpoint() Point {
	return r2.Scale(0.5, r2.Add(s.A, s.B))
}

// ToLine drops the bounds.
func (s Segment) ToLine() Line {
	return s.Line
}

func (s Segment) Contains(p Point) bool {
	if s.Line.Distance(p) > Epsilon {
		return false
	}
	length := s.Length()
	along := r2.Dot(r2.Sub(p, s.A), s.Direction()) / length
	return along >= -Epsilon && along <= length+Epsilon
}

// ContainsSegment reports whether other lies along s, between its endpoints.
func (s Segment) ContainsSegment(other Segment) bool {
	return s.Contains(other.A) && s.Contains(other.B)
}

// PerpendicularPoint is the closest point of the segment to p: the foot of the
// perpendicular, clamped to the endpoints.
func (s Segment) PerpendicularPoint(p Point) Point {
	t := math.Max(0, math.Min(1, s.projection(p)))
	return r2.Add(s.A, r2.Scale(t, s.Direction()))
}

// Distance from p to the closest point of the segment.
func (s Segment) Distance(p Point) float64 {
	return Distance(p, s.PerpendicularPoint(p))
}

func (s Segment) IntersectionPoint(other Segment) (Point, bool) {
	p, ok := s.Line.IntersectionPoint(other.Line)
	if !ok || !s.Contains(p) || !other.Contains(p) {
		return Point{}, false
	}
	return p, true
}

func (s Segment) Intersects(other Segment) bool {
	_, ok := s.IntersectionPoint(other)
	return ok
}

// IntersectLine intersects the segment with an unbounded line.
func (s Segment) IntersectLine(l Line) (Point, bool) {
	p, ok := s.Line.IntersectionPoint(l)
	if !ok || !s.Contains(p) {
		return Point{}, false
	}
	return p, true
}

func (s Segment) ClosestEndPoint(p Point) Point {
	if Distance(p, s.A) <= Distance(p, s.B) {
		return s.A
	}
	return s.B
}

func (s Segment) FurthestEndPoint(p Point) Point {
	if Distance(p, s.A) > Distance(p, s.B) {
		return s.A
	}
	return s.B
}

// Scale stretches the segment around its midpoint.
func (s Segment) Scale(factor float64) Segment {
	mid := s.Midpoint()
	half := r2.Scale(factor/2, s.Direction())
	return Seg(r2.Sub(mid, half), r2.Add(mid, half))
}

func (s Segment) Reverse() Segment {
	return Seg(s.B, s.A)
}

func (s Segment) Translate(delta Point) Segment {
	return Segment{s.Line.Translate(delta)}
}

func (s Segment) Rotate(pivot Point, degrees float64) Segment {
	return Segment{s.Line.Rotate(pivot, degrees)}
}

func (s Segment) String() string {
	return fmt.Sprintf("Segment(%.4g,%.4g → %.4g,%.4g)", s.A.X, s.A.Y, s.B.X, s.B.Y)
}

// ClosestPoints finds the closest pair of points between two segments, the
// first on s1 and the second on s2. Crossing segments meet at their
// intersection. Otherwise, in the plane, one of the pair is always an endpoint.
func ClosestPoints(s1, s2 Segment) (Point, Point) {
	if p, ok := s1.IntersectionPoint(s2); ok {
		return p, p
	}
	candidates := [][2]Point{
		{s1.A, s2.PerpendicularPoint(s1.A)},
		{s1.B, s2.PerpendicularPoint(s1.B)},
		{s1.PerpendicularPoint(s2.A), s2.A},
		{s1.PerpendicularPoint(s2.B), s2.B},
	}
	best := candidates[0]
	for _, c := range candidates[1:] {
		if Distance(c[0], c[1]) < Distance(best[0], best[1]) {
			best = c
		}
	}
	return best[0], best[1]
}

// SegmentDistance is the length of the gap between two segments, zero if they
// touch.
func SegmentDistance(s1, s2 Segment) float64 {
	p, q := ClosestPoints(s1, s2)
	return Distance(p, q)
}
