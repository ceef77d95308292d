// Package shape models convex polygons: clockwise vertices around a center, the
// edges between them and the outward normals of those edges, plus the
// containment, intersection and feature queries the collision resolver is
// built from.
package shape

import (
	"github.com/osuushi/polycollide/geom"
	"github.com/pkg/errors"
)

// ErrInvalidShape is returned by constructors given parameters that cannot
// describe a convex polygon with a non-zero area.
var ErrInvalidShape = errors.New("invalid shape")

// Shape is the contract shared by every convex polygon.
//
// Vertices always wind clockwise around Center, and Edges[i] runs from
// Vertices[i] to Vertices[(i+1) mod n]. Because of the winding, the interior is
// on the positive (right hand) side of every edge. Translate, Rotate, MoveTo and
// SetRotation recompute vertices, edges and normals before returning.
//
// Implementations embed Polygon, which provides everything except Kind and
// Clone.
type Shape interface {
	Kind() string
	Center() geom.Point
	Rotation() float64
	Vertices() []geom.Point
	Edges() []geom.Segment
	Normals() []geom.Segment
	Area() float64

	Contains(p geom.Point) bool
	ContainsSegment(s geom.Segment) bool
	ContainsPolygon(other Shape) bool
	ContainsAll(points []geom.Point) bool
	ContainsInEdge(p geom.Point) bool
	EdgeContaining(p geom.Point) (geom.Segment, bool)
	IsVertex(p geom.Point) bool
	VertexIndex(p geom.Point) int

	Intersects(other Shape) bool
	IntersectsLine(l geom.Line) bool
	IntersectsSegment(s geom.Segment) bool
	IntersectionPoints(other Shape, precision int) []geom.Point
	IntersectionPointsLine(l geom.Line) []geom.Point
	IntersectionPointsSegment(s geom.Segment) []geom.Point
	IntersectingEdges(s geom.Segment) []geom.Segment
	IntersectingEdgesLine(l geom.Line) []geom.Segment
	EdgesInside(other Shape, includePartial bool) []geom.Segment
	OverlappingEdges(other Shape) []geom.Segment
	AnyEdgeOverlaps(other Shape) bool
	AllEdgesOverlap(other Shape) bool
	VerticesInside(other Shape) []geom.Point
	DeepestVertexIn(other Shape) (geom.Point, bool)

	ClosestPointTo(p geom.Point) geom.Point
	ClosestPointToSegment(s geom.Segment) geom.Point
	ClosestPointToPolygon(other Shape) geom.Point
	FurthestPointFrom(p geom.Point) geom.Point
	FurthestPointFromSegment(s geom.Segment) geom.Point
	FurthestPointFromPolygon(other Shape) geom.Point
	ClosestVertexTo(p geom.Point) geom.Point
	ClosestVertexToSegment(s geom.Segment) geom.Point
	ClosestVertexToPolygon(other Shape) geom.Point
	FurthestVertexFrom(p geom.Point) geom.Point
	FurthestVertexFromSegment(s geom.Segment) geom.Point
	FurthestVertexFromPolygon(other Shape) geom.Point
	ClosestEdgeTo(p geom.Point) geom.Segment
	ClosestEdgeToSegment(s geom.Segment) geom.Segment
	ClosestEdgeToPolygon(other Shape) geom.Segment
	FurthestEdgeFrom(p geom.Point) geom.Segment
	FurthestEdgeFromSegment(s geom.Segment) geom.Segment
	FurthestEdgeFromPolygon(other Shape) geom.Segment
	PerpendicularPointsTo(p geom.Point) []geom.Point
	ClosestPerpendicularPointTo(p geom.Point) geom.Point
	EdgeFacingTowards(p geom.Point) geom.Segment
	EdgeFacingTowardsPolygon(other Shape) geom.Segment
	HiddenEdgeFrom(p geom.Point) geom.Segment
	HiddenEdgeFromPolygon(other Shape) geom.Segment

	Translate(delta geom.Point)
	Rotate(degrees float64)
	MoveTo(p geom.Point)
	SetRotation(degrees float64)

	// Clone returns an independent copy of the same concrete type. Clones are
	// used for speculative "what if it were here" queries.
	Clone() Shape
}

// Compile time checks
var (
	_ Shape = (*Rectangle)(nil)
	_ Shape = (*RegularPolygon)(nil)
	_ Shape = (*Triangle)(nil)
	_ Shape = (*Convex)(nil)
)
