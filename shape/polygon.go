package shape

import (
	"fmt"
	"strings"

	"github.com/osuushi/polycollide/geom"
	"gonum.org/v1/gonum/spatial/r2"
)

// Polygon is the body every concrete shape embeds. It holds the vertex list and
// the data derived from it, and implements the general convex polygon
// algorithms. The concrete shapes only decide where the vertices go.
type Polygon struct {
	center   geom.Point
	rotation float64
	vertices []geom.Point
	edges    []geom.Segment
	normals  []geom.Segment
	area     float64
}

// init takes ownership of vertices, which must already wind clockwise.
func (p *Polygon) init(center geom.Point, rotation float64, vertices []geom.Point, area float64) {
	p.center = center
	p.rotation = rotation
	p.vertices = vertices
	p.area = area
	p.derive()
}

// derive rebuilds edges and normals from the vertices.
func (p *Polygon) derive() {
	n := len(p.vertices)
	p.edges = make([]geom.Segment, n)
	p.normals = make([]geom.Segment, n)
	for i, v := range p.vertices {
		edge := geom.Seg(v, p.vertices[geom.CircularIndex(i+1, n)])
		p.edges[i] = edge
		p.normals[i] = outwardNormal(edge, p.center)
	}
}

// The normal is a unit segment from the edge midpoint. Of the two candidates,
// the outward one is whichever ends further from the center.
func outwardNormal(edge geom.Segment, center geom.Point) geom.Segment {
	mid := edge.Midpoint()
	n := edge.Normal()
	out := r2.Sub(mid, n)
	in := r2.Add(mid, n)
	if geom.Distance(in, center) > geom.Distance(out, center) {
		out = in
	}
	return geom.Seg(mid, out)
}

// clone deep copies the body.
func (p *Polygon) clone() Polygon {
	c := *p
	c.vertices = append([]geom.Point(nil), p.vertices...)
	c.edges = append([]geom.Segment(nil), p.edges...)
	c.normals = append([]geom.Segment(nil), p.normals...)
	return c
}

func (p *Polygon) Center() geom.Point {
	return p.center
}

// Rotation in degrees, counterclockwise.
func (p *Polygon) Rotation() float64 {
	return p.rotation
}

func (p *Polygon) Vertices() []geom.Point {
	return append([]geom.Point(nil), p.vertices...)
}

func (p *Polygon) Edges() []geom.Segment {
	return append([]geom.Segment(nil), p.edges...)
}

func (p *Polygon) Normals() []geom.Segment {
	return append([]geom.Segment(nil), p.normals...)
}

func (p *Polygon) Area() float64 {
	return p.area
}

func (p *Polygon) VertexCount() int {
	return len(p.vertices)
}

// Transforms

func (p *Polygon) Translate(delta geom.Point) {
	p.center = r2.Add(p.center, delta)
	for i, v := range p.vertices {
		p.vertices[i] = r2.Add(v, delta)
	}
	p.derive()
}

// Rotate turns the polygon counterclockwise around its center. Rotation
// preserves the winding, so the vertices keep their indexes.
func (p *Polygon) Rotate(degrees float64) {
	p.rotation += degrees
	for i, v := range p.vertices {
		p.vertices[i] = geom.RotateAround(v, p.center, degrees)
	}
	p.derive()
}

func (p *Polygon) MoveTo(position geom.Point) {
	p.Translate(r2.Sub(position, p.center))
}

func (p *Polygon) SetRotation(degrees float64) {
	p.Rotate(degrees - p.rotation)
}

// Containment

// Contains reports whether point is inside or on the boundary: on the positive
// side of every edge, give or take Epsilon.
func (p *Polygon) Contains(point geom.Point) bool {
	for _, edge := range p.edges {
		if edge.SignedDistance(point) < -geom.Epsilon {
			return false
		}
	}
	return true
}

// A convex polygon contains a segment iff it contains both ends.
func (p *Polygon) ContainsSegment(s geom.Segment) bool {
	return p.Contains(s.A) && p.Contains(s.B)
}

func (p *Polygon) ContainsPolygon(other Shape) bool {
	return p.ContainsAll(other.Vertices())
}

func (p *Polygon) ContainsAll(points []geom.Point) bool {
	for _, point := range points {
		if !p.Contains(point) {
			return false
		}
	}
	return true
}

// ContainsInEdge reports whether point is on the boundary.
func (p *Polygon) ContainsInEdge(point geom.Point) bool {
	_, ok := p.EdgeContaining(point)
	return ok
}

func (p *Polygon) EdgeContaining(point geom.Point) (geom.Segment, bool) {
	for _, edge := range p.edges {
		if edge.Contains(point) {
			return edge, true
		}
	}
	return geom.Segment{}, false
}

func (p *Polygon) IsVertex(point geom.Point) bool {
	return p.VertexIndex(point) >= 0
}

// VertexIndex finds point in the vertex list, preferring an exact match over
// one within Epsilon. It returns -1 if point is not a vertex.
func (p *Polygon) VertexIndex(point geom.Point) int {
	for i, v := range p.vertices {
		if v == point {
			return i
		}
	}
	for i, v := range p.vertices {
		if geom.EqualPoints(v, point) {
			return i
		}
	}
	return -1
}

// VerticesInside lists the vertices of p that other contains.
func (p *Polygon) VerticesInside(other Shape) []geom.Point {
	var result []geom.Point
	for _, v := range p.vertices {
		if other.Contains(v) {
			result = append(result, v)
		}
	}
	return result
}

// DeepestVertexIn finds the vertex inside other that is furthest from other's
// boundary. This is the worst penetration point.
func (p *Polygon) DeepestVertexIn(other Shape) (geom.Point, bool) {
	var deepest geom.Point
	found := false
	depth := -1.0
	for _, v := range p.VerticesInside(other) {
		d := geom.Distance(v, other.ClosestPerpendicularPointTo(v))
		if d > depth {
			deepest, depth, found = v, d, true
		}
	}
	return deepest, found
}

// EdgesInside lists the edges of p that lie inside other. With includePartial,
// edges with only one end inside, or that cross other's boundary, count too.
func (p *Polygon) EdgesInside(other Shape, includePartial bool) []geom.Segment {
	var result []geom.Segment
	for _, edge := range p.edges {
		inA, inB := other.Contains(edge.A), other.Contains(edge.B)
		switch {
		case inA && inB:
			result = append(result, edge)
		case includePartial && (inA || inB || other.IntersectsSegment(edge)):
			result = append(result, edge)
		}
	}
	return result
}

// Intersection

// Intersects reports whether the two shapes share any point: an edge of one
// touches or crosses an edge of the other, or one is inside the other.
func (p *Polygon) Intersects(other Shape) bool {
	otherEdges := other.Edges()
	for _, edge := range p.edges {
		for _, otherEdge := range otherEdges {
			if edge.Intersects(otherEdge) {
				return true
			}
		}
	}
	return other.Contains(p.vertices[0]) || p.Contains(other.Vertices()[0])
}

// IntersectsLine reports whether the line crosses or touches the boundary.
func (p *Polygon) IntersectsLine(l geom.Line) bool {
	return len(p.IntersectingEdgesLine(l)) > 0
}

// IntersectsSegment reports whether the segment crosses or touches the
// boundary. A segment entirely inside does not intersect.
func (p *Polygon) IntersectsSegment(s geom.Segment) bool {
	return len(p.IntersectingEdges(s)) > 0
}

// IntersectionPoints collects the points where the boundaries meet. Points that
// round to the same value at precision decimal places are collapsed, and the
// rounded values are returned.
func (p *Polygon) IntersectionPoints(other Shape, precision int) []geom.Point {
	var points []geom.Point
	otherEdges := other.Edges()
	for _, edge := range p.edges {
		for _, otherEdge := range otherEdges {
			if point, ok := edge.IntersectionPoint(otherEdge); ok {
				points = append(points, point)
			}
		}
	}
	return geom.Dedup(points, precision)
}

func (p *Polygon) IntersectionPointsLine(l geom.Line) []geom.Point {
	var points []geom.Point
	for _, edge := range p.edges {
		if point, ok := edge.IntersectLine(l); ok {
			points = append(points, point)
		}
	}
	return geom.Dedup(points, geom.DefaultPrecision)
}

func (p *Polygon) IntersectionPointsSegment(s geom.Segment) []geom.Point {
	var points []geom.Point
	for _, edge := range p.edges {
		if point, ok := edge.IntersectionPoint(s); ok {
			points = append(points, point)
		}
	}
	return geom.Dedup(points, geom.DefaultPrecision)
}

// IntersectingEdges lists the edges touched or crossed by s, in vertex order.
func (p *Polygon) IntersectingEdges(s geom.Segment) []geom.Segment {
	var result []geom.Segment
	for _, edge := range p.edges {
		if edge.Intersects(s) {
			result = append(result, edge)
		}
	}
	return result
}

func (p *Polygon) IntersectingEdgesLine(l geom.Line) []geom.Segment {
	var result []geom.Segment
	for _, edge := range p.edges {
		if _, ok := edge.IntersectLine(l); ok {
			result = append(result, edge)
		}
	}
	return result
}

// Overlap. An edge of other overlaps an edge of p when it lies along it,
// within the edge's endpoints.

// OverlappingEdges lists the edges of p that some edge of other overlaps. An
// edge is listed once for each edge of other lying along it.
func (p *Polygon) OverlappingEdges(other Shape) []geom.Segment {
	var result []geom.Segment
	otherEdges := other.Edges()
	for _, edge := range p.edges {
		for _, otherEdge := range otherEdges {
			if edge.ContainsSegment(otherEdge) {
				result = append(result, edge)
			}
		}
	}
	return result
}

// AnyEdgeOverlaps reports whether at least one edge of other lies along an edge
// of p.
func (p *Polygon) AnyEdgeOverlaps(other Shape) bool {
	for _, otherEdge := range other.Edges() {
		if p.overlapped(otherEdge) {
			return true
		}
	}
	return false
}

// AllEdgesOverlap reports whether every edge of other lies along some edge of
// p.
func (p *Polygon) AllEdgesOverlap(other Shape) bool {
	for _, otherEdge := range other.Edges() {
		if !p.overlapped(otherEdge) {
			return false
		}
	}
	return true
}

func (p *Polygon) overlapped(s geom.Segment) bool {
	for _, edge := range p.edges {
		if edge.ContainsSegment(s) {
			return true
		}
	}
	return false
}

func (p *Polygon) String() string {
	var sb strings.Builder
	for i, v := range p.vertices {
		if i > 0 {
			sb.WriteString(" ")
		}
		fmt.Fprintf(&sb, "%.4g,%.4g", v.X, v.Y)
	}
	return fmt.Sprintf("Polygon{center: %.4g,%.4g rotation: %.4g° vertices: %s}",
		p.center.X, p.center.Y, p.rotation, sb.String())
}
