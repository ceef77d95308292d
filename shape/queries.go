package shape

import (
	"math"

	"github.com/osuushi/polycollide/geom"
	"gonum.org/v1/gonum/spatial/r2"
)

// Feature queries. Each picks a vertex, an edge or a boundary point of p by
// minimizing or maximizing a distance. Ties go to the lowest index.

func (p *Polygon) pickVertex(score func(v geom.Point) float64, furthest bool) geom.Point {
	best := p.vertices[0]
	bestScore := score(best)
	for _, v := range p.vertices[1:] {
		s := score(v)
		if (furthest && s > bestScore) || (!furthest && s < bestScore) {
			best, bestScore = v, s
		}
	}
	return best
}

func (p *Polygon) pickEdge(score func(e geom.Segment) float64, furthest bool) geom.Segment {
	best := p.edges[0]
	bestScore := score(best)
	for _, e := range p.edges[1:] {
		s := score(e)
		if (furthest && s > bestScore) || (!furthest && s < bestScore) {
			best, bestScore = e, s
		}
	}
	return best
}

// distanceToShape is the distance from point to other's boundary, negated when
// the point is inside.
func distanceToShape(point geom.Point, other Shape) float64 {
	d := geom.Distance(point, other.ClosestPerpendicularPointTo(point))
	if other.Contains(point) {
		return -d
	}
	return d
}

// edgeDistanceToShape is the gap between an edge and other's boundary.
func edgeDistanceToShape(edge geom.Segment, other Shape) float64 {
	best := math.Inf(1)
	for _, otherEdge := range other.Edges() {
		best = math.Min(best, geom.SegmentDistance(edge, otherEdge))
	}
	return best
}

// PerpendicularPointsTo projects point onto every edge, clamping to the edge.
// The result is indexed like Edges.
func (p *Polygon) PerpendicularPointsTo(point geom.Point) []geom.Point {
	result := make([]geom.Point, len(p.edges))
	for i, edge := range p.edges {
		result[i] = edge.PerpendicularPoint(point)
	}
	return result
}

// ClosestPerpendicularPointTo is the point on the boundary closest to point.
func (p *Polygon) ClosestPerpendicularPointTo(point geom.Point) geom.Point {
	var best geom.Point
	bestDistance := math.Inf(1)
	for _, q := range p.PerpendicularPointsTo(point) {
		if d := geom.Distance(point, q); d < bestDistance {
			best, bestDistance = q, d
		}
	}
	return best
}

// Points

// ClosestPointTo is the boundary point nearest to point, whether point is
// inside or outside.
func (p *Polygon) ClosestPointTo(point geom.Point) geom.Point {
	return p.ClosestPerpendicularPointTo(point)
}

func (p *Polygon) ClosestPointToSegment(s geom.Segment) geom.Point {
	var best geom.Point
	bestDistance := math.Inf(1)
	for _, edge := range p.edges {
		q, r := geom.ClosestPoints(edge, s)
		if d := geom.Distance(q, r); d < bestDistance {
			best, bestDistance = q, d
		}
	}
	return best
}

func (p *Polygon) ClosestPointToPolygon(other Shape) geom.Point {
	var best geom.Point
	bestDistance := math.Inf(1)
	otherEdges := other.Edges()
	for _, edge := range p.edges {
		for _, otherEdge := range otherEdges {
			q, r := geom.ClosestPoints(edge, otherEdge)
			if d := geom.Distance(q, r); d < bestDistance {
				best, bestDistance = q, d
			}
		}
	}
	return best
}

// The furthest point of a convex polygon from anything is one of its vertices.

func (p *Polygon) FurthestPointFrom(point geom.Point) geom.Point {
	return p.FurthestVertexFrom(point)
}

func (p *Polygon) FurthestPointFromSegment(s geom.Segment) geom.Point {
	return p.FurthestVertexFromSegment(s)
}

func (p *Polygon) FurthestPointFromPolygon(other Shape) geom.Point {
	return p.FurthestVertexFromPolygon(other)
}

// Vertices

func (p *Polygon) ClosestVertexTo(point geom.Point) geom.Point {
	return p.pickVertex(func(v geom.Point) float64 { return geom.Distance(v, point) }, false)
}

func (p *Polygon) ClosestVertexToSegment(s geom.Segment) geom.Point {
	return p.pickVertex(s.Distance, false)
}

// ClosestVertexToPolygon prefers vertices inside other, deepest first.
func (p *Polygon) ClosestVertexToPolygon(other Shape) geom.Point {
	return p.pickVertex(func(v geom.Point) float64 { return distanceToShape(v, other) }, false)
}

func (p *Polygon) FurthestVertexFrom(point geom.Point) geom.Point {
	return p.pickVertex(func(v geom.Point) float64 { return geom.Distance(v, point) }, true)
}

func (p *Polygon) FurthestVertexFromSegment(s geom.Segment) geom.Point {
	return p.pickVertex(s.Distance, true)
}

func (p *Polygon) FurthestVertexFromPolygon(other Shape) geom.Point {
	return p.pickVertex(func(v geom.Point) float64 { return distanceToShape(v, other) }, true)
}

// Edges

func (p *Polygon) ClosestEdgeTo(point geom.Point) geom.Segment {
	return p.pickEdge(func(e geom.Segment) float64 { return e.Distance(point) }, false)
}

func (p *Polygon) ClosestEdgeToSegment(s geom.Segment) geom.Segment {
	return p.pickEdge(func(e geom.Segment) float64 { return geom.SegmentDistance(e, s) }, false)
}

func (p *Polygon) ClosestEdgeToPolygon(other Shape) geom.Segment {
	return p.pickEdge(func(e geom.Segment) float64 { return edgeDistanceToShape(e, other) }, false)
}

func (p *Polygon) FurthestEdgeFrom(point geom.Point) geom.Segment {
	return p.pickEdge(func(e geom.Segment) float64 { return e.Distance(point) }, true)
}

func (p *Polygon) FurthestEdgeFromSegment(s geom.Segment) geom.Segment {
	return p.pickEdge(func(e geom.Segment) float64 { return geom.SegmentDistance(e, s) }, true)
}

func (p *Polygon) FurthestEdgeFromPolygon(other Shape) geom.Segment {
	return p.pickEdge(func(e geom.Segment) float64 { return edgeDistanceToShape(e, other) }, true)
}

// normalDirection is the outward unit normal of edge i.
func (p *Polygon) normalDirection(i int) geom.Point {
	n := p.normals[i]
	return r2.Sub(n.B, n.A)
}

// EdgeFacingTowards is the edge holding the boundary point closest to point.
// When that point is a vertex, of its two edges the one whose normal looks
// more directly at point wins.
//
//	        point
//	          ·
//	    ┌─────┐ ← the top edge faces point, the right edge does not
//	    │     │
//	    └─────┘
func (p *Polygon) EdgeFacingTowards(point geom.Point) geom.Segment {
	closest := p.ClosestPointTo(point)
	look := r2.Sub(point, closest)
	best := -1
	bestScore := math.Inf(-1)
	for i, edge := range p.edges {
		if !edge.Contains(closest) {
			continue
		}
		score := r2.Dot(p.normalDirection(i), look)
		if best < 0 || score > bestScore {
			best, bestScore = i, score
		}
	}
	if best < 0 {
		return p.ClosestEdgeTo(point)
	}
	return p.edges[best]
}

func (p *Polygon) EdgeFacingTowardsPolygon(other Shape) geom.Segment {
	return p.EdgeFacingTowards(other.Center())
}

// HiddenEdgeFrom is the opposite of EdgeFacingTowards: an edge at the vertex
// furthest from point, picking the one whose normal points most directly
// away.
func (p *Polygon) HiddenEdgeFrom(point geom.Point) geom.Segment {
	furthest := p.FurthestVertexFrom(point)
	i := p.VertexIndex(furthest)
	prev := geom.CircularIndex(i-1, len(p.edges))
	away := r2.Sub(furthest, point)
	if r2.Dot(p.normalDirection(prev), away) > r2.Dot(p.normalDirection(i), away) {
		return p.edges[prev]
	}
	return p.edges[i]
}

func (p *Polygon) HiddenEdgeFromPolygon(other Shape) geom.Segment {
	return p.HiddenEdgeFrom(other.Center())
}
