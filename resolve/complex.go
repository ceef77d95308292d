package resolve

import (
	"math"

	"github.com/osuushi/polycollide/geom"
	"github.com/osuushi/polycollide/shape"
	"gonum.org/v1/gonum/spatial/r2"
)

// complexOffset handles one vertex of self (selfVertex) inside the obstacle and
// one vertex of the obstacle (obstacleVertex) inside self. Candidates are
// tried in order, and the first that CheckSolution accepts wins.
func (r *Resolver) complexOffset(work, pastSelf, obstacle shape.Shape, selfVertex, obstacleVertex geom.Point) (geom.Point, Case) {
	accept := func(offset geom.Point) bool {
		return r.CheckSolution(work, obstacle, offset)
	}

	// Already touching on one side: close the gap on the other
	if work.ContainsInEdge(obstacleVertex) {
		offset := r2.Sub(obstacle.ClosestPerpendicularPointTo(selfVertex), selfVertex)
		if accept(offset) {
			return offset, CaseTouching
		}
	}
	if obstacle.ContainsInEdge(selfVertex) {
		offset := r2.Sub(obstacleVertex, work.ClosestPerpendicularPointTo(obstacleVertex))
		if accept(offset) {
			return offset, CaseTouching
		}
	}

	path := vertexPath(work, pastSelf, selfVertex)
	if offset, ok := pathOffset(path, selfVertex, obstacle, accept); ok {
		return offset, CasePath
	}

	if offset, ok := obstacleOnPathOffset(path, selfVertex, obstacleVertex); ok && accept(offset) {
		return offset, CaseObstacleOnPath
	}

	if offset, ok := perpendicularOffset(work, obstacle, obstacleVertex, accept); ok {
		return offset, CasePerpendicular
	}

	toCenter := geom.Seg(selfVertex, work.Center())
	if edges := crossedEdges(obstacle, toCenter); len(edges) > 0 {
		offset := r2.Sub(edges[0].PerpendicularPoint(selfVertex), selfVertex)
		if accept(offset) {
			return offset, CaseLastResort
		}
	}

	throwImpossible("no candidate separates %v inside the obstacle and %v inside the shape", selfVertex, obstacleVertex)
	return geom.Point{}, 0
}

// vertexPath is the segment travelled by vertex since pastSelf. Vertex indexes
// survive translation and rotation, so the vertex's past position is the past
// vertex with the same index.
func vertexPath(work, pastSelf shape.Shape, vertex geom.Point) geom.Segment {
	i := work.VertexIndex(vertex)
	path, err := geom.NewSegment(pastSelf.Vertices()[i], vertex)
	if err != nil {
		throwImpossible("vertex %v did not move", vertex)
	}
	return path
}

// pathOffset pushes the vertex back out through the obstacle edge its path
// came in by: the foot of the perpendicular from the vertex to that edge.
func pathOffset(path geom.Segment, vertex geom.Point, obstacle shape.Shape, accept func(geom.Point) bool) (geom.Point, bool) {
	edges := crossedEdges(obstacle, path)
	if len(edges) == 0 {
		throwImpossible("the path of %v crosses no edge of the obstacle", vertex)
	}
	for _, edge := range edges {
		foot := edge.Line.PerpendicularPoint(vertex)
		if !edge.Contains(foot) {
			continue
		}
		offset := r2.Sub(foot, vertex)
		if r2.Norm(offset) > 0 && accept(offset) {
			return offset, true
		}
	}
	return geom.Point{}, false
}

// obstacleOnPathOffset applies when the obstacle's vertex is on the line the
// self vertex travelled along. Then the vertices met head on, and backing up
// until they coincide is exact.
func obstacleOnPathOffset(path geom.Segment, selfVertex, obstacleVertex geom.Point) (geom.Point, bool) {
	if !path.Line.Contains(obstacleVertex) {
		return geom.Point{}, false
	}
	return r2.Sub(obstacleVertex, selfVertex), true
}

// perpendicularOffset projects the obstacle's vertex onto each edge of self
// that reaches into the obstacle, and returns the shortest accepted push that
// moves one of those edges onto the vertex.
func perpendicularOffset(work, obstacle shape.Shape, obstacleVertex geom.Point, accept func(geom.Point) bool) (geom.Point, bool) {
	var candidates []geom.Point
	for _, edge := range work.EdgesInside(obstacle, true) {
		foot := edge.Line.PerpendicularPoint(obstacleVertex)
		if !edge.Contains(foot) {
			continue
		}
		offset := r2.Sub(obstacleVertex, foot)
		if !geom.ContainsPoint(candidates, offset) {
			candidates = append(candidates, offset)
		}
	}

	var best geom.Point
	found := false
	shortest := math.Inf(1)
	for _, offset := range candidates {
		if length := r2.Norm(offset); length < shortest && accept(offset) {
			best, shortest, found = offset, length, true
		}
	}
	return best, found
}
