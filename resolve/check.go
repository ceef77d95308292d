package resolve

import (
	"github.com/osuushi/polycollide/geom"
	"github.com/osuushi/polycollide/shape"
	"gonum.org/v1/gonum/spatial/r2"
)

// CheckSolution reports whether translating self by offset leaves it touching
// obstacle rather than overlapping it. Neither shape is modified. All of these
// must hold after the translation:
//
//   - at most one vertex of each shape is inside the other, and such a vertex
//     is on the other's boundary
//   - the boundaries meet in at most two points
//   - two meeting points are either the same point at the configured
//     precision, or both at a penetrating vertex
//
// This is wider than the rule as usually stated. Two distinct meeting points
// are also accepted when their midpoint is on both boundaries, which is what an
// edge lying flat against part of another edge looks like: two staggered
// squares sharing a stretch of edge, each with one corner on the other, meet
// at those two corners and pass only by this rule.
func (r *Resolver) CheckSolution(self, obstacle shape.Shape, offset geom.Point) bool {
	moved := self.Clone()
	moved.Translate(offset)

	selfIn := moved.VerticesInside(obstacle)
	obstacleIn := obstacle.VerticesInside(moved)
	if len(selfIn) > 1 || len(obstacleIn) > 1 {
		return false
	}
	if len(selfIn) == 1 && !obstacle.ContainsInEdge(selfIn[0]) {
		return false
	}
	if len(obstacleIn) == 1 && !moved.ContainsInEdge(obstacleIn[0]) {
		return false
	}

	points := obstacle.IntersectionPoints(moved, r.Config.Precision)
	if len(points) < 2 {
		return true
	}
	if len(points) > 2 {
		return false
	}

	a, b := points[0], points[1]
	if geom.EqualPoints(a, b) {
		return true
	}
	for _, v := range append(selfIn, obstacleIn...) {
		if geom.Distance(v, a) <= geom.Epsilon && geom.Distance(v, b) <= geom.Epsilon {
			return true
		}
	}

	// Edge against edge: everything between the two points is shared boundary
	mid := r2.Scale(0.5, r2.Add(a, b))
	return obstacle.ContainsInEdge(mid) && moved.ContainsInEdge(mid)
}
