// Package resolve computes how far to push a convex shape that has moved into
// another one so that the two end up touching instead of overlapping.
//
// The moving shape is given twice: where it is now (self) and where it was
// before the move (pastSelf). The difference gives the direction of motion, and
// for each vertex, the path it travelled.
//
// Resolution happens in two phases. First, while either shape has more than
// one vertex inside the other, self is stepped back along its motion. This
// is a crude discrete search, not a time of impact solve, but it reduces every
// overlap to one of four configurations: no penetrating vertex, one vertex of
// self inside the obstacle, one vertex of the obstacle inside self, or one of
// each (the complex configuration).
//
// Then each configuration has its own way of finding the offset. Every case
// proposes candidates in a fixed order and keeps the first one that
// CheckSolution accepts. When none is accepted the collision is impossible.
package resolve

import (
	"fmt"
	"log"
	"math"
	"sort"

	"github.com/osuushi/polycollide/geom"
	"github.com/osuushi/polycollide/shape"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/spatial/r2"
)

// Below this, a displacement is no motion at all.
const minMotion = 1e-9

// Case says which configuration the overlap was reduced to, and for the complex
// configuration, which candidate was accepted.
type Case int

const (
	// No vertex of either shape is inside the other.
	CaseSeparated Case = iota
	// One vertex of self is inside the obstacle.
	CaseSelfVertex
	// One vertex of the obstacle is inside self.
	CaseObstacleVertex
	// Complex: one penetrating vertex was already on the other's boundary.
	CaseTouching
	// Complex: self's vertex was pushed back across the edge its path crossed.
	CasePath
	// Complex: the obstacle's vertex was on the line of self's vertex path.
	CaseObstacleOnPath
	// Complex: the obstacle's vertex was projected onto one of self's edges.
	CasePerpendicular
	// Complex: self's vertex was pushed out towards self's center.
	CaseLastResort
)

var caseNames = [...]string{
	CaseSeparated:      "separated",
	CaseSelfVertex:     "self-vertex",
	CaseObstacleVertex: "obstacle-vertex",
	CaseTouching:       "touching",
	CasePath:           "path",
	CaseObstacleOnPath: "obstacle-on-path",
	CasePerpendicular:  "perpendicular",
	CaseLastResort:     "last-resort",
}

func (c Case) String() string {
	if c < 0 || int(c) >= len(caseNames) {
		return fmt.Sprintf("Case(%d)", int(c))
	}
	return caseNames[c]
}

// Complex reports whether both shapes had a vertex inside the other.
func (c Case) Complex() bool {
	return c >= CaseTouching
}

// Resolution is the outcome of a successful Resolve.
type Resolution struct {
	// Offset is the full translation to apply to self: the pre-reduction
	// back-off plus the case specific push.
	Offset geom.Point
	Case   Case
	// Steps is the number of pre-reduction steps taken.
	Steps int
}

type Resolver struct {
	Config Config
	// Logger, if set, gets a line per resolution.
	Logger *log.Logger
}

func New(config Config) (*Resolver, error) {
	if err := config.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid resolver config")
	}
	return &Resolver{Config: config}, nil
}

func Default() *Resolver {
	return &Resolver{Config: DefaultConfig()}
}

func (r *Resolver) logf(format string, args ...interface{}) {
	if r.Logger != nil {
		r.Logger.Printf(format, args...)
	}
}

// Resolve finds the translation that separates self from obstacle. None of the
// shapes are modified. Shapes that do not intersect resolve to a zero offset.
//
// The error wraps ErrImpossibleCollision when no acceptable offset exists,
// including when the pre-reduction loop runs out of steps or has no motion to
// follow.
func (r *Resolver) Resolve(self, pastSelf, obstacle shape.Shape) (result Resolution, err error) {
	defer func() {
		recoveredErr := HandleResolvePanicRecover(recover())
		if recoveredErr != nil {
			result = Resolution{}
			err = recoveredErr
		}
	}()

	if n, m := len(self.Vertices()), len(pastSelf.Vertices()); n != m {
		return Resolution{}, errors.Errorf("shape has %d vertices but its past position has %d", n, m)
	}
	if !self.Intersects(obstacle) {
		return Resolution{Case: CaseSeparated}, nil
	}

	work := self.Clone()
	steps := r.reduce(work, pastSelf, obstacle)
	result = r.classify(work, pastSelf, obstacle)
	result.Steps = steps
	result.Offset = r2.Add(r2.Sub(work.Center(), self.Center()), result.Offset)

	r.logf("resolved %s collision after %d steps: offset (%.4f, %.4f)",
		result.Case, steps, result.Offset.X, result.Offset.Y)
	return result, nil
}

// reduce steps work back along its motion until neither shape has more than
// one vertex inside the other. It returns the number of steps taken.
func (r *Resolver) reduce(work, pastSelf, obstacle shape.Shape) int {
	motion := r2.Sub(work.Center(), pastSelf.Center())
	var step geom.Point
	if r2.Norm(motion) >= minMotion {
		step = r2.Scale(-r.Config.StepSize, r2.Unit(motion))
	}

	for steps := 0; ; steps++ {
		inObstacle := len(work.VerticesInside(obstacle))
		inSelf := len(obstacle.VerticesInside(work))
		if inObstacle <= 1 && inSelf <= 1 {
			return steps
		}
		if step == (geom.Point{}) {
			throwImpossible("%d and %d vertices overlap and there is no motion to back out along", inObstacle, inSelf)
		}
		if steps >= r.Config.MaxSteps {
			throwImpossible("%d and %d vertices still overlap after %d steps", inObstacle, inSelf, steps)
		}
		work.Translate(step)
		if separated(work, obstacle) {
			refine(work, obstacle, step)
			return steps + 1
		}
	}
}

// Bisection rounds used to take back the part of the last step that went past
// the point where the shapes came apart.
const refineRounds = 32

func separated(work, obstacle shape.Shape) bool {
	return len(work.VerticesInside(obstacle)) == 0 &&
		len(obstacle.VerticesInside(work)) == 0 &&
		!work.Intersects(obstacle)
}

// refine is called when the step just taken by work turned an overlap into a
// clean separation. It moves work back towards where it was before that step,
// as far as it can while staying separated, so the shapes end up within
// tolerance of touching.
func refine(work, obstacle shape.Shape, step geom.Point) {
	good, bad, at := 0.0, 1.0, 0.0
	moveTo := func(t float64) {
		work.Translate(r2.Scale(at-t, step))
		at = t
	}
	for i := 0; i < refineRounds; i++ {
		mid := (good + bad) / 2
		moveTo(mid)
		if separated(work, obstacle) {
			good = mid
		} else {
			bad = mid
		}
	}
	moveTo(good)
}

func (r *Resolver) classify(work, pastSelf, obstacle shape.Shape) Resolution {
	selfIn := work.VerticesInside(obstacle)
	obstacleIn := obstacle.VerticesInside(work)
	accept := func(offset geom.Point) bool {
		return r.CheckSolution(work, obstacle, offset)
	}

	switch {
	case len(selfIn) == 0 && len(obstacleIn) == 0:
		// The boundaries can still cross, when the obstacle is thin enough to
		// pass through self between two vertices. Two convex shapes overlapping
		// that way meet in at least four points, so anything CheckSolution
		// accepts is only a touch.
		if !accept(geom.Point{}) {
			throwImpossible("boundaries cross with no vertex inside either shape")
		}
		return Resolution{Case: CaseSeparated}

	case len(obstacleIn) == 0:
		offset, ok := simpleOffset(work, selfIn[0], obstacle, accept)
		if !ok {
			throwImpossible("no push of %v out of the obstacle leaves the shapes touching", selfIn[0])
		}
		return Resolution{Offset: offset, Case: CaseSelfVertex}

	case len(selfIn) == 0:
		// Push the obstacle out of self, then move self the opposite way
		offset, ok := simpleOffset(obstacle, obstacleIn[0], work, func(offset geom.Point) bool {
			return accept(r2.Scale(-1, offset))
		})
		if !ok {
			throwImpossible("no push of %v out of the shape leaves the shapes touching", obstacleIn[0])
		}
		return Resolution{Offset: r2.Scale(-1, offset), Case: CaseObstacleVertex}

	default:
		offset, c := r.complexOffset(work, pastSelf, obstacle, selfIn[0], obstacleIn[0])
		return Resolution{Offset: offset, Case: c}
	}
}

// simpleOffset finds how far to move agent so that vertex, which belongs to
// agent and is inside passive, no longer penetrates it. The preferred push lands
// the vertex on the first edge of passive met walking from the vertex towards
// agent's center. When accept turns that down, the vertex's projection onto
// every other edge is tried, then pushes along the normals of either shape that
// clear agent out of passive altogether. Those go shortest first.
func simpleOffset(agent shape.Shape, vertex geom.Point, passive shape.Shape, accept func(geom.Point) bool) (geom.Point, bool) {
	edge := passive.ClosestEdgeTo(vertex)
	if edges := crossedEdges(passive, geom.Seg(vertex, agent.Center())); len(edges) > 0 {
		edge = edges[0]
	}
	preferred := r2.Sub(edge.PerpendicularPoint(vertex), vertex)
	if accept(preferred) {
		return preferred, true
	}

	var candidates []geom.Point
	add := func(offset geom.Point) {
		if !geom.IsZero(offset) && !geom.EqualPoints(offset, preferred) && !geom.ContainsPoint(candidates, offset) {
			candidates = append(candidates, offset)
		}
	}
	for _, e := range passive.Edges() {
		add(r2.Sub(e.PerpendicularPoint(vertex), vertex))
	}
	for _, e := range passive.Edges() {
		// Out through e: the deepest vertex of agent on the inner side of e's
		// line sets the distance
		add(r2.Scale(-depthBeyond(e, agent.Vertices()), e.Normal()))
	}
	for _, e := range agent.Edges() {
		// The same seen from agent: passive leaves through e
		add(r2.Scale(depthBeyond(e, passive.Vertices()), e.Normal()))
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return r2.Norm(candidates[i]) < r2.Norm(candidates[j])
	})
	for _, offset := range candidates {
		if accept(offset) {
			return offset, true
		}
	}
	return geom.Point{}, false
}

// depthBeyond is how far the furthest of points lies on the inner side of
// edge's line, or zero if none do.
func depthBeyond(edge geom.Segment, points []geom.Point) float64 {
	depth := 0.0
	for _, p := range points {
		depth = math.Max(depth, edge.SignedDistance(p))
	}
	return depth
}

// crossedEdges lists the edges of s that path touches, in the order they are
// met walking from path.A to path.B.
func crossedEdges(s shape.Shape, path geom.Segment) []geom.Segment {
	edges := s.IntersectingEdges(path)
	distances := make(map[geom.Segment]float64, len(edges))
	for _, edge := range edges {
		point, _ := edge.IntersectionPoint(path)
		distances[edge] = geom.Distance(path.A, point)
	}
	sort.SliceStable(edges, func(i, j int) bool {
		return distances[edges[i]] < distances[edges[j]]
	})
	return edges
}
