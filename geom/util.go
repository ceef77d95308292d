package geom

import (
	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/spatial/r2"
)

// Epsilon is the one tolerance used for every "on the line", "on the segment",
// "on the edge" and "same point" test in the module.
const Epsilon = 1e-3

// DefaultPrecision is the number of decimal places intersection points are
// rounded to before duplicates are collapsed. The collision resolver counts
// intersection points, so this value changes its decisions; it can be tuned
// through resolve.Config.
const DefaultPrecision = 3

// Floats are compared with a tolerance. Without it, a vertex sitting exactly on
// an edge flips in and out of the polygon depending on rounding.
func Equal(a, b float64) bool {
	return scalar.EqualWithinAbs(a, b, Epsilon)
}

func EqualPoints(p, q Point) bool {
	return r2.Norm(r2.Sub(p, q)) <= Epsilon
}

// Vertex lists are circular. This gives the modular index given length n, but
// unlike the raw modulo operator, it only gives positive values.
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}

// Round rounds both coordinates to the given number of decimal places.
func Round(p Point, precision int) Point {
	return Point{X: scalar.Round(p.X, precision), Y: scalar.Round(p.Y, precision)}
}

// Dedup rounds the points to precision and drops the repeats, keeping the order
// of first appearance.
func Dedup(points []Point, precision int) []Point {
	result := make([]Point, 0, len(points))
	seen := make(map[Point]struct{}, len(points))
	for _, p := range points {
		p = Round(p, precision)
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		result = append(result, p)
	}
	return result
}

// ContainsPoint reports whether the list holds a point equal to p within Epsilon.
func ContainsPoint(points []Point, p Point) bool {
	for _, q := range points {
		if EqualPoints(p, q) {
			return true
		}
	}
	return false
}
