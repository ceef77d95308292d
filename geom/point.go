package geom

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Point is a position or a displacement in the plane. It is gonum's r2.Vec, so
// the r2 functions (Add, Sub, Scale, Dot, Cross, Norm, Unit, ...) apply to it
// directly.
type Point = r2.Vec

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

func Distance(p, q Point) float64 {
	return r2.Norm(r2.Sub(p, q))
}

func Radians(degrees float64) float64 {
	return degrees * math.Pi / 180
}

func Degrees(radians float64) float64 {
	return radians * 180 / math.Pi
}

// RotateAround rotates p counterclockwise around pivot.
func RotateAround(p, pivot Point, degrees float64) Point {
	if degrees == 0 {
		return p
	}
	return r2.Rotate(p, Radians(degrees), pivot)
}

// IsZero reports whether p is the zero vector within Epsilon.
func IsZero(p Point) bool {
	return r2.Norm(p) <= Epsilon
}

// Centroid is the arithmetic mean of the points. For a triangle this is the
// center of mass; for the regular shapes in this module it is the center.
func Centroid(points []Point) Point {
	var sum Point
	for _, p := range points {
		sum = r2.Add(sum, p)
	}
	if len(points) == 0 {
		return sum
	}
	return r2.Scale(1/float64(len(points)), sum)
}

// AngleBetween gives the unsigned angle between two vectors, in degrees.
func AngleBetween(u, v Point) float64 {
	cos := r2.Cos(u, v)
	// Rounding can push the cosine a hair outside [-1, 1]
	cos = math.Max(-1, math.Min(1, cos))
	return Degrees(math.Acos(cos))
}
