package Go_PST

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Scalar is the coordinate type of a Point. Only floats are allowed: open region queries
// step to the adjacent representable value, which is only meaningful for IEEE-754 floats.
type Scalar interface {
	constraints.Float
}

// Point in the plane. Points are ranked by Y, ties broken by the smaller X.
type Point[T Scalar] struct {
	X, Y T
}

// BetterY reports whether u ranks above p: u.Y > p.Y, or u.Y == p.Y and u.X < p.X.
func (u Point[T]) BetterY(p Point[T]) bool {
	return u.Y > p.Y || (u.Y == p.Y && u.X < p.X)
}

// Found reports whether p is a real point rather than the "no point" sentinel returned by
// queries with an empty answer. Sentinels always carry an infinite coordinate.
func Found[T Scalar](p Point[T]) bool {
	return !math.IsInf(float64(p.X), 0) && !math.IsInf(float64(p.Y), 0)
}

// Inf returns +Inf if sign>=0, -Inf otherwise, as a T.
func Inf[T Scalar](sign int) T {
	return T(math.Inf(sign))
}

// Sentinel builds a point with infinite coordinates in the given directions.
func Sentinel[T Scalar](xSign, ySign int) Point[T] {
	return Point[T]{Inf[T](xSign), Inf[T](ySign)}
}

// IsNaN reports whether either coordinate of p is NaN.
func (u Point[T]) IsNaN() bool {
	return u.X != u.X || u.Y != u.Y
}
