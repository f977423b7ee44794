package Trees

import (
	"errors"
	"iter"

	"github.com/emirpasic/gods/sets/hashset"

	Go_PST "github.com/g-m-twostay/go-pst"
)

// MinPST is the mirror image of MaxPST: a heap on smallest y, ties broken by the smaller x.
// It stores the points with y negated and answers every query through a MaxPST.
type MinPST[T Go_PST.Scalar] struct {
	max *MaxPST[T]
}

// NewMin builds a MinPST on points in place. As with New, points belongs to the tree from now
// on, and while it does its y values are stored negated. They are restored if building fails.
func NewMin[T Go_PST.Scalar](points []Go_PST.Point[T], opts ...Option) (*MinPST[T], error) {
	reflectY(points)
	m, err := New(points, opts...)
	if err != nil {
		reflectY(points)
		var ic *Go_PST.ErrInvalidCoordinate
		if errors.As(err, &ic) {
			ic.Y = -ic.Y
		}
		return nil, err
	}
	return &MinPST[T]{m}, nil
}

func reflectY[T Go_PST.Scalar](ps []Go_PST.Point[T]) {
	for i := range ps {
		ps[i].Y = -ps[i].Y
	}
}

func flip[T Go_PST.Scalar](p Go_PST.Point[T]) Go_PST.Point[T] {
	return Go_PST.Point[T]{X: p.X, Y: -p.Y}
}

// SmallestYInSE returns the lowest point with x>=x0 and y<=y0, or (+Inf,+Inf).
func (u *MinPST[T]) SmallestYInSE(x0, y0 T, open bool) Go_PST.Point[T] {
	return flip(u.max.LargestYInNE(x0, -y0, open))
}

// SmallestYInSW returns the lowest point with x<=x0 and y<=y0, or (-Inf,+Inf).
func (u *MinPST[T]) SmallestYInSW(x0, y0 T, open bool) Go_PST.Point[T] {
	return flip(u.max.LargestYInNW(x0, -y0, open))
}

// SmallestXInSE returns the leftmost point with x>=x0 and y<=y0, or (+Inf,-Inf).
func (u *MinPST[T]) SmallestXInSE(x0, y0 T, open bool) Go_PST.Point[T] {
	return flip(u.max.SmallestXInNE(x0, -y0, open))
}

// LargestXInSW returns the rightmost point with x<=x0 and y<=y0, or (-Inf,-Inf).
func (u *MinPST[T]) LargestXInSW(x0, y0 T, open bool) Go_PST.Point[T] {
	return flip(u.max.LargestXInNW(x0, -y0, open))
}

// SmallestYIn3Sided returns the lowest point in [x0,x1]x(-Inf,y0], or (+Inf,+Inf).
func (u *MinPST[T]) SmallestYIn3Sided(x0, x1, y0 T, open bool) Go_PST.Point[T] {
	return flip(u.max.LargestYIn3Sided(x0, x1, -y0, open))
}

// Each3Sided calls yield on every point in [x0,x1]x(-Inf,y0].
func (u *MinPST[T]) Each3Sided(x0, x1, y0 T, open bool, yield func(Go_PST.Point[T]) bool) {
	u.max.Each3Sided(x0, x1, -y0, open, func(p Go_PST.Point[T]) bool {
		return yield(flip(p))
	})
}

// All3Sided is Each3Sided as an iterator.
func (u *MinPST[T]) All3Sided(x0, x1, y0 T, open bool) iter.Seq[Go_PST.Point[T]] {
	return func(yield func(Go_PST.Point[T]) bool) {
		u.Each3Sided(x0, x1, y0, open, yield)
	}
}

// Enumerate3Sided returns the set of points in [x0,x1]x(-Inf,y0].
func (u *MinPST[T]) Enumerate3Sided(x0, x1, y0 T, open bool) *hashset.Set {
	s := hashset.New()
	u.Each3Sided(x0, x1, y0, open, func(p Go_PST.Point[T]) bool {
		s.Add(p)
		return true
	})
	return s
}

// DeleteTop removes and returns the lowest point. See MaxPST.DeleteTop.
func (u *MinPST[T]) DeleteTop() (Go_PST.Point[T], error) {
	p, err := u.max.DeleteTop()
	if err != nil {
		return p, err
	}
	return flip(p), nil
}

func (u *MinPST[T]) Empty() bool {
	return u.max.Empty()
}

func (u *MinPST[T]) Len() int {
	return u.max.Len()
}

func (u *MinPST[T]) Size() int {
	return u.max.Size()
}

func (u *MinPST[T]) Verify() error {
	return u.max.Verify()
}
