package Trees

import (
	"github.com/google/btree"

	Go_PST "github.com/g-m-twostay/go-pst"
)

// Builder collects points one at a time, rejecting bad ones as they come, and hands them to a
// tree in x order. The zero value is not usable; use NewBuilder.
type Builder[T Go_PST.Scalar] struct {
	ps *btree.BTreeG[Go_PST.Point[T]]
}

// NewBuilder accepts WithDegree; other options are ignored.
func NewBuilder[T Go_PST.Scalar](opts ...Option) *Builder[T] {
	o := makeOptions(opts)
	return &Builder[T]{btree.NewG[Go_PST.Point[T]](o.degree, func(a, b Go_PST.Point[T]) bool {
		return a.X < b.X
	})}
}

// Add p. Fails without adding if p has a NaN coordinate or its x is already taken.
func (u *Builder[T]) Add(p Go_PST.Point[T]) error {
	if p.IsNaN() {
		return &Go_PST.ErrInvalidCoordinate{Index: u.ps.Len(), X: float64(p.X), Y: float64(p.Y)}
	} else if u.ps.Has(p) {
		return &Go_PST.ErrDuplicateX{X: float64(p.X)}
	}
	u.ps.ReplaceOrInsert(p)
	return nil
}

// Len of the points added so far.
func (u *Builder[T]) Len() int {
	return u.ps.Len()
}

// points drains the builder into a new slice sorted by x.
func (u *Builder[T]) points() []Go_PST.Point[T] {
	vs := make([]Go_PST.Point[T], 0, u.ps.Len())
	u.ps.Ascend(func(p Go_PST.Point[T]) bool {
		vs = append(vs, p)
		return true
	})
	u.ps.Clear(false)
	return vs
}

// Build a MaxPST from the points added so far and empty the builder.
func (u *Builder[T]) Build(opts ...Option) (*MaxPST[T], error) {
	return New(u.points(), opts...)
}

// BuildMin builds a MinPST from the points added so far and empties the builder.
func (u *Builder[T]) BuildMin(opts ...Option) (*MinPST[T], error) {
	return NewMin(u.points(), opts...)
}
