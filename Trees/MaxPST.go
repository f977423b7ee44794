package Trees

import (
	"log/slog"

	Go_PST "github.com/g-m-twostay/go-pst"
)

// MaxPST is a max priority search tree: a heap on y that is at the same time a binary search
// tree on x, stored inside the slice it was built from. Points must have distinct x.
//
// Queries don't modify the tree and may run concurrently with each other. Building and
// DeleteTop need exclusive access; the tree does no locking.
type MaxPST[T Go_PST.Scalar] struct {
	base[T]
	log *slog.Logger
}

// New builds a MaxPST on points in place. points is handed over to the tree: it's permuted and
// must not be modified by the caller afterward. On error points may have been reordered.
func New[T Go_PST.Scalar](points []Go_PST.Point[T], opts ...Option) (*MaxPST[T], error) {
	o := makeOptions(opts)
	u := &MaxPST[T]{base: base[T]{vs: points, members: len(points), dynamic: o.dynamic}, log: o.logger}
	if err := u.build(); err != nil {
		u.log.Debug("pst build rejected", "size", len(points), "error", err)
		return nil, err
	}
	u.log.Debug("pst built", "size", len(points), "height", depth(len(points)), "dynamic", o.dynamic)
	if o.verify {
		if err := u.Verify(); err != nil {
			u.log.Error("pst verification failed", "error", err)
			panic(err)
		}
	}
	return u, nil
}

// DeleteTop removes and returns the point with the largest y. Only allowed on a tree built
// WithDynamic. O(log n) in the size the tree was built with.
//
// The vacated root is pushed down along the better of the live children until it reaches a
// node without live children. The removed point is left there, where it ranks above its new
// parent and so reads as dead from then on (see base.live).
func (u *MaxPST[T]) DeleteTop() (Go_PST.Point[T], error) {
	if !u.dynamic {
		return Go_PST.Point[T]{}, Go_PST.ErrNotDynamic
	} else if u.Empty() {
		return Go_PST.Point[T]{}, Go_PST.ErrEmpty
	}
	top := *u.at(root)
	for i := root; ; {
		c := u.better(u.children(i))
		if c == 0 {
			break
		}
		u.swap(i, c)
		i = c
	}
	u.members--
	return top, nil
}
