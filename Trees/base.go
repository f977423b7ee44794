package Trees

import (
	"math/bits"

	Go_PST "github.com/g-m-twostay/go-pst"
)

const root = 1

// base is the point buffer shared by every query. Nodes are 1-indexed so that the children of
// i are 2i and 2i+1 and its parent is i>>1; node i lives in vs[i-1]. Node 0 doesn't exist and
// is used as nil.
type base[T Go_PST.Scalar] struct {
	vs      []Go_PST.Point[T] // owned by the tree, the caller's slice.
	members int               // live points; equals len(vs) unless dynamic.
	dynamic bool
}

func (u *base[T]) at(i int) *Go_PST.Point[T] {
	return &u.vs[i-1]
}

func (u *base[T]) swap(i, j int) {
	u.vs[i-1], u.vs[j-1] = u.vs[j-1], u.vs[i-1]
}

// live reports whether node i is a member of the tree.
//
// Deleted points are never marked. DeleteTop leaves the removed maximum in a slot whose parent
// now holds a point from the maximum's old subtree, so that slot ranks above its parent, which
// a member never does. Every slot below it is dead the same way. Do not replace this with a
// tombstone bit: the comparison costs nothing and keeps the extra space at O(1).
func (u *base[T]) live(i int) bool {
	if i > len(u.vs) {
		return false
	} else if !u.dynamic {
		return true
	} else if i == root {
		return u.members > 0
	}
	return !u.at(i).BetterY(*u.at(i >> 1))
}

// children of i that are live, 0 in place of a missing one.
func (u *base[T]) children(i int) (l, r int) {
	if l = i << 1; !u.live(l) {
		l = 0
	}
	if r = i<<1 | 1; !u.live(r) {
		r = 0
	}
	return
}

// better returns whichever of nodes i and j holds the better point. 0 is worse than any node.
func (u *base[T]) better(i, j int) int {
	if i == 0 || (j != 0 && u.at(j).BetterY(*u.at(i))) {
		return j
	}
	return i
}

func depth(i int) int {
	return bits.Len(uint(i)) - 1
}

// Len is the number of points currently in the tree.
func (u *base[T]) Len() int {
	return u.members
}

// Size is the number of points the tree was built with.
func (u *base[T]) Size() int {
	return len(u.vs)
}

// Empty reports whether the tree has no points left.
func (u *base[T]) Empty() bool {
	return u.members == 0
}

// Verify checks the heap order and the x partition over all live nodes. Spine walks are
// bounded by subtree heights, which sum to O(n) in a complete tree. A non nil result means the
// structure itself is broken, not that the input was bad.
func (u *base[T]) Verify() error {
	if u.Empty() {
		return nil
	}
	for i := root; i <= len(u.vs); i++ {
		if !u.live(i) {
			continue
		}
		if p := i >> 1; p != 0 && !u.live(p) {
			return &Go_PST.ErrCorrupt{Node: i, Reason: "live node below a dead one"}
		} else if p != 0 && u.at(i).BetterY(*u.at(p)) {
			return &Go_PST.ErrCorrupt{Node: i, Reason: "heap order"}
		}
		if l, r := u.children(i); l != 0 && r != 0 && u.extremeX(l, true) >= u.extremeX(r, false) {
			return &Go_PST.ErrCorrupt{Node: i, Reason: "x partition"}
		}
	}
	return nil
}

// extremeX of the live subtree at i: the largest x if max, the smallest otherwise. Only the
// outer spine needs visiting; the partition exempts nothing but the node itself.
func (u *base[T]) extremeX(i int, max bool) T {
	x := u.at(i).X
	for i != 0 {
		if v := u.at(i).X; (max && v > x) || (!max && v < x) {
			x = v
		}
		l, r := u.children(i)
		if max {
			l, r = r, l
		}
		if i = l; i == 0 {
			i = r
		}
	}
	return x
}
