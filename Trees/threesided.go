package Trees

import (
	"iter"

	"github.com/emirpasic/gods/sets/hashset"

	Go_PST "github.com/g-m-twostay/go-pst"
)

// Roles of the frontier nodes of a 3-sided search, in x order. A role holds 0 when inactive.
const (
	outL = iota // left of the box.
	inL         // in the box, its subtree may reach left of it.
	inR         // in the box, its subtree may reach right of it.
	outR        // right of the box.
)

type frontier [4]int

// shallowest returns the active role with the smallest depth, the leftmost role on ties, or -1
// when no role is active.
func (f *frontier) shallowest() int {
	r := -1
	for i, n := range f {
		if n != 0 && (r == -1 || depth(n) < depth(f[r])) {
			r = i
		}
	}
	return r
}

// box bounds [x0,x1]x[y0,+Inf) after applying open.
func box[T Go_PST.Scalar](x0, x1, y0 T, open bool) (T, T, T) {
	return Go_PST.OpenAbove(x0, open), Go_PST.OpenBelow(x1, open), Go_PST.OpenAbove(y0, open)
}

// LargestYIn3Sided returns the best point in [x0,x1]x[y0,+Inf), or (+Inf,-Inf) if there is
// none. If open is true the bounds are strict. O(log n).
//
// After the root, the search keeps two nodes: one left of the box and one right of it, each
// with a subtree that may still reach into the box. The shallower one is advanced a level at a
// time. Children landing in the box are candidates and aren't descended into, since nothing
// below them ranks higher.
func (u *MaxPST[T]) LargestYIn3Sided(x0, x1, y0 T, open bool) Go_PST.Point[T] {
	x0, x1, y0 = box(x0, x1, y0, open)
	best := 0
	if !u.Empty() && x0 <= x1 && u.at(root).Y >= y0 {
		var fr frontier
		switch x := u.at(root).X; {
		case x < x0:
			fr[outL] = root
		case x > x1:
			fr[outR] = root
		default:
			best = root
		}
		for r := fr.shallowest(); r != -1; r = fr.shallowest() {
			l, rc := u.children(fr[r])
			fr[r] = 0
			right := false
			for _, c := range [2]int{l, rc} {
				if c == 0 || u.at(c).Y < y0 || u.better(best, c) == best {
					continue
				}
				switch x := u.at(c).X; {
				case x < x0:
					// any older left node lies left of c, out of reach.
					fr[outL] = c
				case x > x1:
					// same for an older right node, but only the first such child counts.
					if !right {
						fr[outR], right = c, true
					}
				default:
					best = c
				}
			}
		}
	}
	if best == 0 {
		return Go_PST.Sentinel[T](1, -1)
	}
	return *u.at(best)
}

// Each3Sided calls yield on every point in [x0,x1]x[y0,+Inf) exactly once, in no particular
// order, stopping early if yield returns false. If open is true the bounds are strict.
// O(m + log n) for m points reported.
//
// The frontier holds up to four nodes on one level: the last one left of the box, the first
// and the last one in it, and the first one right of it. Those are the only subtrees that
// may straddle a side of the box. Everything in between is inside on x and is drained by
// explore; everything outside is dropped.
func (u *MaxPST[T]) Each3Sided(x0, x1, y0 T, open bool, yield func(Go_PST.Point[T]) bool) {
	x0, x1, y0 = box(x0, x1, y0, open)
	if u.Empty() || x0 > x1 || u.at(root).Y < y0 {
		return
	}
	var fr frontier
	switch x := u.at(root).X; {
	case x < x0:
		fr[outL] = root
	case x > x1:
		fr[outR] = root
	default:
		if !yield(*u.at(root)) {
			return
		}
		fr[inL], fr[inR] = root, root
	}
	for fr != (frontier{}) {
		// roles always share a level, so their children come out in x order.
		var kids [8]int
		n := 0
		for r, f := range fr {
			if f != 0 && (r != inR || f != fr[inL]) {
				kids[n], kids[n+1] = u.children(f)
				n += 2
			}
		}
		fr = frontier{}

		var ins [8]int
		m := 0
		for _, c := range kids[:n] {
			if c == 0 {
				continue
			}
			switch x := u.at(c).X; {
			case x < x0:
				fr[outL] = c
			case x > x1:
				if fr[outR] == 0 {
					fr[outR] = c
				}
			default:
				ins[m] = c
				m++
			}
		}
		// classification above doesn't look at y so that a low node still bounds its
		// neighbours; low nodes are dropped here.
		for _, r := range [2]int{outL, outR} {
			if fr[r] != 0 && u.at(fr[r]).Y < y0 {
				fr[r] = 0
			}
		}
		for j, c := range ins[:m] {
			if u.at(c).Y < y0 {
				continue
			} else if 0 < j && j < m-1 {
				// squeezed between two nodes in the box: entirely inside on x.
				if !u.explore(c, y0, yield) {
					return
				}
				continue
			}
			if !yield(*u.at(c)) {
				return
			}
			if j == 0 {
				fr[inL] = c
			}
			if j == m-1 {
				fr[inR] = c
			}
		}
	}
}

// All3Sided is Each3Sided as an iterator.
func (u *MaxPST[T]) All3Sided(x0, x1, y0 T, open bool) iter.Seq[Go_PST.Point[T]] {
	return func(yield func(Go_PST.Point[T]) bool) {
		u.Each3Sided(x0, x1, y0, open, yield)
	}
}

// Enumerate3Sided returns the set of points in [x0,x1]x[y0,+Inf). Elements are Go_PST.Point[T].
func (u *MaxPST[T]) Enumerate3Sided(x0, x1, y0 T, open bool) *hashset.Set {
	s := hashset.New()
	u.Each3Sided(x0, x1, y0, open, func(p Go_PST.Point[T]) bool {
		s.Add(p)
		return true
	})
	return s
}

// above reports whether node i is live and at or above y0.
func (u *MaxPST[T]) above(i int, y0 T) bool {
	return u.live(i) && u.at(i).Y >= y0
}

// explore reports top and every point below it with y>=y0, in preorder, stopping early if
// yield returns false. top must be at or above y0. A child below y0 is skipped with its whole
// subtree, so the cost is linear in what's reported. The walk climbs back through parents
// instead of keeping a stack.
func (u *MaxPST[T]) explore(top int, y0 T, yield func(Go_PST.Point[T]) bool) bool {
	for i := top; ; {
		if !yield(*u.at(i)) {
			return false
		}
		if c := i << 1; u.above(c, y0) {
			i = c
			continue
		} else if c |= 1; u.above(c, y0) {
			i = c
			continue
		}
		for {
			if i == top {
				return true
			} else if i&1 == 0 && u.above(i|1, y0) {
				i |= 1
				break
			}
			i >>= 1
		}
	}
}
