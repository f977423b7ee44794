package Trees

import (
	Go_PST "github.com/g-m-twostay/go-pst"
)

// LargestYInNE returns the best point with x>=x0 and y>=y0, or (+Inf,-Inf) if there is none.
// If open is true the bounds are strict. O(log n).
func (u *MaxPST[T]) LargestYInNE(x0, y0 T, open bool) Go_PST.Point[T] {
	return u.largestY(Go_PST.NE, Go_PST.OpenAbove(x0, open), Go_PST.OpenAbove(y0, open))
}

// LargestYInNW returns the best point with x<=x0 and y>=y0, or (-Inf,-Inf) if there is none.
// If open is true the bounds are strict. O(log n).
func (u *MaxPST[T]) LargestYInNW(x0, y0 T, open bool) Go_PST.Point[T] {
	return u.largestY(Go_PST.NW, Go_PST.OpenBelow(x0, open), Go_PST.OpenAbove(y0, open))
}

// SmallestXInNE returns the point with the smallest x among those with x>=x0 and y>=y0, or
// (+Inf,+Inf) if there is none. If open is true the bounds are strict. O(log n).
func (u *MaxPST[T]) SmallestXInNE(x0, y0 T, open bool) Go_PST.Point[T] {
	return u.extremeXIn(Go_PST.NE, Go_PST.OpenAbove(x0, open), Go_PST.OpenAbove(y0, open))
}

// LargestXInNW returns the point with the largest x among those with x<=x0 and y>=y0, or
// (-Inf,+Inf) if there is none. If open is true the bounds are strict. O(log n).
func (u *MaxPST[T]) LargestXInNW(x0, y0 T, open bool) Go_PST.Point[T] {
	return u.extremeXIn(Go_PST.NW, Go_PST.OpenBelow(x0, open), Go_PST.OpenAbove(y0, open))
}

// outerInner splits the children of a node by q: the outer child is the one whose subtree
// reaches farther into q, i.e. the right one for eastern quadrants.
func outerInner(q Go_PST.Quadrant, l, r int) (outer, inner int) {
	if q.West() {
		return l, r
	}
	return r, l
}

func (u *MaxPST[T]) largestY(q Go_PST.Quadrant, x0, y0 T) Go_PST.Point[T] {
	best := 0
	for p := root; p != 0 && !u.Empty(); {
		cur := u.at(p)
		if cur.Y < y0 || u.better(best, p) == best {
			break // nothing below p can beat best.
		} else if Go_PST.HasX(q, cur.X, x0) {
			best = p
			break
		}
		l, r := u.children(p)
		if l == 0 || r == 0 {
			p = l | r
			continue
		}
		switch outer, inner := outerInner(q, l, r); {
		case !Go_PST.HasX(q, u.at(outer).X, x0):
			// the inner subtree lies entirely beyond outer.
			p = outer
		case Go_PST.HasX(q, u.at(inner).X, x0):
			// both roots are in range and each is the best of its subtree.
			p = u.better(l, r)
		default:
			// the outer subtree is in range, so only its root matters.
			if u.at(outer).Y >= y0 {
				best = u.better(best, outer)
			}
			p = inner
		}
	}
	if best == 0 {
		if q.West() {
			return Go_PST.Sentinel[T](-1, -1)
		}
		return Go_PST.Sentinel[T](1, -1)
	}
	return *u.at(best)
}

// nearer reports whether x is closer to the boundary x0 than x1 from inside q, i.e. smaller
// for eastern quadrants.
func nearer[T Go_PST.Scalar](q Go_PST.Quadrant, x, x1 T) bool {
	if q.West() {
		return x > x1
	}
	return x < x1
}

// extremeXIn finds the point of q closest to the vertical line x=x0.
//
// Two frontier nodes p and q are kept on the same level; the answer is either already in best
// or in one of their subtrees. Nodes of a level are ordered by x, so given their children in x
// order (mirrored for western quadrants), only two of them can matter: the last one outside q's
// x range, whose subtree may still reach in, and the first one inside it, whose subtree may hold
// points closer to x0 than itself. Children below y0 take their subtrees with them.
func (u *MaxPST[T]) extremeXIn(q Go_PST.Quadrant, x0, y0 T) Go_PST.Point[T] {
	best := 0
	if !u.Empty() && u.at(root).Y >= y0 {
		var front [2]int // outside, inside; 0 when inactive.
		if Go_PST.HasX(q, u.at(root).X, x0) {
			best, front[1] = root, root
		} else {
			front[0] = root
		}
		for front != [2]int{} {
			var kids [4]int
			n := 0
			for _, f := range front {
				if f == 0 {
					continue
				}
				l, r := u.children(f)
				if q.West() {
					l, r = r, l
				}
				for _, c := range [2]int{l, r} {
					if c != 0 && u.at(c).Y >= y0 {
						kids[n] = c
						n++
					}
				}
			}
			front = [2]int{}
			for _, c := range kids[:n] {
				if x := u.at(c).X; Go_PST.HasX(q, x, x0) {
					if best == 0 || nearer(q, x, u.at(best).X) {
						best = c
					}
					front[1] = c
					break
				}
				front[0] = c
			}
		}
	}
	if best == 0 {
		if q.West() {
			return Go_PST.Sentinel[T](-1, 1)
		}
		return Go_PST.Sentinel[T](1, 1)
	}
	return *u.at(best)
}
