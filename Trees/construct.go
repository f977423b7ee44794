package Trees

import (
	"cmp"
	"slices"

	Go_PST "github.com/g-m-twostay/go-pst"
)

// build arranges u.vs in place so that it's a heap on y and partitioned on x, using O(1) extra
// space and O(n log^2 n) time.
//
// The tree shape is the complete binary tree on n nodes, so the size of every subtree is known
// up front. Level by level, the unplaced points, sorted by x, are cut into one column per node of
// the level, each column as large as that node's subtree. A column's best point goes to its node
// and the rest is sorted again for the next level.
func (u *base[T]) build() error {
	n := len(u.vs)
	for i := range u.vs {
		if u.vs[i].IsNaN() {
			return &Go_PST.ErrInvalidCoordinate{Index: i, X: float64(u.vs[i].X), Y: float64(u.vs[i].Y)}
		}
	}
	u.sortX(root, n)
	for i := root + 1; i <= n; i++ {
		if u.at(i).X == u.at(i-1).X {
			return &Go_PST.ErrDuplicateX{X: float64(u.at(i).X)}
		}
	}
	if n == 0 {
		return nil
	}

	h := depth(n)
	a := n - (1<<h - 1) // nodes on the last level.
	for i := 0; i < h; i++ {
		w := 1 << i            // first node of level i, also the number of nodes on it.
		full := 1<<(h+1-i) - 1 // subtree whose last level is complete.
		short := 1<<(h-i) - 1  // subtree with nothing on the last level.
		k := a >> (h - i)      // nodes of level i with a full subtree, all on the left.
		for j := 0; j < k; j++ {
			lo := w + j*full
			u.swap(u.bestIn(lo, lo+full-1), w+j)
		}
		if k < w {
			// at most one subtree is partially filled, the rest are short.
			lo, part := w+k*full, a-k<<(h-i)+short
			u.swap(u.bestIn(lo, lo+part-1), w+k)
			for lo, j := lo+part, k+1; j < w; lo, j = lo+short, j+1 {
				u.swap(u.bestIn(lo, lo+short-1), w+j)
			}
		}
		u.sortX(w<<1, n)
	}
	return nil
}

// bestIn returns the node in [lo,hi] holding the best point.
func (u *base[T]) bestIn(lo, hi int) int {
	b := lo
	for i := lo + 1; i <= hi; i++ {
		if u.at(i).BetterY(*u.at(b)) {
			b = i
		}
	}
	return b
}

// sortX sorts nodes [lo,hi] by x.
func (u *base[T]) sortX(lo, hi int) {
	if lo < hi {
		slices.SortFunc(u.vs[lo-1:hi], func(a, b Go_PST.Point[T]) int {
			return cmp.Compare(a.X, b.X)
		})
	}
}
