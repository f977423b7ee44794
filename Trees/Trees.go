package Trees

import Go_PST "github.com/g-m-twostay/go-pst"

// PST is the query surface of a max priority search tree as used by algorithms built on top of
// it, such as finding maximal empty rectangles among points.
//
// Queries that find nothing return a sentinel whose coordinates are infinite, pointing the way
// that keeps it a safe extreme for later comparisons, e.g. (+Inf,-Inf) for a highest point
// and (+Inf,+Inf) for a leftmost one. Use Go_PST.Found to tell them apart from real points.
// open makes every bound of a query strict. This is done by moving the bounds to the adjacent
// float, so it's exact only when all coordinates are finite.
type PST[T Go_PST.Scalar] interface {
	//LargestXInNW returns the rightmost point with x<=x0 and y>=y0.
	LargestXInNW(x0, y0 T, open bool) Go_PST.Point[T]
	//SmallestXInNE returns the leftmost point with x>=x0 and y>=y0.
	SmallestXInNE(x0, y0 T, open bool) Go_PST.Point[T]
	//LargestYIn3Sided returns the highest point in [x0,x1]x[y0,+Inf).
	LargestYIn3Sided(x0, x1, y0 T, open bool) Go_PST.Point[T]
	//DeleteTop removes the highest point. The tree must have been built dynamic.
	DeleteTop() (Go_PST.Point[T], error)
	//Empty reports whether there are no points left.
	Empty() bool
}

var _ PST[float64] = (*MaxPST[float64])(nil)
