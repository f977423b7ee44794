package Trees

import (
	"math"
	"math/rand"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/petar/GoLLRB/llrb"

	Go_PST "github.com/g-m-twostay/go-pst"
)

type P = Go_PST.Point[float64]

var rg = *rand.New(rand.NewSource(0))

// randPoints returns n points with x a permutation of 0..n-1 and y in [0,yRange), so that
// ties on y are common.
func randPoints(n, yRange int) []P {
	ps := make([]P, n)
	for i, x := range rg.Perm(n) {
		ps[i] = P{X: float64(x), Y: float64(rg.Intn(yRange))}
	}
	return ps
}

// xItem orders points by x in an llrb.
type xItem P

func (a xItem) Less(b llrb.Item) bool {
	return a.X < b.(xItem).X
}

// oracle answers every query by scanning the points in an x range.
type oracle struct {
	*llrb.LLRB
}

func newOracle(ps []P) oracle {
	o := oracle{llrb.New()}
	for _, p := range ps {
		o.ReplaceOrInsert(xItem(p))
	}
	return o
}

func (o oracle) remove(p P) {
	o.Delete(xItem(p))
}

// scan calls f on the points with x in [x0,x1], in x order.
func (o oracle) scan(x0, x1 float64, f func(P)) {
	o.AscendGreaterOrEqual(xItem{X: x0}, func(i llrb.Item) bool {
		p := P(i.(xItem))
		if p.X > x1 {
			return false
		}
		f(p)
		return true
	})
}

func (o oracle) highest(x0, x1, y0 float64, best P) P {
	found := false
	o.scan(x0, x1, func(p P) {
		if p.Y >= y0 && (!found || p.BetterY(best)) {
			best, found = p, true
		}
	})
	return best
}

func (o oracle) largestY(q Go_PST.Quadrant, x0, y0 float64) P {
	if q.West() {
		return o.highest(math.Inf(-1), x0, y0, Go_PST.Sentinel[float64](-1, -1))
	}
	return o.highest(x0, math.Inf(1), y0, Go_PST.Sentinel[float64](1, -1))
}

func (o oracle) extremeX(q Go_PST.Quadrant, x0, y0 float64) P {
	var best P
	first := func(i llrb.Item) bool {
		if p := P(i.(xItem)); p.Y >= y0 {
			best = p
			return false
		}
		return true
	}
	if q.West() {
		best = Go_PST.Sentinel[float64](-1, 1)
		o.DescendLessOrEqual(xItem{X: x0}, first)
	} else {
		best = Go_PST.Sentinel[float64](1, 1)
		o.AscendGreaterOrEqual(xItem{X: x0}, first)
	}
	return best
}

func (o oracle) largestY3(x0, x1, y0 float64) P {
	return o.highest(x0, x1, y0, Go_PST.Sentinel[float64](1, -1))
}

// enum returns the x of every point in the box; x must be small non negative integers.
func (o oracle) enum(x0, x1, y0 float64) *roaring.Bitmap {
	bm := roaring.New()
	o.scan(x0, x1, func(p P) {
		if p.Y >= y0 {
			bm.Add(uint32(p.X))
		}
	})
	return bm
}

// query is a random query corner and box.
type query struct {
	x0, x1, y0 float64
}

func randQueries(k, n, yRange int) []query {
	qs := make([]query, k)
	for i := range qs {
		a, b := rg.Intn(n+2)-1, rg.Intn(n+2)-1
		if a > b {
			a, b = b, a
		}
		qs[i] = query{float64(a), float64(b), float64(rg.Intn(yRange+2) - 1)}
	}
	return qs
}
