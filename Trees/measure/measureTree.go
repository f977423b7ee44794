package main

import (
	"fmt"
	"log/slog"
	"math"
	"math/rand"
	"os"
	"testing"

	Go_PST "github.com/g-m-twostay/go-pst"
	"github.com/g-m-twostay/go-pst/Trees"
)

var (
	bAddN = 1000000
	bDelN = bAddN
	bQryN = bDelN
)
var _R rand.Rand = *rand.New(rand.NewSource(0))

func create(b *testing.B, ps []Go_PST.Point[float64]) *Trees.MaxPST[float64] {
	b.Helper()
	for i, x := range _R.Perm(bAddN) {
		ps[i] = Go_PST.Point[float64]{X: float64(x), Y: float64(_R.Intn(bAddN))}
	}
	tree, err := Trees.New(ps, Trees.WithDynamic())
	if err != nil {
		b.Fatal(err)
	}
	return tree
}

var __r1 Go_PST.Point[float64]

// BenchmarkDelQry deletes bDelN tops, then runs bQryN 3-sided queries on what's left.
func BenchmarkDelQry(b *testing.B) {
	ps := make([]Go_PST.Point[float64], bAddN)
	b.ResetTimer()
	for range b.N {
		b.StopTimer()
		tree := create(b, ps)
		b.StartTimer()
		for range bDelN {
			__r1, _ = tree.DeleteTop()
		}
		for range bQryN {
			x0 := float64(_R.Intn(bAddN))
			__r1 = tree.LargestYIn3Sided(x0, x0+float64(_R.Intn(bAddN/16)), float64(_R.Intn(bAddN)), false)
		}
	}
}

const bNumSteps = 50

func main() {
	testing.Init()
	log := slog.New(slog.NewTextHandler(os.Stderr, nil))
	var cs []float64
	for i := 1; i < bNumSteps; i++ {
		bDelN = bAddN / bNumSteps * i
		bQryN = bAddN - bDelN
		br := testing.Benchmark(BenchmarkDelQry)
		cs = append(cs, float64(br.T.Milliseconds())/float64(br.N))
		log.Info("step", "i", i, "deleted", bDelN, "queries", bQryN, "ms/op", cs[len(cs)-1])
	}
	var sum float64 = 0
	for _, v := range cs {
		sum += v
	}
	avg := sum / float64(len(cs))
	fmt.Printf("average: %fms/op\n", avg)
	sum = 0
	for _, v := range cs {
		a := v - avg
		sum += a * a
	}
	fmt.Printf("stddev: %fms/op\n", math.Sqrt(sum/float64(len(cs))))
}
