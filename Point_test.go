package Go_PST

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBetterY(t *testing.T) {
	assert.True(t, Point[float64]{5, 2}.BetterY(Point[float64]{1, 1}))
	assert.True(t, Point[float64]{1, 2}.BetterY(Point[float64]{3, 2}))
	assert.False(t, Point[float64]{3, 2}.BetterY(Point[float64]{1, 2}))
	assert.False(t, Point[float64]{1, 2}.BetterY(Point[float64]{1, 2}))
}

func TestFound(t *testing.T) {
	assert.True(t, Found(Point[float32]{-3, 7}))
	for _, s := range [][2]int{{1, -1}, {-1, -1}, {1, 1}, {-1, 1}} {
		assert.False(t, Found(Sentinel[float32](s[0], s[1])))
		assert.False(t, Found(Sentinel[float64](s[0], s[1])))
	}
	assert.True(t, Point[float64]{math.NaN(), 0}.IsNaN())
	assert.False(t, Point[float64]{math.Inf(1), 0}.IsNaN())
}

func TestNudge(t *testing.T) {
	assert.Equal(t, math.Nextafter(1, 2), NextUp(1.0))
	assert.Equal(t, math.Nextafter(1, 0), NextDown(1.0))
	assert.Equal(t, math.Nextafter32(1, 2), NextUp(float32(1)))
	assert.Equal(t, math.Nextafter32(1, 0), NextDown(float32(1)))
	assert.Greater(t, NextUp(float32(16777216)), float32(16777216))
	assert.Equal(t, math.Inf(1), NextUp(math.Inf(1)))
	assert.Equal(t, 3.0, OpenAbove(3.0, false))
	assert.Equal(t, 3.0, OpenBelow(3.0, false))
	assert.Less(t, OpenBelow(3.0, true), 3.0)
}

func TestQuadrant(t *testing.T) {
	assert.True(t, HasX(NE, 1.0, 1.0))
	assert.True(t, HasX(NW, 1.0, 1.0))
	assert.False(t, HasX(NE, 0.5, 1.0))
	assert.False(t, HasX(SW, 1.5, 1.0))
	assert.True(t, SE.South() && !SE.West())
	assert.Equal(t, "NW", NW.String())
	assert.Equal(t, "Quadrant(?)", Quadrant(9).String())
}
