package Go_PST

import (
	"math"
	"unsafe"
)

// NextUp returns the smallest T greater than v. Turning a closed bound into an open one this
// way is exact for finite floats only; +Inf and NaN are returned unchanged.
func NextUp[T Scalar](v T) T {
	if unsafe.Sizeof(v) == 4 {
		return T(math.Nextafter32(float32(v), float32(math.Inf(1))))
	}
	return T(math.Nextafter(float64(v), math.Inf(1)))
}

// NextDown returns the largest T less than v. See NextUp.
func NextDown[T Scalar](v T) T {
	if unsafe.Sizeof(v) == 4 {
		return T(math.Nextafter32(float32(v), float32(math.Inf(-1))))
	}
	return T(math.Nextafter(float64(v), math.Inf(-1)))
}

// OpenAbove returns v stepped up when open is set, v otherwise. Used for lower bounds.
func OpenAbove[T Scalar](v T, open bool) T {
	if open {
		return NextUp(v)
	}
	return v
}

// OpenBelow returns v stepped down when open is set, v otherwise. Used for upper bounds.
func OpenBelow[T Scalar](v T, open bool) T {
	if open {
		return NextDown(v)
	}
	return v
}
