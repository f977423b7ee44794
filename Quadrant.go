package Go_PST

// Quadrant of the plane relative to a corner (x0,y0). North means y>=y0, East means x>=x0.
type Quadrant uint8

const (
	NE Quadrant = iota
	NW
	SE
	SW
)

// West reports whether the quadrant lies at or left of x0.
func (q Quadrant) West() bool {
	return q == NW || q == SW
}

// South reports whether the quadrant lies at or below y0.
func (q Quadrant) South() bool {
	return q == SE || q == SW
}

// HasX reports whether x lies on q's side of x0, boundary included.
func HasX[T Scalar](q Quadrant, x, x0 T) bool {
	if q.West() {
		return x <= x0
	}
	return x >= x0
}

func (q Quadrant) String() string {
	switch q {
	case NE:
		return "NE"
	case NW:
		return "NW"
	case SE:
		return "SE"
	case SW:
		return "SW"
	}
	return "Quadrant(?)"
}
