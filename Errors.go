package Go_PST

import (
	"errors"
	"fmt"
)

var (
	// ErrUsage is wrapped by every error caused by calling an operation in a state that
	// doesn't allow it.
	ErrUsage = errors.New("invalid use")
	// ErrNotDynamic is returned by DeleteTop on a tree built without the dynamic option.
	ErrNotDynamic = fmt.Errorf("%w: tree is not dynamic", ErrUsage)
	// ErrEmpty is returned by DeleteTop on a tree with no members left.
	ErrEmpty = fmt.Errorf("%w: tree is empty", ErrUsage)
)

// ErrDuplicateX indicates two input points share an x coordinate.
type ErrDuplicateX struct {
	X float64
}

func (e *ErrDuplicateX) Error() string {
	return fmt.Sprintf("duplicate x coordinate: %v", e.X)
}

// ErrInvalidCoordinate indicates an input point with a NaN coordinate.
type ErrInvalidCoordinate struct {
	Index int
	X, Y  float64
}

func (e *ErrInvalidCoordinate) Error() string {
	return fmt.Sprintf("invalid coordinate at %d: (%v, %v)", e.Index, e.X, e.Y)
}

// ErrCorrupt is reported by Verify when a structural invariant doesn't hold at Node.
// It indicates a bug, not bad input.
type ErrCorrupt struct {
	Node   int
	Reason string
}

func (e *ErrCorrupt) Error() string {
	return fmt.Sprintf("corrupt tree at node %d: %s", e.Node, e.Reason)
}
