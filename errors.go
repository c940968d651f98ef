package dbscan

import (
	"errors"
	"fmt"
)

// Sentinel errors returned synchronously from Cluster. Callers can test with
// errors.Is against these, and read the wrapped message for detail.
var (
	// ErrInvalidParam indicates a Config field is out of its valid range.
	ErrInvalidParam = errors.New("dbscan: invalid parameter")

	// ErrAllocation indicates the grid or neighbor storage could not be
	// sized, e.g. the product of per-dimension cell counts overflows.
	ErrAllocation = errors.New("dbscan: allocation failure")
)

// invalidParamf wraps ErrInvalidParam with a formatted detail message.
func invalidParamf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidParam, fmt.Sprintf(format, args...))
}

// allocationFailuref wraps ErrAllocation with a formatted detail message.
func allocationFailuref(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrAllocation, fmt.Sprintf(format, args...))
}

// internalInvariantError marks a violated internal invariant: a state that
// indicates a bug in this package rather than bad caller input. Such states
// are unreachable in a correct implementation and are fatal -- they panic
// rather than return a corrupt Result. The only check that raises it is
// classify's check that no label is left unvisited after finalize;
// union-find cycles are not detected.
type internalInvariantError struct {
	msg string
}

func (e *internalInvariantError) Error() string {
	return "dbscan: internal invariant violated: " + e.msg
}

// invariantViolation panics with an internalInvariantError.
func invariantViolation(format string, args ...any) {
	panic(&internalInvariantError{msg: fmt.Sprintf(format, args...)})
}
