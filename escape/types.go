// Package escape defines the kernel type and sentinel errors for the
// escape subpackage of github.com/katalvlaran/fractal.
package escape

import (
	"errors"
)

// Sentinel errors for escape operations.
var (
	// ErrLaneWidth indicates a requested lane width that is not positive.
	ErrLaneWidth = errors.New("escape: lane width must be positive")
	// ErrLaneMismatch indicates batch slices of differing lengths, or a
	// batch wider than the kernel's lane width.
	ErrLaneMismatch = errors.New("escape: batch slices must share one length not exceeding the lane width")
)

// Kernel evaluates escape-time iteration for batches of up to laneWidth
// coordinates at a time. Per-lane scratch (running z, escaped mask) is
// allocated once at construction and reused across batches, so a batch
// call performs no allocation.
//
// A Kernel is not safe for concurrent use; parallel callers each hold
// their own (see package sweep).
type Kernel struct {
	laneWidth int

	// Per-lane running state, reset on every EscapeBatch call.
	zr, zi  []float64
	escaped []bool
}
