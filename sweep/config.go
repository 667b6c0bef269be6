// Package sweep defines the evaluation configuration, execution
// policies and sentinel errors for the sweep subpackage of
// github.com/katalvlaran/fractal.
package sweep

import (
	"errors"
	"fmt"
	"runtime"
)

// Sentinel errors for sweep operations.
var (
	// ErrInvalidConfig indicates an evaluation configuration that failed
	// validation. Validation details are wrapped around this sentinel, so
	// errors.Is(err, ErrInvalidConfig) always identifies the kind.
	ErrInvalidConfig = errors.New("sweep: invalid evaluation config")
	// ErrRowWidth indicates a destination row slice that does not span
	// the mapper's full width.
	ErrRowWidth = errors.New("sweep: destination row must span the grid width")
)

// Policy selects how rows are scheduled across workers.
type Policy int

const (
	// Sequential evaluates rows one at a time on the calling goroutine.
	Sequential Policy = iota
	// Parallel distributes contiguous row ranges across Config.Workers
	// goroutines, fork-joined once per Evaluate call.
	Parallel
)

// Default configuration values. DefaultConfig is the single source of
// truth for zero-config behavior; these constants document it.
const (
	// DefaultMaxIter bounds the escape iteration budget per cell.
	DefaultMaxIter = 100
	// DefaultLaneWidth is the batch width handed to escape.Kernel.
	// Eight lanes of float64 fill one 512-bit vector register.
	DefaultLaneWidth = 8
)

// Config collects every parameter of one evaluation pass. It is
// validated once, synchronously, at the start of Evaluate; a Config that
// passes validation cannot fail later.
type Config struct {
	// Height and Width are the grid dimensions in cells. Both positive.
	Height, Width int

	// MaxIter is the per-cell iteration budget. Positive.
	MaxIter int

	// LaneWidth is the batch width for lane-parallel kernel evaluation.
	// Positive and at most Width. Affects performance only: the produced
	// grid is identical for every legal value.
	LaneWidth int

	// Workers is the number of parallel workers under the Parallel
	// policy. At least 1. Ignored by Sequential.
	Workers int

	// Policy selects Sequential or Parallel row scheduling.
	Policy Policy

	// PinWorkers pins each parallel worker's OS thread to a CPU on
	// platforms that support it (best effort, Linux only). Performance
	// knob; never affects results.
	PinWorkers bool
}

// DefaultConfig returns a Config for the given dimensions with
// documented defaults: DefaultMaxIter iterations, DefaultLaneWidth
// lanes, one worker per logical CPU, Parallel policy, no pinning.
func DefaultConfig(height, width int) Config {
	return Config{
		Height:    height,
		Width:     width,
		MaxIter:   DefaultMaxIter,
		LaneWidth: DefaultLaneWidth,
		Workers:   runtime.NumCPU(),
		Policy:    Parallel,
	}
}

// Validate checks internal consistency of the Config. Every violation
// wraps ErrInvalidConfig with a detail message.
// Complexity: O(1).
func (c Config) Validate() error {
	if c.Height < 1 {
		return fmt.Errorf("%w: height must be positive, got %d", ErrInvalidConfig, c.Height)
	}
	if c.Width < 1 {
		return fmt.Errorf("%w: width must be positive, got %d", ErrInvalidConfig, c.Width)
	}
	if c.MaxIter < 1 {
		return fmt.Errorf("%w: max iterations must be positive, got %d", ErrInvalidConfig, c.MaxIter)
	}
	if c.LaneWidth < 1 {
		return fmt.Errorf("%w: lane width must be positive, got %d", ErrInvalidConfig, c.LaneWidth)
	}
	if c.LaneWidth > c.Width {
		return fmt.Errorf("%w: lane width %d exceeds grid width %d", ErrInvalidConfig, c.LaneWidth, c.Width)
	}
	if c.Workers < 1 {
		return fmt.Errorf("%w: worker count must be at least 1, got %d", ErrInvalidConfig, c.Workers)
	}
	if c.Policy != Sequential && c.Policy != Parallel {
		return fmt.Errorf("%w: unknown policy %d", ErrInvalidConfig, c.Policy)
	}

	return nil
}
