// Package grid defines the core types and sentinel errors for the
// grid subpackage of github.com/katalvlaran/fractal.
package grid

import (
	"errors"
)

// Sentinel errors for grid operations.
var (
	// ErrEmptyGrid indicates requested dimensions with no rows or no columns.
	ErrEmptyGrid = errors.New("grid: dimensions must have at least one row and one column")
)

// Grid owns a contiguous, row-major buffer of per-cell iteration counts.
// Dimensions are fixed at construction; the buffer length is always
// Height()*Width(). Cell (row, col) lives at index row*Width()+col.
type Grid struct {
	height int
	width  int
	cells  []int
}

// Bounds describes the sampled rectangle of the complex plane:
// real parts span [MinX, MaxX), imaginary parts span [MinY, MaxY).
// Bounds is immutable for the duration of one evaluation.
type Bounds struct {
	MinX, MaxX float64
	MinY, MaxY float64
}

// Mapper converts grid cells to complex-plane coordinates for a fixed
// Bounds and grid dimensions. It is a pure value; copying is cheap.
type Mapper struct {
	bounds Bounds
	width  int
	height int
}
