package sweep

import (
	"github.com/katalvlaran/fractal/escape"
	"github.com/katalvlaran/fractal/grid"
)

// RowEvaluator evaluates complete grid rows, one lane batch at a time.
// It owns a kernel plus coordinate scratch sized once at construction,
// so evaluating a row performs no allocation. A RowEvaluator is not safe
// for concurrent use; each worker carries its own.
type RowEvaluator struct {
	mapper  grid.Mapper
	kernel  *escape.Kernel
	maxIter int

	// Per-batch coordinate scratch, laneWidth wide.
	cr []float64
	ci []float64
}

// NewRowEvaluator builds a RowEvaluator for the given mapper. Returns
// escape.ErrLaneWidth when laneWidth is not positive. laneWidth wider
// than the mapper is legal here (the whole row is then one narrow
// batch); Config.Validate enforces the stricter laneWidth ≤ width rule
// for the public entry point.
// Complexity: O(laneWidth) time and memory.
func NewRowEvaluator(m grid.Mapper, laneWidth, maxIter int) (*RowEvaluator, error) {
	k, err := escape.NewKernel(laneWidth)
	if err != nil {
		return nil, err
	}

	return &RowEvaluator{
		mapper:  m,
		kernel:  k,
		maxIter: maxIter,
		cr:      make([]float64, laneWidth),
		ci:      make([]float64, laneWidth),
	}, nil
}

// EvaluateRow fills dst with the escape counts of one grid row.
//
// The row's width columns are partitioned into consecutive batches of
// the kernel's lane width; the final batch may be narrower (width mod
// laneWidth lanes) and runs through the same kernel with the unused
// lanes simply absent. Coordinates are produced by the mapper cell by
// cell, so the counts are bit-identical for every lane width.
//
// Returns ErrRowWidth when dst does not span the mapper's width.
// Complexity: O(width × maxIter) worst case, zero allocations.
func (e *RowEvaluator) EvaluateRow(row int, dst []int) error {
	width := e.mapper.Width()
	if len(dst) != width {
		return ErrRowWidth
	}

	laneWidth := e.kernel.LaneWidth()
	im := e.mapper.Imag(row)

	for start := 0; start < width; start += laneWidth {
		n := laneWidth
		if start+n > width {
			n = width - start // remainder batch
		}
		for i := 0; i < n; i++ {
			e.cr[i] = e.mapper.Real(start + i)
			e.ci[i] = im
		}
		if err := e.kernel.EscapeBatch(e.cr[:n], e.ci[:n], e.maxIter, dst[start:start+n]); err != nil {
			return err
		}
	}

	return nil
}
