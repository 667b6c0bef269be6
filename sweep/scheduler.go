package sweep

import (
	"runtime"
	"sync"

	"github.com/katalvlaran/fractal/grid"
)

// rowSpan is a half-open contiguous range of grid rows [start, end)
// owned exclusively by one worker for the duration of a call.
type rowSpan struct {
	start, end int
}

// partitionRows splits [0, height) into at most workers contiguous,
// disjoint, non-empty spans whose sizes differ by at most one. Together
// the spans cover every row exactly once; when workers > height, only
// height spans are produced.
// Complexity: O(workers).
func partitionRows(height, workers int) []rowSpan {
	if workers > height {
		workers = height
	}
	spans := make([]rowSpan, 0, workers)
	base := height / workers
	extra := height % workers // first `extra` spans take one more row
	start := 0
	for w := 0; w < workers; w++ {
		size := base
		if w < extra {
			size++
		}
		spans = append(spans, rowSpan{start: start, end: start + size})
		start += size
	}

	return spans
}

// Evaluate runs one full evaluation pass: every cell of a
// Height×Width grid is mapped into bounds and iterated under z ← z² + c,
// and its escape count stored. The entry point of the library.
//
// Policy selection:
//   - Sequential: rows are evaluated in order on the calling goroutine.
//   - Parallel: rows are split into contiguous disjoint spans, one per
//     worker, forked together and joined on a single barrier.
//
// Both policies, and every legal LaneWidth and Workers value, produce
// bit-identical grids; re-running with identical inputs is idempotent.
//
// Returns ErrInvalidConfig (wrapped with detail) when cfg fails
// validation; no other failure mode exists.
//
// Complexity: O(H×W×MaxIter) worst case; Memory O(H×W).
func Evaluate(cfg Config, b grid.Bounds) (*grid.Grid, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	g, err := grid.NewGrid(cfg.Height, cfg.Width)
	if err != nil {
		return nil, err
	}
	m := grid.NewMapper(b, cfg.Height, cfg.Width)

	if cfg.Policy == Sequential {
		err = runSequential(cfg, m, g)
	} else {
		err = runParallel(cfg, m, g)
	}
	if err != nil {
		return nil, err
	}

	return g, nil
}

// runSequential evaluates all rows in order with a single evaluator.
func runSequential(cfg Config, m grid.Mapper, g *grid.Grid) error {
	ev, err := NewRowEvaluator(m, cfg.LaneWidth, cfg.MaxIter)
	if err != nil {
		return err
	}
	for row := 0; row < cfg.Height; row++ {
		if err = ev.EvaluateRow(row, g.Row(row)); err != nil {
			return err
		}
	}

	return nil
}

// runParallel forks one goroutine per row span and joins them on a
// single barrier. Spans are disjoint, so workers write non-aliasing
// grid rows and the buffer needs no synchronization beyond the join.
// Each worker owns a private RowEvaluator: no shared mutable state, no
// locks, no atomics, no allocation inside the row loop.
func runParallel(cfg Config, m grid.Mapper, g *grid.Grid) error {
	spans := partitionRows(cfg.Height, cfg.Workers)
	errs := make([]error, len(spans))

	var wg sync.WaitGroup
	for w, span := range spans {
		wg.Add(1)
		go func(w int, span rowSpan) {
			defer wg.Done()
			if cfg.PinWorkers {
				// Best effort: pinning narrows scheduler migration but is
				// irrelevant to correctness, so a failure is ignored.
				runtime.LockOSThread()
				defer runtime.UnlockOSThread()
				_ = pinThread(w % runtime.NumCPU())
			}
			ev, err := NewRowEvaluator(m, cfg.LaneWidth, cfg.MaxIter)
			if err != nil {
				errs[w] = err

				return
			}
			for row := span.start; row < span.end; row++ {
				if err = ev.EvaluateRow(row, g.Row(row)); err != nil {
					errs[w] = err

					return
				}
			}
		}(w, span)
	}
	wg.Wait()

	// A validated Config cannot produce evaluator errors; kept for the
	// invariant that Evaluate never returns a partially filled grid.
	for _, err := range errs {
		if err != nil {
			return err
		}
	}

	return nil
}
