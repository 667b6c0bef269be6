package sweep_test

import (
	"testing"

	"github.com/katalvlaran/fractal/escape"
	"github.com/katalvlaran/fractal/grid"
	"github.com/katalvlaran/fractal/sweep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// grid4x4Bounds is the reference viewport shared by scheduler tests.
func grid4x4Bounds() grid.Bounds {
	return grid.Bounds{MinX: -2, MaxX: 0.6, MinY: -1.5, MaxY: 1.5}
}

// TestEvaluate_SequentialMatchesParallel verifies the two policies
// produce bit-identical grids across several shapes and worker counts.
func TestEvaluate_SequentialMatchesParallel(t *testing.T) {
	b := grid4x4Bounds()

	for _, tc := range []struct{ h, w, workers int }{
		{h: 4, w: 4, workers: 2},
		{h: 16, w: 16, workers: 4},
		{h: 17, w: 13, workers: 3},
		{h: 5, w: 32, workers: 8},
		{h: 1, w: 8, workers: 4},
	} {
		seqCfg := sweep.Config{Height: tc.h, Width: tc.w, MaxIter: 80, LaneWidth: 4, Workers: 1, Policy: sweep.Sequential}
		if seqCfg.LaneWidth > tc.w {
			seqCfg.LaneWidth = tc.w
		}
		parCfg := seqCfg
		parCfg.Policy = sweep.Parallel
		parCfg.Workers = tc.workers

		seq, err := sweep.Evaluate(seqCfg, b)
		require.NoError(t, err, "sequential %dx%d", tc.h, tc.w)
		par, err := sweep.Evaluate(parCfg, b)
		require.NoError(t, err, "parallel %dx%d workers=%d", tc.h, tc.w, tc.workers)

		assert.True(t, seq.Equal(par), "%dx%d workers=%d: policies must agree bit for bit", tc.h, tc.w, tc.workers)
	}
}

// TestEvaluate_LaneWidthIsPerformanceOnly verifies dividing and
// non-dividing lane widths all produce identical grids over a width
// that none of them needs to divide evenly.
func TestEvaluate_LaneWidthIsPerformanceOnly(t *testing.T) {
	b := grid4x4Bounds()
	base := sweep.Config{Height: 9, Width: 7, MaxIter: 64, LaneWidth: 1, Workers: 1, Policy: sweep.Sequential}

	ref, err := sweep.Evaluate(base, b)
	require.NoError(t, err, "lane width 1 reference")

	for _, lw := range []int{2, 3, 4, 5, 6, 7} {
		cfg := base
		cfg.LaneWidth = lw
		g, err := sweep.Evaluate(cfg, b)
		require.NoError(t, err, "lane width %d", lw)
		assert.True(t, ref.Equal(g), "lane width %d must not change the grid", lw)
	}
}

// TestEvaluate_CornersMatchScalarIteration pins the concrete 4×4
// scenario: corner cells must equal direct scalar iteration at the
// mapped coordinates.
func TestEvaluate_CornersMatchScalarIteration(t *testing.T) {
	b := grid4x4Bounds()
	cfg := sweep.Config{Height: 4, Width: 4, MaxIter: 50, LaneWidth: 2, Workers: 2, Policy: sweep.Parallel}

	g, err := sweep.Evaluate(cfg, b)
	require.NoError(t, err)

	m := grid.NewMapper(b, cfg.Height, cfg.Width)
	for _, cell := range [][2]int{{0, 0}, {cfg.Height - 1, cfg.Width - 1}} {
		re, im := m.Point(cell[0], cell[1])
		want := escape.Iterate(re, im, cfg.MaxIter)
		assert.Equal(t, want, g.At(cell[0], cell[1]), "cell (%d,%d) vs scalar iteration at (%v,%v)", cell[0], cell[1], re, im)
	}
}

// TestEvaluate_EveryCellMatchesScalar sweeps a small grid and compares
// every cell against the scalar reference, covering remainder batches
// and uneven worker splits at once.
func TestEvaluate_EveryCellMatchesScalar(t *testing.T) {
	b := grid.Bounds{MinX: -2.2, MaxX: 1, MinY: -1.4, MaxY: 1.4}
	cfg := sweep.Config{Height: 11, Width: 13, MaxIter: 60, LaneWidth: 5, Workers: 3, Policy: sweep.Parallel}

	g, err := sweep.Evaluate(cfg, b)
	require.NoError(t, err)

	m := grid.NewMapper(b, cfg.Height, cfg.Width)
	for row := 0; row < cfg.Height; row++ {
		for col := 0; col < cfg.Width; col++ {
			re, im := m.Point(row, col)
			assert.Equal(t, escape.Iterate(re, im, cfg.MaxIter), g.At(row, col), "cell (%d,%d)", row, col)
		}
	}
}

// TestEvaluate_Idempotent verifies re-running with identical inputs
// yields identical grids.
func TestEvaluate_Idempotent(t *testing.T) {
	b := grid4x4Bounds()
	cfg := sweep.Config{Height: 8, Width: 8, MaxIter: 100, LaneWidth: 3, Workers: 4, Policy: sweep.Parallel}

	first, err := sweep.Evaluate(cfg, b)
	require.NoError(t, err)
	second, err := sweep.Evaluate(cfg, b)
	require.NoError(t, err)

	assert.True(t, first.Equal(second), "identical inputs must reproduce the grid")
}

// TestEvaluate_WorkersBeyondRows confirms worker counts far above the
// row count still cover the grid exactly once.
func TestEvaluate_WorkersBeyondRows(t *testing.T) {
	b := grid4x4Bounds()
	cfg := sweep.Config{Height: 2, Width: 8, MaxIter: 40, LaneWidth: 4, Workers: 16, Policy: sweep.Parallel}

	g, err := sweep.Evaluate(cfg, b)
	require.NoError(t, err)

	ref := cfg
	ref.Policy = sweep.Sequential
	want, err := sweep.Evaluate(ref, b)
	require.NoError(t, err)
	assert.True(t, want.Equal(g), "oversubscribed workers must not change the grid")
}

// TestEvaluate_PinWorkersSmoke runs the parallel policy with pinning
// enabled; pinning is best effort and must never alter results.
func TestEvaluate_PinWorkersSmoke(t *testing.T) {
	b := grid4x4Bounds()
	cfg := sweep.Config{Height: 8, Width: 8, MaxIter: 50, LaneWidth: 4, Workers: 2, Policy: sweep.Parallel, PinWorkers: true}

	pinned, err := sweep.Evaluate(cfg, b)
	require.NoError(t, err)

	cfg.PinWorkers = false
	plain, err := sweep.Evaluate(cfg, b)
	require.NoError(t, err)
	assert.True(t, plain.Equal(pinned), "pinning is invisible in the output")
}
