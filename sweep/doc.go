// Package sweep evaluates escape-time counts for every cell of a grid,
// decomposing rows into lane batches and distributing rows across
// workers.
//
// 🚀 What is a sweep?
//
//	One full evaluation pass over a rectangle of the complex plane:
//	every grid cell is mapped to a coordinate, iterated under z ← z² + c,
//	and its escape count written into the cell. The populated grid is
//	the finished numeric image a renderer consumes.
//
// ✨ Key features:
//   - one entry point: Evaluate(Config, Bounds) → *grid.Grid
//   - two execution policies: Sequential and Parallel (fork-join over
//     contiguous, disjoint row ranges)
//   - lane-batched rows via escape.Kernel, remainder batches included
//   - lane width and worker count are performance knobs only: every
//     policy and every lane width produces a bit-identical grid
//   - optional per-worker CPU pinning on Linux (Config.PinWorkers)
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/fractal/sweep"
//
//	cfg := sweep.DefaultConfig(1024, 1536)
//	b := grid.Bounds{MinX: -2, MaxX: 0.6, MinY: -1.5, MaxY: 1.5}
//
//	g, err := sweep.Evaluate(cfg, b)
//	if err != nil {
//	  // handle ErrInvalidConfig
//	}
//
// Concurrency model:
//
//	The parallel policy forks Config.Workers goroutines once per call
//	and joins them on a single barrier. Each worker owns a contiguous
//	row range exclusively and carries its own kernel scratch, so the
//	grid buffer needs no locks and the hot loop performs no allocation
//	and touches no atomics. No ordering is guaranteed between rows of
//	different workers; the call returns only after every worker is done.
//
// Performance:
//
//   - Time:   O(H×W×maxIter) worst case, divided across workers.
//   - Memory: O(H×W) for the grid plus O(laneWidth) scratch per worker.
//
// Errors:
//
//   - ErrInvalidConfig: the configuration failed validation. There are
//     no other failure modes: the kernel is pure arithmetic over finite
//     inputs, and Evaluate either returns a fully populated grid or no
//     grid at all.
package sweep
