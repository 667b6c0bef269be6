// Package escape implements the escape-time iteration z ← z² + c, both
// for a single point and for a fixed-width batch of lanes evaluated in
// lock-step.
//
// 🚀 What is escape time?
//
//	The number of iterations before a point's orbit under z ← z² + c
//	exceeds magnitude 2. It is the core quantity behind Mandelbrot and
//	Julia set rendering: painting each pixel by its escape count yields
//	the familiar fractal images.
//
// ✨ Key features:
//   - scalar path: Iterate(cr, ci, maxIter) — the reference semantics
//   - batched path: Kernel.EscapeBatch — lane-parallel iteration with
//     per-lane escaped masks and early group exit
//   - squared-norm test (|z|² > 4) — no square root in the hot loop
//   - zero allocations per batch: scratch lives in the Kernel value
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/fractal/escape"
//
//	// one point
//	n := escape.Iterate(-0.5, 0.5, 100)
//
//	// a batch of lanes
//	k, _ := escape.NewKernel(8)
//	out := make([]int, len(cr))
//	_ = k.EscapeBatch(cr, ci, 100, out)
//
// Semantics:
//
//	Iteration starts at z = c. The returned count is the first 0-indexed
//	step at which |z|² > 4, or maxIter when the orbit never escapes
//	within the budget. The batched path reproduces the scalar path
//	bit-for-bit on every lane; batching is a performance strategy, never
//	a semantic one.
//
// Performance:
//
//   - Time:   O(lanes × maxIter) worst case; the group loop exits as
//     soon as every lane has escaped.
//   - Memory: O(laneWidth) scratch, allocated once at NewKernel.
//
// Errors:
//
//   - ErrLaneWidth: requested lane width is not positive.
//   - ErrLaneMismatch: batch slices disagree in length or exceed the
//     kernel's lane width.
package escape
