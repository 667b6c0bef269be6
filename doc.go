// Package fractal is an in-memory engine for escape-time fractal
// evaluation — from the scalar z ← z² + c iteration up to lane-batched,
// fork-join parallel sweeps over a full grid.
//
// 🚀 What is fractal?
//
//	A small, deterministic library that turns a rectangle of the complex
//	plane into a grid of per-cell escape counts:
//		• Scalar + batched kernels: per-lane masks, early group exit
//		• Row sweeps: lane batches with remainder handling
//		• Scheduling: sequential or fork-join parallel over disjoint rows
//		• Timing: a harness comparing policies on your hardware
//
// ✨ Why choose fractal?
//
//   - Bit-identical output – lane width, worker count and policy are
//     performance knobs only; every combination yields the same grid
//   - Allocation-free hot loops – kernels and evaluators carry
//     pre-sized scratch; the grid is one up-front buffer
//   - Lock-free parallelism – workers own disjoint row ranges, joined
//     on a single barrier
//   - Pure Go – no cgo; optional Linux CPU pinning via x/sys
//
// Under the hood, everything is organized under four subpackages:
//
//	grid/    — Grid buffer, Bounds, cell→plane Mapper
//	escape/  — scalar Iterate and the lane-batched Kernel
//	sweep/   — Config, RowEvaluator, policies and the Evaluate entry point
//	harness/ — wall-clock timing of Evaluate per policy
//
// Quick start:
//
//	cfg := sweep.DefaultConfig(1024, 1536)
//	b := grid.Bounds{MinX: -2, MaxX: 0.6, MinY: -1.5, MaxY: 1.5}
//	g, err := sweep.Evaluate(cfg, b)
//
// Each cell of g then holds the escape count of its mapped coordinate,
// ready for a renderer to color.
//
// Dive into examples/ for full walkthroughs, and each package's doc.go
// for contracts, complexity and error taxonomies.
//
//	go get github.com/katalvlaran/fractal
package fractal
