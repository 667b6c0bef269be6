// Package grid holds the 2D iteration-count buffer produced by an
// escape-time sweep, plus the coordinate mapping from grid cells to
// points of the complex plane.
//
// What:
//
//   - Grid wraps a contiguous row-major []int of per-cell iteration counts
//     with fixed Height×Width dimensions.
//   - Bounds describes the sampled rectangle of the complex plane.
//   - Mapper converts a (row, col) cell index to its complex coordinate
//     under given Bounds and dimensions.
//
// Why:
//
//   - Fractal rendering: a renderer consumes a populated Grid as a
//     completed numeric image.
//   - Benchmarking: a timing harness re-evaluates into fresh Grids and
//     compares results cell by cell.
//
// Complexity:
//
//   - NewGrid: O(W×H) time and memory (single allocation).
//   - At / Set / Index / Coordinate / InBounds: O(1).
//   - Row: O(1) (returns a sub-slice of the backing buffer).
//   - Clone / Equal: O(W×H).
//
// Errors:
//
//   - ErrEmptyGrid: requested dimensions have no rows or no columns.
//
// A Grid is written exactly once per evaluation pass and read afterwards;
// it carries no synchronization of its own. Concurrent writers must own
// disjoint row ranges (see package sweep).
package grid
