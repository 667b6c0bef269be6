package escape

// Iterate — scalar escape-time iteration.
//
// Description:
//
//	Starting from z = c = (cr, ci), repeatedly applies z ← z² + c and
//	returns the first 0-indexed step at which |z|² > 4, or maxIter when
//	the orbit stays bounded for the whole budget.
//
// Algorithm Outline:
//  1. z ← c.
//  2. For i = 0..maxIter-1:
//     if zr² + zi² > 4, return i
//     (zr, zi) ← (zr² − zi² + cr, 2·zr·zi + ci)
//  3. Return maxIter.
//
// The squared norm is compared against 4 (|z| > 2 squared) so that the
// hot loop never takes a square root; the comparison is exact.
//
// Complexity:
//
//	Time  = O(maxIter) worst case
//	Memory = O(1)
//
// Iterate is the reference semantics for the whole library: the batched
// kernel and every scheduling policy must agree with it lane for lane.
func Iterate(cr, ci float64, maxIter int) int {
	zr, zi := cr, ci
	for i := 0; i < maxIter; i++ {
		zr2, zi2 := zr*zr, zi*zi
		if zr2+zi2 > 4 {
			return i
		}
		zi = 2*zr*zi + ci
		zr = zr2 - zi2 + cr
	}

	return maxIter
}
