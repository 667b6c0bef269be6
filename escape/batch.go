package escape

// NewKernel allocates a batched kernel with the given lane width.
// Returns ErrLaneWidth if laneWidth is not positive.
// Complexity: O(laneWidth) time and memory (one-time scratch allocation).
func NewKernel(laneWidth int) (*Kernel, error) {
	if laneWidth < 1 {
		return nil, ErrLaneWidth
	}

	return &Kernel{
		laneWidth: laneWidth,
		zr:        make([]float64, laneWidth),
		zi:        make([]float64, laneWidth),
		escaped:   make([]bool, laneWidth),
	}, nil
}

// LaneWidth returns the maximum batch width the kernel accepts.
// Complexity: O(1).
func (k *Kernel) LaneWidth() int { return k.laneWidth }

// EscapeBatch evaluates escape counts for up to LaneWidth coordinates in
// lock-step, writing one count per lane into out. A narrower batch (the
// row remainder) simply leaves the upper lanes untouched.
//
// Algorithm Outline:
//  1. Seed every lane: z ← c, escaped ← false, out ← maxIter.
//  2. For iter = 0..maxIter-1, while any lane is still active:
//     for each non-escaped lane i:
//     if zr[i]² + zi[i]² > 4 — mark lane escaped, out[i] = iter
//     else advance (zr[i], zi[i]) ← (zr² − zi² + cr, 2·zr·zi + ci).
//  3. The group loop exits as soon as the last lane escapes.
//
// The early group exit in step 3 is purely a performance measure: a lane
// is frozen the moment it escapes, so running the loop to the full
// budget would produce identical counts, just slower. Lanes never
// under- or over-count relative to the scalar Iterate.
//
// Returns ErrLaneMismatch when cr, ci and out disagree in length or the
// batch is wider than the kernel's lane width.
//
// Complexity:
//
//	Time  = O(n × maxIter) worst case, n = len(cr)
//	Memory = O(1) (scratch preallocated in the Kernel)
func (k *Kernel) EscapeBatch(cr, ci []float64, maxIter int, out []int) error {
	n := len(cr)
	if len(ci) != n || len(out) != n || n > k.laneWidth {
		return ErrLaneMismatch
	}

	// Seed lanes; a lane that never escapes keeps out[i] == maxIter.
	for i := 0; i < n; i++ {
		k.zr[i] = cr[i]
		k.zi[i] = ci[i]
		k.escaped[i] = false
		out[i] = maxIter
	}

	active := n
	for iter := 0; iter < maxIter && active > 0; iter++ {
		for i := 0; i < n; i++ {
			if k.escaped[i] {
				continue
			}
			zr, zi := k.zr[i], k.zi[i]
			zr2, zi2 := zr*zr, zi*zi
			if zr2+zi2 > 4 {
				k.escaped[i] = true
				out[i] = iter
				active--

				continue
			}
			k.zi[i] = 2*zr*zi + ci[i]
			k.zr[i] = zr2 - zi2 + cr[i]
		}
	}

	return nil
}
