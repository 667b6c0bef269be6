package sweep

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestPartitionRows_ExactCoverage verifies spans are contiguous,
// disjoint and cover [0, height) exactly for a mix of divisor and
// non-divisor worker counts.
func TestPartitionRows_ExactCoverage(t *testing.T) {
	for _, tc := range []struct{ height, workers int }{
		{height: 10, workers: 1},
		{height: 10, workers: 2},
		{height: 10, workers: 3},
		{height: 7, workers: 4},
		{height: 1, workers: 1},
		{height: 100, workers: 7},
	} {
		spans := partitionRows(tc.height, tc.workers)

		next := 0
		for _, s := range spans {
			assert.Equal(t, next, s.start, "h=%d w=%d: spans must be contiguous", tc.height, tc.workers)
			assert.Greater(t, s.end, s.start, "h=%d w=%d: spans must be non-empty", tc.height, tc.workers)
			next = s.end
		}
		assert.Equal(t, tc.height, next, "h=%d w=%d: spans must cover every row", tc.height, tc.workers)
	}
}

// TestPartitionRows_Balanced checks span sizes differ by at most one.
func TestPartitionRows_Balanced(t *testing.T) {
	spans := partitionRows(11, 4)
	assert.Len(t, spans, 4)

	minSize, maxSize := 11, 0
	for _, s := range spans {
		size := s.end - s.start
		if size < minSize {
			minSize = size
		}
		if size > maxSize {
			maxSize = size
		}
	}
	assert.LessOrEqual(t, maxSize-minSize, 1, "span sizes differ by at most one row")
}

// TestPartitionRows_MoreWorkersThanRows confirms the span count is
// clamped to the row count, never producing empty spans.
func TestPartitionRows_MoreWorkersThanRows(t *testing.T) {
	spans := partitionRows(3, 8)
	assert.Len(t, spans, 3, "at most one span per row")
	for _, s := range spans {
		assert.Equal(t, 1, s.end-s.start, "each span holds exactly one row")
	}
}
