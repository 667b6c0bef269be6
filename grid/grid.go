// Package grid provides the iteration-count buffer written by an
// escape-time sweep. The buffer is row-major and pre-sized: no cell is
// allocated after construction, so evaluation hot loops never touch the
// allocator through a Grid.
package grid

// NewGrid allocates a zeroed Grid of the given dimensions.
// Returns ErrEmptyGrid if height or width is not positive.
// Complexity: O(W×H) time and memory.
func NewGrid(height, width int) (*Grid, error) {
	if height <= 0 || width <= 0 {
		return nil, ErrEmptyGrid
	}

	return &Grid{
		height: height,
		width:  width,
		cells:  make([]int, height*width),
	}, nil
}

// Height returns the number of rows.
// Complexity: O(1).
func (g *Grid) Height() int { return g.height }

// Width returns the number of columns.
// Complexity: O(1).
func (g *Grid) Width() int { return g.width }

// InBounds reports whether (row, col) lies within the grid.
// Complexity: O(1).
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.height && col >= 0 && col < g.width
}

// Index maps (row, col) to a row-major index: row*Width + col.
// Complexity: O(1).
func (g *Grid) Index(row, col int) int {
	return row*g.width + col
}

// Coordinate converts a row-major index back to (row, col).
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) (row, col int) {
	return idx / g.width, idx % g.width
}

// At returns the iteration count stored at (row, col).
// Callers are expected to stay in range; see InBounds.
// Complexity: O(1).
func (g *Grid) At(row, col int) int {
	return g.cells[row*g.width+col]
}

// Set stores an iteration count at (row, col).
// Complexity: O(1).
func (g *Grid) Set(row, col, count int) {
	g.cells[row*g.width+col] = count
}

// Row returns the backing sub-slice for one row. Writes through the
// returned slice land in the Grid; rows of distinct indices never alias,
// which is what makes disjoint-row parallel writes safe without locks.
// Complexity: O(1).
func (g *Grid) Row(row int) []int {
	return g.cells[row*g.width : (row+1)*g.width]
}

// Cells returns the whole row-major buffer. Intended for renderers and
// tests that consume a completed evaluation; treat it as read-only.
// Complexity: O(1).
func (g *Grid) Cells() []int {
	return g.cells
}

// Clone returns an independent deep copy of the Grid.
// Complexity: O(W×H).
func (g *Grid) Clone() *Grid {
	cells := make([]int, len(g.cells))
	copy(cells, g.cells)

	return &Grid{height: g.height, width: g.width, cells: cells}
}

// Equal reports whether two Grids have identical dimensions and
// cell-for-cell identical contents.
// Complexity: O(W×H).
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.height != other.height || g.width != other.width {
		return false
	}
	for i, v := range g.cells {
		if other.cells[i] != v {
			return false
		}
	}

	return true
}
