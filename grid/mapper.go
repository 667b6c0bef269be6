package grid

// NewMapper builds a Mapper for the given Bounds and grid dimensions.
// Dimensions are assumed positive; callers validate configuration before
// construction (see package sweep).
// Complexity: O(1).
func NewMapper(b Bounds, height, width int) Mapper {
	return Mapper{
		bounds: b,
		width:  width,
		height: height,
	}
}

// Point returns the complex coordinate sampled by cell (row, col):
//
//	re = MinX + col*(MaxX-MinX)/width
//	im = MinY + row*(MaxY-MinY)/height
//
// Pure function of the Mapper value; no side effects, no failure modes.
// The formula is evaluated verbatim so the same cell always maps to the
// same float64 coordinate regardless of batching or worker layout.
// Complexity: O(1).
func (m Mapper) Point(row, col int) (re, im float64) {
	return m.Real(col), m.Imag(row)
}

// Real returns only the real part of the coordinate for column col.
// Useful when filling a row batch: the imaginary part is constant
// across the row and computed once via Imag.
// Complexity: O(1).
func (m Mapper) Real(col int) float64 {
	return m.bounds.MinX + float64(col)*(m.bounds.MaxX-m.bounds.MinX)/float64(m.width)
}

// Imag returns only the imaginary part of the coordinate for row.
// Complexity: O(1).
func (m Mapper) Imag(row int) float64 {
	return m.bounds.MinY + float64(row)*(m.bounds.MaxY-m.bounds.MinY)/float64(m.height)
}

// Bounds returns the Bounds the Mapper was built with.
// Complexity: O(1).
func (m Mapper) Bounds() Bounds { return m.bounds }

// Width returns the number of columns the Mapper samples across.
// Complexity: O(1).
func (m Mapper) Width() int { return m.width }

// Height returns the number of rows the Mapper samples across.
// Complexity: O(1).
func (m Mapper) Height() int { return m.height }
