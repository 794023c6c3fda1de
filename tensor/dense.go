package tensor

import (
	"errors"
	"fmt"
)

// ErrInvalidDimensions indicates that requested dimensions are non-positive.
var ErrInvalidDimensions = errors.New("tensor: dimensions must be > 0")

// ErrIndexOutOfBounds indicates that a row, column or slice index is outside
// the valid range.
var ErrIndexOutOfBounds = errors.New("tensor: index out of bounds")

// denseErrorf wraps an underlying error with Dense method context.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a row-major matrix of float64 values.
// r is rows, c is columns, and data holds r*c elements in row-major order.
type Dense struct {
	r, c int       // number of rows and columns
	data []float64 // flat backing storage, length == r*c
}

// NewDense creates an r×c Dense matrix initialized to zeros.
// Returns ErrInvalidDimensions unless rows and cols are both > 0.
// Complexity: O(r*c) time and memory.
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// Rows returns the number of rows in the matrix.
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns in the matrix.
func (m *Dense) Cols() int { return m.c }

// Data exposes the flat row-major backing slice. Callers that index it
// directly are responsible for staying in bounds; the layout contract is
// data[row*Cols()+col].
func (m *Dense) Data() []float64 { return m.data }

// indexOf computes the flat index for (row, col) or returns ErrIndexOutOfBounds.
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, denseErrorf(method, row, col, ErrIndexOutOfBounds)
	}
	if col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrIndexOutOfBounds)
	}
	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		return 0, err
	}
	return m.data[idx], nil
}

// Set assigns value v at (row, col).
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v
	return nil
}

// Row returns a copy of the given row.
// Complexity: O(c) time and memory.
func (m *Dense) Row(row int) ([]float64, error) {
	if row < 0 || row >= m.r {
		return nil, denseErrorf("Row", row, 0, ErrIndexOutOfBounds)
	}
	out := make([]float64, m.c)
	copy(out, m.data[row*m.c:(row+1)*m.c])
	return out, nil
}

// Col returns a copy of the given column.
// Complexity: O(r) time and memory.
func (m *Dense) Col(col int) ([]float64, error) {
	if col < 0 || col >= m.c {
		return nil, denseErrorf("Col", 0, col, ErrIndexOutOfBounds)
	}
	out := make([]float64, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = m.data[i*m.c+col]
	}
	return out, nil
}

// Clone returns a deep copy of the Dense matrix.
// Complexity: O(r*c) time and memory.
func (m *Dense) Clone() *Dense {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)
	return &Dense{r: m.r, c: m.c, data: cp}
}

// String implements fmt.Stringer for debugging.
func (m *Dense) String() string {
	return fmt.Sprintf("Dense(%dx%d)", m.r, m.c)
}
