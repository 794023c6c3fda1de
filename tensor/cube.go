package tensor

import "fmt"

// Cube is a stack of equally shaped row-major matrices ("slices").
// The walk simulator stores one slice per walk, each holding a
// rows×cols block (rows = 2 coordinate channels, cols = walk length).
// The backing storage is a single flat slice: slice s occupies
// data[s*rows*cols : (s+1)*rows*cols], row-major within the block.
type Cube struct {
	r, c, s int
	data    []float64
}

// NewCube creates a rows×cols×slices Cube initialized to zeros.
// Returns ErrInvalidDimensions unless all dimensions are > 0.
// Complexity: O(r*c*s) time and memory.
func NewCube(rows, cols, slices int) (*Cube, error) {
	if rows <= 0 || cols <= 0 || slices <= 0 {
		return nil, ErrInvalidDimensions
	}
	return &Cube{r: rows, c: cols, s: slices, data: make([]float64, rows*cols*slices)}, nil
}

// Rows returns the per-slice row count.
func (q *Cube) Rows() int { return q.r }

// Cols returns the per-slice column count.
func (q *Cube) Cols() int { return q.c }

// Slices returns the number of slices.
func (q *Cube) Slices() int { return q.s }

// Data exposes the flat backing slice (slice-major, then row-major).
func (q *Cube) Data() []float64 { return q.data }

// Slice returns a Dense view over slice s. The view shares backing
// storage with the Cube: writes through the view are visible in the Cube.
// Per-walk workers rely on this to fill disjoint regions without locks.
// Complexity: O(1).
func (q *Cube) Slice(s int) (*Dense, error) {
	if s < 0 || s >= q.s {
		return nil, fmt.Errorf("Cube.Slice(%d): %w", s, ErrIndexOutOfBounds)
	}
	block := q.r * q.c
	return &Dense{r: q.r, c: q.c, data: q.data[s*block : (s+1)*block]}, nil
}

// At retrieves the element at (row, col) of slice s.
// Complexity: O(1).
func (q *Cube) At(row, col, s int) (float64, error) {
	if err := q.check(row, col, s); err != nil {
		return 0, err
	}
	return q.data[(s*q.r+row)*q.c+col], nil
}

// Set assigns value v at (row, col) of slice s.
// Complexity: O(1).
func (q *Cube) Set(row, col, s int, v float64) error {
	if err := q.check(row, col, s); err != nil {
		return err
	}
	q.data[(s*q.r+row)*q.c+col] = v
	return nil
}

func (q *Cube) check(row, col, s int) error {
	if row < 0 || row >= q.r || col < 0 || col >= q.c || s < 0 || s >= q.s {
		return fmt.Errorf("Cube(%d,%d,%d): %w", row, col, s, ErrIndexOutOfBounds)
	}
	return nil
}

// Clone returns a deep copy of the Cube.
// Complexity: O(r*c*s) time and memory.
func (q *Cube) Clone() *Cube {
	cp := make([]float64, len(q.data))
	copy(cp, q.data)
	return &Cube{r: q.r, c: q.c, s: q.s, data: cp}
}

// String implements fmt.Stringer for debugging.
func (q *Cube) String() string {
	return fmt.Sprintf("Cube(%dx%dx%d)", q.r, q.c, q.s)
}
