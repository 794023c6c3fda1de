package lattice

// New builds the neighbor table for the requested topology and linear
// size. Periodic wraparound is applied on both axes, so every site has
// exactly Degree() neighbors.
//
// Returns ErrGridTooSmall for gridSize ≤ 1 (a single column or row
// cannot wrap without self-adjacency) and ErrUnknownTopology for an
// out-of-range Topology value.
//
// Complexity: O(N·degree) time and memory.
func New(topology Topology, gridSize int) (*Lattice, error) {
	if gridSize <= 1 {
		return nil, ErrGridTooSmall
	}
	switch topology {
	case Square:
		return newSquare(gridSize), nil
	case Honeycomb:
		return newHoneycomb(gridSize), nil
	default:
		return nil, ErrUnknownTopology
	}
}

// newSquare fills the degree-4 table for the L×L square lattice.
// Layout is column-major: site s sits in column s/L at height s%L.
// Vertical neighbors are s±1 (wrapping within the column), horizontal
// neighbors are s±L (wrapping through the whole index range).
func newSquare(L int) *Lattice {
	n := L * L
	l := &Lattice{
		topology:   Square,
		gridSize:   L,
		n:          n,
		degree:     4,
		nn:         make([]int, 4*n),
		inFirstRow: make([]bool, n),
		inLastRow:  make([]bool, n),
	}
	for i := 0; i < n; i++ {
		k := i * 4
		l.nn[k+0] = (i + 1) % n
		l.nn[k+1] = (i + n - 1) % n
		l.nn[k+2] = (i + L) % n
		l.nn[k+3] = (i + n - L) % n
		if i%L == 0 { // column bottom wraps up to the column top
			l.nn[k+1] = i + L - 1
		}
		if (i+1)%L == 0 { // column top wraps down to the column bottom
			l.nn[k+0] = i - L + 1
		}
	}
	// Logical top row (height L-1) and bottom row (height 0); the walk
	// simulator uses these to tag vertical periodic crossings.
	for c := 0; c < L; c++ {
		top := c*L + L - 1
		bottom := c * L
		l.firstRow = append(l.firstRow, top)
		l.lastRow = append(l.lastRow, bottom)
		l.inFirstRow[top] = true
		l.inLastRow[bottom] = true
	}
	return l
}

// newHoneycomb fills the degree-3 table for the 4L² honeycomb lattice.
//
// Sites are laid out column-major over 4L columns of L sites each; every
// group of four consecutive columns forms one brick-wall super-column.
// The wrap rules depend on the column class (column index mod 4) plus
// explicit cases for the two right-hand corners and the first and last
// columns.
func newHoneycomb(L int) *Lattice {
	n := 4 * L * L
	l := &Lattice{
		topology:   Honeycomb,
		gridSize:   L,
		n:          n,
		degree:     3,
		nn:         make([]int, 3*n),
		inFirstRow: make([]bool, n),
		inLastRow:  make([]bool, n),
	}

	// Closed-form index algebra for the logical top ("first") and bottom
	// ("last") rows; 2L sites each, alternating between the two column
	// classes that touch the respective boundary.
	l.firstRow = make([]int, 2*L)
	l.lastRow = make([]int, 2*L)
	for k := 1; k <= 2*L; k++ {
		var first, last int
		if k%2 == 1 {
			first = 2 * L * (k - 1)
			last = 2*k*L - 1
		} else {
			first = (2*k - 1) * L
			last = (2*k-1)*L - 1
		}
		l.firstRow[k-1] = first
		l.lastRow[k-1] = last
		l.inFirstRow[first] = true
		l.inLastRow[last] = true
	}

	currentCol := 0
	count := 0
	for i := 0; i < n; i++ {
		k := i * 3
		switch {
		case i == 0: // first site
			l.nn[k+0] = i + L
			l.nn[k+1] = i + 2*L - 1
			l.nn[k+2] = i + n - L
		case i == n-L: // top right-hand corner
			l.nn[k+0] = i - 1
			l.nn[k+1] = i - L
			l.nn[k+2] = i - n + L
		case i == n-L-1: // bottom right-hand corner
			l.nn[k+0] = i - L
			l.nn[k+1] = i + L
			l.nn[k+2] = i + 1
		case i < L: // first column
			l.nn[k+0] = i + L - 1
			l.nn[k+1] = i + L
			l.nn[k+2] = i + n - L
		case i > n-L: // last column
			l.nn[k+0] = i - L - 1
			l.nn[k+1] = i - L
			l.nn[k+2] = i - n + L
		default:
			switch currentCol {
			case 0:
				if l.inFirstRow[i] {
					l.nn[k+0] = i - L
					l.nn[k+1] = i + L
					l.nn[k+2] = i + 2*L - 1
				} else {
					l.nn[k+0] = i - L
					l.nn[k+1] = i + L - 1
					l.nn[k+2] = i + L
				}
			case 1:
				if l.inLastRow[i] {
					l.nn[k+0] = i - L
					l.nn[k+1] = i + L
					l.nn[k+2] = i - 2*L + 1
				} else {
					l.nn[k+0] = i - L
					l.nn[k+1] = i - L + 1
					l.nn[k+2] = i + L
				}
			case 2:
				if l.inLastRow[i] {
					l.nn[k+0] = i - L
					l.nn[k+1] = i + L
					l.nn[k+2] = i + 1
				} else {
					l.nn[k+0] = i - L
					l.nn[k+1] = i + L
					l.nn[k+2] = i + L + 1
				}
			case 3:
				if l.inFirstRow[i] {
					l.nn[k+0] = i - 1
					l.nn[k+1] = i - L
					l.nn[k+2] = i + L
				} else {
					l.nn[k+0] = i - L - 1
					l.nn[k+1] = i - L
					l.nn[k+2] = i + L
				}
			}
		}

		if (i+1)%L == 0 { // column finished, advance the column class
			count++
			currentCol = count % 4
		}
	}
	return l
}
