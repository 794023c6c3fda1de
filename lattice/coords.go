package lattice

import "github.com/katalvlaran/percwalk/tensor"

// SitePosition returns the real-space coordinate of site s.
//
// Square: site s sits at (s/L, s%L) on the integer grid.
//
// Honeycomb: four sub-lattice offsets per super-column produce the
// brick-wall coordinates. With column i = s/L and row j counted from the
// top of the column (j = L-1 - s%L):
//
//	class 0: (3·(i/4),       j·√3 + √3/2)
//	class 1: (3·(i/4) + 0.5, j·√3)
//	class 2: (3·(i/4) + 1.5, j·√3)
//	class 3: (3·(i/4) + 2.0, j·√3 + √3/2)
//
// Complexity: O(1).
func (l *Lattice) SitePosition(s int) (x, y float64) {
	if l.topology == Square {
		return float64(s / l.gridSize), float64(s % l.gridSize)
	}
	i := s / l.gridSize
	j := l.gridSize - 1 - s%l.gridSize
	x = float64(3 * (i / 4))
	y = float64(j) * sqrt3
	switch i % 4 {
	case 0:
		y += sqrt3over2
	case 1:
		x += 0.5
	case 2:
		x += 1.5
	case 3:
		x += 2.0
		y += sqrt3over2
	}
	return x, y
}

// UnitCell returns the real-space translation vector of one period
// image: the per-axis maximum site coordinate plus a topology-dependent
// margin (square: +1 on each axis; honeycomb: +1.5 in x, +√3/2 in y).
// The walk simulator adds integer multiples of this vector whenever a
// trajectory wraps across a periodic boundary.
//
// Complexity: O(N).
func (l *Lattice) UnitCell() (x, y float64) {
	var maxX, maxY float64
	for s := 0; s < l.n; s++ {
		sx, sy := l.SitePosition(s)
		if sx > maxX {
			maxX = sx
		}
		if sy > maxY {
			maxY = sy
		}
	}
	if l.topology == Square {
		return maxX + 1, maxY + 1
	}
	return maxX + 1.5, maxY + sqrt3over2
}

// CoordTable assembles the exported 3×N coordinate table: row 0 holds x,
// row 1 holds y, and row 2 holds the per-site label channel (0 for
// unoccupied sites, cluster label for occupied ones). A nil labels slice
// yields a zero third row; otherwise len(labels) must equal N.
//
// Complexity: O(N) time and memory.
func (l *Lattice) CoordTable(labels []float64) (*tensor.Dense, error) {
	if labels != nil && len(labels) != l.n {
		return nil, ErrBadLabels
	}
	coords, err := tensor.NewDense(3, l.n)
	if err != nil {
		return nil, err
	}
	data := coords.Data()
	for s := 0; s < l.n; s++ {
		x, y := l.SitePosition(s)
		data[s] = x
		data[l.n+s] = y
		if labels != nil {
			data[2*l.n+s] = labels[s]
		}
	}
	return coords, nil
}
