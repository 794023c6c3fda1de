// Package lattice defines core types and sentinel errors for lattice
// construction in github.com/katalvlaran/percwalk.
package lattice

import (
	"errors"
	"strings"
)

// Sentinel errors for lattice operations.
var (
	// ErrGridTooSmall indicates a linear grid size too small for periodic wrap.
	ErrGridTooSmall = errors.New("lattice: grid size must be > 1")
	// ErrUnknownTopology indicates an unrecognized topology name.
	ErrUnknownTopology = errors.New("lattice: topology must be square or honeycomb")
	// ErrBadLabels indicates a label slice whose length differs from the site count.
	ErrBadLabels = errors.New("lattice: label slice length must equal site count")
)

// Topology selects the lattice geometry.
type Topology int

const (
	// Square is the L×L square lattice, degree 4.
	Square Topology = iota
	// Honeycomb is the 4L² brick-wall honeycomb lattice, degree 3.
	Honeycomb
)

// String returns the canonical lowercase topology name.
func (t Topology) String() string {
	switch t {
	case Square:
		return "square"
	case Honeycomb:
		return "honeycomb"
	default:
		return "unknown"
	}
}

// ParseTopology maps a case-insensitive topology name to its Topology.
// Returns ErrUnknownTopology for anything other than square or honeycomb.
func ParseTopology(name string) (Topology, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "square":
		return Square, nil
	case "honeycomb":
		return Honeycomb, nil
	default:
		return 0, ErrUnknownTopology
	}
}

// sqrt3 and sqrt3over2 are the honeycomb coordinate spacings.
const (
	sqrt3      = 1.7320508075688772
	sqrt3over2 = 0.8660254037844386
)

// Lattice is an immutable neighbor table plus the geometric metadata the
// downstream phases need. Build it once with New; every field accessor
// is read-only and safe for concurrent use.
type Lattice struct {
	topology Topology
	gridSize int // linear size L
	n        int // total sites: L² (square) or 4L² (honeycomb)
	degree   int // neighbors per site: 4 (square) or 3 (honeycomb)

	// nn holds the neighbor table, site-major: the neighbors of site s
	// are nn[s*degree : (s+1)*degree].
	nn []int

	// firstRow / lastRow list the sites forming the logical top and
	// bottom rows; inFirstRow / inLastRow provide O(1) membership.
	firstRow, lastRow     []int
	inFirstRow, inLastRow []bool
}

// Topology returns the lattice topology.
func (l *Lattice) Topology() Topology { return l.topology }

// GridSize returns the linear size L.
func (l *Lattice) GridSize() int { return l.gridSize }

// N returns the total number of sites.
func (l *Lattice) N() int { return l.n }

// Degree returns the fixed neighbor count per site.
func (l *Lattice) Degree() int { return l.degree }

// Neighbors returns the ordered neighbor list of site s as a shared,
// read-only subslice of the table. Complexity: O(1).
func (l *Lattice) Neighbors(s int) []int {
	return l.nn[s*l.degree : (s+1)*l.degree]
}

// FirstRow returns the site indices forming the logical top row.
func (l *Lattice) FirstRow() []int { return l.firstRow }

// LastRow returns the site indices forming the logical bottom row.
func (l *Lattice) LastRow() []int { return l.lastRow }

// OnFirstRow reports whether site s lies on the logical top row.
func (l *Lattice) OnFirstRow(s int) bool { return l.inFirstRow[s] }

// OnLastRow reports whether site s lies on the logical bottom row.
func (l *Lattice) OnLastRow(s int) bool { return l.inLastRow[s] }
