// Package percolation defines sentinel errors and the Occupancy result
// type for the union-find percolation engine.
package percolation

import (
	"errors"

	"github.com/katalvlaran/percwalk/lattice"
)

// Sentinel errors for percolation operations.
var (
	// ErrNilLattice indicates a nil neighbor table.
	ErrNilLattice = errors.New("percolation: lattice must not be nil")
	// ErrThreshold indicates an occupation threshold outside (0,1].
	ErrThreshold = errors.New("percolation: threshold must be in (0,1]")
	// ErrThresholdTooLow indicates p·N < 1, for which the Newman–Ziff
	// activation count is undefined.
	ErrThresholdTooLow = errors.New("percolation: threshold·N must be >= 1")
	// ErrBadPermutation indicates the activation order is not a
	// permutation of 0..N-1.
	ErrBadPermutation = errors.New("percolation: activation order must be a permutation of all sites")
)

// Occupancy is the result of a percolation pass: the union-find arena
// plus bookkeeping for the largest cluster. The write phase is over once
// Percolate returns; queries that trigger path compression (FindRoot,
// Labels, LargestCluster, ClusterSizes) still mutate the arena and must
// not race with each other or with readers.
type Occupancy struct {
	lat   *lattice.Lattice
	cells []int // union-find arena, one word per site
	empty int   // the EMPTY sentinel, -N-1

	occupied    int // number of activated sites
	largestSize int // size of the largest cluster seen so far
	largestRoot int // root site of that cluster, -1 if none
}

// Lattice returns the neighbor table this occupancy was grown on.
func (o *Occupancy) Lattice() *lattice.Lattice { return o.lat }

// Empty returns the EMPTY sentinel value (-N-1).
func (o *Occupancy) Empty() int { return o.empty }

// Occupied reports whether site s has been activated.
func (o *Occupancy) Occupied(s int) bool { return o.cells[s] != o.empty }

// OccupiedCount returns the number of activated sites, ⌊p·N⌋-1.
func (o *Occupancy) OccupiedCount() int { return o.occupied }

// LargestClusterSize returns the size of the largest cluster.
func (o *Occupancy) LargestClusterSize() int { return o.largestSize }
