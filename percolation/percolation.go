package percolation

import (
	"math/rand"

	"github.com/katalvlaran/percwalk/lattice"
)

// Permute returns a uniform random permutation of 0..n-1 generated with
// an in-place Fisher–Yates shuffle. The permutation decides the order in
// which sites are activated; exactly one entry per site, no repeats.
//
// Complexity: O(n) time and memory.
func Permute(n int, rng *rand.Rand) []int {
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}
	for i := n - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		p[i], p[j] = p[j], p[i]
	}
	return p
}

// Percolate activates sites of lat in the order given by perm until
// ⌊threshold·N⌋-1 activations have occurred, merging clusters by size.
//
// Steps:
//  1. Validate: lat non-nil, threshold ∈ (0,1], threshold·N ≥ 1, and
//     perm a bijection of 0..N-1.
//  2. Initialize every cell to the EMPTY sentinel (-N-1).
//  3. For each activation: mark the site a singleton root (-1), then for
//     every already-occupied neighbor find its root and union by size —
//     the smaller subtree's root is attached under the larger (on equal
//     sizes the neighbor's root is attached under the current one), and
//     the running largest cluster is updated.
//
// Complexity: O(N·degree·α(N)) time, O(N) memory.
func Percolate(lat *lattice.Lattice, perm []int, threshold float64) (*Occupancy, error) {
	// 1. Validation.
	if lat == nil {
		return nil, ErrNilLattice
	}
	if threshold <= 0 || threshold > 1 {
		return nil, ErrThreshold
	}
	n := lat.N()
	nOccupy := int(threshold*float64(n)) - 1
	if nOccupy < 0 {
		return nil, ErrThresholdTooLow
	}
	if len(perm) != n {
		return nil, ErrBadPermutation
	}
	seen := make([]bool, n)
	for _, s := range perm {
		if s < 0 || s >= n || seen[s] {
			return nil, ErrBadPermutation
		}
		seen[s] = true
	}

	// 2. Empty arena.
	o := &Occupancy{
		lat:         lat,
		cells:       make([]int, n),
		empty:       -n - 1,
		occupied:    nOccupy,
		largestRoot: -1,
	}
	for i := range o.cells {
		o.cells[i] = o.empty
	}

	// 3. Activation loop (inherently sequential).
	for i := 0; i < nOccupy; i++ {
		s1 := perm[i]
		r1 := s1
		o.cells[s1] = -1 // singleton root
		for _, s2 := range lat.Neighbors(s1) {
			if o.cells[s2] == o.empty {
				continue
			}
			r2 := o.FindRoot(s2)
			if r2 == r1 {
				continue
			}
			if o.cells[r1] > o.cells[r2] { // r2 is the larger cluster
				o.cells[r2] += o.cells[r1]
				o.cells[r1] = r2
				r1 = r2
			} else {
				o.cells[r1] += o.cells[r2]
				o.cells[r2] = r1
			}
			if -o.cells[r1] > o.largestSize {
				o.largestSize = -o.cells[r1]
				o.largestRoot = r1
			}
		}
	}

	// A run whose activations never touched (all singletons) still has a
	// largest cluster of size one.
	if o.largestRoot < 0 && nOccupy > 0 {
		o.largestRoot = perm[0]
		o.largestSize = 1
	}
	return o, nil
}

// FindRoot follows parent pointers from site s to its cluster root,
// rewriting every traversed pointer to the discovered root (full path
// compression). The walk is an explicit loop over the flat arena, so
// stack depth is bounded on pathological chains.
//
// Precondition: s is occupied. For an empty site the sentinel is
// negative and s is returned unchanged.
//
// Complexity: amortized near-O(1), worst case O(log N).
func (o *Occupancy) FindRoot(s int) int {
	r := s
	for o.cells[r] >= 0 {
		r = o.cells[r]
	}
	for o.cells[s] >= 0 {
		next := o.cells[s]
		o.cells[s] = r
		s = next
	}
	return r
}

// OccupiedSites returns all activated site indices in ascending order.
// Complexity: O(N).
func (o *Occupancy) OccupiedSites() []int {
	out := make([]int, 0, o.occupied)
	for s, v := range o.cells {
		if v != o.empty {
			out = append(out, s)
		}
	}
	return out
}

// LargestCluster returns the sites of the single largest cluster in
// ascending order. Empty result when nothing was activated.
// Complexity: O(N·α(N)).
func (o *Occupancy) LargestCluster() []int {
	if o.largestRoot < 0 {
		return nil
	}
	out := make([]int, 0, o.largestSize)
	for s, v := range o.cells {
		if v == o.empty {
			continue
		}
		if o.FindRoot(s) == o.largestRoot {
			out = append(out, s)
		}
	}
	return out
}

// ClusterSizes returns the size of every cluster keyed by root site.
// Sizes over distinct roots sum to OccupiedCount.
// Complexity: O(N·α(N)).
func (o *Occupancy) ClusterSizes() map[int]int {
	sizes := make(map[int]int)
	for s, v := range o.cells {
		if v == o.empty {
			continue
		}
		r := o.FindRoot(s)
		sizes[r] = -o.cells[r]
	}
	return sizes
}

// Labels returns the per-site label channel for the coordinate table:
// 0 for empty sites, root index + 1 for occupied sites (the +1 keeps
// site 0 distinguishable from the empty marker).
// Complexity: O(N·α(N)).
func (o *Occupancy) Labels() []float64 {
	labels := make([]float64, len(o.cells))
	for s, v := range o.cells {
		if v == o.empty {
			continue
		}
		labels[s] = float64(o.FindRoot(s) + 1)
	}
	return labels
}
