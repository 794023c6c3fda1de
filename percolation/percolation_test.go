package percolation_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/percwalk/lattice"
	"github.com/katalvlaran/percwalk/percolation"
)

func mustSquare(t *testing.T, size int) *lattice.Lattice {
	t.Helper()
	lat, err := lattice.New(lattice.Square, size)
	require.NoError(t, err)
	return lat
}

// TestPermute checks determinism for a fixed seed and that the output is
// a bijection of 0..n-1.
func TestPermute(t *testing.T) {
	const n = 64

	p1 := percolation.Permute(n, rand.New(rand.NewSource(7)))
	p2 := percolation.Permute(n, rand.New(rand.NewSource(7)))
	assert.Equal(t, p1, p2, "same seed must give the same order")

	seen := make([]bool, n)
	for _, s := range p1 {
		require.GreaterOrEqual(t, s, 0)
		require.Less(t, s, n)
		require.False(t, seen[s], "site %d repeated", s)
		seen[s] = true
	}

	p3 := percolation.Permute(n, rand.New(rand.NewSource(8)))
	assert.NotEqual(t, p1, p3, "different seeds should diverge")
}

// TestPercolate_Errors covers the validation gate.
func TestPercolate_Errors(t *testing.T) {
	lat := mustSquare(t, 4)
	perm := percolation.Permute(lat.N(), rand.New(rand.NewSource(1)))

	cases := []struct {
		name      string
		lat       *lattice.Lattice
		perm      []int
		threshold float64
		err       error
	}{
		{"NilLattice", nil, perm, 0.5, percolation.ErrNilLattice},
		{"ThresholdZero", lat, perm, 0, percolation.ErrThreshold},
		{"ThresholdAboveOne", lat, perm, 1.1, percolation.ErrThreshold},
		{"ThresholdTooLow", lat, perm, 0.01, percolation.ErrThresholdTooLow},
		{"ShortPerm", lat, perm[:3], 0.5, percolation.ErrBadPermutation},
		{"Repeats", lat, append([]int{perm[0]}, perm[:lat.N()-1]...), 0.5, percolation.ErrBadPermutation},
		{"OutOfRange", lat, append([]int{lat.N()}, perm[1:]...), 0.5, percolation.ErrBadPermutation},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := percolation.Percolate(tc.lat, tc.perm, tc.threshold)
			if !errors.Is(err, tc.err) {
				t.Errorf("Percolate error = %v; want %v", err, tc.err)
			}
		})
	}
}

// TestPercolate_FullOccupation pins the activation count: threshold 1.0
// on a 4×4 grid activates exactly ⌊1.0·16⌋-1 = 15 sites, leaving one
// empty and everything else in one cluster.
func TestPercolate_FullOccupation(t *testing.T) {
	lat := mustSquare(t, 4)
	perm := percolation.Permute(lat.N(), rand.New(rand.NewSource(3)))

	o, err := percolation.Percolate(lat, perm, 1.0)
	require.NoError(t, err)

	assert.Equal(t, 15, o.OccupiedCount())
	assert.Len(t, o.OccupiedSites(), 15)
	assert.False(t, o.Occupied(perm[15]), "last site in the order stays empty")
	assert.Equal(t, 15, o.LargestClusterSize())
	assert.Len(t, o.LargestCluster(), 15)
}

// TestPercolate_Determinism verifies that the same permutation and
// threshold always yield the same occupancy.
func TestPercolate_Determinism(t *testing.T) {
	lat := mustSquare(t, 8)
	perm := percolation.Permute(lat.N(), rand.New(rand.NewSource(11)))

	a, err := percolation.Percolate(lat, perm, 0.55)
	require.NoError(t, err)
	b, err := percolation.Percolate(lat, perm, 0.55)
	require.NoError(t, err)

	assert.Equal(t, a.OccupiedSites(), b.OccupiedSites())
	assert.Equal(t, a.LargestCluster(), b.LargestCluster())
	assert.Equal(t, a.Labels(), b.Labels())
}

// TestFindRoot_Idempotent checks that repeated root queries return the
// same root and that compression does not change cluster membership.
func TestFindRoot_Idempotent(t *testing.T) {
	lat := mustSquare(t, 8)
	perm := percolation.Permute(lat.N(), rand.New(rand.NewSource(5)))
	o, err := percolation.Percolate(lat, perm, 0.6)
	require.NoError(t, err)

	before := o.LargestCluster()
	for _, s := range o.OccupiedSites() {
		r := o.FindRoot(s)
		assert.Equal(t, r, o.FindRoot(s))
		assert.Equal(t, r, o.FindRoot(r), "a root must be its own root")
	}
	assert.Equal(t, before, o.LargestCluster())
}

// TestClusterSizes checks the size accounting against the occupied count
// and the tracked largest cluster.
func TestClusterSizes(t *testing.T) {
	lat := mustSquare(t, 8)
	perm := percolation.Permute(lat.N(), rand.New(rand.NewSource(9)))
	o, err := percolation.Percolate(lat, perm, 0.45)
	require.NoError(t, err)

	sizes := o.ClusterSizes()
	total := 0
	maxSize := 0
	for _, sz := range sizes {
		require.Positive(t, sz)
		total += sz
		if sz > maxSize {
			maxSize = sz
		}
	}
	assert.Equal(t, o.OccupiedCount(), total)
	assert.Equal(t, o.LargestClusterSize(), maxSize)
}

// TestLabels checks the label channel: empty sites carry 0, occupied
// sites carry root+1, and members of one cluster share a label.
func TestLabels(t *testing.T) {
	lat := mustSquare(t, 4)
	perm := percolation.Permute(lat.N(), rand.New(rand.NewSource(2)))
	o, err := percolation.Percolate(lat, perm, 0.5)
	require.NoError(t, err)

	labels := o.Labels()
	require.Len(t, labels, lat.N())
	for s, lbl := range labels {
		if !o.Occupied(s) {
			assert.Zero(t, lbl)
			continue
		}
		assert.Equal(t, float64(o.FindRoot(s)+1), lbl)
		assert.Positive(t, lbl, "labels never collide with the empty marker")
	}
	for _, s := range o.LargestCluster() {
		assert.Equal(t, labels[o.LargestCluster()[0]], labels[s])
	}
}

// TestPercolate_SingletonLargest covers the degenerate run whose few
// activations never touch: the largest cluster must still have size one.
func TestPercolate_SingletonLargest(t *testing.T) {
	lat := mustSquare(t, 4)
	// Opposite corners of the 4×4 torus are never adjacent.
	perm := []int{0, 10, 1, 2, 3, 4, 5, 6, 7, 8, 9, 11, 12, 13, 14, 15}
	o, err := percolation.Percolate(lat, perm, 0.15) // ⌊0.15·16⌋-1 = 1 activation
	require.NoError(t, err)

	assert.Equal(t, 1, o.OccupiedCount())
	assert.Equal(t, 1, o.LargestClusterSize())
	assert.Equal(t, []int{0}, o.LargestCluster())
}

func BenchmarkPercolate(b *testing.B) {
	lat, err := lattice.New(lattice.Square, 256)
	if err != nil {
		b.Fatal(err)
	}
	perm := percolation.Permute(lat.N(), rand.New(rand.NewSource(1)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := percolation.Percolate(lat, perm, 0.592746); err != nil {
			b.Fatal(err)
		}
	}
}
