package walk

import (
	"math"
	"math/rand"
	"runtime"
	"sync"

	"github.com/katalvlaran/percwalk/lattice"
	"github.com/katalvlaran/percwalk/percolation"
	"github.com/katalvlaran/percwalk/tensor"
)

// simulator carries the frozen, read-only inputs shared by all walk
// jobs plus the output buffers they fill disjointly.
type simulator struct {
	opts      Options
	lat       *lattice.Lattice
	occ       *percolation.Occupancy
	pool      []int     // start-site candidates
	xs, ys    []float64 // per-site real coordinates
	ucx, ucy  float64   // unit-cell translation vector
	simLength int       // raw lattice hops per walk

	coords *tensor.Cube
	starts []int
	frozen []bool
}

// Simulate runs opts.NWalks independent walks on the occupied sites of
// occ and returns their real-space trajectories.
//
// Steps:
//  1. Validate options; nil inputs are ErrNilInput.
//  2. Build the start pool (all occupied sites or the largest cluster);
//     an empty pool with NWalks > 0 is ErrNoOccupiedSites. Pool building
//     is the last operation that may compress union-find paths; after
//     this point the occupancy is only read.
//  3. Precompute per-site coordinates and the unit-cell vector.
//  4. Fan the walks out over a worker pool; every walk derives its own
//     RNG stream from the resolved seed and its walk index.
//
// Complexity: O(NWalks·simLength) work, O(NWalks·WalkLength) memory.
func Simulate(opts Options, lat *lattice.Lattice, occ *percolation.Occupancy) (*Ensemble, error) {
	// 1. Validation.
	if lat == nil || occ == nil {
		return nil, ErrNilInput
	}
	if err := opts.validate(); err != nil {
		return nil, err
	}
	if opts.NWalks == 0 {
		return &Ensemble{}, nil
	}

	// 2. Start pool; resolves largest-cluster membership up front so the
	// parallel phase never calls FindRoot.
	var pool []int
	if opts.Mode == LargestCluster {
		pool = occ.LargestCluster()
	} else {
		pool = occ.OccupiedSites()
	}
	if len(pool) == 0 {
		return nil, ErrNoOccupiedSites
	}

	// 3. Shared read-only geometry.
	n := lat.N()
	xs := make([]float64, n)
	ys := make([]float64, n)
	for s := 0; s < n; s++ {
		xs[s], ys[s] = lat.SitePosition(s)
	}
	ucx, ucy := lat.UnitCell()

	simLength := opts.WalkLength
	if opts.Tau0 < 1 {
		simLength = int(float64(opts.WalkLength) / opts.Tau0)
	}

	coords, err := tensor.NewCube(2, opts.WalkLength, opts.NWalks)
	if err != nil {
		return nil, err
	}
	sim := &simulator{
		opts:      opts,
		lat:       lat,
		occ:       occ,
		pool:      pool,
		xs:        xs,
		ys:        ys,
		ucx:       ucx,
		ucy:       ucy,
		simLength: simLength,
		coords:    coords,
		starts:    make([]int, opts.NWalks),
		frozen:    make([]bool, opts.NWalks),
	}

	// 4. Worker pool over independent walks.
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > opts.NWalks {
		workers = opts.NWalks
	}
	seed := resolveSeed(opts.Seed)

	jobs := make(chan int)
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := range jobs {
				sim.run(i, streamFor(seed, i))
			}
		}()
	}
	for i := 0; i < opts.NWalks; i++ {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	return &Ensemble{Coords: coords, Starts: sim.starts, Frozen: sim.frozen}, nil
}

// occupiedNeighbors appends the occupied neighbors of site s to buf and
// returns the filled slice. buf is reused across steps of one walk.
func (sim *simulator) occupiedNeighbors(s int, buf []int) []int {
	buf = buf[:0]
	for _, nb := range sim.lat.Neighbors(s) {
		if sim.occ.Occupied(nb) {
			buf = append(buf, nb)
		}
	}
	return buf
}

// run simulates walk i with its own RNG stream.
func (sim *simulator) run(i int, rng *rand.Rand) {
	opts := sim.opts
	n := sim.lat.N()
	gridSize := sim.lat.GridSize()

	steps := make([]int, sim.simLength)
	tags := make([]uint8, sim.simLength)
	nbrBuf := make([]int, 0, sim.lat.Degree())

	// Start-site search with a bounded attempt budget.
	countMax := n
	if countMax < startAttemptFloor {
		countMax = startAttemptFloor
	}
	if countMax > startAttemptCeil {
		countMax = startAttemptCeil
	}
	var pos int
	countLoop := 0
	for {
		pos = sim.pool[rng.Intn(len(sim.pool))]
		if len(sim.occupiedNeighbors(pos, nbrBuf)) > 0 || countLoop >= countMax {
			break
		}
		countLoop++
	}
	sim.starts[i] = pos

	if countLoop == countMax {
		// Exhausted budget: the whole walk stays at the failed site.
		sim.frozen[i] = true
		for j := range steps {
			steps[j] = pos
		}
	} else {
		steps[0] = pos
		for j := 1; j < sim.simLength; j++ {
			nbrs := sim.occupiedNeighbors(pos, nbrBuf)
			if len(nbrs) == 0 {
				// Unreachable once a connected start is found; stay put.
				steps[j] = pos
				continue
			}
			prev := pos
			pos = nbrs[rng.Intn(len(nbrs))]
			steps[j] = pos

			// Tag periodic boundary crossings. Top/bottom use the logical
			// row sets; left/right use the first/last column bands.
			switch {
			case sim.lat.OnFirstRow(prev) && sim.lat.OnLastRow(pos):
				tags[j] = 1 // crossed top
			case sim.lat.OnLastRow(prev) && sim.lat.OnFirstRow(pos):
				tags[j] = 2 // crossed bottom
			case prev >= n-gridSize && pos < gridSize:
				tags[j] = 3 // crossed right
			case prev < gridSize && pos >= n-gridSize:
				tags[j] = 4 // crossed left
			}
		}
	}

	// CTRW waiting times: exponential variates exponentiated and scaled
	// by tau0 (a Pareto/heavy-tail transform), or a deterministic unit
	// grid when subordination is disabled.
	times := make([]float64, sim.simLength)
	if opts.Beta > 0 {
		acc := 0.0
		for k := range times {
			acc += opts.Tau0 * math.Exp(rng.ExpFloat64()/opts.Beta)
			times[k] = acc
		}
	} else {
		for k := range times {
			times[k] = float64(k + 1)
		}
	}

	// Truncate at the first event time ≥ WalkLength and clamp it to
	// exactly WalkLength.
	cut := len(times) - 1
	for k, t := range times {
		if t >= float64(opts.WalkLength) {
			cut = k
			break
		}
	}
	times = times[:cut+1]
	times[cut] = float64(opts.WalkLength)

	// Subordinate the lattice walk to the CTRW clock. The comparison is
	// strictly j > t, so an event landing exactly on an integer step
	// does not advance the counter at that step.
	trueSteps := make([]int, opts.WalkLength)
	trueTags := make([]uint8, opts.WalkLength)
	counter := 0
	for j := 0; j < opts.WalkLength; j++ {
		if float64(j) > times[counter] {
			counter++
			trueTags[j] = tags[counter]
		}
		trueSteps[j] = steps[counter]
	}

	// Unwrap periodic crossings into unbounded real coordinates and
	// apply optional localization noise.
	slice, _ := sim.coords.Slice(i)
	data := slice.Data() // row 0 = x, row 1 = y
	nx, ny := 0, 0
	for j := 0; j < opts.WalkLength; j++ {
		switch trueTags[j] {
		case 1:
			ny++
		case 2:
			ny--
		case 3:
			nx++
		case 4:
			nx--
		}
		x := sim.xs[trueSteps[j]] + float64(nx)*sim.ucx
		y := sim.ys[trueSteps[j]] + float64(ny)*sim.ucy
		if opts.Noise > 0 {
			x += rng.NormFloat64() * opts.Noise
			y += rng.NormFloat64() * opts.Noise
		}
		data[j] = x
		data[opts.WalkLength+j] = y
	}
}
