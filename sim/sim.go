package sim

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/katalvlaran/percwalk/lattice"
	"github.com/katalvlaran/percwalk/msd"
	"github.com/katalvlaran/percwalk/percolation"
	"github.com/katalvlaran/percwalk/tensor"
	"github.com/katalvlaran/percwalk/walk"
)

// PhaseTimings records per-phase wall-clock durations.
type PhaseTimings struct {
	Neighbors   time.Duration
	Percolation time.Duration
	Coords      time.Duration
	Walks       time.Duration
	Analysis    time.Duration
}

// Result owns the artifacts of one simulation run.
type Result struct {
	// Config echoes the validated configuration, with the seed resolved
	// (nondeterministic runs record the seed actually used).
	Config Config

	// Lattice is the read-only neighbor table.
	Lattice *lattice.Lattice
	// Occupancy is the percolation state.
	Occupancy *percolation.Occupancy
	// Coords is the 3×N coordinate table (x, y, cluster label).
	Coords *tensor.Dense
	// UnitCellX, UnitCellY is the periodic translation vector.
	UnitCellX, UnitCellY float64

	// Walks is the simulated ensemble; nil when Config.Walks == 0.
	Walks *walk.Ensemble
	// Analysis is the MSD table; nil when Config.Walks == 0.
	Analysis *msd.Result

	// Timings holds per-phase durations.
	Timings PhaseTimings
}

// Run executes the full pipeline for cfg.
//
// Phases: neighbor table → permutation + percolation → coordinate table
// → walk ensemble → MSD analysis. With Walks == 0 the run stops after
// the coordinate phase, matching the lattice-only use case.
//
// A negative seed is resolved once from the wall clock and recorded on
// the Result, so any run can be reproduced from its reported config.
func Run(cfg Config) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	topology, _ := cfg.topology()
	mode, _ := cfg.walkMode()

	if cfg.Seed < 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	res := &Result{Config: cfg}

	// Neighbor table.
	start := time.Now()
	lat, err := lattice.New(topology, cfg.GridSize)
	if err != nil {
		return nil, fmt.Errorf("sim: neighbor table: %w", err)
	}
	res.Lattice = lat
	res.Timings.Neighbors = time.Since(start)

	// Permutation + percolation (sequential by construction).
	start = time.Now()
	rng := rand.New(rand.NewSource(cfg.Seed))
	perm := percolation.Permute(lat.N(), rng)
	occ, err := percolation.Percolate(lat, perm, cfg.Threshold)
	if err != nil {
		return nil, fmt.Errorf("sim: percolation: %w", err)
	}
	res.Occupancy = occ
	res.Timings.Percolation = time.Since(start)

	// Coordinate table and unit cell.
	start = time.Now()
	coords, err := lat.CoordTable(occ.Labels())
	if err != nil {
		return nil, fmt.Errorf("sim: coordinates: %w", err)
	}
	res.Coords = coords
	res.UnitCellX, res.UnitCellY = lat.UnitCell()
	res.Timings.Coords = time.Since(start)

	if cfg.Walks == 0 {
		return res, nil
	}

	// Walk ensemble.
	start = time.Now()
	ens, err := walk.Simulate(walk.Options{
		NWalks:     cfg.Walks,
		WalkLength: cfg.WalkLength,
		Beta:       cfg.Beta,
		Tau0:       cfg.Tau0,
		Noise:      cfg.Noise,
		Mode:       mode,
		Workers:    cfg.Workers,
		Seed:       cfg.Seed,
	}, lat, occ)
	if err != nil {
		return nil, fmt.Errorf("sim: walks: %w", err)
	}
	res.Walks = ens
	res.Timings.Walks = time.Since(start)

	if cfg.WalkLength < 2 {
		// A single physical step leaves no lags to analyze.
		return res, nil
	}

	// MSD analysis.
	start = time.Now()
	analysis, err := msd.Analyze(ens.Coords, msd.Options{Workers: cfg.Workers})
	if err != nil {
		return nil, fmt.Errorf("sim: analysis: %w", err)
	}
	res.Analysis = analysis
	res.Timings.Analysis = time.Since(start)

	return res, nil
}
