package sim_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/percwalk/lattice"
	"github.com/katalvlaran/percwalk/percolation"
	"github.com/katalvlaran/percwalk/sim"
	"github.com/katalvlaran/percwalk/walk"
)

// smallConfig is a fast deterministic run used across the tests.
func smallConfig() sim.Config {
	cfg := sim.DefaultConfig()
	cfg.GridSize = 16
	cfg.Walks = 5
	cfg.WalkLength = 40
	cfg.Workers = 2
	cfg.Seed = 1234
	return cfg
}

// TestValidate covers the configuration gate, including sentinel reuse
// from the phase packages.
func TestValidate(t *testing.T) {
	mutate := func(f func(*sim.Config)) sim.Config {
		cfg := smallConfig()
		f(&cfg)
		return cfg
	}
	cases := []struct {
		name string
		cfg  sim.Config
		err  error
	}{
		{"GridTooSmall", mutate(func(c *sim.Config) { c.GridSize = 1 }), sim.ErrGridSize},
		{"BadTopology", mutate(func(c *sim.Config) { c.Topology = "cubic" }), lattice.ErrUnknownTopology},
		{"BadThreshold", mutate(func(c *sim.Config) { c.Threshold = 1.5 }), percolation.ErrThreshold},
		{"BadWalkMode", mutate(func(c *sim.Config) { c.WalkMode = "smallest" }), sim.ErrWalkMode},
		{"NegativeWalks", mutate(func(c *sim.Config) { c.Walks = -1 }), walk.ErrWalkCount},
		{"ZeroLength", mutate(func(c *sim.Config) { c.WalkLength = 0 }), walk.ErrWalkLength},
		{"NegativeBeta", mutate(func(c *sim.Config) { c.Beta = -1 }), walk.ErrBeta},
		{"ZeroTau0", mutate(func(c *sim.Config) { c.Tau0 = 0 }), walk.ErrTau0},
		{"NegativeNoise", mutate(func(c *sim.Config) { c.Noise = -0.1 }), walk.ErrNoise},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.Validate()
			if !errors.Is(err, tc.err) {
				t.Errorf("Validate() = %v; want %v", err, tc.err)
			}
		})
	}

	assert.NoError(t, smallConfig().Validate())
	assert.NoError(t, sim.DefaultConfig().Validate())
}

// TestRun_FullPipeline checks the artifact shapes of a complete run.
func TestRun_FullPipeline(t *testing.T) {
	cfg := smallConfig()
	res, err := sim.Run(cfg)
	require.NoError(t, err)

	n := cfg.GridSize * cfg.GridSize
	assert.Equal(t, n, res.Lattice.N())
	assert.Equal(t, int(cfg.Threshold*float64(n))-1, res.Occupancy.OccupiedCount())

	require.NotNil(t, res.Coords)
	assert.Equal(t, 3, res.Coords.Rows())
	assert.Equal(t, n, res.Coords.Cols())
	assert.Equal(t, float64(cfg.GridSize), res.UnitCellX)
	assert.Equal(t, float64(cfg.GridSize), res.UnitCellY)

	require.NotNil(t, res.Walks)
	assert.Equal(t, cfg.WalkLength, res.Walks.Coords.Cols())
	assert.Equal(t, cfg.Walks, res.Walks.Coords.Slices())

	require.NotNil(t, res.Analysis)
	assert.Equal(t, cfg.WalkLength-1, res.Analysis.Lags())
	assert.Equal(t, cfg.Walks+3, res.Analysis.Table().Cols())
}

// TestRun_Determinism checks that the same configuration and seed give
// the same cluster, trajectories and analysis table end to end.
func TestRun_Determinism(t *testing.T) {
	cfg := smallConfig()
	cfg.Beta = 1.0
	cfg.Noise = 0.02

	a, err := sim.Run(cfg)
	require.NoError(t, err)
	b, err := sim.Run(cfg)
	require.NoError(t, err)

	assert.Equal(t, a.Coords.Data(), b.Coords.Data())
	assert.Equal(t, a.Walks.Coords.Data(), b.Walks.Coords.Data())
	assert.Equal(t, a.Analysis.Table().Data(), b.Analysis.Table().Data())
}

// TestRun_LatticeOnly stops after the coordinate phase when Walks == 0.
func TestRun_LatticeOnly(t *testing.T) {
	cfg := smallConfig()
	cfg.Walks = 0

	res, err := sim.Run(cfg)
	require.NoError(t, err)
	assert.NotNil(t, res.Coords)
	assert.Nil(t, res.Walks)
	assert.Nil(t, res.Analysis)
}

// TestRun_SingleStep skips the analysis when there is no lag to compute.
func TestRun_SingleStep(t *testing.T) {
	cfg := smallConfig()
	cfg.WalkLength = 1

	res, err := sim.Run(cfg)
	require.NoError(t, err)
	require.NotNil(t, res.Walks)
	assert.Nil(t, res.Analysis)
}

// TestRun_ResolvedSeed checks that a nondeterministic run records the
// seed it actually used, making the run reproducible.
func TestRun_ResolvedSeed(t *testing.T) {
	cfg := smallConfig()
	cfg.Seed = -1

	res, err := sim.Run(cfg)
	require.NoError(t, err)
	require.GreaterOrEqual(t, res.Config.Seed, int64(0))

	replay := cfg
	replay.Seed = res.Config.Seed
	again, err := sim.Run(replay)
	require.NoError(t, err)
	assert.Equal(t, res.Walks.Coords.Data(), again.Walks.Coords.Data())
}

// TestRun_Honeycomb exercises the alternate topology through the full
// pipeline.
func TestRun_Honeycomb(t *testing.T) {
	cfg := smallConfig()
	cfg.Topology = "honeycomb"
	cfg.GridSize = 8
	cfg.Threshold = 0.697 // honeycomb site-percolation regime

	res, err := sim.Run(cfg)
	require.NoError(t, err)
	assert.Equal(t, 4*8*8, res.Lattice.N())
	require.NotNil(t, res.Analysis)
}
