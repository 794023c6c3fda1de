package sim

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/percwalk/lattice"
	"github.com/katalvlaran/percwalk/percolation"
	"github.com/katalvlaran/percwalk/walk"
)

// ErrGridSize indicates a non-positive or degenerate grid size.
var ErrGridSize = errors.New("sim: grid size must be > 1")

// ErrWalkMode indicates an unknown walk-mode name.
var ErrWalkMode = errors.New("sim: walk mode must be any or largest")

// Config is the full configuration surface of a simulation run. The
// YAML tags serve the CLI config file; zero values are filled from
// DefaultConfig.
type Config struct {
	// GridSize is the linear lattice size L (> 1).
	GridSize int `yaml:"grid_size"`
	// Topology is "square" or "honeycomb".
	Topology string `yaml:"topology"`
	// Threshold is the occupation fraction p ∈ (0,1].
	Threshold float64 `yaml:"threshold"`
	// Walks is the number of independent walks (≥ 0; 0 stops after the
	// coordinate phase).
	Walks int `yaml:"walks"`
	// WalkLength is the number of physical steps per walk (> 0).
	WalkLength int `yaml:"walk_length"`
	// Beta is the CTRW waiting-time rate (≥ 0; 0 disables subordination).
	Beta float64 `yaml:"beta"`
	// Tau0 is the base waiting-time scale (> 0).
	Tau0 float64 `yaml:"tau0"`
	// Noise is the Gaussian localization noise std (≥ 0).
	Noise float64 `yaml:"noise"`
	// WalkMode is "any" (all occupied sites) or "largest" (largest
	// cluster only).
	WalkMode string `yaml:"walk_mode"`
	// Workers bounds both parallel phases; ≤ 0 uses runtime.NumCPU().
	Workers int `yaml:"workers"`
	// Seed drives every RNG stream; negative means nondeterministic.
	Seed int64 `yaml:"seed"`
}

// DefaultConfig returns a small deterministic square-lattice run near
// the site-percolation threshold.
func DefaultConfig() Config {
	return Config{
		GridSize:   64,
		Topology:   lattice.Square.String(),
		Threshold:  0.592746, // square-lattice site-percolation threshold
		Walks:      100,
		WalkLength: 1000,
		Beta:       0,
		Tau0:       1,
		Noise:      0,
		WalkMode:   walk.AnyCluster.String(),
		Workers:    0,
		Seed:       -1,
	}
}

// topology resolves the configured topology name.
func (c Config) topology() (lattice.Topology, error) {
	return lattice.ParseTopology(c.Topology)
}

// walkMode resolves the configured walk-mode name.
func (c Config) walkMode() (walk.Mode, error) {
	switch c.WalkMode {
	case "", walk.AnyCluster.String():
		return walk.AnyCluster, nil
	case walk.LargestCluster.String():
		return walk.LargestCluster, nil
	default:
		return 0, ErrWalkMode
	}
}

// Validate surfaces every configuration error before simulation starts.
func (c Config) Validate() error {
	if c.GridSize <= 1 {
		return ErrGridSize
	}
	if _, err := c.topology(); err != nil {
		return err
	}
	if c.Threshold <= 0 || c.Threshold > 1 {
		return fmt.Errorf("sim: threshold %v: %w", c.Threshold, percolation.ErrThreshold)
	}
	if _, err := c.walkMode(); err != nil {
		return err
	}
	if c.Walks < 0 {
		return walk.ErrWalkCount
	}
	if c.WalkLength <= 0 {
		return walk.ErrWalkLength
	}
	if c.Beta < 0 {
		return walk.ErrBeta
	}
	if c.Tau0 <= 0 {
		return walk.ErrTau0
	}
	if c.Noise < 0 {
		return walk.ErrNoise
	}
	return nil
}
