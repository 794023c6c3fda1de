// Package walk defines options, sentinel errors and the Ensemble result
// type for the CTRW walk simulator.
package walk

import (
	"errors"

	"github.com/katalvlaran/percwalk/tensor"
)

// Sentinel errors for walk simulation.
var (
	// ErrNilInput indicates a nil lattice or occupancy.
	ErrNilInput = errors.New("walk: lattice and occupancy must not be nil")
	// ErrWalkCount indicates a negative number of walks.
	ErrWalkCount = errors.New("walk: number of walks must be >= 0")
	// ErrWalkLength indicates a non-positive walk length.
	ErrWalkLength = errors.New("walk: walk length must be > 0")
	// ErrBeta indicates a negative CTRW rate.
	ErrBeta = errors.New("walk: beta must be >= 0")
	// ErrTau0 indicates a non-positive base waiting-time scale.
	ErrTau0 = errors.New("walk: tau0 must be > 0")
	// ErrNoise indicates a negative noise scale.
	ErrNoise = errors.New("walk: noise must be >= 0")
	// ErrMode indicates an out-of-range start-site mode.
	ErrMode = errors.New("walk: unknown start-site mode")
	// ErrNoOccupiedSites indicates an empty start-site pool while
	// NWalks > 0.
	ErrNoOccupiedSites = errors.New("walk: no occupied sites to start from")
)

// Mode selects the start-site candidate pool.
type Mode int

const (
	// AnyCluster samples start sites from all occupied sites.
	AnyCluster Mode = iota
	// LargestCluster samples start sites from the single largest cluster.
	LargestCluster
)

// String returns the canonical mode name.
func (m Mode) String() string {
	switch m {
	case AnyCluster:
		return "any"
	case LargestCluster:
		return "largest"
	default:
		return "unknown"
	}
}

// Attempt budget bounds for the start-site search.
const (
	startAttemptFloor = 100_000
	startAttemptCeil  = 100_000_000
)

// Options configures an ensemble simulation.
type Options struct {
	// NWalks is the number of independent trials (≥ 0).
	NWalks int
	// WalkLength is the number of physical time steps per walk (> 0).
	WalkLength int
	// Beta is the CTRW waiting-time rate; 0 disables subordination.
	Beta float64
	// Tau0 is the base waiting-time scale (> 0); values below 1 stretch
	// the raw hop count to WalkLength/Tau0.
	Tau0 float64
	// Noise is the Gaussian localization noise std; 0 disables it.
	Noise float64
	// Mode selects the start-site pool.
	Mode Mode
	// Workers bounds the worker pool; ≤ 0 uses runtime.NumCPU().
	Workers int
	// Seed drives all RNG streams; negative means nondeterministic.
	Seed int64
}

// DefaultOptions returns Options with a unit time scale, no
// subordination, no noise, start anywhere, automatic workers and a
// nondeterministic seed.
func DefaultOptions() Options {
	return Options{
		Tau0: 1,
		Seed: -1,
	}
}

// validate surfaces configuration errors before any simulation work.
func (o Options) validate() error {
	switch {
	case o.NWalks < 0:
		return ErrWalkCount
	case o.WalkLength <= 0:
		return ErrWalkLength
	case o.Beta < 0:
		return ErrBeta
	case o.Tau0 <= 0:
		return ErrTau0
	case o.Noise < 0:
		return ErrNoise
	case o.Mode != AnyCluster && o.Mode != LargestCluster:
		return ErrMode
	}
	return nil
}

// Ensemble is the simulated walk ensemble.
type Ensemble struct {
	// Coords holds the real-space trajectories, 2 × WalkLength × NWalks
	// (row 0 = x, row 1 = y). Nil when NWalks == 0.
	Coords *tensor.Cube
	// Starts records each walk's start site.
	Starts []int
	// Frozen flags walks whose start search exhausted its attempt
	// budget and therefore hold a constant position.
	Frozen []bool
}
