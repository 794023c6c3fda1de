// Package msd defines options, sentinel errors and the Result type for
// the MSD/ergodicity analyzer.
package msd

import (
	"errors"

	"github.com/katalvlaran/percwalk/tensor"
)

// Sentinel errors for MSD analysis.
var (
	// ErrNilWalks indicates a nil walk-coordinate tensor.
	ErrNilWalks = errors.New("msd: walk tensor must not be nil")
	// ErrWalkTooShort indicates a walk length below 2 (no lags).
	ErrWalkTooShort = errors.New("msd: walk length must be >= 2")
	// ErrBadShape indicates a walk tensor without exactly two coordinate rows.
	ErrBadShape = errors.New("msd: walk tensor must have two coordinate rows")
)

// Options configures the analysis pass.
type Options struct {
	// Workers bounds the worker pool; ≤ 0 uses runtime.NumCPU().
	Workers int
}

// Result is the assembled analysis: a (walkLength-1) × (nWalks+3) table
// with rows indexed by lag (row j holds lag j+1) and columns
// {ensemble-average MSD, ensemble-time-average MSD, ergodicity-breaking
// parameter, then one TAMSD column per walk}.
type Result struct {
	walkLength int
	nWalks     int
	table      *tensor.Dense
}

// WalkLength returns the analyzed walk length T.
func (r *Result) WalkLength() int { return r.walkLength }

// NWalks returns the ensemble size.
func (r *Result) NWalks() int { return r.nWalks }

// Lags returns the number of lag rows, T-1.
func (r *Result) Lags() int { return r.walkLength - 1 }

// Table returns the assembled analysis table.
func (r *Result) Table() *tensor.Dense { return r.table }

// EAMSD returns the ensemble-average MSD column.
func (r *Result) EAMSD() []float64 {
	col, _ := r.table.Col(0)
	return col
}

// EATAMSD returns the ensemble-time-average MSD column.
func (r *Result) EATAMSD() []float64 {
	col, _ := r.table.Col(1)
	return col
}

// Ergodicity returns the ergodicity-breaking parameter column.
func (r *Result) Ergodicity() []float64 {
	col, _ := r.table.Col(2)
	return col
}

// TAMSD returns the time-average MSD column of walk i.
func (r *Result) TAMSD(i int) ([]float64, error) {
	return r.table.Col(3 + i)
}
