package msd

import (
	"math"
	"runtime"
	"sync"

	"github.com/katalvlaran/percwalk/tensor"
)

// Analyze computes the MSD statistics of walks, a 2×T×nWalks tensor of
// real-space trajectories, and assembles the (T-1)×(nWalks+3) analysis
// table.
//
// Steps:
//  1. Validate shape: two coordinate rows, T ≥ 2, ≥ 1 walk.
//  2. Per walk (parallel): for every lag j = 1..T-1 fill the per-walk
//     columns of the ensemble-average, time-average and one-step
//     time-average displacement matrices.
//  3. Reduce across the ensemble: means over walks, then the
//     ergodicity-breaking parameter with non-finite entries clamped to
//     zero.
//
// Complexity: O(nWalks·T²) time, O(nWalks·T) memory.
func Analyze(walks *tensor.Cube, opts Options) (*Result, error) {
	// 1. Validation.
	if walks == nil {
		return nil, ErrNilWalks
	}
	if walks.Rows() != 2 {
		return nil, ErrBadShape
	}
	T := walks.Cols()
	nWalks := walks.Slices()
	if T < 2 {
		return nil, ErrWalkTooShort
	}
	lags := T - 1

	// Per-walk working matrices, (T-1)×nWalks, row j = lag j+1.
	eaAll := make([]float64, lags*nWalks)
	taAll := make([]float64, lags*nWalks)
	eataAll := make([]float64, lags*nWalks)

	// 2. Independent per-walk sweeps.
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > nWalks {
		workers = nWalks
	}
	jobs := make(chan int)
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := range jobs {
				slice, _ := walks.Slice(i)
				data := slice.Data() // row 0 = x, row 1 = y
				x0, y0 := data[0], data[T]
				for j := 1; j < T; j++ {
					row := (j - 1) * nWalks
					eaAll[row+i] = squaredDist(data[j], x0, data[T+j], y0)
					taAll[row+i] = tamsd(data, T, T, j)
					eataAll[row+i] = tamsd(data, T, j, 1)
				}
			}
		}()
	}
	for i := 0; i < nWalks; i++ {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	// 3. Ensemble reductions.
	table, err := tensor.NewDense(lags, nWalks+3)
	if err != nil {
		return nil, err
	}
	out := table.Data()
	cols := nWalks + 3
	for j := 0; j < lags; j++ {
		row := j * nWalks
		var ea, eata, taMean, taMeanSq float64
		for i := 0; i < nWalks; i++ {
			ea += eaAll[row+i]
			eata += eataAll[row+i]
			ta := taAll[row+i]
			taMean += ta
			taMeanSq += ta * ta
		}
		nw := float64(nWalks)
		ea /= nw
		eata /= nw
		taMean /= nw
		taMeanSq /= nw

		// EB(j) = (⟨θ²⟩-⟨θ⟩²)/⟨θ⟩²/j, clamped to zero on degeneracy.
		eb := (taMeanSq - taMean*taMean) / (taMean * taMean) / float64(j+1)
		if math.IsNaN(eb) || math.IsInf(eb, 0) {
			eb = 0
		}

		out[j*cols+0] = ea
		out[j*cols+1] = eata
		out[j*cols+2] = eb
		for i := 0; i < nWalks; i++ {
			out[j*cols+3+i] = taAll[row+i]
		}
	}

	return &Result{walkLength: T, nWalks: nWalks, table: table}, nil
}

// squaredDist is the squared Euclidean distance between (x1,y1) and (x2,y2).
func squaredDist(x1, x2, y1, y2 float64) float64 {
	dx := x1 - x2
	dy := y1 - y2
	return dx*dx + dy*dy
}

// tamsd is the time-averaged squared displacement of one trajectory at
// lag delta over the prefix of length t:
//
//	(1/(t-delta)) · Σ_{k=0}^{t-delta-1} |r(k+delta) - r(k)|²
//
// data is the 2×T row-major trajectory block. A zero-length window
// (t ≤ delta) yields 0 rather than a division by zero.
func tamsd(data []float64, T, t, delta int) float64 {
	diff := t - delta
	if diff <= 0 {
		return 0
	}
	sum := 0.0
	for k := 0; k < diff; k++ {
		sum += squaredDist(data[k+delta], data[k], data[T+k+delta], data[T+k])
	}
	return sum / float64(diff)
}
