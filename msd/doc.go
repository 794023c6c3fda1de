// Package msd computes mean-squared-displacement statistics and the
// ergodicity-breaking parameter for an ensemble of walk trajectories.
//
// What:
//
//   - Ensemble-average MSD: squared displacement from each walk's own
//     origin, averaged over walks.
//   - Time-average MSD (TAMSD) per walk at lag Δ:
//     (1/(T-Δ)) · Σ_{k<T-Δ} |r(k+Δ) - r(k)|².
//   - Ensemble-time-average MSD: the one-step TAMSD over the trajectory
//     prefix of length j, averaged over walks.
//   - Ergodicity breaking: EB(j) = (⟨θ²⟩-⟨θ⟩²)/⟨θ⟩²/j over the per-walk
//     TAMSD values θ at lag j, the standard estimator from the
//     anomalous-diffusion literature (the /j rescaling matches the
//     expected decay for normal diffusion).
//
// Numerical degeneracies (zero-variance denominators, zero-length lag
// windows) clamp to zero and never propagate as errors; a stationary
// trajectory therefore contributes exact zeros at every lag.
//
// The per-walk loop is embarrassingly parallel and fans out over
// Options.Workers goroutines; the TAMSD sweep makes it O(T²) per walk.
//
// Errors:
//
//   - ErrNilWalks: nil walk tensor.
//   - ErrWalkTooShort: walk length < 2 leaves no lags to analyze.
package msd
