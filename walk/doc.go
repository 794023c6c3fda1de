// Package walk simulates ensembles of nearest-neighbor random walks on
// the occupied sites of a percolated lattice, optionally subordinated to
// a continuous-time random walk (CTRW) waiting-time process.
//
// Pipeline per walk:
//
//  1. Start selection: sample uniformly from the configured pool (all
//     occupied sites, or the largest cluster only) until a site with at
//     least one occupied neighbor is found; the attempt budget is
//     clamp(N, 1e5, 1e8) and exhausting it freezes the walk in place.
//  2. Lattice hops: at each of simLength steps pick uniformly among the
//     currently occupied neighbors (revisits allowed). simLength equals
//     WalkLength unless Tau0 < 1, which stretches the raw hop count to
//     WalkLength/Tau0.
//  3. Boundary tags: hops between the logical top and bottom rows, or
//     between the first and last column bands, record which periodic
//     edge was crossed.
//  4. CTRW subordination: with Beta > 0, waiting times are
//     cumsum(Tau0·exp(Exp(Beta))) — an exponential to Pareto transform;
//     with Beta = 0 a deterministic unit grid. The sequence is truncated
//     at the first time ≥ WalkLength and that entry is clamped to
//     exactly WalkLength. Physical step j takes the lattice position at
//     the greatest event index whose time is compared via the strict
//     j > t rule (exact equality does not advance the event counter).
//  5. Unwrap: real position = site coordinate + accumulated unit-cell
//     counts · unit-cell vector, using the tags of the subordinated
//     lattice step.
//  6. Noise: with Noise > 0, independent N(0, Noise²) is added to every
//     coordinate of every step; Noise = 0 leaves the tensor untouched.
//
// Concurrency:
//
//   - Walks are independent trials; a job-channel worker pool fans them
//     out over Options.Workers goroutines.
//   - Each walk owns an RNG stream derived from the run seed and the
//     walk index with a SplitMix64 mix, so output is byte-identical for
//     a fixed seed regardless of the worker count.
//
// Degenerate walks (no valid neighbors, exhausted start budget) produce
// constant-position trajectories; they are never errors.
package walk
