// Package sim wires the percwalk pipeline together: configuration
// validation, phase sequencing and result assembly.
//
// Phases run strictly left to right:
//
//	lattice (neighbor table) → percolation → coordinates → walks → analysis
//
// The neighbor table, occupancy and coordinates are built once and
// shared read-only with the parallel walk and analysis phases. All
// configuration errors surface from Validate before any phase starts;
// after that, per-walk anomalies degrade to well-defined sentinel
// outputs instead of aborting the run.
//
// Per-phase wall-clock durations are recorded on the Result so callers
// (the CLI, the run index) can report timings without the core printing
// anything.
package sim
