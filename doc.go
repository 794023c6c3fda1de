// Package percwalk simulates anomalous diffusion on randomly percolated
// 2-D lattices and measures its statistical signatures.
//
// 🚀 What is percwalk?
//
//	A pure-Go simulation toolkit that brings together:
//		• Lattices: square and honeycomb neighbor tables with periodic boundaries
//		• Percolation: Newman–Ziff union-find cluster growth to a target threshold
//		• Random walks: nearest-neighbor hopping restricted to occupied sites
//		• CTRW: heavy-tailed waiting-time subordination (exponential → Pareto)
//		• Analysis: ensemble / time-averaged MSD and the ergodicity-breaking parameter
//
// ✨ Why choose percwalk?
//
//   - Deterministic – every stochastic phase is driven by explicit, seedable RNG streams
//   - Parallel – walk simulation and MSD analysis fan out over a configurable worker pool
//   - Pure Go – no cgo; the SQLite run index uses the modernc driver
//
// Under the hood, everything is organized under focused subpackages:
//
//	tensor/      — flat row-major Dense matrices and walk Cubes
//	lattice/     — neighbor tables, periodic wrap, real-space coordinates
//	percolation/ — permutation + union-find percolation engine
//	walk/        — CTRW walk simulator with per-walk RNG streams
//	msd/         — MSD and ergodicity-breaking analysis
//	sim/         — configuration and pipeline orchestration
//	store/       — raw binary artifact dumps and a SQLite run index
//
// Quick pipeline sketch:
//
//	lattice → percolation → coordinates → walks → analysis
//
// Dive into README.md for full examples and the cmd/percwalk CLI for
// running simulations from a YAML configuration.
//
//	go get github.com/katalvlaran/percwalk
package percwalk
