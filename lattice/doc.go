// Package lattice builds fixed-degree neighbor tables and real-space
// coordinates for 2-D lattices with periodic boundary conditions.
//
// What:
//
//   - Square topology: N = L² sites, degree 4, column-major layout with
//     L sites per column; wraparound via modular index arithmetic.
//   - Honeycomb topology: N = 4L² sites, degree 3, four sub-lattice
//     positions per super-column; wraparound via explicit index algebra
//     covering corners, first/last columns and four column classes.
//   - Logical first-row (top) and last-row (bottom) site sets, used by
//     the walk simulator to detect vertical periodic crossings.
//   - Real-space site coordinates and the unit-cell translation vector
//     applied whenever a walk wraps across a periodic boundary.
//
// Why:
//
//   - The percolation engine and the walk simulator both consume the
//     same read-only adjacency; building it once up front keeps the hot
//     loops free of topology branches.
//
// Invariant:
//
//   - The table is symmetric under periodic wrap: if b is a neighbor of
//     a, then a appears among the neighbors of b.
//
// Errors:
//
//   - ErrGridTooSmall: linear size L ≤ 1 cannot host periodic wrap.
//   - ErrUnknownTopology: topology name is not square or honeycomb.
//
// Complexity: table construction is O(N·degree) time and memory.
package lattice
