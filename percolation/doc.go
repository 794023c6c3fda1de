// Package percolation grows site-percolation clusters on a lattice
// neighbor table using the Newman–Ziff union-find algorithm.
//
// What:
//
//   - Permute: a uniform random activation order over all sites.
//   - Percolate: activates the first ⌊p·N⌋-1 sites of the permutation,
//     merging clusters by size with a path-compressed union-find forest
//     stored in a flat integer arena.
//   - Occupancy: read-side queries — occupancy, cluster roots, sizes,
//     the largest cluster and the label channel for the coordinate table.
//
// Encoding (one int per site):
//
//   - empty sentinel (-N-1): site not yet activated
//   - value < 0 and ≠ sentinel: cluster root, -value = cluster size
//   - value ≥ 0: parent pointer toward the root
//
// The ⌊p·N⌋-1 activation count is the classic Newman–Ziff convention
// (the final activation is deliberately not performed) and is preserved
// as such; p·N < 1 is rejected up front as ErrThresholdTooLow.
//
// The activation loop is inherently sequential: every union depends on
// FindRoot state from prior activations. Run it on one goroutine; the
// finished Occupancy is safe for concurrent readers that stick to the
// non-compressing queries (Occupied, LargestClusterSize).
//
// Complexity: O(N·degree·α(N)) time, O(N) memory.
package percolation
