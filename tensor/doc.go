// Package tensor provides the flat numeric containers shared by the
// percwalk pipeline.
//
// What:
//
//   - Dense: a row-major r×c matrix of float64 values backed by a single
//     flat slice (no per-element heap allocation).
//   - Cube: a stack of equally shaped Dense slices, used for the
//     2 × walkLength × nWalks walk-coordinate tensor.
//
// Why:
//
//   - The simulation phases exchange large numeric blocks (coordinate
//     tables, walk tensors, analysis tables); a fixed row-major layout
//     keeps them cache-friendly and trivially dumpable to disk.
//   - Slice views let per-walk workers write disjoint regions of one
//     Cube without locking.
//
// Errors:
//
//   - ErrInvalidDimensions: requested dimensions are non-positive.
//   - ErrIndexOutOfBounds: a row, column or slice index is out of range.
//
// Bounds-checked At/Set are provided for callers; hot loops inside the
// simulation packages index Data() directly.
package tensor
