// Package gridgraph provides addressable cell storage for 2D and 3D integer
// grids, used as the substrate state representation by package search and
// by the per-day simulations.
//
// Three containers are offered:
//
//   - Dense[T]  – row-major 2D storage that grows to fit any non-negative
//     point and never shrinks. Reading an unset or out-of-range cell yields
//     the grid's fill value (e.g. "air" or "unvisited").
//   - Dense3[T] – plane/row/column 3D storage with the same growth rules.
//   - Sparse[T] – a map keyed by geom.Point2, for worlds whose occupied
//     region is small relative to the addressable space. Membership tests
//     (Has) replace bounds-checked reads.
//
// Neighbour enumeration honours Conn4 (N, E, S, W) or Conn8 connectivity.
//
// Errors:
//
//	ErrEmptyGrid       – Parse was given no rows or an empty first row.
//	ErrNonRectangular  – Parse rows have differing lengths.
//	ErrNegativeCoord   – a dense write addressed a negative coordinate.
//	ErrCell            – the cell decoder rejected a character.
package gridgraph
