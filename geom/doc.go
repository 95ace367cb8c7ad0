// Package geom provides the integer coordinate primitives shared by the
// search engine, the cycle detector, and the grid containers.
//
// What
//
//   - Point2 and Point3: immutable integer tuples with component-wise
//     arithmetic (Add, Sub, Scale), Sign, Abs, Min, Max and Manhattan distance.
//   - A total lexicographic order (Less, Compare) so points can be map keys,
//     members of sorted slices, or entries in ordered sets.
//   - Interval: an inclusive [Lo, Hi] span on a coordinate line, with
//     MergeIntervals to reduce overlapping or touching spans.
//   - Neighbour offset tables: Conn4, Conn8 (2D) and Face6 (3D).
//
// Why
//
//	Every search state in this module is built on top of a position. Keeping
//	the arithmetic in one value type makes the states cheap to copy and
//	comparable with ==, which is what the dedup keys of package search need.
//
// Complexity
//
//   - All Point operations are O(1) and allocation-free.
//   - MergeIntervals is O(n log n) for the sort and O(n) for the sweep.
//
// Usage
//
//	a := geom.Point2{X: 2, Y: 18}
//	b := geom.Point2{X: -2, Y: 15}
//	r := a.Manhattan(b) // 7
//
//	spans := []geom.Interval{{Lo: 12, Hi: 12}, {Lo: -2, Hi: 2}, {Lo: 2, Hi: 14}}
//	merged := geom.MergeIntervals(spans) // [{-2 14}]
package geom
