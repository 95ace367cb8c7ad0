// Package statespace solves Advent of Code 2022 puzzles on top of a small
// set of reusable search and simulation engines.
//
// 🚀 What is inside?
//
//   - search: BFS, Dijkstra / A* (BestFirst), reachability (Distances)
//     and depth-first branch-and-bound (Maximize) over generic states
//   - cycle: periodicity detection and extrapolation of long simulations
//   - gridgraph: dense 2D/3D and sparse grids addressed by geom points
//   - geom: integer points, neighbourhoods and inclusive intervals
//   - puzzle: the Day registry contract, input helpers, config and reports
//   - days: one package per solved day, plus the All/Lookup registry
//
// ✨ Design rules
//
//   - Engines take explicit functions (Expand, Goal, Key, Bound) and keep
//     all accumulated data inside the state value; nothing is global.
//   - Every engine validates its input and returns sentinel errors
//     (errors.Is friendly) instead of panicking.
//   - Functional options (WithMaxExpansions, WithoutPruning, WithPath, ...)
//     tune behaviour; invalid options surface as ErrOptionViolation.
//
// Quick start:
//
//	go run ./cmd/aoc check
//	go run ./cmd/aoc run 16 inputs/day16.txt --config aoc.yaml
package statespace
