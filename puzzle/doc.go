// Package puzzle is the thin layer between a day's solver and the outside
// world: it carries per-day constants (embedded sample, expected answers,
// parameters), loads inputs, runs solvers, self-checks them against the
// sample, reads an optional YAML configuration and renders the two-line
// console report.
//
// A Day never touches package-level state; everything a run needs is passed
// in through Day and Params, so days can be checked concurrently.
//
// Errors
//
//   - ErrMalformedInput  a solver could not parse its input.
//   - ErrMismatch        a self-check produced the wrong answer.
//   - ErrNoInput         an input file does not exist or is empty.
//   - ErrNoSolver        a Day was registered without a Solve function.
package puzzle
