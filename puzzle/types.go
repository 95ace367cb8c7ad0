package puzzle

import (
	"errors"
	"fmt"
)

// Sentinel errors shared by every day.
var (
	// ErrMalformedInput is wrapped by solvers together with the offending line.
	ErrMalformedInput = errors.New("puzzle: malformed input")

	// ErrMismatch is returned when a run does not match the expected answer.
	ErrMismatch = errors.New("puzzle: answer mismatch")

	// ErrNoInput is returned when an input file is missing or empty.
	ErrNoInput = errors.New("puzzle: no input")

	// ErrNoSolver is returned for a Day without a Solve function.
	ErrNoSolver = errors.New("puzzle: day has no solver")
)

// Malformed wraps ErrMalformedInput with the offending text.
func Malformed(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrMalformedInput, fmt.Sprintf(format, args...))
}

// Solution holds the two answers of a day. A value is usually a decimal
// integer but may be any short string.
type Solution struct {
	Part1 string `yaml:"part1"`
	Part2 string `yaml:"part2"`
}

// Ints builds a Solution from two integers.
func Ints(p1, p2 int64) Solution {
	return Solution{Part1: fmt.Sprint(p1), Part2: fmt.Sprint(p2)}
}

// Params are named integer knobs a solver reads (row numbers, time limits,
// round counts). Sample and real inputs often need different values.
type Params map[string]int64

// Int returns the named parameter or def when it is absent.
func (p Params) Int(name string, def int64) int64 {
	if v, ok := p[name]; ok {
		return v
	}

	return def
}

// Merge returns a copy of p with every entry of over applied on top.
func (p Params) Merge(over Params) Params {
	out := make(Params, len(p)+len(over))
	for k, v := range p {
		out[k] = v
	}
	for k, v := range over {
		out[k] = v
	}

	return out
}

// SolveFunc computes both answers for one input.
type SolveFunc func(input string, p Params) (Solution, error)

// RenderFunc draws a picture of the final state for one input.
type RenderFunc func(input string, p Params) (string, error)

// Day bundles a solver with its constants.
type Day struct {
	Number int
	Title  string

	// Sample is the embedded example input and Want its answers.
	Sample string
	Want   Solution

	// SampleParams are used for Sample; InputParams for real inputs.
	SampleParams Params
	InputParams  Params

	Solve  SolveFunc
	Render RenderFunc // optional
}

// String returns "day NN: Title".
func (d Day) String() string {
	return fmt.Sprintf("day %02d: %s", d.Number, d.Title)
}
