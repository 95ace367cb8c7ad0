package cycle

import (
	"errors"
	"fmt"
)

// Sentinel errors for cycle detection.
var (
	// ErrNoCycle is returned when no snapshot repeats within the step bound.
	ErrNoCycle = errors.New("cycle: no cycle within step bound")

	// ErrNegativeTarget is returned by At for n < 0.
	ErrNegativeTarget = errors.New("cycle: negative target tick")

	// ErrNilStep is returned when Detect is called without a step function.
	ErrNilStep = errors.New("cycle: step function is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("cycle: invalid option supplied")
)

// DefaultMaxSteps bounds Detect when WithMaxSteps is not given.
const DefaultMaxSteps = 1_000_000

// Entry is what the cache remembers about the first occurrence of a key.
type Entry struct {
	Step    int64
	Measure int64
}

// Option configures Detect.
type Option func(*Options)

// Options holds Detect parameters.
type Options struct {
	// MaxSteps is the number of ticks simulated before giving up with ErrNoCycle.
	MaxSteps int64

	// InitialMeasure is the measure at tick 0, before any step.
	InitialMeasure int64

	err error
}

// DefaultOptions returns a bound of DefaultMaxSteps and an initial measure of 0.
func DefaultOptions() Options {
	return Options{MaxSteps: DefaultMaxSteps}
}

// WithMaxSteps sets the simulation bound. n must be positive.
func WithMaxSteps(n int64) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: MaxSteps must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxSteps = n
	}
}

// WithInitialMeasure sets the measure reported for tick 0.
func WithInitialMeasure(m int64) Option {
	return func(o *Options) {
		o.InitialMeasure = m
	}
}
