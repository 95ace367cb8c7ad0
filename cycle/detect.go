package cycle

import "fmt"

// Cycle is a detected repetition together with the measure history up to
// and including the first repeat.
type Cycle struct {
	// Start is the tick at which the repeated key was first seen (t0).
	Start int64
	// Length is the period in ticks (t1 - t0).
	Length int64
	// Gain is the change in measure over one period (m1 - m0).
	Gain int64
	// Keys is the number of distinct snapshot keys observed.
	Keys int

	measures []int64 // measures[t] for t in [0, t1]
}

// Repeat returns the tick at which the first repeat was observed (t1).
func (c *Cycle) Repeat() int64 { return c.Start + c.Length }

// Detect steps initial forward until a snapshot key repeats.
//
// step advances the system by one tick and returns the new state, its
// snapshot key and the accumulated measure after the tick. The measure at
// tick 0 is taken from WithInitialMeasure (default 0).
//
// Returns ErrNilStep, ErrOptionViolation, or ErrNoCycle if no key repeats
// within WithMaxSteps ticks.
func Detect[S any, K comparable](initial S, step func(S) (S, K, int64), opts ...Option) (*Cycle, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if step == nil {
		return nil, ErrNilStep
	}

	cache := NewCache[K]()
	measures := []int64{o.InitialMeasure}
	s := initial
	for t := int64(1); t <= o.MaxSteps; t++ {
		var (
			key K
			m   int64
		)
		s, key, m = step(s)
		measures = append(measures, m)

		first, seen := cache.Observe(key, t, m)
		if !seen {
			continue
		}

		return &Cycle{
			Start:    first.Step,
			Length:   t - first.Step,
			Gain:     m - first.Measure,
			Keys:     cache.Len(),
			measures: measures,
		}, nil
	}

	return nil, fmt.Errorf("%w: %d steps, %d distinct keys", ErrNoCycle, o.MaxSteps, cache.Len())
}

// At returns the measure after n ticks: recorded exactly for n <= Repeat(),
// extrapolated over whole periods beyond.
func (c *Cycle) At(n int64) (int64, error) {
	if n < 0 {
		return 0, fmt.Errorf("%w: %d", ErrNegativeTarget, n)
	}
	if n < int64(len(c.measures)) {
		return c.measures[n], nil
	}
	k := (n - c.Start) / c.Length
	r := (n - c.Start) % c.Length

	return k*c.Gain + c.measures[c.Start+r], nil
}
