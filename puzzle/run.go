package puzzle

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/dustin/go-humanize"
	"golang.org/x/sync/errgroup"
)

// Run solves input with over applied on top of d.InputParams.
func Run(d Day, input string, over Params) (Solution, error) {
	return run(d, input, d.InputParams.Merge(over))
}

// SelfCheck solves the embedded sample and compares it with d.Want.
func SelfCheck(d Day) (Solution, error) {
	got, err := run(d, d.Sample, d.SampleParams.Merge(nil))
	if err != nil {
		return got, err
	}

	return got, Verify(d, got, d.Want)
}

// Verify compares got with want. Empty fields of want are not checked.
func Verify(d Day, got, want Solution) error {
	if want.Part1 != "" && got.Part1 != want.Part1 {
		return fmt.Errorf("%w: %s part 1: got %s, want %s", ErrMismatch, d, got.Part1, want.Part1)
	}
	if want.Part2 != "" && got.Part2 != want.Part2 {
		return fmt.Errorf("%w: %s part 2: got %s, want %s", ErrMismatch, d, got.Part2, want.Part2)
	}

	return nil
}

func run(d Day, input string, p Params) (Solution, error) {
	if d.Solve == nil {
		return Solution{}, fmt.Errorf("%w: %s", ErrNoSolver, d)
	}
	slog.Debug("solving", "day", d.Number, "input", humanize.Bytes(uint64(len(input))))

	start := time.Now()
	s, err := d.Solve(input, p)
	if err != nil {
		return s, fmt.Errorf("%s: %w", d, err)
	}
	slog.Info("solved", "day", d.Number, "elapsed", time.Since(start).Round(time.Microsecond))

	return s, nil
}

// Outcome is the result of self-checking one day.
type Outcome struct {
	Day     Day
	Got     Solution
	Err     error
	Elapsed time.Duration
}

// CheckAll self-checks days concurrently, at most limit at a time (limit
// <= 0 means unbounded). Outcomes are returned in the order of days; the
// error is the first failure, if any.
func CheckAll(ctx context.Context, days []Day, limit int) ([]Outcome, error) {
	out := make([]Outcome, len(days))
	g := new(errgroup.Group)
	if limit > 0 {
		g.SetLimit(limit)
	}
	for i, d := range days {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				out[i] = Outcome{Day: d, Err: err}
				return err
			}
			start := time.Now()
			got, err := SelfCheck(d)
			out[i] = Outcome{Day: d, Got: got, Err: err, Elapsed: time.Since(start)}

			return err
		})
	}
	err := g.Wait()

	return out, err
}
