// Package days registers every implemented puzzle day.
package days

import (
	"errors"
	"fmt"
	"slices"

	"github.com/katalvlaran/statespace/days/day07"
	"github.com/katalvlaran/statespace/days/day12"
	"github.com/katalvlaran/statespace/days/day13"
	"github.com/katalvlaran/statespace/days/day14"
	"github.com/katalvlaran/statespace/days/day15"
	"github.com/katalvlaran/statespace/days/day16"
	"github.com/katalvlaran/statespace/days/day17"
	"github.com/katalvlaran/statespace/days/day18"
	"github.com/katalvlaran/statespace/days/day19"
	"github.com/katalvlaran/statespace/days/day20"
	"github.com/katalvlaran/statespace/days/day21"
	"github.com/katalvlaran/statespace/days/day24"
	"github.com/katalvlaran/statespace/days/day25"
	"github.com/katalvlaran/statespace/puzzle"
)

// ErrUnknownDay is returned by Lookup for a day that is not registered.
var ErrUnknownDay = errors.New("days: unknown day")

var constructors = []func() puzzle.Day{
	day07.Day,
	day12.Day,
	day13.Day,
	day14.Day,
	day15.Day,
	day16.Day,
	day17.Day,
	day18.Day,
	day19.Day,
	day20.Day,
	day21.Day,
	day24.Day,
	day25.Day,
}

// All returns every registered day ordered by number.
func All() []puzzle.Day {
	out := make([]puzzle.Day, 0, len(constructors))
	for _, c := range constructors {
		out = append(out, c())
	}
	slices.SortFunc(out, func(a, b puzzle.Day) int { return a.Number - b.Number })

	return out
}

// Lookup returns the day with the given number.
func Lookup(n int) (puzzle.Day, error) {
	for _, c := range constructors {
		if d := c(); d.Number == n {
			return d, nil
		}
	}

	return puzzle.Day{}, fmt.Errorf("%w: %d", ErrUnknownDay, n)
}
