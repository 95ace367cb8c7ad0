// Package day20 mixes a circular list of numbers.
package day20

import (
	"strconv"
	"strings"

	"github.com/katalvlaran/statespace/puzzle"
)

// Day returns the registry entry for day 20.
func Day() puzzle.Day {
	params := puzzle.Params{"key": 811589153, "rounds": 10}
	return puzzle.Day{
		Number:       20,
		Title:        "Grove Positioning System",
		Sample:       sample,
		Want:         puzzle.Solution{Part1: "3", Part2: "1623178306"},
		SampleParams: params,
		InputParams:  params,
		Solve:        Solve,
	}
}

// Parse reads one integer per line.
func Parse(input string) ([]int64, error) {
	var out []int64
	for _, line := range puzzle.Lines(input) {
		v, err := strconv.ParseInt(strings.TrimSpace(line), 10, 64)
		if err != nil {
			return nil, puzzle.Malformed("day20: %q", line)
		}
		out = append(out, v)
	}

	return out, nil
}

// Ring is a circular arrangement of values. order[p] is the original index
// at position p and where[i] the current position of original index i.
type Ring struct {
	values []int64
	order  []int
	where  []int
}

// NewRing places values in their original order.
func NewRing(values []int64) *Ring {
	r := &Ring{values: values, order: make([]int, len(values)), where: make([]int, len(values))}
	for i := range values {
		r.order[i], r.where[i] = i, i
	}

	return r
}

// Mix moves every value, in original order, by its own amount.
func (r *Ring) Mix() {
	n := len(r.values)
	if n < 2 {
		return
	}
	for i, v := range r.values {
		from := r.where[i]
		to := int((int64(from) + v) % int64(n-1))
		if to < 0 {
			to += n - 1
		}
		r.move(from, to)
	}
}

// move shifts the entries between from and to by one and places order[from] at to.
func (r *Ring) move(from, to int) {
	idx := r.order[from]
	if from < to {
		copy(r.order[from:to], r.order[from+1:to+1])
	} else {
		copy(r.order[to+1:from+1], r.order[to:from])
	}
	r.order[to] = idx
	for p := min(from, to); p <= max(from, to); p++ {
		r.where[r.order[p]] = p
	}
}

// Values returns the values in ring order.
func (r *Ring) Values() []int64 {
	out := make([]int64, len(r.order))
	for p, i := range r.order {
		out[p] = r.values[i]
	}

	return out
}

// Coordinates sums the values 1000, 2000 and 3000 positions after 0.
func (r *Ring) Coordinates() (int64, bool) {
	vals := r.Values()
	zero := -1
	for p, v := range vals {
		if v == 0 {
			zero = p
			break
		}
	}
	if zero < 0 {
		return 0, false
	}
	var sum int64
	for _, k := range []int{1000, 2000, 3000} {
		sum += vals[(zero+k)%len(vals)]
	}

	return sum, true
}

// Solve mixes once, then mixes the values times "key" for "rounds" rounds.
func Solve(input string, p puzzle.Params) (puzzle.Solution, error) {
	values, err := Parse(input)
	if err != nil {
		return puzzle.Solution{}, err
	}

	r := NewRing(values)
	r.Mix()
	part1, ok := r.Coordinates()
	if !ok {
		return puzzle.Solution{}, puzzle.Malformed("day20: no zero")
	}

	key := p.Int("key", 811589153)
	scaled := make([]int64, len(values))
	for i, v := range values {
		scaled[i] = v * key
	}
	r = NewRing(scaled)
	for i := int64(0); i < p.Int("rounds", 10); i++ {
		r.Mix()
	}
	part2, _ := r.Coordinates()

	return puzzle.Ints(part1, part2), nil
}

const sample = `1
2
-3
3
-2
0
4
`
