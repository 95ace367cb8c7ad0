package geom

import (
	"fmt"
	"slices"
)

// Interval is an inclusive span [Lo, Hi] on a coordinate line.
// An Interval with Lo > Hi is empty.
type Interval struct {
	Lo, Hi int
}

// Empty reports whether the interval covers no coordinate.
func (iv Interval) Empty() bool { return iv.Lo > iv.Hi }

// Len is the number of integer coordinates covered (Hi-Lo+1), 0 when empty.
func (iv Interval) Len() int {
	if iv.Empty() {
		return 0
	}

	return iv.Hi - iv.Lo + 1
}

// Contains reports whether v lies inside the interval.
func (iv Interval) Contains(v int) bool { return v >= iv.Lo && v <= iv.Hi }

// Clip intersects iv with [lo, hi]. The result may be empty.
func (iv Interval) Clip(lo, hi int) Interval {
	return Interval{Lo: max(iv.Lo, lo), Hi: min(iv.Hi, hi)}
}

func (iv Interval) String() string { return fmt.Sprintf("[%d,%d]", iv.Lo, iv.Hi) }

// MergeIntervals sorts spans by (Lo, Hi) and merges every pair that
// overlaps or touches (next.Lo <= cur.Hi+1). Empty spans are dropped.
// The input slice is not modified. The result is sorted and disjoint with
// at least one uncovered coordinate between consecutive entries.
//
// Complexity: O(n log n) time, O(n) memory.
func MergeIntervals(spans []Interval) []Interval {
	sorted := make([]Interval, 0, len(spans))
	for _, s := range spans {
		if !s.Empty() {
			sorted = append(sorted, s)
		}
	}
	if len(sorted) == 0 {
		return nil
	}
	slices.SortFunc(sorted, func(a, b Interval) int {
		if a.Lo != b.Lo {
			return cmpInt(a.Lo, b.Lo)
		}

		return cmpInt(a.Hi, b.Hi)
	})

	out := make([]Interval, 0, len(sorted))
	cur := sorted[0]
	for _, s := range sorted[1:] {
		if s.Lo <= cur.Hi+1 {
			cur.Hi = max(cur.Hi, s.Hi)
			continue
		}
		out = append(out, cur)
		cur = s
	}

	return append(out, cur)
}

// CoveredWidth sums Hi-Lo over merged spans, i.e. the total length of the
// covered segments measured between their end coordinates.
func CoveredWidth(merged []Interval) int {
	total := 0
	for _, s := range merged {
		total += s.Hi - s.Lo
	}

	return total
}

// CoveredCount sums Len over merged spans.
func CoveredCount(merged []Interval) int {
	total := 0
	for _, s := range merged {
		total += s.Len()
	}

	return total
}
