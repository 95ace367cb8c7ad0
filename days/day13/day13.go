// Package day13 parses nested integer lists and orders them.
package day13

import (
	"slices"
	"strconv"

	"github.com/katalvlaran/statespace/puzzle"
)

// Day returns the registry entry for day 13.
func Day() puzzle.Day {
	return puzzle.Day{
		Number: 13,
		Title:  "Distress Signal",
		Sample: sample,
		Want:   puzzle.Solution{Part1: "13", Part2: "140"},
		Solve:  Solve,
	}
}

// Packet is either an integer (List == nil) or a list of packets.
type Packet struct {
	Int  int
	List []Packet
}

func (p Packet) isList() bool { return p.List != nil }

// Parse reads one packet line. The whole line must be consumed.
func Parse(s string) (Packet, error) {
	p, at, err := parseValue(s, 0)
	if err != nil {
		return Packet{}, err
	}
	if at != len(s) {
		return Packet{}, puzzle.Malformed("day13: trailing %q", s[at:])
	}

	return p, nil
}

// parseValue reads a value starting at s[at] and returns it with the index
// just past it.
func parseValue(s string, at int) (Packet, int, error) {
	if at >= len(s) {
		return Packet{}, at, puzzle.Malformed("day13: unexpected end of %q", s)
	}
	if s[at] == '[' {
		return parseList(s, at+1)
	}
	end := at
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	v, err := strconv.Atoi(s[at:end])
	if err != nil {
		return Packet{}, at, puzzle.Malformed("day13: %q at %d", s, at)
	}

	return Packet{Int: v}, end, nil
}

// parseList reads list items after an opening bracket up to the matching ']'.
func parseList(s string, at int) (Packet, int, error) {
	list := Packet{List: []Packet{}}
	if at < len(s) && s[at] == ']' {
		return list, at + 1, nil
	}
	for {
		item, next, err := parseValue(s, at)
		if err != nil {
			return Packet{}, next, err
		}
		list.List = append(list.List, item)
		if next >= len(s) {
			return Packet{}, next, puzzle.Malformed("day13: unclosed list in %q", s)
		}
		switch s[next] {
		case ',':
			at = next + 1
		case ']':
			return list, next + 1, nil
		default:
			return Packet{}, next, puzzle.Malformed("day13: %q at %d", s, next)
		}
	}
}

// Compare orders packets: integers numerically, lists lexicographically,
// and a lone integer as a one-element list when compared with a list.
func Compare(a, b Packet) int {
	switch {
	case !a.isList() && !b.isList():
		return a.Int - b.Int
	case !a.isList():
		return Compare(Packet{List: []Packet{a}}, b)
	case !b.isList():
		return Compare(a, Packet{List: []Packet{b}})
	}

	return slices.CompareFunc(a.List, b.List, Compare)
}

// Solve sums the 1-based indices of ordered pairs and multiplies the
// positions of the two divider packets after sorting.
func Solve(input string, _ puzzle.Params) (puzzle.Solution, error) {
	var (
		all     []Packet
		ordered int64
	)
	for i, block := range puzzle.Blocks(input) {
		if len(block) != 2 {
			return puzzle.Solution{}, puzzle.Malformed("day13: pair %d has %d lines", i+1, len(block))
		}
		left, err := Parse(block[0])
		if err != nil {
			return puzzle.Solution{}, err
		}
		right, err := Parse(block[1])
		if err != nil {
			return puzzle.Solution{}, err
		}
		if Compare(left, right) < 0 {
			ordered += int64(i + 1)
		}
		all = append(all, left, right)
	}

	// dividers sort where they would among the others; count those before them
	d1, _ := Parse("[[2]]")
	d2, _ := Parse("[[6]]")
	pos1, pos2 := int64(1), int64(2)
	for _, p := range all {
		if Compare(p, d1) < 0 {
			pos1++
		}
		if Compare(p, d2) < 0 {
			pos2++
		}
	}

	return puzzle.Ints(ordered, pos1*pos2), nil
}

const sample = `[1,1,3,1,1]
[1,1,5,1,1]

[[1],[2,3,4]]
[[1],4]

[9]
[[8,7,6]]

[[4,4],4,4]
[[4,4],4,4,4]

[7,7,7,7]
[7,7,7]

[]
[3]

[[[]]]
[[]]

[1,[2,[3,[4,[5,6,7]]]],8,9]
[1,[2,[3,[4,[5,6,0]]]],8,9]
`
