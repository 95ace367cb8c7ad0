// Package day12 finds the fewest steps up a letter-elevation map.
package day12

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/katalvlaran/statespace/geom"
	"github.com/katalvlaran/statespace/gridgraph"
	"github.com/katalvlaran/statespace/puzzle"
	"github.com/katalvlaran/statespace/search"
)

// Day returns the registry entry for day 12.
func Day() puzzle.Day {
	return puzzle.Day{
		Number: 12,
		Title:  "Hill Climbing Algorithm",
		Sample: sample,
		Want:   puzzle.Solution{Part1: "31", Part2: "29"},
		Solve:  Solve,
		Render: Render,
	}
}

// Map is the parsed heightmap; elevations are 0 ('a') to 25 ('z').
type Map struct {
	Grid       *gridgraph.Dense[int]
	Start, End geom.Point2
}

var errElevation = errors.New("not an elevation")

// Parse reads the grid. S has elevation a and E has elevation z.
func Parse(input string) (*Map, error) {
	m := &Map{}
	var hasStart, hasEnd bool
	g, err := gridgraph.ParseDense(puzzle.Lines(input), -1, func(p geom.Point2, c byte) (int, error) {
		switch {
		case c == 'S':
			m.Start, hasStart = p, true
			return 0, nil
		case c == 'E':
			m.End, hasEnd = p, true
			return 25, nil
		case c >= 'a' && c <= 'z':
			return int(c - 'a'), nil
		}
		return 0, errElevation
	})
	if err != nil {
		return nil, puzzle.Malformed("day12: %v", err)
	}
	if !hasStart || !hasEnd {
		return nil, puzzle.Malformed("day12: missing S or E")
	}
	m.Grid = g

	return m, nil
}

// descent searches backwards from End: a step from p to q is allowed when
// the forward climb q -> p rises by at most one.
func (m *Map) descent(goal func(geom.Point2) bool) search.Problem[geom.Point2, geom.Point2] {
	return search.Problem[geom.Point2, geom.Point2]{
		Starts: []geom.Point2{m.End},
		Expand: func(p geom.Point2) []search.Step[geom.Point2] {
			h := m.Grid.At(p)
			var out []search.Step[geom.Point2]
			for _, q := range m.Grid.Neighbors(p, gridgraph.Conn4) {
				if h-m.Grid.At(q) <= 1 {
					out = append(out, search.Step[geom.Point2]{State: q, Cost: 1})
				}
			}
			return out
		},
		Goal: goal,
		Key:  func(p geom.Point2) geom.Point2 { return p },
	}
}

// Climb returns the fewest steps from Start to End.
func (m *Map) Climb(opts ...search.Option) (search.Result[geom.Point2], error) {
	return search.BFS(m.descent(func(p geom.Point2) bool { return p == m.Start }), opts...)
}

// Hike returns the fewest steps from any lowest cell to End.
func (m *Map) Hike() (search.Result[geom.Point2], error) {
	return search.BFS(m.descent(func(p geom.Point2) bool { return m.Grid.At(p) == 0 }))
}

// Solve answers both parts.
func Solve(input string, _ puzzle.Params) (puzzle.Solution, error) {
	m, err := Parse(input)
	if err != nil {
		return puzzle.Solution{}, err
	}
	climb, err := m.Climb()
	if err != nil {
		return puzzle.Solution{}, fmt.Errorf("day12 climb: %w", err)
	}
	hike, err := m.Hike()
	if err != nil {
		return puzzle.Solution{}, fmt.Errorf("day12 hike: %w", err)
	}
	slog.Debug("day12", "expanded", humanize.Comma(int64(climb.Expanded+hike.Expanded)))

	return puzzle.Ints(climb.Cost, hike.Cost), nil
}

// Render draws the map with the shortest climb marked by '#'.
func Render(input string, _ puzzle.Params) (string, error) {
	m, err := Parse(input)
	if err != nil {
		return "", err
	}
	res, err := m.Climb(search.WithPath())
	if err != nil {
		return "", err
	}
	onPath := make(map[geom.Point2]bool, len(res.Path))
	for _, p := range res.Path {
		onPath[p] = true
	}

	rows := puzzle.Lines(input)
	var b strings.Builder
	for y, row := range rows {
		for x := 0; x < len(row); x++ {
			c := row[x]
			if p := (geom.Point2{X: x, Y: y}); onPath[p] && c != 'S' && c != 'E' {
				c = '#'
			}
			b.WriteByte(c)
		}
		b.WriteByte('\n')
	}

	return b.String(), nil
}

const sample = `Sabqponm
abcryxxl
accszExk
acctuvwj
abdefghi
`
