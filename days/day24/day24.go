// Package day24 crosses a valley of wrapping blizzards.
package day24

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/katalvlaran/statespace/geom"
	"github.com/katalvlaran/statespace/gridgraph"
	"github.com/katalvlaran/statespace/puzzle"
	"github.com/katalvlaran/statespace/search"
)

// Day returns the registry entry for day 24.
func Day() puzzle.Day {
	return puzzle.Day{
		Number: 24,
		Title:  "Blizzard Basin",
		Sample: sample,
		Want:   puzzle.Solution{Part1: "18", Part2: "54"},
		Solve:  Solve,
		Render: Render,
	}
}

// Valley is the walled map. Blizzards never collide with each other, so
// the position of each one at minute t is computed from its start cell
// instead of being simulated.
type Valley struct {
	grid        *gridgraph.Dense[byte]
	W, H        int // interior size
	Entry, Exit geom.Point2
	period      int
}

var errCell = errors.New("unknown cell")

// Parse reads the map. The entry is the gap in the top wall, the exit the
// gap in the bottom wall.
func Parse(input string) (*Valley, error) {
	g, err := gridgraph.ParseDense(puzzle.Lines(input), '#', func(_ geom.Point2, c byte) (byte, error) {
		if strings.IndexByte("#.<>^v", c) < 0 {
			return 0, errCell
		}
		return c, nil
	})
	if err != nil {
		return nil, puzzle.Malformed("day24: %v", err)
	}
	if g.Width < 3 || g.Height < 3 {
		return nil, puzzle.Malformed("day24: valley too small")
	}

	v := &Valley{grid: g, W: g.Width - 2, H: g.Height - 2}
	var hasEntry, hasExit bool
	for x := 1; x <= v.W; x++ {
		if g.At(geom.Point2{X: x, Y: 0}) == '.' {
			v.Entry, hasEntry = geom.Point2{X: x, Y: 0}, true
		}
		if g.At(geom.Point2{X: x, Y: g.Height - 1}) == '.' {
			v.Exit, hasExit = geom.Point2{X: x, Y: g.Height - 1}, true
		}
	}
	if !hasEntry || !hasExit {
		return nil, puzzle.Malformed("day24: missing entry or exit")
	}
	v.period = lcm(v.W, v.H)

	return v, nil
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func lcm(a, b int) int { return a / gcd(a, b) * b }

func mod(a, m int) int { return ((a % m) + m) % m }

// Blizzards returns how many blizzards cover p at minute t.
func (v *Valley) Blizzards(p geom.Point2, t int) int {
	if !v.interior(p) {
		return 0
	}
	x, y := p.X-1, p.Y-1
	n := 0
	if v.start(mod(x-t, v.W), y) == '>' {
		n++
	}
	if v.start(mod(x+t, v.W), y) == '<' {
		n++
	}
	if v.start(x, mod(y-t, v.H)) == 'v' {
		n++
	}
	if v.start(x, mod(y+t, v.H)) == '^' {
		n++
	}

	return n
}

// start returns the minute-0 cell at interior coordinates (x, y).
func (v *Valley) start(x, y int) byte {
	return v.grid.At(geom.Point2{X: x + 1, Y: y + 1})
}

func (v *Valley) interior(p geom.Point2) bool {
	return p.X >= 1 && p.X <= v.W && p.Y >= 1 && p.Y <= v.H
}

// Open reports whether the expedition may stand on p at minute t.
func (v *Valley) Open(p geom.Point2, t int) bool {
	if p == v.Entry || p == v.Exit {
		return true
	}

	return v.interior(p) && v.Blizzards(p, t) == 0
}

// Expedition is a search state: a position at an absolute minute.
type Expedition struct {
	At geom.Point2
	T  int
}

// expeditionKey folds time by the blizzard period: the valley at minute t
// and t+period is identical.
type expeditionKey struct {
	at geom.Point2
	t  int
}

var moves = []geom.Point2{{}, geom.Down, geom.Right, geom.Up, geom.Left}

// problem is an A* search from `from` at minute t0 to `to`; every minute
// costs 1 whether moving or waiting.
func (v *Valley) problem(from, to geom.Point2, t0 int) search.Problem[Expedition, expeditionKey] {
	return search.Problem[Expedition, expeditionKey]{
		Starts: []Expedition{{At: from, T: t0}},
		Expand: func(e Expedition) []search.Step[Expedition] {
			out := make([]search.Step[Expedition], 0, len(moves))
			for _, d := range moves {
				q := e.At.Add(d)
				if v.Open(q, e.T+1) {
					out = append(out, search.Step[Expedition]{State: Expedition{At: q, T: e.T + 1}, Cost: 1})
				}
			}
			return out
		},
		Goal:      func(e Expedition) bool { return e.At == to },
		Key:       func(e Expedition) expeditionKey { return expeditionKey{e.At, e.T % v.period} },
		Heuristic: func(e Expedition) int64 { return int64(e.At.Manhattan(to)) },
	}
}

// Trip returns the first minute at which `to` can be reached when leaving
// `from` at minute t0.
func (v *Valley) Trip(from, to geom.Point2, t0 int, opts ...search.Option) (int, error) {
	res, err := search.BestFirst(v.problem(from, to, t0), opts...)
	if err != nil {
		return 0, fmt.Errorf("day24: %v -> %v at %d: %w", from, to, t0, err)
	}
	slog.Debug("day24 trip", "from", from, "to", to, "depart", t0, "arrive", res.State.T, "expanded", res.Expanded)

	return res.State.T, nil
}

// Frame draws the valley at minute t. Cells with several blizzards show
// their count; E marks the expedition when mark is non-nil.
func (v *Valley) Frame(t int, mark *geom.Point2) string {
	var b strings.Builder
	for y := 0; y < v.grid.Height; y++ {
		for x := 0; x < v.grid.Width; x++ {
			p := geom.Point2{X: x, Y: y}
			switch {
			case mark != nil && p == *mark:
				b.WriteByte('E')
			case !v.interior(p):
				b.WriteByte(v.grid.At(p))
			default:
				b.WriteByte(v.glyph(p, t))
			}
		}
		b.WriteByte('\n')
	}

	return b.String()
}

func (v *Valley) glyph(p geom.Point2, t int) byte {
	n := v.Blizzards(p, t)
	switch {
	case n == 0:
		return '.'
	case n > 1:
		return byte('0' + n)
	}
	x, y := p.X-1, p.Y-1
	switch {
	case v.start(mod(x-t, v.W), y) == '>':
		return '>'
	case v.start(mod(x+t, v.W), y) == '<':
		return '<'
	case v.start(x, mod(y-t, v.H)) == 'v':
		return 'v'
	}

	return '^'
}

// Solve times one crossing, then the crossing back and forth again.
func Solve(input string, _ puzzle.Params) (puzzle.Solution, error) {
	v, err := Parse(input)
	if err != nil {
		return puzzle.Solution{}, err
	}
	there, err := v.Trip(v.Entry, v.Exit, 0)
	if err != nil {
		return puzzle.Solution{}, err
	}
	back, err := v.Trip(v.Exit, v.Entry, there)
	if err != nil {
		return puzzle.Solution{}, err
	}
	again, err := v.Trip(v.Entry, v.Exit, back)
	if err != nil {
		return puzzle.Solution{}, err
	}

	return puzzle.Ints(int64(there), int64(again)), nil
}

// Render draws the valley at the minute the first crossing ends.
func Render(input string, _ puzzle.Params) (string, error) {
	v, err := Parse(input)
	if err != nil {
		return "", err
	}
	there, err := v.Trip(v.Entry, v.Exit, 0)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("minute %d\n%s", there, v.Frame(there, &v.Exit)), nil
}

const sample = `#.######
#>>.<^<#
#.<..<<#
#>v.><>#
#<^v^^>#
######.#
`
