// Package day17 stacks falling rocks in a narrow chamber and extrapolates
// the tower height through cycle detection.
package day17

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/katalvlaran/statespace/cycle"
	"github.com/katalvlaran/statespace/geom"
	"github.com/katalvlaran/statespace/gridgraph"
	"github.com/katalvlaran/statespace/puzzle"
)

// Width of the chamber.
const Width = 7

// shapes are the five rocks in drop order; Y grows upwards, (0,0) is the
// bottom-left corner of the bounding box.
var shapes = [][]geom.Point2{
	{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}, {X: 3, Y: 0}},
	{{X: 1, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}, {X: 2, Y: 1}, {X: 1, Y: 2}},
	{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 1}, {X: 2, Y: 2}},
	{{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 0, Y: 2}, {X: 0, Y: 3}},
	{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}},
}

// fallDown is one unit towards the floor in chamber coordinates.
var fallDown = geom.Point2{X: 0, Y: -1}

// Day returns the registry entry for day 17.
func Day() puzzle.Day {
	params := puzzle.Params{"rocks1": 2022, "rocks2": 1_000_000_000_000}
	return puzzle.Day{
		Number:       17,
		Title:        "Pyroclastic Flow",
		Sample:       sample,
		Want:         puzzle.Solution{Part1: "3068", Part2: "1514285714288"},
		SampleParams: params,
		InputParams:  params,
		Solve:        Solve,
		Render:       Render,
	}
}

// Parse reads the jet pattern: -1 for '<', +1 for '>'.
func Parse(input string) ([]int, error) {
	line := strings.TrimSpace(input)
	if line == "" {
		return nil, puzzle.Malformed("day17: empty jet pattern")
	}
	jets := make([]int, len(line))
	for i := 0; i < len(line); i++ {
		switch line[i] {
		case '<':
			jets[i] = -1
		case '>':
			jets[i] = 1
		default:
			return nil, puzzle.Malformed("day17: jet %q at %d", line[i], i)
		}
	}

	return jets, nil
}

// Chamber is the settled rock, the current height and the indices of the
// next rock and jet.
type Chamber struct {
	cells  *gridgraph.Dense[bool]
	jets   []int
	Height int
	rock   int
	jet    int
}

// NewChamber returns an empty chamber driven by jets.
func NewChamber(jets []int) *Chamber {
	return &Chamber{cells: gridgraph.NewDense(Width, 0, false), jets: jets}
}

func (c *Chamber) fits(shape []geom.Point2, at geom.Point2) bool {
	for _, d := range shape {
		p := at.Add(d)
		if p.X < 0 || p.X >= Width || p.Y < 0 || c.cells.At(p) {
			return false
		}
	}

	return true
}

// Drop lets the next rock fall until it settles.
func (c *Chamber) Drop() {
	shape := shapes[c.rock]
	c.rock = (c.rock + 1) % len(shapes)
	at := geom.Point2{X: 2, Y: c.Height + 3}
	for {
		push := geom.Point2{X: c.jets[c.jet]}
		c.jet = (c.jet + 1) % len(c.jets)
		if next := at.Add(push); c.fits(shape, next) {
			at = next
		}
		next := at.Add(fallDown)
		if !c.fits(shape, next) {
			break
		}
		at = next
	}
	for _, d := range shape {
		p := at.Add(d)
		_ = c.cells.Set(p, true) // p is never negative here
		c.Height = max(c.Height, p.Y+1)
	}
}

// Profile is the depth from the top of the tower to the first rock in each
// column; an empty column reports Height+1.
func (c *Chamber) Profile() [Width]int {
	var out [Width]int
	for x := 0; x < Width; x++ {
		y := c.Height - 1
		for y >= 0 && !c.cells.At(geom.Point2{X: x, Y: y}) {
			y--
		}
		out[x] = c.Height - y
	}

	return out
}

// snapshot identifies a chamber configuration up to vertical translation.
type snapshot struct {
	rock, jet int
	profile   uint64
}

func (c *Chamber) snapshot() snapshot {
	p := c.Profile()
	return snapshot{rock: c.rock, jet: c.jet, profile: cycle.FingerprintInts(p[:]...)}
}

// step drops one rock and reports the new snapshot and height.
func step(c *Chamber) (*Chamber, snapshot, int64) {
	c.Drop()
	return c, c.snapshot(), int64(c.Height)
}

// Heights detects the repetition of the tower and returns its height after
// each of the requested rock counts.
func Heights(jets []int, rocks ...int64) ([]int64, error) {
	cy, err := cycle.Detect(NewChamber(jets), step)
	if err != nil {
		return nil, fmt.Errorf("day17: %w", err)
	}
	slog.Debug("day17", "start", cy.Start, "period", cy.Length, "gain", cy.Gain,
		"snapshots", humanize.Comma(int64(cy.Keys)))

	out := make([]int64, len(rocks))
	for i, n := range rocks {
		if out[i], err = cy.At(n); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// Solve answers both parts with the "rocks1" and "rocks2" parameters.
func Solve(input string, p puzzle.Params) (puzzle.Solution, error) {
	jets, err := Parse(input)
	if err != nil {
		return puzzle.Solution{}, err
	}
	h, err := Heights(jets, p.Int("rocks1", 2022), p.Int("rocks2", 1_000_000_000_000))
	if err != nil {
		return puzzle.Solution{}, err
	}

	return puzzle.Ints(h[0], h[1]), nil
}

// Render simulates "rocks1" rocks and draws the top of the tower.
func Render(input string, p puzzle.Params) (string, error) {
	jets, err := Parse(input)
	if err != nil {
		return "", err
	}
	c := NewChamber(jets)
	for i := int64(0); i < p.Int("rocks1", 2022); i++ {
		c.Drop()
	}

	return c.Top(30), nil
}

// Top draws the highest rows of the tower, newest first.
func (c *Chamber) Top(rows int) string {
	var b strings.Builder
	for y := c.Height - 1; y >= max(0, c.Height-rows); y-- {
		b.WriteByte('|')
		for x := 0; x < Width; x++ {
			if c.cells.At(geom.Point2{X: x, Y: y}) {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
		b.WriteString("|\n")
	}
	if c.Height <= rows {
		b.WriteString("+-------+\n")
	}

	return b.String()
}

const sample = ">>><<><>><<<>><>>><<<>>><<<><<<>><>><<>>\n"
