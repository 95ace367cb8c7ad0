// Package day14 pours sand into a cave of rock paths.
package day14

import (
	"log/slog"
	"strings"

	"github.com/katalvlaran/statespace/geom"
	"github.com/katalvlaran/statespace/gridgraph"
	"github.com/katalvlaran/statespace/puzzle"
)

// Tile is a cave cell.
type Tile byte

const (
	Rock Tile = '#'
	Sand Tile = 'o'
)

// Source is where sand enters the cave.
var Source = geom.Point2{X: 500, Y: 0}

// fall lists the moves a grain tries, in order: down, down-left, down-right.
var fall = []geom.Point2{geom.Down, geom.Down.Add(geom.Left), geom.Down.Add(geom.Right)}

// Day returns the registry entry for day 14.
func Day() puzzle.Day {
	return puzzle.Day{
		Number: 14,
		Title:  "Regolith Reservoir",
		Sample: sample,
		Want:   puzzle.Solution{Part1: "24", Part2: "93"},
		Solve:  Solve,
		Render: Render,
	}
}

// Cave is a sparse map of rock and resting sand.
type Cave struct {
	cells  *gridgraph.Sparse[Tile]
	bottom int // lowest rock row
}

// Parse draws every "x,y -> x,y -> ..." path as rock.
func Parse(input string) (*Cave, error) {
	c := &Cave{cells: gridgraph.NewSparse[Tile]()}
	for _, line := range puzzle.Lines(input) {
		var prev *geom.Point2
		for _, f := range strings.Split(line, " -> ") {
			v, err := puzzle.ExtractInts(f)
			if err != nil {
				return nil, err
			}
			if len(v) != 2 {
				return nil, puzzle.Malformed("day14: point %q", f)
			}
			p := geom.Point2{X: v[0], Y: v[1]}
			if prev != nil {
				if err := c.drawLine(*prev, p); err != nil {
					return nil, err
				}
			}
			c.cells.Set(p, Rock)
			prev = &p
		}
	}
	if c.cells.Len() == 0 {
		return nil, puzzle.Malformed("day14: no rock")
	}
	_, hi := c.cells.Bounds()
	c.bottom = hi.Y

	return c, nil
}

func (c *Cave) drawLine(a, b geom.Point2) error {
	d := b.Sub(a)
	if d.X != 0 && d.Y != 0 {
		return puzzle.Malformed("day14: diagonal segment %v -> %v", a, b)
	}
	step := d.Sign()
	for p := a; p != b; p = p.Add(step) {
		c.cells.Set(p, Rock)
	}

	return nil
}

// Drop lets one grain fall from Source and reports whether it came to rest.
// With floor set, the floor lies two rows below the lowest rock; otherwise
// a grain passing the lowest rock falls forever.
func (c *Cave) Drop(floor bool) bool {
	if c.cells.Has(Source) {
		return false
	}
	p := Source
	for {
		if p.Y > c.bottom && !floor {
			return false
		}
		moved := false
		if p.Y < c.bottom+1 {
			for _, d := range fall {
				if q := p.Add(d); !c.cells.Has(q) {
					p, moved = q, true
					break
				}
			}
		}
		if !moved {
			c.cells.Set(p, Sand)
			return true
		}
	}
}

// Fill drops grains until one fails to rest and returns how many rested.
func (c *Cave) Fill(floor bool) int64 {
	var n int64
	for c.Drop(floor) {
		n++
	}

	return n
}

// Solve counts resting sand without and then with the floor. The second
// fill continues from the first.
func Solve(input string, _ puzzle.Params) (puzzle.Solution, error) {
	c, err := Parse(input)
	if err != nil {
		return puzzle.Solution{}, err
	}
	abyss := c.Fill(false)
	floor := abyss + c.Fill(true)
	slog.Debug("day14", "cells", c.cells.Len(), "bottom", c.bottom)

	return puzzle.Ints(abyss, floor), nil
}

// Render draws the cave after the floor fill.
func Render(input string, _ puzzle.Params) (string, error) {
	c, err := Parse(input)
	if err != nil {
		return "", err
	}
	c.Fill(true)

	return c.String(), nil
}

// String draws the occupied bounding box, '+' marking the source.
func (c *Cave) String() string {
	lo, hi := c.cells.Bounds()
	lo = lo.Min(Source)
	var b strings.Builder
	for y := lo.Y; y <= hi.Y; y++ {
		for x := lo.X; x <= hi.X; x++ {
			p := geom.Point2{X: x, Y: y}
			t, ok := c.cells.Get(p)
			switch {
			case ok:
				b.WriteByte(byte(t))
			case p == Source:
				b.WriteByte('+')
			default:
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}

	return b.String()
}

const sample = `498,4 -> 498,6 -> 496,6
503,4 -> 502,4 -> 502,9 -> 494,9
`
