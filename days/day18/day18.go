// Package day18 measures the surface of a droplet made of unit cubes.
package day18

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/statespace/geom"
	"github.com/katalvlaran/statespace/gridgraph"
	"github.com/katalvlaran/statespace/puzzle"
	"github.com/katalvlaran/statespace/search"
)

// Day returns the registry entry for day 18.
func Day() puzzle.Day {
	return puzzle.Day{
		Number: 18,
		Title:  "Boiling Boulders",
		Sample: sample,
		Want:   puzzle.Solution{Part1: "64", Part2: "58"},
		Solve:  Solve,
	}
}

// Droplet holds the lava cubes shifted so the smallest coordinate on each
// axis is 1, leaving a layer of air around them inside [0, Hi].
type Droplet struct {
	cubes []geom.Point3
	lava  *gridgraph.Dense3[bool]
	Hi    geom.Point3
}

// Parse reads "x,y,z" lines.
func Parse(input string) (*Droplet, error) {
	var raw []geom.Point3
	for _, line := range puzzle.Lines(input) {
		v, err := puzzle.ExtractInts(line)
		if err != nil {
			return nil, err
		}
		if len(v) != 3 {
			return nil, puzzle.Malformed("day18: %q", line)
		}
		raw = append(raw, geom.Point3{X: v[0], Y: v[1], Z: v[2]})
	}
	lo, hi, ok := geom.Bounds3(raw...)
	if !ok {
		return nil, puzzle.Malformed("day18: no cubes")
	}

	shift := geom.Point3{X: 1, Y: 1, Z: 1}.Sub(lo)
	d := &Droplet{lava: gridgraph.NewDense3(false), Hi: hi.Add(shift).Add(geom.Point3{X: 1, Y: 1, Z: 1})}
	for _, p := range raw {
		p = p.Add(shift)
		if err := d.lava.Set(p, true); err != nil {
			return nil, err
		}
		d.cubes = append(d.cubes, p)
	}

	return d, nil
}

func (d *Droplet) inBox(p geom.Point3) bool {
	return p.X >= 0 && p.Y >= 0 && p.Z >= 0 && p.X <= d.Hi.X && p.Y <= d.Hi.Y && p.Z <= d.Hi.Z
}

// Surface counts cube faces not touching another cube, pockets included.
func (d *Droplet) Surface() int {
	n := 0
	for _, c := range d.cubes {
		for _, f := range geom.Face6 {
			if !d.lava.At(c.Add(f)) {
				n++
			}
		}
	}

	return n
}

// Exterior counts cube faces reachable by steam flooding in from outside.
func (d *Droplet) Exterior() (int, error) {
	outside, err := search.Distances(search.Problem[geom.Point3, geom.Point3]{
		Starts: []geom.Point3{{}},
		Expand: func(p geom.Point3) []search.Step[geom.Point3] {
			var out []search.Step[geom.Point3]
			for _, f := range geom.Face6 {
				q := p.Add(f)
				if d.inBox(q) && !d.lava.At(q) {
					out = append(out, search.Step[geom.Point3]{State: q, Cost: 1})
				}
			}
			return out
		},
		Key: func(p geom.Point3) geom.Point3 { return p },
	})
	if err != nil {
		return 0, fmt.Errorf("day18 flood: %w", err)
	}
	slog.Debug("day18", "cubes", len(d.cubes), "steam", len(outside))

	n := 0
	for _, c := range d.cubes {
		for _, f := range geom.Face6 {
			if _, ok := outside[c.Add(f)]; ok {
				n++
			}
		}
	}

	return n, nil
}

// Solve answers both parts.
func Solve(input string, _ puzzle.Params) (puzzle.Solution, error) {
	d, err := Parse(input)
	if err != nil {
		return puzzle.Solution{}, err
	}
	ext, err := d.Exterior()
	if err != nil {
		return puzzle.Solution{}, err
	}

	return puzzle.Ints(int64(d.Surface()), int64(ext)), nil
}

const sample = `2,2,2
1,2,2
3,2,2
2,1,2
2,3,2
2,2,1
2,2,3
2,2,4
2,2,6
1,2,5
3,2,5
2,1,5
2,3,5
`
