// Package day19 finds the best robot build order for cracking geodes.
package day19

import (
	"log/slog"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/katalvlaran/statespace/puzzle"
	"github.com/katalvlaran/statespace/search"
)

// Day returns the registry entry for day 19.
func Day() puzzle.Day {
	params := puzzle.Params{"minutes": 24, "long_minutes": 32, "long_blueprints": 3}
	return puzzle.Day{
		Number:       19,
		Title:        "Not Enough Minerals",
		Sample:       sample,
		Want:         puzzle.Solution{Part1: "33", Part2: "3472"},
		SampleParams: params,
		InputParams:  params,
		Solve:        Solve,
	}
}

// Blueprint lists robot costs. Ore, clay and obsidian robots cost ore;
// obsidian robots also cost clay and geode robots also cost obsidian.
type Blueprint struct {
	ID                 int
	OreOre, ClayOre    int
	ObsOre, ObsClay    int
	GeodeOre, GeodeObs int
}

// Parse reads blueprints; each one may span several lines.
func Parse(input string) ([]Blueprint, error) {
	var out []Blueprint
	for _, chunk := range strings.Split(input, "Blueprint")[1:] {
		v, err := puzzle.ExtractInts(chunk)
		if err != nil {
			return nil, err
		}
		if len(v) != 7 {
			return nil, puzzle.Malformed("day19: blueprint %q", strings.TrimSpace(chunk))
		}
		out = append(out, Blueprint{ID: v[0], OreOre: v[1], ClayOre: v[2], ObsOre: v[3], ObsClay: v[4], GeodeOre: v[5], GeodeObs: v[6]})
	}
	if len(out) == 0 {
		return nil, puzzle.Malformed("day19: no blueprints")
	}

	return out, nil
}

// Factory is the state between builds. Geodes already counts everything
// the geode robots built so far will crack before time runs out, so geode
// robots themselves need not be tracked.
type Factory struct {
	Left              int
	Ore, Clay, Obs    int
	OreBots, ClayBots int
	ObsBots           int
	Geodes            int
}

// waitFor returns the minutes until have+bots*m >= cost, or -1 if never.
func waitFor(cost, have, bots int) int {
	if have >= cost {
		return 0
	}
	if bots == 0 {
		return -1
	}

	return (cost - have + bots - 1) / bots
}

// planner jumps straight to the next robot build rather than simulating
// idle minutes, and never builds more of a robot than can be spent per
// minute.
type planner struct {
	bp     Blueprint
	maxOre int
}

func newPlanner(bp Blueprint) *planner {
	return &planner{bp: bp, maxOre: max(bp.OreOre, bp.ClayOre, bp.ObsOre, bp.GeodeOre)}
}

// build advances f until a robot with the given costs can be built, pays
// for it, and returns the state after the build minute. ok is false when
// the robot cannot be finished with time to spare.
func build(f Factory, ore, clay, obs int) (Factory, bool) {
	wOre, wClay, wObs := waitFor(ore, f.Ore, f.OreBots), waitFor(clay, f.Clay, f.ClayBots), waitFor(obs, f.Obs, f.ObsBots)
	if wOre < 0 || wClay < 0 || wObs < 0 {
		return f, false
	}
	w := max(wOre, wClay, wObs)
	if f.Left-w-1 <= 0 {
		return f, false
	}
	m := w + 1
	f.Left -= m
	f.Ore += f.OreBots*m - ore
	f.Clay += f.ClayBots*m - clay
	f.Obs += f.ObsBots*m - obs

	return f, true
}

func (p *planner) expand(f Factory) []Factory {
	out := make([]Factory, 0, 4)
	if g, ok := build(f, p.bp.GeodeOre, 0, p.bp.GeodeObs); ok {
		g.Geodes += g.Left
		out = append(out, g)
	}
	if f.ObsBots < p.bp.GeodeObs {
		if g, ok := build(f, p.bp.ObsOre, p.bp.ObsClay, 0); ok {
			g.ObsBots++
			out = append(out, g)
		}
	}
	if f.ClayBots < p.bp.ObsClay {
		if g, ok := build(f, p.bp.ClayOre, 0, 0); ok {
			g.ClayBots++
			out = append(out, g)
		}
	}
	if f.OreBots < p.maxOre {
		if g, ok := build(f, p.bp.OreOre, 0, 0); ok {
			g.OreBots++
			out = append(out, g)
		}
	}

	return out
}

// bound pretends a new geode robot can be built every remaining minute.
func bound(f Factory) int64 {
	return int64(f.Geodes + f.Left*(f.Left-1)/2)
}

// factoryKey is everything but the geode count.
type factoryKey struct {
	left, ore, clay, obs, oreBots, clayBots, obsBots int
}

// Optimization describes the geode search for one blueprint.
func Optimization(bp Blueprint, minutes int) search.Optimization[Factory, factoryKey] {
	p := newPlanner(bp)
	return search.Optimization[Factory, factoryKey]{
		Start:  Factory{Left: minutes, OreBots: 1},
		Expand: p.expand,
		Value:  func(f Factory) int64 { return int64(f.Geodes) },
		Bound:  bound,
		Key: func(f Factory) factoryKey {
			return factoryKey{f.Left, f.Ore, f.Clay, f.Obs, f.OreBots, f.ClayBots, f.ObsBots}
		},
	}
}

// MaxGeodes returns the most geodes bp can crack in the given minutes.
func MaxGeodes(bp Blueprint, minutes int, opts ...search.Option) (int64, error) {
	best, err := search.Maximize(Optimization(bp, minutes), opts...)
	if err != nil {
		return 0, err
	}
	slog.Debug("day19", "blueprint", bp.ID, "minutes", minutes, "geodes", best.Value,
		"expanded", humanize.Comma(int64(best.Expanded)), "pruned", humanize.Comma(int64(best.Pruned)))

	return best.Value, nil
}

// Solve sums quality levels over "minutes" and multiplies the best geode
// counts of the first "long_blueprints" blueprints over "long_minutes".
func Solve(input string, p puzzle.Params) (puzzle.Solution, error) {
	bps, err := Parse(input)
	if err != nil {
		return puzzle.Solution{}, err
	}
	var quality int64
	for _, bp := range bps {
		g, err := MaxGeodes(bp, int(p.Int("minutes", 24)))
		if err != nil {
			return puzzle.Solution{}, err
		}
		quality += int64(bp.ID) * g
	}

	product := int64(1)
	for _, bp := range bps[:min(len(bps), int(p.Int("long_blueprints", 3)))] {
		g, err := MaxGeodes(bp, int(p.Int("long_minutes", 32)))
		if err != nil {
			return puzzle.Solution{}, err
		}
		product *= g
	}

	return puzzle.Ints(quality, product), nil
}

const sample = `Blueprint 1: Each ore robot costs 4 ore. Each clay robot costs 2 ore. Each obsidian robot costs 3 ore and 14 clay. Each geode robot costs 2 ore and 7 obsidian.
Blueprint 2: Each ore robot costs 2 ore. Each clay robot costs 3 ore. Each obsidian robot costs 3 ore and 8 clay. Each geode robot costs 3 ore and 12 obsidian.
`
