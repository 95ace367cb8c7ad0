// Package day16 plans valve openings in a tunnel network to maximise the
// pressure released before an eruption.
package day16

import (
	"fmt"
	"log/slog"
	"regexp"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/katalvlaran/statespace/puzzle"
	"github.com/katalvlaran/statespace/search"
)

// Entry is the valve both agents start at.
const Entry = "AA"

// Day returns the registry entry for day 16.
func Day() puzzle.Day {
	params := puzzle.Params{"minutes": 30, "team_minutes": 26}
	return puzzle.Day{
		Number:       16,
		Title:        "Proboscidea Volcanium",
		Sample:       sample,
		Want:         puzzle.Solution{Part1: "1651", Part2: "1707"},
		SampleParams: params,
		InputParams:  params,
		Solve:        Solve,
	}
}

// Valve is one parsed input line.
type Valve struct {
	Name    string
	Flow    int64
	Tunnels []string
}

var valveRx = regexp.MustCompile(`^Valve (\w+) has flow rate=(\d+); tunnels? leads? to valves? (.+)$`)

// Parse reads the valve list.
func Parse(input string) ([]Valve, error) {
	var out []Valve
	for _, line := range puzzle.Lines(input) {
		m := valveRx.FindStringSubmatch(line)
		if m == nil {
			return nil, puzzle.Malformed("day16: %q", line)
		}
		flow, err := strconv.ParseInt(m[2], 10, 64)
		if err != nil {
			return nil, puzzle.Malformed("day16: %q: %v", line, err)
		}
		out = append(out, Valve{Name: m[1], Flow: flow, Tunnels: strings.Split(m[3], ", ")})
	}

	return out, nil
}

// Network is the tunnel graph compressed to the valves worth opening plus
// the entry: Dist holds shortest tunnel distances between them.
type Network struct {
	Names []string  // Names[i] for i < len(Flow) are flowing valves; the last is Entry
	Flow  []int64   // flow rate of each flowing valve, bit i of a mask
	Dist  [][]int64 // Dist[i][j] in minutes, indexed like Names
}

// Compress keeps valves with positive flow and computes pairwise distances
// with a breadth-first sweep from each kept valve.
func Compress(valves []Valve) (*Network, error) {
	tunnels := make(map[string][]string, len(valves))
	for _, v := range valves {
		tunnels[v.Name] = v.Tunnels
	}
	if _, ok := tunnels[Entry]; !ok {
		return nil, puzzle.Malformed("day16: no valve %s", Entry)
	}

	n := &Network{}
	for _, v := range valves {
		if v.Flow > 0 {
			n.Names = append(n.Names, v.Name)
			n.Flow = append(n.Flow, v.Flow)
		}
	}
	if len(n.Flow) > 63 {
		return nil, puzzle.Malformed("day16: %d flowing valves do not fit a mask", len(n.Flow))
	}
	n.Names = append(n.Names, Entry)

	walk := search.Problem[string, string]{
		Expand: func(name string) []search.Step[string] {
			out := make([]search.Step[string], 0, len(tunnels[name]))
			for _, next := range tunnels[name] {
				out = append(out, search.Step[string]{State: next, Cost: 1})
			}
			return out
		},
		Key: func(name string) string { return name },
	}
	n.Dist = make([][]int64, len(n.Names))
	for i, from := range n.Names {
		walk.Starts = []string{from}
		dist, err := search.Distances(walk)
		if err != nil {
			return nil, fmt.Errorf("day16: distances from %s: %w", from, err)
		}
		n.Dist[i] = make([]int64, len(n.Names))
		for j, to := range n.Names {
			d, ok := dist[to]
			if !ok {
				// unreachable valves can never be opened
				d = 1 << 40
			}
			n.Dist[i][j] = d
		}
	}

	return n, nil
}

// Plan is a partial schedule: the agent stands at valve Pos with Left
// minutes remaining, Open valves already opened. Released counts the total
// pressure those valves release until the deadline.
type Plan struct {
	Pos      int
	Open     uint64
	Left     int64
	Released int64
}

type planKey struct {
	pos  int
	open uint64
	left int64
}

// openings lists the plans reachable by walking to a closed valve and
// opening it before time runs out.
func (n *Network) openings(p Plan) []Plan {
	var out []Plan
	for j, flow := range n.Flow {
		if p.Open&(1<<j) != 0 {
			continue
		}
		left := p.Left - n.Dist[p.Pos][j] - 1
		if left <= 0 {
			continue
		}
		out = append(out, Plan{Pos: j, Open: p.Open | 1<<j, Left: left, Released: p.Released + flow*left})
	}

	return out
}

// bound assumes every closed valve is opened straight from here. Shortest
// distances obey the triangle inequality, so no real schedule does better.
func (n *Network) bound(p Plan) int64 {
	total := p.Released
	for j, flow := range n.Flow {
		if p.Open&(1<<j) != 0 {
			continue
		}
		if left := p.Left - n.Dist[p.Pos][j] - 1; left > 0 {
			total += flow * left
		}
	}

	return total
}

// Optimization describes the search from the entry with the given minutes.
func (n *Network) Optimization(minutes int64) search.Optimization[Plan, planKey] {
	return search.Optimization[Plan, planKey]{
		Start:  Plan{Pos: len(n.Names) - 1, Left: minutes},
		Expand: n.openings,
		Value:  func(p Plan) int64 { return p.Released },
		Bound:  n.bound,
		Key:    func(p Plan) planKey { return planKey{p.Pos, p.Open, p.Left} },
	}
}

// Alone returns the most pressure a single agent can release.
func (n *Network) Alone(minutes int64, opts ...search.Option) (int64, error) {
	best, err := search.Maximize(n.Optimization(minutes), opts...)
	if err != nil {
		return 0, err
	}
	slog.Debug("day16 alone", "expanded", humanize.Comma(int64(best.Expanded)), "pruned", humanize.Comma(int64(best.Pruned)))

	return best.Value, nil
}

// Team returns the most pressure two agents release working in parallel.
// Every reachable set of open valves is recorded with the best pressure a
// single agent achieves for it; the answer is the best pair of disjoint
// sets. Pruning is disabled because a plan that loses alone may still be
// half of the best pair.
func (n *Network) Team(minutes int64) (int64, error) {
	byMask := make(map[uint64]int64)
	o := n.Optimization(minutes)
	o.Observe = func(p Plan) {
		if p.Released > byMask[p.Open] {
			byMask[p.Open] = p.Released
		}
	}
	byMask[0] = 0
	if _, err := search.Maximize(o, search.WithoutPruning()); err != nil {
		return 0, err
	}

	masks := make([]uint64, 0, len(byMask))
	for m := range byMask {
		masks = append(masks, m)
	}
	var best int64
	for i, a := range masks {
		for _, b := range masks[i:] {
			if a&b == 0 {
				best = max(best, byMask[a]+byMask[b])
			}
		}
	}
	slog.Debug("day16 team", "masks", humanize.Comma(int64(len(masks))), "valves", len(n.Flow))

	return best, nil
}

// Solve answers both parts with the "minutes" and "team_minutes" parameters.
func Solve(input string, p puzzle.Params) (puzzle.Solution, error) {
	valves, err := Parse(input)
	if err != nil {
		return puzzle.Solution{}, err
	}
	n, err := Compress(valves)
	if err != nil {
		return puzzle.Solution{}, err
	}
	alone, err := n.Alone(p.Int("minutes", 30))
	if err != nil {
		return puzzle.Solution{}, err
	}
	team, err := n.Team(p.Int("team_minutes", 26))
	if err != nil {
		return puzzle.Solution{}, err
	}

	return puzzle.Ints(alone, team), nil
}

const sample = `Valve AA has flow rate=0; tunnels lead to valves DD, II, BB
Valve BB has flow rate=13; tunnels lead to valves CC, AA
Valve CC has flow rate=2; tunnels lead to valves DD, BB
Valve DD has flow rate=20; tunnels lead to valves CC, AA, EE
Valve EE has flow rate=3; tunnels lead to valves FF, DD
Valve FF has flow rate=0; tunnels lead to valves EE, GG
Valve GG has flow rate=0; tunnels lead to valves FF, HH
Valve HH has flow rate=22; tunnel leads to valve GG
Valve II has flow rate=0; tunnels lead to valves AA, JJ
Valve JJ has flow rate=21; tunnel leads to valve II
`
