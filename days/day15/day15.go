// Package day15 merges diamond-shaped sensor coverage along rows.
package day15

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/statespace/geom"
	"github.com/katalvlaran/statespace/puzzle"
)

// Day returns the registry entry for day 15.
func Day() puzzle.Day {
	return puzzle.Day{
		Number:       15,
		Title:        "Beacon Exclusion Zone",
		Sample:       sample,
		Want:         puzzle.Solution{Part1: "26", Part2: "56000011"},
		SampleParams: puzzle.Params{"row": 10, "limit": 20},
		InputParams:  puzzle.Params{"row": 2_000_000, "limit": 4_000_000},
		Solve:        Solve,
	}
}

// Sensor reports its closest beacon; Radius is their Manhattan distance.
type Sensor struct {
	At, Beacon geom.Point2
	Radius     int
}

// Parse reads "Sensor at x=.., y=..: closest beacon is at x=.., y=.." lines.
func Parse(input string) ([]Sensor, error) {
	var out []Sensor
	for _, line := range puzzle.Lines(input) {
		v, err := puzzle.ExtractInts(line)
		if err != nil {
			return nil, err
		}
		if len(v) != 4 {
			return nil, puzzle.Malformed("day15: %q", line)
		}
		s := Sensor{At: geom.Point2{X: v[0], Y: v[1]}, Beacon: geom.Point2{X: v[2], Y: v[3]}}
		s.Radius = s.At.Manhattan(s.Beacon)
		out = append(out, s)
	}

	return out, nil
}

// Row returns the merged spans of row y covered by any sensor.
func Row(sensors []Sensor, y int) []geom.Interval {
	spans := make([]geom.Interval, 0, len(sensors))
	for _, s := range sensors {
		half := s.Radius - abs(s.At.Y-y)
		if half < 0 {
			continue
		}
		spans = append(spans, geom.Interval{Lo: s.At.X - half, Hi: s.At.X + half})
	}

	return geom.MergeIntervals(spans)
}

// Excluded counts cells of row y where a beacon cannot be.
func Excluded(sensors []Sensor, y int) int {
	merged := Row(sensors, y)
	n := geom.CoveredCount(merged)
	beacons := make(map[geom.Point2]bool)
	for _, s := range sensors {
		if s.Beacon.Y != y || beacons[s.Beacon] {
			continue
		}
		beacons[s.Beacon] = true
		for _, iv := range merged {
			if iv.Contains(s.Beacon.X) {
				n--
				break
			}
		}
	}

	return n
}

// Locate finds the single uncovered cell with both coordinates in [0, limit].
func Locate(sensors []Sensor, limit int) (geom.Point2, bool) {
	for y := 0; y <= limit; y++ {
		merged := Row(sensors, y)
		clipped := make([]geom.Interval, 0, len(merged))
		for _, iv := range merged {
			clipped = append(clipped, iv.Clip(0, limit))
		}
		clipped = geom.MergeIntervals(clipped)
		if geom.CoveredCount(clipped) > limit {
			continue
		}
		x := 0
		if len(clipped) > 0 && clipped[0].Lo == 0 {
			x = clipped[0].Hi + 1
		}
		return geom.Point2{X: x, Y: y}, true
	}

	return geom.Point2{}, false
}

// Solve answers both parts with the "row" and "limit" parameters.
func Solve(input string, p puzzle.Params) (puzzle.Solution, error) {
	sensors, err := Parse(input)
	if err != nil {
		return puzzle.Solution{}, err
	}
	row := int(p.Int("row", 2_000_000))
	limit := int(p.Int("limit", 4_000_000))

	part1 := Excluded(sensors, row)
	beacon, ok := Locate(sensors, limit)
	if !ok {
		return puzzle.Solution{}, fmt.Errorf("day15: no uncovered cell within [0,%d]", limit)
	}
	slog.Debug("day15", "sensors", len(sensors), "beacon", beacon)

	return puzzle.Ints(int64(part1), int64(beacon.X)*4_000_000+int64(beacon.Y)), nil
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

const sample = `Sensor at x=2, y=18: closest beacon is at x=-2, y=15
Sensor at x=9, y=16: closest beacon is at x=10, y=16
Sensor at x=13, y=2: closest beacon is at x=15, y=3
Sensor at x=12, y=14: closest beacon is at x=10, y=16
Sensor at x=10, y=20: closest beacon is at x=10, y=16
Sensor at x=14, y=17: closest beacon is at x=10, y=16
Sensor at x=8, y=7: closest beacon is at x=2, y=10
Sensor at x=2, y=0: closest beacon is at x=2, y=10
Sensor at x=0, y=11: closest beacon is at x=2, y=10
Sensor at x=20, y=14: closest beacon is at x=25, y=17
Sensor at x=17, y=20: closest beacon is at x=21, y=22
Sensor at x=16, y=7: closest beacon is at x=15, y=3
Sensor at x=14, y=3: closest beacon is at x=15, y=3
Sensor at x=20, y=1: closest beacon is at x=15, y=3
`
