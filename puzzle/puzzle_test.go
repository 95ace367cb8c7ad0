package puzzle_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/statespace/puzzle"
)

// sumDay adds the integers of its input; part 2 multiplies the sum by "factor".
func sumDay(want puzzle.Solution) puzzle.Day {
	return puzzle.Day{
		Number:       99,
		Title:        "Sum",
		Sample:       "1\n2\n3\n",
		Want:         want,
		SampleParams: puzzle.Params{"factor": 2},
		InputParams:  puzzle.Params{"factor": 10},
		Solve: func(input string, p puzzle.Params) (puzzle.Solution, error) {
			var sum int64
			for _, l := range puzzle.Lines(input) {
				v, err := strconv.ParseInt(l, 10, 64)
				if err != nil {
					return puzzle.Solution{}, puzzle.Malformed("line %q", l)
				}
				sum += v
			}
			return puzzle.Ints(sum, sum*p.Int("factor", 1)), nil
		},
	}
}

// TestSelfCheck covers pass, mismatch and partial expectations.
func TestSelfCheck(t *testing.T) {
	got, err := puzzle.SelfCheck(sumDay(puzzle.Solution{Part1: "6", Part2: "12"}))
	require.NoError(t, err)
	assert.Equal(t, puzzle.Solution{Part1: "6", Part2: "12"}, got)

	_, err = puzzle.SelfCheck(sumDay(puzzle.Solution{Part1: "6", Part2: "13"}))
	require.ErrorIs(t, err, puzzle.ErrMismatch)
	assert.Contains(t, err.Error(), "part 2")

	_, err = puzzle.SelfCheck(sumDay(puzzle.Solution{Part1: "6"}))
	require.NoError(t, err, "empty expectations are not checked")
}

// TestRun_ParamsOverride checks InputParams and explicit overrides.
func TestRun_ParamsOverride(t *testing.T) {
	d := sumDay(puzzle.Solution{})
	got, err := puzzle.Run(d, "4\n5\n", nil)
	require.NoError(t, err)
	assert.Equal(t, "90", got.Part2)

	got, err = puzzle.Run(d, "4\n5\n", puzzle.Params{"factor": 3})
	require.NoError(t, err)
	assert.Equal(t, "27", got.Part2)
	assert.EqualValues(t, 10, d.InputParams["factor"], "defaults must not be mutated")
}

// TestRun_Errors checks error wrapping.
func TestRun_Errors(t *testing.T) {
	_, err := puzzle.Run(sumDay(puzzle.Solution{}), "x\n", nil)
	require.ErrorIs(t, err, puzzle.ErrMalformedInput)
	assert.Contains(t, err.Error(), "day 99")

	_, err = puzzle.Run(puzzle.Day{Number: 1}, "", nil)
	require.ErrorIs(t, err, puzzle.ErrNoSolver)
}

// TestCheckAll reports every outcome in order and the first failure.
func TestCheckAll(t *testing.T) {
	good := sumDay(puzzle.Solution{Part1: "6", Part2: "12"})
	bad := sumDay(puzzle.Solution{Part1: "7"})
	bad.Number = 98

	outcomes, err := puzzle.CheckAll(context.Background(), []puzzle.Day{good, bad, good}, 2)
	require.ErrorIs(t, err, puzzle.ErrMismatch)
	require.Len(t, outcomes, 3)
	assert.NoError(t, outcomes[0].Err)
	assert.ErrorIs(t, outcomes[1].Err, puzzle.ErrMismatch)
	assert.NoError(t, outcomes[2].Err)
	assert.Equal(t, 98, outcomes[1].Day.Number)

	var buf bytes.Buffer
	require.NoError(t, puzzle.ReportChecks(&buf, outcomes))
	assert.Equal(t, 3, strings.Count(buf.String(), "\n"))
	assert.Contains(t, buf.String(), "answer mismatch")
}

// TestReport prints exactly two labelled values.
func TestReport(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, puzzle.Report(&buf, sumDay(puzzle.Solution{}), puzzle.Solution{Part1: "6", Part2: "2=-1=0"}))
	out := buf.String()
	assert.Contains(t, out, "day 99: Sum")
	assert.Contains(t, out, "part 1:")
	assert.Contains(t, out, "part 2:")
	assert.Contains(t, out, "2=-1=0")
}

// TestLoadInput checks the existence check.
func TestLoadInput(t *testing.T) {
	dir := t.TempDir()
	_, err := puzzle.LoadInput(filepath.Join(dir, "missing.txt"))
	require.ErrorIs(t, err, puzzle.ErrNoInput)

	empty := filepath.Join(dir, "empty.txt")
	require.NoError(t, os.WriteFile(empty, nil, 0o600))
	_, err = puzzle.LoadInput(empty)
	require.ErrorIs(t, err, puzzle.ErrNoInput)

	ok := filepath.Join(dir, "in.txt")
	require.NoError(t, os.WriteFile(ok, []byte("1\n"), 0o600))
	s, err := puzzle.LoadInput(ok)
	require.NoError(t, err)
	assert.Equal(t, "1\n", s)
}

// TestTextHelpers covers Lines, Blocks and ExtractInts.
func TestTextHelpers(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, puzzle.Lines("a\r\nb\n\n"))
	assert.Nil(t, puzzle.Lines(""))
	assert.Equal(t, [][]string{{"a", "b"}, {"c"}}, puzzle.Blocks("a\nb\n\nc\n"))

	ints, err := puzzle.ExtractInts("Sensor at x=2, y=-18: closest beacon is at x=-2, y=15")
	require.NoError(t, err)
	assert.Equal(t, []int{2, -18, -2, 15}, ints)
}

// TestConfig parses overrides and tolerates a nil Config.
func TestConfig(t *testing.T) {
	c, err := puzzle.ParseConfig([]byte(`
days:
  15:
    params: {row: 2000000, limit: 4000000}
    want: {part1: "540", part2: "77"}
`))
	require.NoError(t, err)
	dc := c.Day(15)
	assert.EqualValues(t, 2000000, dc.Params.Int("row", 0))
	assert.Equal(t, puzzle.Solution{Part1: "540", Part2: "77"}, dc.Want)
	assert.Empty(t, c.Day(16).Params)

	var none *puzzle.Config
	assert.Empty(t, none.Day(15).Params)

	_, err = puzzle.ParseConfig([]byte("days: ["))
	require.Error(t, err)

	_, err = puzzle.LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.True(t, errors.Is(err, os.ErrNotExist))
}
