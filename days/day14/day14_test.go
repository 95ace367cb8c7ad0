package day14_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/statespace/days/day14"
	"github.com/katalvlaran/statespace/puzzle"
)

func TestSample(t *testing.T) {
	_, err := puzzle.SelfCheck(day14.Day())
	require.NoError(t, err)
}

func TestFill_Separately(t *testing.T) {
	c, err := day14.Parse(day14.Day().Sample)
	require.NoError(t, err)
	assert.EqualValues(t, 93, c.Fill(true), "floor fill from an empty cave")
	assert.False(t, c.Drop(true), "source is blocked")
}

func TestCave_String(t *testing.T) {
	c, err := day14.Parse(day14.Day().Sample)
	require.NoError(t, err)
	c.Fill(false)
	want := strings.Join([]string{
		"......+...",
		"..........",
		"......o...",
		".....ooo..",
		"....#ooo##",
		"...o#ooo#.",
		"..###ooo#.",
		"....oooo#.",
		".o.ooooo#.",
		"#########.",
		"",
	}, "\n")
	assert.Equal(t, want, c.String())
}

func TestParse_Errors(t *testing.T) {
	_, err := day14.Parse("1,1 -> 2,2\n")
	require.ErrorIs(t, err, puzzle.ErrMalformedInput)
	_, err = day14.Parse("1 -> 2,2\n")
	require.ErrorIs(t, err, puzzle.ErrMalformedInput)
	_, err = day14.Parse("")
	require.ErrorIs(t, err, puzzle.ErrMalformedInput)
}
