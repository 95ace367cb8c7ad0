package day19_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/statespace/days/day19"
	"github.com/katalvlaran/statespace/puzzle"
	"github.com/katalvlaran/statespace/search"
)

func sampleBlueprints(t *testing.T) []day19.Blueprint {
	t.Helper()
	bps, err := day19.Parse(day19.Day().Sample)
	require.NoError(t, err)
	require.Len(t, bps, 2)
	return bps
}

func TestSample(t *testing.T) {
	_, err := puzzle.SelfCheck(day19.Day())
	require.NoError(t, err)
}

func TestMaxGeodes(t *testing.T) {
	bps := sampleBlueprints(t)
	cases := []struct {
		bp, minutes int
		want        int64
	}{
		{0, 24, 9},
		{1, 24, 12},
		{0, 32, 56},
		{1, 32, 62},
	}
	for _, tc := range cases {
		got, err := day19.MaxGeodes(bps[tc.bp], tc.minutes)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "blueprint %d, %d minutes", tc.bp+1, tc.minutes)
	}
}

// TestMaxGeodes_PruningIsSound compares against an unpruned search on
// horizons short enough to enumerate.
func TestMaxGeodes_PruningIsSound(t *testing.T) {
	for _, bp := range sampleBlueprints(t) {
		for minutes := 10; minutes <= 20; minutes += 2 {
			pruned, err := day19.MaxGeodes(bp, minutes)
			require.NoError(t, err)
			full, err := day19.MaxGeodes(bp, minutes, search.WithoutPruning())
			require.NoError(t, err)
			assert.Equal(t, full, pruned, "blueprint %d, %d minutes", bp.ID, minutes)
		}
	}
}

func TestParse(t *testing.T) {
	bps := sampleBlueprints(t)
	assert.Equal(t, day19.Blueprint{ID: 2, OreOre: 2, ClayOre: 3, ObsOre: 3, ObsClay: 8, GeodeOre: 3, GeodeObs: 12}, bps[1])

	_, err := day19.Parse("Blueprint 1: Each ore robot costs 4 ore.\n")
	require.ErrorIs(t, err, puzzle.ErrMalformedInput)
	_, err = day19.Parse("nothing here")
	require.ErrorIs(t, err, puzzle.ErrMalformedInput)
}
