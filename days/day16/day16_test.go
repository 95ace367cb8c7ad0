package day16_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/statespace/days/day16"
	"github.com/katalvlaran/statespace/puzzle"
	"github.com/katalvlaran/statespace/search"
)

func sampleNetwork(t *testing.T) *day16.Network {
	t.Helper()
	valves, err := day16.Parse(day16.Day().Sample)
	require.NoError(t, err)
	n, err := day16.Compress(valves)
	require.NoError(t, err)
	return n
}

func TestSample(t *testing.T) {
	_, err := puzzle.SelfCheck(day16.Day())
	require.NoError(t, err)
}

func TestCompress(t *testing.T) {
	n := sampleNetwork(t)
	assert.Equal(t, []string{"BB", "CC", "DD", "EE", "HH", "JJ", "AA"}, n.Names)
	assert.Equal(t, []int64{13, 2, 20, 3, 22, 21}, n.Flow)
	aa := len(n.Names) - 1
	assert.EqualValues(t, 1, n.Dist[aa][0], "AA -> BB")
	assert.EqualValues(t, 5, n.Dist[aa][4], "AA -> HH")
	assert.EqualValues(t, 5, n.Dist[4][1], "HH -> CC")
	for i := range n.Names {
		assert.Zero(t, n.Dist[i][i])
	}
}

// TestAlone_PruningIsSound compares pruned and unpruned searches for several
// horizons.
func TestAlone_PruningIsSound(t *testing.T) {
	n := sampleNetwork(t)
	for _, minutes := range []int64{1, 5, 10, 20, 30} {
		pruned, err := n.Alone(minutes)
		require.NoError(t, err)
		full, err := n.Alone(minutes, search.WithoutPruning())
		require.NoError(t, err)
		assert.Equal(t, full, pruned, "minutes=%d", minutes)
	}
}

func TestTeam_NeverWorseThanAlone(t *testing.T) {
	n := sampleNetwork(t)
	alone, err := n.Alone(26)
	require.NoError(t, err)
	team, err := n.Team(26)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, team, alone)
	assert.EqualValues(t, 1707, team)
}

func TestParse_Errors(t *testing.T) {
	_, err := day16.Parse("Valve AA has flow rate=x; tunnels lead to valves BB\n")
	require.ErrorIs(t, err, puzzle.ErrMalformedInput)

	valves, err := day16.Parse("Valve BB has flow rate=1; tunnel leads to valve CC\n")
	require.NoError(t, err)
	_, err = day16.Compress(valves)
	require.ErrorIs(t, err, puzzle.ErrMalformedInput)
}
