package days_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/statespace/days"
	"github.com/katalvlaran/statespace/puzzle"
)

func TestAll_OrderedAndUnique(t *testing.T) {
	all := days.All()
	require.NotEmpty(t, all)
	seen := make(map[int]bool)
	for i, d := range all {
		assert.False(t, seen[d.Number], "day %d registered twice", d.Number)
		seen[d.Number] = true
		if i > 0 {
			assert.Less(t, all[i-1].Number, d.Number)
		}
		assert.NotNil(t, d.Solve, d.String())
		assert.NotEmpty(t, d.Sample, d.String())
		assert.NotEmpty(t, d.Title, d.String())
	}
}

func TestLookup(t *testing.T) {
	d, err := days.Lookup(16)
	require.NoError(t, err)
	assert.Equal(t, "day 16: Proboscidea Volcanium", d.String())

	_, err = days.Lookup(1)
	require.ErrorIs(t, err, days.ErrUnknownDay)
}

func TestCheckAll_Samples(t *testing.T) {
	if testing.Short() {
		t.Skip("solves every sample")
	}
	outcomes, err := puzzle.CheckAll(context.Background(), days.All(), 4)
	require.NoError(t, err)
	for _, o := range outcomes {
		assert.NoError(t, o.Err, o.Day.String())
	}
}
