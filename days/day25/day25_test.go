package day25_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/statespace/days/day25"
	"github.com/katalvlaran/statespace/puzzle"
)

func TestSample(t *testing.T) {
	_, err := puzzle.SelfCheck(day25.Day())
	require.NoError(t, err)
}

func TestKnownValues(t *testing.T) {
	tests := []struct {
		dec   int64
		snafu string
	}{
		{1, "1"}, {2, "2"}, {3, "1="}, {4, "1-"}, {5, "10"}, {8, "2="},
		{10, "20"}, {15, "1=0"}, {20, "1-0"}, {2022, "1=11-2"},
		{12345, "1-0---0"}, {314159265, "1121-1110-1=0"},
	}
	for _, tc := range tests {
		t.Run(tc.snafu, func(t *testing.T) {
			assert.Equal(t, tc.snafu, day25.Encode(tc.dec))
			got, err := day25.Decode(tc.snafu)
			require.NoError(t, err)
			assert.Equal(t, tc.dec, got)
		})
	}
}

func TestEncode_Inverse(t *testing.T) {
	for n := int64(-500); n <= 5000; n++ {
		got, err := day25.Decode(day25.Encode(n))
		require.NoError(t, err)
		require.Equal(t, n, got)
	}
}

func TestDecode_Errors(t *testing.T) {
	for _, in := range []string{"", "12a", "3"} {
		_, err := day25.Decode(in)
		require.ErrorIs(t, err, day25.ErrDigit, in)
	}
	_, err := day25.Solve("1=\nx\n", nil)
	require.ErrorIs(t, err, puzzle.ErrMalformedInput)
}

func ExampleEncode() {
	fmt.Println(day25.Encode(4890))
	// Output: 2=-1=0
}
