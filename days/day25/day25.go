// Package day25 converts between decimal and SNAFU, a balanced base-5
// notation whose digits are 2, 1, 0, - (minus one) and = (minus two).
package day25

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/katalvlaran/statespace/puzzle"
)

// ErrDigit is returned for a character that is not a SNAFU digit.
var ErrDigit = errors.New("day25: invalid snafu digit")

// Day returns the registry entry for day 25. There is no second puzzle on
// the last day; Part2 reports the decimal total.
func Day() puzzle.Day {
	return puzzle.Day{
		Number: 25,
		Title:  "Full of Hot Air",
		Sample: sample,
		Want:   puzzle.Solution{Part1: "2=-1=0", Part2: "4890"},
		Solve:  Solve,
	}
}

// Decode parses a SNAFU number.
func Decode(s string) (int64, error) {
	if s == "" {
		return 0, fmt.Errorf("%w: empty", ErrDigit)
	}
	var n int64
	for i := 0; i < len(s); i++ {
		var d int64
		switch s[i] {
		case '2':
			d = 2
		case '1':
			d = 1
		case '0':
		case '-':
			d = -1
		case '=':
			d = -2
		default:
			return 0, fmt.Errorf("%w %q in %q", ErrDigit, s[i], s)
		}
		n = n*5 + d
	}

	return n, nil
}

// Encode formats n in SNAFU. Negative numbers are encoded too.
func Encode(n int64) string {
	if n == 0 {
		return "0"
	}
	var buf []byte
	for n != 0 {
		r := n % 5
		n /= 5
		switch {
		case r > 2:
			r -= 5
			n++
		case r < -2:
			r += 5
			n--
		}
		buf = append(buf, "=-012"[r+2])
	}
	for i, j := 0, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}

	return string(buf)
}

// Solve sums the fuel requirements and reports the total in both bases.
func Solve(input string, _ puzzle.Params) (puzzle.Solution, error) {
	var total int64
	for _, line := range puzzle.Lines(input) {
		n, err := Decode(line)
		if err != nil {
			return puzzle.Solution{}, puzzle.Malformed("%v", err)
		}
		total += n
	}

	return puzzle.Solution{Part1: Encode(total), Part2: strconv.FormatInt(total, 10)}, nil
}

const sample = `1=-0-2
12111
2=0=
21
2=01
111
20012
112
1=-1=
1-12
12
1=
122
`
