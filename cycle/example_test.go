package cycle_test

import (
	"fmt"

	"github.com/katalvlaran/statespace/cycle"
)

// ExampleDetect extrapolates a counter that cycles 0,1,2 and gains 5 per lap.
func ExampleDetect() {
	type state struct{ tick, height int64 }
	gains := []int64{1, 3, 1}

	c, err := cycle.Detect(state{}, func(s state) (state, int64, int64) {
		s.height += gains[s.tick%3]
		s.tick++
		return s, s.tick % 3, s.height
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	h, _ := c.At(1_000_000_000_000)
	fmt.Println(c.Start, c.Length, c.Gain, h)
	// Output:
	// 1 3 5 1666666666666
}
