package geom_test

import (
	"fmt"

	"github.com/katalvlaran/statespace/geom"
)

// ExampleMergeIntervals reduces the coverage of three diamond slices on one row.
func ExampleMergeIntervals() {
	spans := []geom.Interval{{Lo: 12, Hi: 12}, {Lo: -2, Hi: 2}, {Lo: 2, Hi: 14}, {Lo: 16, Hi: 24}}
	merged := geom.MergeIntervals(spans)
	fmt.Println(merged, geom.CoveredWidth(merged))
	// Output:
	// [[-2,14] [16,24]] 24
}

// ExamplePoint2_Manhattan measures a sensor radius.
func ExamplePoint2_Manhattan() {
	sensor := geom.Point2{X: 8, Y: 7}
	beacon := geom.Point2{X: 2, Y: 10}
	fmt.Println(sensor.Manhattan(beacon))
	// Output:
	// 9
}
