package search_test

import (
	"testing"

	"github.com/katalvlaran/statespace/geom"
	"github.com/katalvlaran/statespace/search"
)

// BenchmarkBFS_OpenGrid measures BFS corner to corner on an empty 200×200 grid.
func BenchmarkBFS_OpenGrid(b *testing.B) {
	p := openGrid(200, 200, nil, []geom.Point2{{}}, geom.Point2{X: 199, Y: 199})
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = search.BFS(p)
	}
}

// BenchmarkBestFirst_AStar measures A* with a Manhattan heuristic on the same grid.
func BenchmarkBestFirst_AStar(b *testing.B) {
	p := openGrid(200, 200, nil, []geom.Point2{{}}, geom.Point2{X: 199, Y: 199})
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = search.BestFirst(p)
	}
}

// BenchmarkMaximize_Knapsack compares pruned and unpruned branch-and-bound.
func BenchmarkMaximize_Knapsack(b *testing.B) {
	weights := []int{12, 7, 11, 8, 9, 6, 14, 5, 10, 13, 4, 3, 15, 9, 8, 7}
	values := []int{24, 13, 23, 15, 16, 11, 28, 9, 20, 25, 8, 5, 30, 17, 14, 12}
	o := knapsack(weights, values, 60, false)

	b.Run("pruned", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_, _ = search.Maximize(o)
		}
	})
	b.Run("unpruned", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_, _ = search.Maximize(o, search.WithoutPruning())
		}
	})
}
