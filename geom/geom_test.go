package geom_test

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/statespace/geom"
)

func randPoint2(r *rand.Rand) geom.Point2 {
	return geom.Point2{X: r.Intn(201) - 100, Y: r.Intn(201) - 100}
}

func randPoint3(r *rand.Rand) geom.Point3 {
	return geom.Point3{X: r.Intn(41) - 20, Y: r.Intn(41) - 20, Z: r.Intn(41) - 20}
}

// TestManhattan_Properties checks symmetry and the triangle inequality on random points.
func TestManhattan_Properties(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	for i := 0; i < 500; i++ {
		a, b, c := randPoint2(r), randPoint2(r), randPoint2(r)
		require.Equal(t, a.Manhattan(b), b.Manhattan(a))
		require.LessOrEqual(t, a.Manhattan(c), a.Manhattan(b)+b.Manhattan(c))
		require.Zero(t, a.Manhattan(a))

		p, q, s := randPoint3(r), randPoint3(r), randPoint3(r)
		require.Equal(t, p.Manhattan(q), q.Manhattan(p))
		require.LessOrEqual(t, p.Manhattan(s), p.Manhattan(q)+q.Manhattan(s))
	}
}

// TestAdd_Algebra checks that point addition is associative and commutative.
func TestAdd_Algebra(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for i := 0; i < 500; i++ {
		a, b, c := randPoint2(r), randPoint2(r), randPoint2(r)
		require.Equal(t, a.Add(b), b.Add(a))
		require.Equal(t, a.Add(b).Add(c), a.Add(b.Add(c)))
		require.Equal(t, a, a.Add(b).Sub(b))

		p, q, s := randPoint3(r), randPoint3(r), randPoint3(r)
		require.Equal(t, p.Add(q), q.Add(p))
		require.Equal(t, p.Add(q).Add(s), p.Add(q.Add(s)))
	}
}

// TestMinMax_Idempotent checks that folding min/max over a set twice is stable.
func TestMinMax_Idempotent(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	pts := make([]geom.Point2, 50)
	for i := range pts {
		pts[i] = randPoint2(r)
	}
	lo, hi, ok := geom.Bounds2(pts...)
	require.True(t, ok)
	lo2, hi2, _ := geom.Bounds2(append(slices.Clone(pts), lo, hi)...)
	require.Equal(t, lo, lo2)
	require.Equal(t, hi, hi2)
	require.Equal(t, lo, lo.Min(lo))
	require.Equal(t, hi, hi.Max(hi))

	_, _, ok = geom.Bounds2()
	require.False(t, ok)
}

func TestSignAndAbs(t *testing.T) {
	require.Equal(t, geom.Point2{X: -1, Y: 1}, geom.Point2{X: -7, Y: 3}.Sign())
	require.Equal(t, geom.Point2{X: 0, Y: -1}, geom.Point2{X: 0, Y: -9}.Sign())
	require.Equal(t, geom.Point2{X: 7, Y: 3}, geom.Point2{X: -7, Y: 3}.Abs())
	require.Equal(t, geom.Point3{X: 1, Y: 0, Z: -1}, geom.Point3{X: 4, Y: 0, Z: -2}.Sign())
	require.Equal(t, geom.Point2{X: 6, Y: -3}, geom.Point2{X: 2, Y: -1}.Scale(3))
}

// TestCompare_TotalOrder verifies the lexicographic order is total and consistent with ==.
func TestCompare_TotalOrder(t *testing.T) {
	r := rand.New(rand.NewSource(11))
	pts := make([]geom.Point3, 200)
	for i := range pts {
		pts[i] = randPoint3(r)
	}
	slices.SortFunc(pts, geom.Point3.Compare)
	for i := 1; i < len(pts); i++ {
		require.False(t, pts[i].Less(pts[i-1]), "sorted order violated at %d", i)
	}
	for _, a := range pts {
		for _, b := range pts[:20] {
			require.Equal(t, a == b, a.Compare(b) == 0)
			require.Equal(t, -a.Compare(b), b.Compare(a))
		}
	}
	require.True(t, geom.Point2{X: 1, Y: 9}.Less(geom.Point2{X: 2, Y: 0}))
	require.True(t, geom.Point2{X: 1, Y: 0}.Less(geom.Point2{X: 1, Y: 1}))
}

func TestMergeIntervals(t *testing.T) {
	cases := []struct {
		name string
		in   []geom.Interval
		want []geom.Interval
	}{
		{"Empty", nil, nil},
		{"DropsEmptySpans", []geom.Interval{{Lo: 3, Hi: 2}}, nil},
		{"Disjoint", []geom.Interval{{Lo: 5, Hi: 6}, {Lo: 0, Hi: 1}}, []geom.Interval{{Lo: 0, Hi: 1}, {Lo: 5, Hi: 6}}},
		{"Touching", []geom.Interval{{Lo: 0, Hi: 1}, {Lo: 2, Hi: 4}}, []geom.Interval{{Lo: 0, Hi: 4}}},
		{"Nested", []geom.Interval{{Lo: 0, Hi: 10}, {Lo: 2, Hi: 3}}, []geom.Interval{{Lo: 0, Hi: 10}}},
		{"Overlap", []geom.Interval{{Lo: 12, Hi: 14}, {Lo: -2, Hi: 2}, {Lo: 2, Hi: 13}}, []geom.Interval{{Lo: -2, Hi: 14}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, geom.MergeIntervals(tc.in))
		})
	}
}

// TestMergeIntervals_Coverage compares the merged coverage with a brute-force bitmap.
func TestMergeIntervals_Coverage(t *testing.T) {
	r := rand.New(rand.NewSource(5))
	for round := 0; round < 50; round++ {
		var spans []geom.Interval
		covered := map[int]bool{}
		for i := 0; i < 8; i++ {
			lo := r.Intn(60) - 30
			hi := lo + r.Intn(10)
			spans = append(spans, geom.Interval{Lo: lo, Hi: hi})
			for v := lo; v <= hi; v++ {
				covered[v] = true
			}
		}
		merged := geom.MergeIntervals(spans)
		require.Equal(t, len(covered), geom.CoveredCount(merged))
		for i := 1; i < len(merged); i++ {
			require.Greater(t, merged[i].Lo, merged[i-1].Hi+1)
		}
	}
}

func TestInterval_Helpers(t *testing.T) {
	iv := geom.Interval{Lo: -2, Hi: 24}
	require.Equal(t, 27, iv.Len())
	require.True(t, iv.Contains(0))
	require.False(t, iv.Contains(25))
	require.Equal(t, geom.Interval{Lo: 0, Hi: 20}, iv.Clip(0, 20))
	require.True(t, iv.Clip(30, 40).Empty())
	require.Equal(t, 0, iv.Clip(30, 40).Len())
	require.Equal(t, 26, geom.CoveredWidth([]geom.Interval{iv}))
}
