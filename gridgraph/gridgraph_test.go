package gridgraph_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/statespace/geom"
	"github.com/katalvlaran/statespace/gridgraph"
)

func decodeDigit(_ geom.Point2, c byte) (int, error) {
	if c < '0' || c > '9' {
		return 0, errors.New("not a digit")
	}
	return int(c - '0'), nil
}

//----------------------------------------------------------------------------//
// Dense
//----------------------------------------------------------------------------//

// TestParseDense_Errors verifies that ParseDense rejects empty, ragged or undecodable inputs.
func TestParseDense_Errors(t *testing.T) {
	cases := []struct {
		name string
		rows []string
		err  error
	}{
		{"EmptyRows", nil, gridgraph.ErrEmptyGrid},
		{"EmptyCols", []string{""}, gridgraph.ErrEmptyGrid},
		{"NonRectangular", []string{"12", "3"}, gridgraph.ErrNonRectangular},
		{"BadCell", []string{"1x"}, gridgraph.ErrCell},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := gridgraph.ParseDense(tc.rows, 0, decodeDigit)
			if !errors.Is(err, tc.err) {
				t.Errorf("ParseDense(%v) error = %v; want %v", tc.rows, err, tc.err)
			}
		})
	}
}

func TestParseDense_Values(t *testing.T) {
	g, err := gridgraph.ParseDense([]string{"123", "456"}, -1, decodeDigit)
	require.NoError(t, err)
	require.Equal(t, 3, g.Width)
	require.Equal(t, 2, g.Height)
	require.Equal(t, 6, g.At(geom.Point2{X: 2, Y: 1}))
	require.Equal(t, -1, g.At(geom.Point2{X: 3, Y: 0}), "out of range reads the fill value")
	require.Equal(t, -1, g.At(geom.Point2{X: -1, Y: 0}))

	p, ok := g.Find(func(v int) bool { return v == 5 })
	require.True(t, ok)
	require.Equal(t, geom.Point2{X: 1, Y: 1}, p)
}

// TestDense_GrowNeverShrinks checks that Set grows to fit and keeps existing cells.
func TestDense_GrowNeverShrinks(t *testing.T) {
	g := gridgraph.NewDense(2, 2, '.')
	require.NoError(t, g.Set(geom.Point2{X: 1, Y: 1}, '#'))
	require.NoError(t, g.Set(geom.Point2{X: 4, Y: 3}, '@'))
	require.Equal(t, 5, g.Width)
	require.Equal(t, 4, g.Height)
	require.Equal(t, '#', g.At(geom.Point2{X: 1, Y: 1}))
	require.Equal(t, '@', g.At(geom.Point2{X: 4, Y: 3}))
	require.Equal(t, '.', g.At(geom.Point2{X: 3, Y: 0}))

	g.Resize(1, 1)
	require.Equal(t, 5, g.Width, "Resize never shrinks")
	require.Equal(t, 4, g.Height)

	err := g.Set(geom.Point2{X: -1, Y: 0}, 'x')
	require.ErrorIs(t, err, gridgraph.ErrNegativeCoord)
}

// TestDense_Neighbors checks Conn4/Conn8 neighbour sets at a corner and in the middle.
func TestDense_Neighbors(t *testing.T) {
	g := gridgraph.NewDense(3, 3, 0)
	require.Len(t, g.Neighbors(geom.Point2{}, gridgraph.Conn4), 2)
	require.Len(t, g.Neighbors(geom.Point2{}, gridgraph.Conn8), 3)
	require.Len(t, g.Neighbors(geom.Point2{X: 1, Y: 1}, gridgraph.Conn4), 4)
	require.Len(t, g.Neighbors(geom.Point2{X: 1, Y: 1}, gridgraph.Conn8), 8)
}

func TestDense_EachRowMajor(t *testing.T) {
	g, err := gridgraph.ParseDense([]string{"12", "34"}, 0, decodeDigit)
	require.NoError(t, err)
	var seen []int
	g.Each(func(_ geom.Point2, v int) { seen = append(seen, v) })
	require.Equal(t, []int{1, 2, 3, 4}, seen)
}

//----------------------------------------------------------------------------//
// Dense3
//----------------------------------------------------------------------------//

func TestDense3_GrowAndDefault(t *testing.T) {
	g := gridgraph.NewDense3(false)
	_, ok := g.Max()
	require.False(t, ok)

	require.NoError(t, g.Set(geom.Point3{X: 2, Y: 2, Z: 2}, true))
	require.NoError(t, g.Set(geom.Point3{X: 5, Y: 0, Z: 1}, true))
	require.True(t, g.At(geom.Point3{X: 2, Y: 2, Z: 2}))
	require.True(t, g.At(geom.Point3{X: 5, Y: 0, Z: 1}))
	require.False(t, g.At(geom.Point3{X: 4, Y: 0, Z: 1}))
	require.False(t, g.At(geom.Point3{X: 9, Y: 9, Z: 9}))
	require.False(t, g.At(geom.Point3{X: -1, Y: 0, Z: 0}))

	hi, ok := g.Max()
	require.True(t, ok)
	require.Equal(t, geom.Point3{X: 5, Y: 2, Z: 2}, hi)

	require.ErrorIs(t, g.Set(geom.Point3{Z: -3}, true), gridgraph.ErrNegativeCoord)
}

//----------------------------------------------------------------------------//
// Sparse
//----------------------------------------------------------------------------//

func TestSparse_MembershipAndBounds(t *testing.T) {
	s := gridgraph.NewSparse[byte]()
	s.Set(geom.Point2{X: 500, Y: 0}, '+')
	s.Set(geom.Point2{X: 494, Y: 9}, '#')
	s.Set(geom.Point2{X: -3, Y: 4}, 'o')

	require.Equal(t, 3, s.Len())
	require.True(t, s.Has(geom.Point2{X: 494, Y: 9}))
	require.False(t, s.Has(geom.Point2{X: 0, Y: 0}))

	v, ok := s.Get(geom.Point2{X: -3, Y: 4})
	require.True(t, ok)
	require.Equal(t, byte('o'), v)

	lo, hi := s.Bounds()
	require.Equal(t, geom.Point2{X: -3, Y: 0}, lo)
	require.Equal(t, geom.Point2{X: 500, Y: 9}, hi)

	require.Equal(t, []geom.Point2{{X: -3, Y: 4}, {X: 494, Y: 9}, {X: 500, Y: 0}}, s.Points())

	s.Delete(geom.Point2{X: -3, Y: 4})
	require.False(t, s.Has(geom.Point2{X: -3, Y: 4}))
	lo, _ = s.Bounds()
	require.Equal(t, -3, lo.X, "bounds are not shrunk on delete")
}
