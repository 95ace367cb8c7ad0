package gridgraph

import (
	"fmt"

	"github.com/katalvlaran/statespace/geom"
)

// Dense3 stores a 3D grid as planes[z][y][x]. Each axis grows
// independently when a point is written, so ragged extents are allowed;
// reads outside the populated region return the fill value.
type Dense3[T any] struct {
	planes [][][]T
	fill   T
	hi     geom.Point3
	empty  bool
}

// NewDense3 returns an empty 3D grid whose unset cells read as fill.
func NewDense3[T any](fill T) *Dense3[T] {
	return &Dense3[T]{fill: fill, empty: true}
}

// At returns the value at p, or fill when p was never written.
func (g *Dense3[T]) At(p geom.Point3) T {
	if p.X < 0 || p.Y < 0 || p.Z < 0 || p.Z >= len(g.planes) {
		return g.fill
	}
	plane := g.planes[p.Z]
	if p.Y >= len(plane) {
		return g.fill
	}
	row := plane[p.Y]
	if p.X >= len(row) {
		return g.fill
	}

	return row[p.X]
}

// Set stores v at p, growing planes, rows and columns as needed.
func (g *Dense3[T]) Set(p geom.Point3, v T) error {
	if p.X < 0 || p.Y < 0 || p.Z < 0 {
		return fmt.Errorf("%w: %v", ErrNegativeCoord, p)
	}
	g.row(p)[p.X] = v
	if g.empty {
		g.hi, g.empty = p, false
	} else {
		g.hi = g.hi.Max(p)
	}

	return nil
}

// Max returns the component-wise maximum point written so far.
// ok is false for a grid that has never been written.
func (g *Dense3[T]) Max() (geom.Point3, bool) { return g.hi, !g.empty }

// row resizes the grid to fit p and returns the row that holds it.
func (g *Dense3[T]) row(p geom.Point3) []T {
	for len(g.planes) <= p.Z {
		g.planes = append(g.planes, nil)
	}
	plane := g.planes[p.Z]
	for len(plane) <= p.Y {
		plane = append(plane, nil)
	}
	row := plane[p.Y]
	for len(row) <= p.X {
		row = append(row, g.fill)
	}
	plane[p.Y] = row
	g.planes[p.Z] = plane

	return row
}
