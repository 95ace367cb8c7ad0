package gridgraph

import (
	"fmt"

	"github.com/katalvlaran/statespace/geom"
)

// Dense is a row-major 2D grid addressed by geom.Point2 with X as column
// and Y as row. It grows on demand and never shrinks.
type Dense[T any] struct {
	Width, Height int
	cells         []T
	fill          T
}

// NewDense allocates a w×h grid where every cell holds fill.
// Negative dimensions are treated as zero.
func NewDense[T any](w, h int, fill T) *Dense[T] {
	g := &Dense[T]{fill: fill}
	g.Resize(max(w, 0), max(h, 0))

	return g
}

// ParseDense builds a grid from rectangular text rows. decode maps the
// character at p to a cell value; a decode error aborts parsing and is
// wrapped with ErrCell.
// Returns ErrEmptyGrid if there are no rows or no columns,
// ErrNonRectangular if any row length differs.
// Complexity: O(W×H) time and memory.
func ParseDense[T any](rows []string, fill T, decode func(p geom.Point2, c byte) (T, error)) (*Dense[T], error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(rows), len(rows[0])
	for _, row := range rows {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	g := NewDense(w, h, fill)
	for y, row := range rows {
		for x := 0; x < w; x++ {
			p := geom.Point2{X: x, Y: y}
			v, err := decode(p, row[x])
			if err != nil {
				return nil, fmt.Errorf("%w %q at %v: %v", ErrCell, row[x], p, err)
			}
			g.cells[g.index(x, y)] = v
		}
	}

	return g, nil
}

// InBounds reports whether p lies within the current grid boundaries.
// Complexity: O(1).
func (g *Dense[T]) InBounds(p geom.Point2) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// At returns the value at p, or the fill value when p is outside the grid.
func (g *Dense[T]) At(p geom.Point2) T {
	if !g.InBounds(p) {
		return g.fill
	}

	return g.cells[g.index(p.X, p.Y)]
}

// Set stores v at p, growing the grid to fit. Negative coordinates are
// rejected with ErrNegativeCoord.
func (g *Dense[T]) Set(p geom.Point2, v T) error {
	if p.X < 0 || p.Y < 0 {
		return fmt.Errorf("%w: %v", ErrNegativeCoord, p)
	}
	g.ResizeToFit(p)
	g.cells[g.index(p.X, p.Y)] = v

	return nil
}

// ResizeToFit grows the grid so that p is addressable.
func (g *Dense[T]) ResizeToFit(p geom.Point2) {
	g.Resize(max(g.Width, p.X+1), max(g.Height, p.Y+1))
}

// Resize grows the grid to at least w×h. Smaller requests are ignored.
// New cells hold the fill value; existing cells keep their coordinates.
func (g *Dense[T]) Resize(w, h int) {
	w, h = max(w, g.Width), max(h, g.Height)
	if w == g.Width && h == g.Height {
		return
	}
	if w == g.Width {
		// same row length: append whole rows
		for i := g.Width * g.Height; i < w*h; i++ {
			g.cells = append(g.cells, g.fill)
		}
		g.Height = h

		return
	}
	cells := make([]T, w*h)
	for i := range cells {
		cells[i] = g.fill
	}
	for y := 0; y < g.Height; y++ {
		copy(cells[y*w:y*w+g.Width], g.cells[y*g.Width:(y+1)*g.Width])
	}
	g.cells, g.Width, g.Height = cells, w, h
}

// Neighbors returns the in-bounds neighbours of p under conn.
func (g *Dense[T]) Neighbors(p geom.Point2, conn Connectivity) []geom.Point2 {
	offsets := conn.Offsets()
	out := make([]geom.Point2, 0, len(offsets))
	for _, d := range offsets {
		if q := p.Add(d); g.InBounds(q) {
			out = append(out, q)
		}
	}

	return out
}

// Find returns the first point (row-major) whose value satisfies match.
func (g *Dense[T]) Find(match func(T) bool) (geom.Point2, bool) {
	for i, v := range g.cells {
		if match(v) {
			return g.Coordinate(i), true
		}
	}

	return geom.Point2{}, false
}

// Each visits every cell in row-major order.
func (g *Dense[T]) Each(fn func(p geom.Point2, v T)) {
	for i, v := range g.cells {
		fn(g.Coordinate(i), v)
	}
}

// index maps (x,y) to a row‑major index: y*Width + x.
// Complexity: O(1).
func (g *Dense[T]) index(x, y int) int {
	return y*g.Width + x
}

// Coordinate converts a row‑major index back to a point.
// Complexity: O(1).
func (g *Dense[T]) Coordinate(idx int) geom.Point2 {
	return geom.Point2{X: idx % g.Width, Y: idx / g.Width}
}
