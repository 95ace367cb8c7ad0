package gridgraph

import (
	"slices"

	"github.com/katalvlaran/statespace/geom"
)

// Sparse maps occupied points to tiles. Absent points are "empty"; there
// are no bounds, so negative and very large coordinates are fine.
// The bounding box of every point ever stored is tracked for rendering.
type Sparse[T any] struct {
	cells  map[geom.Point2]T
	lo, hi geom.Point2
	seen   bool
}

// NewSparse returns an empty sparse grid.
func NewSparse[T any]() *Sparse[T] {
	return &Sparse[T]{cells: make(map[geom.Point2]T)}
}

// Len is the number of occupied points.
func (s *Sparse[T]) Len() int { return len(s.cells) }

// Has reports whether p is occupied.
func (s *Sparse[T]) Has(p geom.Point2) bool {
	_, ok := s.cells[p]
	return ok
}

// Get returns the tile at p and whether it is occupied.
func (s *Sparse[T]) Get(p geom.Point2) (T, bool) {
	v, ok := s.cells[p]
	return v, ok
}

// Set occupies p with v and widens the bounding box.
func (s *Sparse[T]) Set(p geom.Point2, v T) {
	s.cells[p] = v
	if !s.seen {
		s.lo, s.hi, s.seen = p, p, true
		return
	}
	s.lo = s.lo.Min(p)
	s.hi = s.hi.Max(p)
}

// Delete frees p. The bounding box is not shrunk.
func (s *Sparse[T]) Delete(p geom.Point2) { delete(s.cells, p) }

// Bounds returns the inclusive bounding box of every point ever set.
func (s *Sparse[T]) Bounds() (lo, hi geom.Point2) { return s.lo, s.hi }

// Points returns the occupied points in geom.Point2 order.
func (s *Sparse[T]) Points() []geom.Point2 {
	out := make([]geom.Point2, 0, len(s.cells))
	for p := range s.cells {
		out = append(out, p)
	}
	slices.SortFunc(out, geom.Point2.Compare)

	return out
}
