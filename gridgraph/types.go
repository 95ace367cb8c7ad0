// Package gridgraph defines connectivity options and sentinel errors
// shared by the dense and sparse grid containers.
package gridgraph

import (
	"errors"

	"github.com/katalvlaran/statespace/geom"
)

// Sentinel errors for gridgraph operations.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrNegativeCoord indicates a dense write below the origin.
	ErrNegativeCoord = errors.New("gridgraph: dense grids cannot address negative coordinates")
	// ErrCell indicates the cell decoder rejected an input character.
	ErrCell = errors.New("gridgraph: unrecognized cell")
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// Offsets returns the neighbour offsets for c.
func (c Connectivity) Offsets() []geom.Point2 {
	if c == Conn8 {
		return geom.Conn8
	}

	return geom.Conn4
}
