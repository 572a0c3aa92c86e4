package rectypoly

import (
	"strconv"

	"github.com/paulmach/orb"
)

// Tile is an integer grid position. Row grows downward.
type Tile struct {
	Col, Row int64
}

// String renders t in the puzzle's input form "col,row".
func (t Tile) String() string {
	return strconv.FormatInt(t.Col, 10) + "," + strconv.FormatInt(t.Row, 10)
}

func (t Tile) point() orb.Point {
	return orb.Point{float64(t.Col), float64(t.Row)}
}

// Direction is the compass heading of an axis-aligned edge.
type Direction uint8

const (
	// North points toward decreasing Row.
	North Direction = iota
	// East points toward increasing Col.
	East
	// South points toward increasing Row.
	South
	// West points toward decreasing Col.
	West
)

// Edge is a directed, axis-aligned segment between two consecutive vertices.
//
// Fixed holds the shared coordinate (Col for North/South, Row for East/West);
// Min and Max bound the varying coordinate, inclusive.
type Edge struct {
	Dir      Direction
	Fixed    int64
	Min, Max int64
}

// RectyPoly is a closed rectilinear polygon. It is immutable once built.
//
// edges keeps traversal order; horizontal is sorted by Row and vertical by Col.
// All three share the same Edge values and are never modified after NewRectyPoly.
// bound is the vertices' bounding box, used to reject far-away queries early.
type RectyPoly struct {
	vertices   []Tile
	edges      []Edge
	horizontal []Edge
	vertical   []Edge
	bound      orb.Bound
}

// Rect is an axis-aligned rectangle spanned by two opposite corner tiles.
type Rect struct {
	A, B Tile
	Area int64
}
