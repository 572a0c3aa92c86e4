package rectypoly

import (
	"strconv"

	"github.com/pkg/errors"
)

// reversal marks a 180° turn in turnTable.
const reversal = 2

// turnTable[from][to] holds the signed quarter-turn from one heading to the
// next: +1 clockwise (on screen), -1 counter-clockwise, 0 straight on.
var turnTable = [4][4]int8{
	North: {North: 0, East: 1, South: reversal, West: -1},
	East:  {North: -1, East: 0, South: 1, West: reversal},
	South: {North: reversal, East: -1, South: 0, West: 1},
	West:  {North: 1, East: reversal, South: -1, West: 0},
}

// DirectionBetween returns the heading of the edge running from a to b.
// Returns ErrDegenerateEdge if a == b, ErrNotAxisAligned if they differ in both coordinates.
func DirectionBetween(a, b Tile) (Direction, error) {
	switch {
	case a == b:
		return 0, errors.Wrapf(ErrDegenerateEdge, "%v -> %v", a, b)
	case a.Col == b.Col:
		if b.Row > a.Row {
			return South, nil
		}
		return North, nil
	case a.Row == b.Row:
		if b.Col > a.Col {
			return East, nil
		}
		return West, nil
	default:
		return 0, errors.Wrapf(ErrNotAxisAligned, "%v -> %v", a, b)
	}
}

// IsVertical reports whether d runs along a column.
func (d Direction) IsVertical() bool {
	return d == North || d == South
}

// Turn returns the signed quarter-turn needed to go from d to next.
// ok is false when next points straight back.
func (d Direction) Turn(next Direction) (turn int, ok bool) {
	t := turnTable[d][next]
	if t == reversal {
		return 0, false
	}

	return int(t), true
}

// winding is the contribution of a vertical edge to the winding number of a
// point to its left.
func (d Direction) winding() int {
	switch d {
	case South:
		return 1
	case North:
		return -1
	}

	return 0
}

func (d Direction) String() string {
	switch d {
	case North:
		return "North"
	case East:
		return "East"
	case South:
		return "South"
	case West:
		return "West"
	}

	return "Direction(" + strconv.Itoa(int(d)) + ")"
}
