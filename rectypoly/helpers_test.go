package rectypoly_test

import (
	"testing"

	"github.com/katalvlaran/aoc2025/rectypoly"
	"github.com/stretchr/testify/require"
)

// sampleInput is the day 9 sample loop:
//
//	..............
//	.......#XXX#..
//	.......X...X..
//	..#XXXX#...X..
//	..X........X..
//	..#XXXXXX#.X..
//	.........X.X..
//	.........#X#..
//	..............
const sampleInput = `7,1
11,1
11,7
9,7
9,5
2,5
2,3
7,3
`

// sampleTiles is sampleInput, parsed.
var sampleTiles = []rectypoly.Tile{
	{Col: 7, Row: 1}, {Col: 11, Row: 1}, {Col: 11, Row: 7}, {Col: 9, Row: 7},
	{Col: 9, Row: 5}, {Col: 2, Row: 5}, {Col: 2, Row: 3}, {Col: 7, Row: 3},
}

// loopyTiles is a plus-shaped 12-vertex loop: a 5×5 centre with four arms.
var loopyTiles = []rectypoly.Tile{
	{Col: 3, Row: 0}, {Col: 7, Row: 0}, {Col: 7, Row: 3}, {Col: 10, Row: 3},
	{Col: 10, Row: 7}, {Col: 7, Row: 7}, {Col: 7, Row: 10}, {Col: 3, Row: 10},
	{Col: 3, Row: 7}, {Col: 0, Row: 7}, {Col: 0, Row: 3}, {Col: 3, Row: 3},
}

// withDetour returns loopyTiles with a notch cut down from the top arm,
// between columns 4 and 6 and reaching row 5. The notch is inserted after
// vertex 0, so original vertex i>0 moves to index i+4.
func withDetour() []rectypoly.Tile {
	out := []rectypoly.Tile{loopyTiles[0],
		{Col: 4, Row: 0}, {Col: 4, Row: 5}, {Col: 6, Row: 5}, {Col: 6, Row: 0}}

	return append(out, loopyTiles[1:]...)
}

// reversed returns tiles in opposite traversal order.
func reversed(tiles []rectypoly.Tile) []rectypoly.Tile {
	out := make([]rectypoly.Tile, len(tiles))
	for i, t := range tiles {
		out[len(tiles)-1-i] = t
	}

	return out
}

// staircase builds a clockwise loop of n unit steps from (0,0) down to (n,n),
// closed along the bottom row and the left column. It has 2n+2 vertices.
func staircase(n int64) []rectypoly.Tile {
	tiles := []rectypoly.Tile{{Col: 0, Row: 0}}
	for i := int64(1); i <= n; i++ {
		tiles = append(tiles, rectypoly.Tile{Col: i, Row: i - 1}, rectypoly.Tile{Col: i, Row: i})
	}

	return append(tiles, rectypoly.Tile{Col: 0, Row: n})
}

// mustPoly builds a polygon or fails the test.
func mustPoly(tb testing.TB, tiles []rectypoly.Tile) *rectypoly.RectyPoly {
	tb.Helper()
	p, err := rectypoly.NewRectyPoly(tiles)
	require.NoError(tb, err, "NewRectyPoly(%v)", tiles)

	return p
}
