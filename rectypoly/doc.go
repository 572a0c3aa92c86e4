// Package rectypoly models closed rectilinear polygons on an integer tile grid
// and answers containment queries against them.
//
// What:
//
//   - RectyPoly is built once from an ordered loop of Tile vertices and is
//     immutable afterwards.
//   - Edges are split into horizontal and vertical lists, each sorted by its
//     fixed coordinate, so every query scans only the relevant slice.
//   - IsInside runs a winding-number test over vertical edges; IsOn checks the
//     boundary (inclusive of endpoints).
//   - RectIsIn validates an axis-aligned rectangle spanned by two tiles;
//     LargestRectInside searches every vertex pair for the biggest one.
//
// Coordinates:
//
//	Tile{Col, Row} uses screen orientation: Row grows downward (South),
//	Col grows to the right (East). Areas count inclusive grid cells, so the
//	rectangle between (2,3) and (9,5) covers (7+1)·(2+1) = 24 tiles.
//
// Complexity:
//
//   - NewRectyPoly:      O(V log V), Memory: O(V).
//   - IsInside, IsOn:    O(E) worst case, early-exit scans over sorted edges.
//   - LargestRect:       O(V²).
//   - LargestRectInside: O(V²·E).
//
// Errors:
//
//   - ErrMalformedTile: an input line is not exactly "col,row" integers.
//   - ErrNotAxisAligned: two consecutive vertices differ in both coordinates.
//   - ErrDegenerateEdge: two consecutive vertices are identical.
//   - ErrTooFewTiles: fewer than four vertices cannot close a rectilinear loop.
//   - ErrReversal: the loop doubles back on itself (180° turn).
//
// Every query is a pure read of the polygon, so a *RectyPoly may be shared
// between goroutines without locking.
package rectypoly
