package rectypoly

// RectArea returns the number of grid tiles covered by the rectangle with
// opposite corners t1 and t2, both corners included.
//
// Spans must stay well below 3·10⁹ tiles per axis (puzzle inputs are ~10⁵);
// larger spans overflow int64.
func RectArea(t1, t2 Tile) int64 {
	return (abs(t2.Row-t1.Row) + 1) * (abs(t2.Col-t1.Col) + 1)
}

// BestRect finds the largest rectangle spanned by any two tiles, ignoring
// any polygon. ok is false when fewer than two tiles are given.
// Ties keep the first pair in input order.
// Complexity: O(V²).
func BestRect(tiles []Tile) (best Rect, ok bool) {
	for i := 0; i < len(tiles)-1; i++ {
		for j := i + 1; j < len(tiles); j++ {
			if area := RectArea(tiles[i], tiles[j]); !ok || area > best.Area {
				best, ok = Rect{A: tiles[i], B: tiles[j], Area: area}, true
			}
		}
	}

	return best, ok
}

// LargestRect returns the area of BestRect, or 0 for fewer than two tiles.
func LargestRect(tiles []Tile) int64 {
	best, _ := BestRect(tiles)
	return best.Area
}

// RectIsIn reports whether the rectangle with opposite corners t1 and t2 lies
// within the polygon:
//
//  1. t1 and t2 must differ in both coordinates.
//  2. All four corners, t1, (t2.Col,t1.Row), t2 and (t1.Col,t2.Row), are on
//     the boundary or inside.
//  3. No side of the rectangle crosses a polygon edge. Sides may run along or
//     touch the boundary.
//
// Complexity: O(E).
func (p *RectyPoly) RectIsIn(t1, t2 Tile) bool {
	if t1.Col == t2.Col || t1.Row == t2.Row {
		return false
	}
	corners := [4]Tile{t1, {Col: t2.Col, Row: t1.Row}, t2, {Col: t1.Col, Row: t2.Row}}
	for _, c := range corners {
		if !p.IsInsideOrOn(c) {
			return false
		}
	}
	for i, c := range corners {
		// Corners are distinct and axis-aligned, NewEdge cannot fail here.
		side, _ := NewEdge(c, corners[(i+1)%len(corners)])
		if p.IntersectsAny(side) {
			return false
		}
	}

	return true
}

// BestRectInside finds the largest rectangle spanned by two polygon vertices
// that passes RectIsIn. Vertex pairs closer than two positions apart in
// traversal order are skipped, as are pairs sharing a row or column.
// Ties keep the first pair found. ok is false when no pair qualifies.
// Complexity: O(V²·E).
func (p *RectyPoly) BestRectInside() (best Rect, ok bool) {
	v := p.vertices
	for i := 0; i < len(v)-2; i++ {
		for j := i + 2; j < len(v); j++ {
			t1, t2 := v[i], v[j]
			if t1.Col == t2.Col || t1.Row == t2.Row {
				continue
			}
			area := RectArea(t1, t2)
			if ok && area <= best.Area {
				continue
			}
			if p.RectIsIn(t1, t2) {
				best, ok = Rect{A: t1, B: t2, Area: area}, true
			}
		}
	}

	return best, ok
}

// LargestRectInside builds a polygon from tiles and returns the area of its
// BestRectInside, or 0 when no vertex pair qualifies.
// Returns the NewRectyPoly error for an invalid vertex loop.
func LargestRectInside(tiles []Tile) (int64, error) {
	p, err := NewRectyPoly(tiles)
	if err != nil {
		return 0, err
	}
	best, _ := p.BestRectInside()

	return best.Area, nil
}
