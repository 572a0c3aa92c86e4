package rectypoly

// NewEdge builds the edge running from a to b.
// Returns the DirectionBetween error when a and b are not axis-aligned or coincide.
func NewEdge(a, b Tile) (Edge, error) {
	dir, err := DirectionBetween(a, b)
	if err != nil {
		return Edge{}, err
	}
	e := Edge{Dir: dir}
	if dir.IsVertical() {
		e.Fixed = a.Col
		e.Min, e.Max = minMax(a.Row, b.Row)
	} else {
		e.Fixed = a.Row
		e.Min, e.Max = minMax(a.Col, b.Col)
	}

	return e, nil
}

// Contains reports whether t lies on e, endpoints included.
func (e Edge) Contains(t Tile) bool {
	fixed, along := t.Row, t.Col
	if e.Dir.IsVertical() {
		fixed, along = t.Col, t.Row
	}

	return fixed == e.Fixed && e.Min <= along && along <= e.Max
}

// DoesCross reports whether a perpendicular pair of edges cross at a point
// strictly inside both extents. Touching at an endpoint is not a crossing,
// and parallel edges never cross.
func DoesCross(a, b Edge) bool {
	if a.Dir.IsVertical() == b.Dir.IsVertical() {
		return false
	}
	// a's fixed coordinate is the candidate point along b, and vice versa.
	return b.Min < a.Fixed && a.Fixed < b.Max &&
		a.Min < b.Fixed && b.Fixed < a.Max
}
