package rectypoly

import (
	"sort"

	"github.com/paulmach/orb"
	"github.com/pkg/errors"
)

// NewRectyPoly builds a polygon from an ordered loop of vertices; the last
// vertex connects back to the first. The input slice is copied.
//
// Returns ErrTooFewTiles for fewer than 4 vertices, ErrNotAxisAligned or
// ErrDegenerateEdge (wrapped with the vertex index) for a bad consecutive pair.
// Simplicity of the loop is assumed, not verified.
// Complexity: O(V log V) time, O(V) memory.
func NewRectyPoly(tiles []Tile) (*RectyPoly, error) {
	if len(tiles) < 4 {
		return nil, errors.Wrapf(ErrTooFewTiles, "got %d", len(tiles))
	}
	n := len(tiles)
	p := &RectyPoly{
		vertices: append([]Tile(nil), tiles...),
		edges:    make([]Edge, 0, n),
	}
	for i, from := range p.vertices {
		to := p.vertices[(i+1)%n]
		e, err := NewEdge(from, to)
		if err != nil {
			return nil, errors.Wrapf(err, "edge %d", i)
		}
		p.edges = append(p.edges, e)
		if e.Dir.IsVertical() {
			p.vertical = append(p.vertical, e)
		} else {
			p.horizontal = append(p.horizontal, e)
		}
	}
	p.bound = p.Ring().Bound()
	// Every scan below relies on ascending Fixed order.
	sort.SliceStable(p.horizontal, func(i, j int) bool { return p.horizontal[i].Fixed < p.horizontal[j].Fixed })
	sort.SliceStable(p.vertical, func(i, j int) bool { return p.vertical[i].Fixed < p.vertical[j].Fixed })

	return p, nil
}

// Vertices returns the polygon's vertices in traversal order.
// The returned slice must not be modified.
func (p *RectyPoly) Vertices() []Tile { return p.vertices }

// Edges returns all edges in traversal order. Must not be modified.
func (p *RectyPoly) Edges() []Edge { return p.edges }

// HorizontalEdges returns the East/West edges sorted by Row. Must not be modified.
func (p *RectyPoly) HorizontalEdges() []Edge { return p.horizontal }

// VerticalEdges returns the North/South edges sorted by Col. Must not be modified.
func (p *RectyPoly) VerticalEdges() []Edge { return p.vertical }

// IsInside reports whether t lies strictly inside the polygon.
//
// It casts a ray from t toward increasing Col and sums the winding
// contribution of every vertical edge it meets: South +1, North -1. Rows are
// matched half-open, [Min, Max), so a ray passing through a vertex is counted
// exactly once. Only edges at or right of t.Col are visited; they start at a
// binary-searched offset in the Col-sorted list.
//
// Tiles on the boundary are not classified reliably; use IsOn for those.
// Complexity: O(log E + k), k = vertical edges at or right of t.
func (p *RectyPoly) IsInside(t Tile) bool {
	if !p.bound.Contains(t.point()) {
		return false
	}
	start := sort.Search(len(p.vertical), func(i int) bool { return p.vertical[i].Fixed >= t.Col })
	winding := 0
	for _, e := range p.vertical[start:] {
		if t.Row < e.Min || t.Row >= e.Max {
			continue
		}
		winding += e.Dir.winding()
	}

	return winding != 0
}

// IsOn reports whether t lies on the polygon boundary, vertices included.
// Complexity: O(E) worst case; each scan stops once Fixed passes t.
func (p *RectyPoly) IsOn(t Tile) bool {
	if !p.bound.Contains(t.point()) {
		return false
	}
	for _, e := range p.vertical {
		if e.Fixed > t.Col {
			break
		}
		if e.Contains(t) {
			return true
		}
	}
	for _, e := range p.horizontal {
		if e.Fixed > t.Row {
			break
		}
		if e.Contains(t) {
			return true
		}
	}

	return false
}

// IsInsideOrOn reports whether t lies inside the polygon or on its boundary.
func (p *RectyPoly) IsInsideOrOn(t Tile) bool {
	return p.IsOn(t) || p.IsInside(t)
}

// IntersectsAny reports whether e crosses any polygon edge (see DoesCross).
// Only perpendicular edges whose Fixed lies strictly within e's extent can
// cross, so the scan is limited to that window of the sorted list.
func (p *RectyPoly) IntersectsAny(e Edge) bool {
	others := p.vertical
	if e.Dir.IsVertical() {
		others = p.horizontal
	}
	start := sort.Search(len(others), func(i int) bool { return others[i].Fixed > e.Min })
	for _, o := range others[start:] {
		if o.Fixed >= e.Max {
			break
		}
		if DoesCross(e, o) {
			return true
		}
	}

	return false
}

// TurnSum adds up the signed quarter-turns between consecutive edges around
// the whole loop. A simple polygon yields +4 when traversed clockwise on
// screen and -4 counter-clockwise.
// Returns ErrReversal if an edge doubles back on its predecessor.
func (p *RectyPoly) TurnSum() (int, error) {
	sum := 0
	for i, e := range p.edges {
		next := p.edges[(i+1)%len(p.edges)]
		turn, ok := e.Dir.Turn(next.Dir)
		if !ok {
			return 0, errors.Wrapf(ErrReversal, "edge %d %v -> %v", i, e.Dir, next.Dir)
		}
		sum += turn
	}

	return sum, nil
}

// Ring converts the polygon into a closed orb.Ring (first point repeated last)
// with X = Col and Y = Row, for interop with orb's planar helpers.
func (p *RectyPoly) Ring() orb.Ring {
	ring := make(orb.Ring, 0, len(p.vertices)+1)
	for _, t := range p.vertices {
		ring = append(ring, t.point())
	}

	return append(ring, ring[0])
}

// Bound returns the polygon's bounding box in orb coordinates.
func (p *RectyPoly) Bound() orb.Bound { return p.bound }
