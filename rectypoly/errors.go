package rectypoly

import "github.com/pkg/errors"

var (
	// ErrMalformedTile indicates a vertex line that is not two comma-separated integers.
	ErrMalformedTile = errors.New("rectypoly: malformed tile, want \"col,row\"")
	// ErrNotAxisAligned indicates consecutive vertices differing in both coordinates.
	ErrNotAxisAligned = errors.New("rectypoly: consecutive tiles are not axis-aligned")
	// ErrDegenerateEdge indicates two identical consecutive vertices.
	ErrDegenerateEdge = errors.New("rectypoly: consecutive tiles are identical")
	// ErrTooFewTiles indicates a vertex loop too short to form a rectilinear polygon.
	ErrTooFewTiles = errors.New("rectypoly: a rectilinear polygon needs at least 4 tiles")
	// ErrReversal indicates an edge that runs straight back along the previous one.
	ErrReversal = errors.New("rectypoly: edge reverses the previous direction")
)
