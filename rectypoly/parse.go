package rectypoly

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// ParseTile parses a single "col,row" line. Each coordinate is a decimal
// integer with an optional leading '-'; spaces and '+' are rejected.
func ParseTile(line string) (Tile, error) {
	colStr, rowStr, found := strings.Cut(line, ",")
	if !found || strings.Contains(rowStr, ",") {
		return Tile{}, errors.Wrapf(ErrMalformedTile, "%q", line)
	}
	col, err := parseCoord(colStr)
	if err != nil {
		return Tile{}, errors.Wrapf(ErrMalformedTile, "%q: col: %v", line, err)
	}
	row, err := parseCoord(rowStr)
	if err != nil {
		return Tile{}, errors.Wrapf(ErrMalformedTile, "%q: row: %v", line, err)
	}

	return Tile{Col: col, Row: row}, nil
}

// parseCoord is strconv.ParseInt without the leading '+' it tolerates.
func parseCoord(s string) (int64, error) {
	if strings.HasPrefix(s, "+") {
		return 0, errors.Errorf("unexpected sign in %q", s)
	}

	return strconv.ParseInt(s, 10, 64)
}

// ReadTiles parses one tile per line from r. Blank lines are rejected;
// a trailing newline at the end of input is fine.
func ReadTiles(r io.Reader) ([]Tile, error) {
	var tiles []Tile
	sc := bufio.NewScanner(r)
	for line := 1; sc.Scan(); line++ {
		t, err := ParseTile(strings.TrimRight(sc.Text(), "\r"))
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", line)
		}
		tiles = append(tiles, t)
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "rectypoly: reading tiles")
	}

	return tiles, nil
}

// ParseTiles is ReadTiles over an in-memory string.
func ParseTiles(input string) ([]Tile, error) {
	return ReadTiles(strings.NewReader(input))
}
