package schematic

import (
	"fmt"

	"github.com/specialistvlad/aocgridgo/internal/puzzle"
)

// Grid is an immutable, rectangular buffer of schematic characters.
type Grid struct {
	rows  [][]byte
	width int
}

// NewGrid builds a Grid from text lines, one row per line. It rejects empty
// input and rows of differing length so that adjacency lookups never reach
// a column that does not exist.
func NewGrid(lines []string) (*Grid, error) {
	if len(lines) == 0 {
		return nil, fmt.Errorf("%w: no rows", puzzle.ErrInvalidGrid)
	}

	width := len(lines[0])
	if width == 0 {
		return nil, fmt.Errorf("%w: row 0 is empty", puzzle.ErrInvalidGrid)
	}

	rows := make([][]byte, len(lines))
	for i, line := range lines {
		if len(line) != width {
			return nil, fmt.Errorf("%w: row %d has length %d, expected %d", puzzle.ErrInvalidGrid, i, len(line), width)
		}
		rows[i] = []byte(line)
	}

	return &Grid{rows: rows, width: width}, nil
}

// Height returns the number of rows.
func (g *Grid) Height() int {
	return len(g.rows)
}

// Width returns the number of columns shared by every row.
func (g *Grid) Width() int {
	return g.width
}

// At returns the character at the given coordinate.
func (g *Grid) At(c Coord) byte {
	return g.rows[c.Row][c.Col]
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// IsSymbol reports whether c counts as a symbol: anything but a digit or '.'.
func IsSymbol(c byte) bool {
	return !isDigit(c) && c != '.'
}
