package schematic

import (
	"fmt"
	"strconv"

	"github.com/specialistvlad/aocgridgo/internal/puzzle"
)

// Coord is a zero-based (row, column) position in a Grid.
type Coord struct {
	Row int
	Col int
}

// NumberRun is a maximal horizontal span of digits. End is exclusive.
type NumberRun struct {
	Row   int
	Start int
	End   int
}

// Symbol is a symbol character together with its position. Two symbols are
// the same symbol iff their coordinates match.
type Symbol struct {
	Char byte
	Coord
}

// Scan returns every number run of the grid in row-major, left-to-right order.
func (g *Grid) Scan() []NumberRun {
	var runs []NumberRun
	for r, row := range g.rows {
		start := 0
		for c := 0; c <= len(row); c++ {
			if c < len(row) && isDigit(row[c]) {
				continue
			}
			if c > start {
				runs = append(runs, NumberRun{Row: r, Start: start, End: c})
			}
			start = c + 1
		}
	}
	return runs
}

// Text returns the characters covered by the run.
func (g *Grid) Text(run NumberRun) string {
	return string(g.rows[run.Row][run.Start:run.End])
}

// Value converts the run to its integer value.
func (g *Grid) Value(run NumberRun) (int, error) {
	if run.Row < 0 || run.Row >= len(g.rows) || run.Start < 0 || run.End > g.width || run.Start >= run.End {
		return 0, fmt.Errorf("%w: run %+v outside grid %dx%d", puzzle.ErrParse, run, len(g.rows), g.width)
	}
	text := g.Text(run)
	for i := 0; i < len(text); i++ {
		if !isDigit(text[i]) {
			return 0, fmt.Errorf("%w: run %q contains non-digit %q", puzzle.ErrParse, text, text[i])
		}
	}
	n, err := strconv.Atoi(text)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", puzzle.ErrParse, err)
	}
	return n, nil
}

// neighbours calls visit for every cell touching the run, each exactly once:
// the left and right cells of the run's row, then the expanded column range
// on the row above and the row below. The range is clamped to the grid, so
// border runs never wrap or step outside it. Iteration stops when visit
// returns false.
func (g *Grid) neighbours(run NumberRun, visit func(Coord) bool) {
	lo := max(run.Start-1, 0)
	hi := min(run.End+1, g.width)

	if run.Start > 0 && !visit(Coord{Row: run.Row, Col: run.Start - 1}) {
		return
	}
	if run.End < g.width && !visit(Coord{Row: run.Row, Col: run.End}) {
		return
	}
	for _, r := range []int{run.Row - 1, run.Row + 1} {
		if r < 0 || r >= len(g.rows) {
			continue
		}
		for c := lo; c < hi; c++ {
			if !visit(Coord{Row: r, Col: c}) {
				return
			}
		}
	}
}

// IsAdjacentToSymbol reports whether any symbol touches the run.
func (g *Grid) IsAdjacentToSymbol(run NumberRun) bool {
	found := false
	g.neighbours(run, func(c Coord) bool {
		found = IsSymbol(g.At(c))
		return !found
	})
	return found
}

// AdjacentSymbols returns every symbol touching the run.
func (g *Grid) AdjacentSymbols(run NumberRun) []Symbol {
	var symbols []Symbol
	g.neighbours(run, func(c Coord) bool {
		if ch := g.At(c); IsSymbol(ch) {
			symbols = append(symbols, Symbol{Char: ch, Coord: c})
		}
		return true
	})
	return symbols
}
