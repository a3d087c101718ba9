// Package calibration solves the trebuchet calibration puzzle (day 1).
package calibration

import (
	"fmt"
	"strings"

	"github.com/specialistvlad/aocgridgo/internal/puzzle"
)

const digits = "0123456789"

// Value combines the first and the last digit of a line into a two-digit
// number. A line with a single digit uses it twice.
func Value(line string) (int, error) {
	first := strings.IndexAny(line, digits)
	if first < 0 {
		return 0, fmt.Errorf("%w: no digit in %q", puzzle.ErrParse, line)
	}
	last := strings.LastIndexAny(line, digits)
	return 10*int(line[first]-'0') + int(line[last]-'0'), nil
}

// Sum adds up the calibration value of every line.
func Sum(lines []string) (int, error) {
	sum := 0
	for i, line := range lines {
		v, err := Value(line)
		if err != nil {
			return 0, fmt.Errorf("line %d: %w", i+1, err)
		}
		sum += v
	}
	return sum, nil
}

// Solver returns the day 1 solver.
func Solver() puzzle.Solver {
	return &puzzle.Day{
		Number: 1,
		Funcs:  map[int]puzzle.PartFunc{1: Sum},
	}
}
