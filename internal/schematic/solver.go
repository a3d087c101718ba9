package schematic

import "github.com/specialistvlad/aocgridgo/internal/puzzle"

// Solver returns the day 3 solver.
func Solver() puzzle.Solver {
	return &puzzle.Day{
		Number: 3,
		Funcs: map[int]puzzle.PartFunc{
			1: withGrid(SumPartNumbers),
			2: withGrid(SumGearRatios),
		},
	}
}

func withGrid(fn func(*Grid) (int, error)) puzzle.PartFunc {
	return func(lines []string) (int, error) {
		g, err := NewGrid(lines)
		if err != nil {
			return 0, err
		}
		return fn(g)
	}
}
