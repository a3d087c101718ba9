package cubegame

import "github.com/specialistvlad/aocgridgo/internal/puzzle"

// Bag is the content the elf asks about in part 1.
var Bag = Rgb{R: 12, G: 13, B: 14}

// SumPossibleIDs adds up the ids of the games that fit in Bag.
func SumPossibleIDs(games []*Game) int {
	sum := 0
	for _, g := range games {
		if g.Possible(Bag) {
			sum += g.ID
		}
	}
	return sum
}

// SumPowers adds up the power of every game's minimum bag.
func SumPowers(games []*Game) int {
	sum := 0
	for _, g := range games {
		sum += g.Minimum().Power()
	}
	return sum
}

// Solver returns the day 2 solver.
func Solver() puzzle.Solver {
	return &puzzle.Day{
		Number: 2,
		Funcs: map[int]puzzle.PartFunc{
			1: withGames(SumPossibleIDs),
			2: withGames(SumPowers),
		},
	}
}

func withGames(fn func([]*Game) int) puzzle.PartFunc {
	return func(lines []string) (int, error) {
		games, err := ParseGames(lines)
		if err != nil {
			return 0, err
		}
		return fn(games), nil
	}
}
