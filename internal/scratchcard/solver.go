package scratchcard

import "github.com/specialistvlad/aocgridgo/internal/puzzle"

// SumPoints adds up the points of every card.
func SumPoints(cards []*Card) int {
	sum := 0
	for _, c := range cards {
		sum += c.Points()
	}
	return sum
}

// CountCopies returns the number of cards held at the end, where a card with
// k matches wins one copy of each of the k cards that follow it. Wins never
// run past the last card.
func CountCopies(cards []*Card) int {
	copies := make([]int, len(cards))
	for i := range copies {
		copies[i] = 1
	}

	total := 0
	for i, c := range cards {
		total += copies[i]
		for j := i + 1; j <= i+c.Matches() && j < len(cards); j++ {
			copies[j] += copies[i]
		}
	}
	return total
}

// Solver returns the day 4 solver.
func Solver() puzzle.Solver {
	return &puzzle.Day{
		Number: 4,
		Funcs: map[int]puzzle.PartFunc{
			1: withCards(SumPoints),
			2: withCards(CountCopies),
		},
	}
}

func withCards(fn func([]*Card) int) puzzle.PartFunc {
	return func(lines []string) (int, error) {
		cards, err := ParseCards(lines)
		if err != nil {
			return 0, err
		}
		return fn(cards), nil
	}
}
