// Package scratchcard solves the scratchcards puzzle (day 4).
package scratchcard

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/specialistvlad/aocgridgo/internal/puzzle"
)

var cardRegex = regexp.MustCompile(`^Card +(\d+): +([\d ]+?) +\| +([\d ]+)$`)

// Card is one scratchcard: the winning numbers and the numbers it holds.
type Card struct {
	ID      int
	Winning map[int]struct{}
	Numbers []int
}

// Matches counts the held numbers that are winning numbers.
func (c *Card) Matches() int {
	n := 0
	for _, v := range c.Numbers {
		if _, ok := c.Winning[v]; ok {
			n++
		}
	}
	return n
}

// Points is 1 for the first match, doubled for each further match.
func (c *Card) Points() int {
	m := c.Matches()
	if m == 0 {
		return 0
	}
	return 1 << (m - 1)
}

func parseNumbers(s string) ([]int, error) {
	fields := strings.Fields(s)
	out := make([]int, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", puzzle.ErrParse, err)
		}
		out = append(out, n)
	}
	return out, nil
}

// ParseCard parses a line such as `Card 1: 41 48 | 83 86  6`. Runs of
// spaces are accepted anywhere a separator is expected.
func ParseCard(line string) (*Card, error) {
	matches := cardRegex.FindStringSubmatch(line)
	if matches == nil {
		return nil, fmt.Errorf("%w: invalid card record %q", puzzle.ErrParse, line)
	}
	id, err := strconv.Atoi(matches[1])
	if err != nil {
		return nil, fmt.Errorf("%w: %w", puzzle.ErrParse, err)
	}
	winning, err := parseNumbers(matches[2])
	if err != nil {
		return nil, err
	}
	numbers, err := parseNumbers(matches[3])
	if err != nil {
		return nil, err
	}

	card := &Card{ID: id, Winning: make(map[int]struct{}, len(winning)), Numbers: numbers}
	for _, w := range winning {
		card.Winning[w] = struct{}{}
	}
	return card, nil
}

// ParseCards parses every line of the input.
func ParseCards(lines []string) ([]*Card, error) {
	cards := make([]*Card, 0, len(lines))
	for i, line := range lines {
		c, err := ParseCard(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		cards = append(cards, c)
	}
	return cards, nil
}
