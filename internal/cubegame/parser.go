package cubegame

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/specialistvlad/aocgridgo/internal/puzzle"
)

var (
	gameRegex = regexp.MustCompile(`^Game (\d+): (.+)$`)
	cubeRegex = regexp.MustCompile(`^(\d+) (red|green|blue)$`)
)

// ParseRgb parses a single reveal such as `1 blue, 2 red`. Colors may appear
// in any order; repeated colors add up and absent ones count zero.
func ParseRgb(s string) (Rgb, error) {
	var rgb Rgb
	for _, part := range strings.Split(s, ", ") {
		matches := cubeRegex.FindStringSubmatch(part)
		if matches == nil {
			return Rgb{}, fmt.Errorf("%w: invalid cube count %q", puzzle.ErrParse, part)
		}
		n, err := strconv.Atoi(matches[1])
		if err != nil {
			return Rgb{}, fmt.Errorf("%w: %w", puzzle.ErrParse, err)
		}
		switch matches[2] {
		case "red":
			rgb = rgb.Add(Rgb{R: n})
		case "green":
			rgb = rgb.Add(Rgb{G: n})
		case "blue":
			rgb = rgb.Add(Rgb{B: n})
		}
	}
	return rgb, nil
}

// ParseGame parses a line such as `Game 1: 1 red, 2 green; 4 blue`.
func ParseGame(line string) (*Game, error) {
	matches := gameRegex.FindStringSubmatch(line)
	if matches == nil {
		return nil, fmt.Errorf("%w: invalid game record %q", puzzle.ErrParse, line)
	}
	id, err := strconv.Atoi(matches[1])
	if err != nil {
		return nil, fmt.Errorf("%w: %w", puzzle.ErrParse, err)
	}

	game := &Game{ID: id}
	for _, reveal := range strings.Split(matches[2], "; ") {
		rgb, err := ParseRgb(reveal)
		if err != nil {
			return nil, fmt.Errorf("game %d: %w", id, err)
		}
		game.Reveals = append(game.Reveals, rgb)
	}
	return game, nil
}

// ParseGames parses every line of the input.
func ParseGames(lines []string) ([]*Game, error) {
	games := make([]*Game, 0, len(lines))
	for i, line := range lines {
		g, err := ParseGame(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		games = append(games, g)
	}
	return games, nil
}
