package cubegame

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var example = []string{
	"Game 1: 3 blue, 4 red; 1 red, 2 green, 6 blue; 2 green",
	"Game 2: 1 blue, 2 green; 3 green, 4 blue, 1 red; 1 green, 1 blue",
	"Game 3: 8 green, 6 blue, 20 red; 5 blue, 4 red, 13 green; 5 green, 1 red",
	"Game 4: 1 green, 3 red, 6 blue; 3 green, 6 red; 3 green, 15 blue, 14 red",
	"Game 5: 6 red, 1 blue, 3 green; 2 blue, 1 red, 2 green",
}

func TestGame_Minimum(t *testing.T) {
	g, err := ParseGame(example[0])
	require.NoError(t, err)
	assert.Equal(t, Rgb{R: 4, G: 2, B: 6}, g.Minimum())
	assert.Equal(t, 48, g.Minimum().Power())
}

func TestSolver(t *testing.T) {
	s := Solver()
	ctx := context.Background()

	part1, err := s.Solve(ctx, 1, example)
	require.NoError(t, err)
	assert.Equal(t, 8, part1)

	part2, err := s.Solve(ctx, 2, example)
	require.NoError(t, err)
	assert.Equal(t, 2286, part2)
}
