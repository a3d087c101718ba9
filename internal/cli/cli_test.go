package cli

import (
	"bytes"
	"testing"

	"github.com/specialistvlad/aocgridgo/internal/app"
	"github.com/specialistvlad/aocgridgo/internal/puzzleid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	testCases := []struct {
		name     string
		args     []string
		expected app.Config
	}{
		{
			name:     "positional day",
			args:     []string{"3"},
			expected: app.Config{Puzzle: puzzleid.Address{Day: 3}, LogFormat: "text", LogLevel: "warn"},
		},
		{
			name:     "day flag with part in address",
			args:     []string{"-day", "day3.part2"},
			expected: app.Config{Puzzle: puzzleid.Address{Day: 3, Part: 2}, LogFormat: "text", LogLevel: "warn"},
		},
		{
			name:     "shorthand and part flag",
			args:     []string{"-d", "4", "-part", "2"},
			expected: app.Config{Puzzle: puzzleid.Address{Day: 4, Part: 2}, LogFormat: "text", LogLevel: "warn"},
		},
		{
			name:     "part flag agreeing with address",
			args:     []string{"-part", "2", "3.2"},
			expected: app.Config{Puzzle: puzzleid.Address{Day: 3, Part: 2}, LogFormat: "text", LogLevel: "warn"},
		},
		{
			name: "all options",
			args: []string{"-input", "in.txt", "-config", "aoc.hcl", "-log-format", "JSON", "-log-level", "Debug", "day1"},
			expected: app.Config{
				Puzzle:     puzzleid.Address{Day: 1},
				InputPath:  "in.txt",
				ConfigPath: "aoc.hcl",
				LogFormat:  "json",
				LogLevel:   "debug",
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg, shouldExit, err := Parse(tc.args, &bytes.Buffer{})
			require.NoError(t, err)
			assert.False(t, shouldExit)
			require.NotNil(t, cfg)
			assert.Equal(t, tc.expected, *cfg)
		})
	}
}

func TestParse_Exits(t *testing.T) {
	for _, args := range [][]string{{"-h"}, {}} {
		out := &bytes.Buffer{}
		cfg, shouldExit, err := Parse(args, out)
		require.NoError(t, err)
		assert.True(t, shouldExit)
		assert.Nil(t, cfg)
		assert.Contains(t, out.String(), "Usage:")
	}
}

func TestParse_Errors(t *testing.T) {
	testCases := []struct {
		name        string
		args        []string
		errContains string
	}{
		{name: "unknown flag", args: []string{"--nope"}, errContains: "flag provided but not defined"},
		{name: "bad puzzle", args: []string{"dayx"}, errContains: "invalid puzzle"},
		{name: "negative part", args: []string{"-part", "-1", "3"}, errContains: "invalid part"},
		{name: "part conflict", args: []string{"-part", "1", "3.2"}, errContains: "conflicts with puzzle day3.part2"},
		{name: "bad log format", args: []string{"-log-format", "xml", "3"}, errContains: "invalid log-format"},
		{name: "bad log level", args: []string{"-log-level", "loud", "3"}, errContains: "invalid log-level"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := Parse(tc.args, &bytes.Buffer{})
			require.Error(t, err)

			exitErr, ok := err.(*ExitError)
			require.True(t, ok, "expected *ExitError, got %T", err)
			assert.Equal(t, 2, exitErr.Code)
			assert.Contains(t, exitErr.Message, tc.errContains)
		})
	}
}
