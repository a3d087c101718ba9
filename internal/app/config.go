package app

import (
	"errors"

	"github.com/specialistvlad/aocgridgo/internal/puzzleid"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	Puzzle     puzzleid.Address // Part 0 lets the run file or the default decide.
	InputPath  string           // overrides any configured input
	ConfigPath string           // .hcl file or directory, optional

	LogFormat string
	LogLevel  string
}

func NewConfig(cfg Config) (*Config, error) {
	if cfg.Puzzle.Day == 0 {
		return nil, errors.New("a puzzle day is required")
	}
	if cfg.Puzzle.Part < 0 {
		return nil, errors.New("part must not be negative")
	}
	return &cfg, nil
}
