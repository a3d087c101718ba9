package puzzle

import "errors"

var (
	// ErrIO is returned when the puzzle input cannot be opened or read.
	ErrIO = errors.New("input unreadable")

	// ErrInvalidGrid is returned when a character grid is empty or jagged.
	ErrInvalidGrid = errors.New("invalid grid")

	// ErrParse is returned when an input line does not match its grammar.
	ErrParse = errors.New("parse error")

	// ErrUnsupportedPart is returned when a solver is asked for a part it
	// does not implement.
	ErrUnsupportedPart = errors.New("unsupported part")
)
