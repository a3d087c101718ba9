package puzzle

import (
	"context"
	"fmt"
	"slices"
)

// Solver computes the answers for a single day.
type Solver interface {
	// Day returns the day number the solver answers.
	Day() int
	// Parts lists the parts the solver implements, in ascending order.
	Parts() []int
	// Solve computes the answer of the given part from the raw input lines.
	Solve(ctx context.Context, part int, lines []string) (int, error)
}

// PartFunc computes one part of a day from its input lines.
type PartFunc func(lines []string) (int, error)

// Day is a Solver assembled from plain functions, one per part.
type Day struct {
	Number int
	Funcs  map[int]PartFunc
}

// Day implements Solver.
func (d *Day) Day() int {
	return d.Number
}

// Parts implements Solver.
func (d *Day) Parts() []int {
	parts := make([]int, 0, len(d.Funcs))
	for p := range d.Funcs {
		parts = append(parts, p)
	}
	slices.Sort(parts)
	return parts
}

// Solve implements Solver.
func (d *Day) Solve(_ context.Context, part int, lines []string) (int, error) {
	fn, ok := d.Funcs[part]
	if !ok {
		return 0, fmt.Errorf("day %d part %d: %w", d.Number, part, ErrUnsupportedPart)
	}
	return fn(lines)
}
