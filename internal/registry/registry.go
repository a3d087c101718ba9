package registry

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/specialistvlad/aocgridgo/internal/puzzle"
	"github.com/specialistvlad/aocgridgo/internal/puzzleid"
)

// Registry holds the solvers available to a single application instance.
type Registry struct {
	solvers map[int]puzzle.Solver
}

// New creates a Registry holding the given solvers.
func New(solvers ...puzzle.Solver) *Registry {
	r := &Registry{solvers: make(map[int]puzzle.Solver)}
	for _, s := range solvers {
		r.Register(s)
	}
	return r
}

// Register adds a solver for its day.
func (r *Registry) Register(s puzzle.Solver) {
	if _, exists := r.solvers[s.Day()]; exists {
		panic(fmt.Sprintf("solver for day %d already registered", s.Day()))
	}
	slog.Debug("Registering solver.", "day", s.Day(), "parts", s.Parts())
	r.solvers[s.Day()] = s
}

// Days lists the registered days in ascending order.
func (r *Registry) Days() []int {
	days := make([]int, 0, len(r.solvers))
	for d := range r.solvers {
		days = append(days, d)
	}
	slices.Sort(days)
	return days
}

// Lookup returns the solver for the address. The address must name a part.
func (r *Registry) Lookup(addr puzzleid.Address) (puzzle.Solver, error) {
	s, ok := r.solvers[addr.Day]
	if !ok {
		return nil, fmt.Errorf("no solver registered for %s (available days: %v)", addr.String(), r.Days())
	}
	if !slices.Contains(s.Parts(), addr.Part) {
		return nil, fmt.Errorf("%s: %w (available parts: %v)", addr.String(), puzzle.ErrUnsupportedPart, s.Parts())
	}
	return s, nil
}
