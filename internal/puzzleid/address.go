package puzzleid

import "fmt"

// MaxDay is the last day of an event.
const MaxDay = 25

// Address identifies a day and, optionally, one of its parts.
type Address struct {
	Day  int
	Part int // 0 means the part was not given.
}

// HasPart reports whether the address names a specific part.
func (a *Address) HasPart() bool {
	return a != nil && a.Part > 0
}

// WithPart returns a copy of the address that names the given part.
func (a Address) WithPart(part int) Address {
	a.Part = part
	return a
}

// String serializes the Address into its canonical form.
func (a *Address) String() string {
	if a == nil {
		return ""
	}
	if a.Part > 0 {
		return fmt.Sprintf("day%d.part%d", a.Day, a.Part)
	}
	return fmt.Sprintf("day%d", a.Day)
}

// Equal checks whether two addresses name the same puzzle.
func (a *Address) Equal(other *Address) bool {
	if a == nil || other == nil {
		return a == other
	}
	return *a == *other
}
