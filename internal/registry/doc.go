// Package registry maps puzzle days to the Go solvers that answer them.
//
// Solvers are registered once at startup. Registering a day twice is a
// programmer error and panics; looking up an unknown day or a part the
// solver does not implement returns an error the CLI reports to the user.
package registry
