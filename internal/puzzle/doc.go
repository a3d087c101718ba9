// Package puzzle defines the contract every daily solver implements and the
// error kinds shared by all of them.
package puzzle
