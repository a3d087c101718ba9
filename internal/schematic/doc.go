// Package schematic solves the engine schematic puzzle (day 3).
//
// A schematic is a rectangular grid of characters. Maximal horizontal runs of
// digits are numbers; any character that is neither a digit nor '.' is a
// symbol. A number is a part number when a symbol touches it, diagonals
// included. A '*' touching exactly two numbers is a gear, and its ratio is
// the product of those numbers.
//
// Runs never hold a reference to their grid: every operation takes the Grid
// explicitly.
package schematic
