// Package cubegame solves the cube conundrum puzzle (day 2). Each input line
// records a game as a sequence of reveals of red, green and blue cubes drawn
// from a bag.
package cubegame
