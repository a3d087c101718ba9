/*
Package puzzleid parses and formats puzzle addresses.

The canonical format is `day<N>` optionally followed by `.part<M>`, e.g.
`day3` or `day3.part2`. On input the `day` and `part` prefixes may be
omitted, so `3`, `3.2` and `day3.2` are accepted too.
*/
package puzzleid
