package schematic

const gearChar = '*'

// SumPartNumbers adds up every number touching at least one symbol.
func SumPartNumbers(g *Grid) (int, error) {
	sum := 0
	for _, run := range g.Scan() {
		if !g.IsAdjacentToSymbol(run) {
			continue
		}
		n, err := g.Value(run)
		if err != nil {
			return 0, err
		}
		sum += n
	}
	return sum, nil
}

// gearGroups maps every '*' coordinate to the values of the numbers touching
// it, in scan order.
func gearGroups(g *Grid) (map[Coord][]int, error) {
	groups := make(map[Coord][]int)
	for _, run := range g.Scan() {
		symbols := g.AdjacentSymbols(run)
		if len(symbols) == 0 {
			continue
		}
		n, err := g.Value(run)
		if err != nil {
			return nil, err
		}
		for _, s := range symbols {
			if s.Char == gearChar {
				groups[s.Coord] = append(groups[s.Coord], n)
			}
		}
	}
	return groups, nil
}

// SumGearRatios adds up the ratios of every gear: a '*' touched by exactly
// two numbers.
func SumGearRatios(g *Grid) (int, error) {
	groups, err := gearGroups(g)
	if err != nil {
		return 0, err
	}
	sum := 0
	for _, values := range groups {
		if len(values) == 2 {
			sum += values[0] * values[1]
		}
	}
	return sum, nil
}
