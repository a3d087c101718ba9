package cubegame

// Rgb counts cubes per color.
type Rgb struct {
	R int
	G int
	B int
}

// Add returns the per-color sum of two counts.
func (c Rgb) Add(o Rgb) Rgb {
	return Rgb{R: c.R + o.R, G: c.G + o.G, B: c.B + o.B}
}

// Max returns the per-color maximum of two counts.
func (c Rgb) Max(o Rgb) Rgb {
	return Rgb{R: max(c.R, o.R), G: max(c.G, o.G), B: max(c.B, o.B)}
}

// Power is the product of the three counts.
func (c Rgb) Power() int {
	return c.R * c.G * c.B
}

// Within reports whether no color exceeds the bag's content.
func (c Rgb) Within(bag Rgb) bool {
	return c.R <= bag.R && c.G <= bag.G && c.B <= bag.B
}

// Game is one recorded game.
type Game struct {
	ID      int
	Reveals []Rgb
}

// Minimum returns the fewest cubes of each color the bag must have held.
func (g *Game) Minimum() Rgb {
	var m Rgb
	for _, r := range g.Reveals {
		m = m.Max(r)
	}
	return m
}

// Possible reports whether every reveal fits in the given bag.
func (g *Game) Possible(bag Rgb) bool {
	for _, r := range g.Reveals {
		if !r.Within(bag) {
			return false
		}
	}
	return true
}
