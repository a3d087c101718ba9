package app

import (
	"github.com/specialistvlad/aocgridgo/internal/calibration"
	"github.com/specialistvlad/aocgridgo/internal/cubegame"
	"github.com/specialistvlad/aocgridgo/internal/puzzle"
	"github.com/specialistvlad/aocgridgo/internal/schematic"
	"github.com/specialistvlad/aocgridgo/internal/scratchcard"
)

// coreSolvers returns every solver compiled into the binary.
func coreSolvers() []puzzle.Solver {
	return []puzzle.Solver{
		calibration.Solver(),
		cubegame.Solver(),
		schematic.Solver(),
		scratchcard.Solver(),
	}
}
