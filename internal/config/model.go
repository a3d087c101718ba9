package config

import (
	"fmt"
	"path/filepath"

	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/aocgridgo/internal/puzzleid"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
)

// DefaultDataDir is where inputs are looked up when nothing else is configured.
const DefaultDataDir = "data/input"

// Model is the merged content of every loaded run file.
type Model struct {
	DataDir string
	Puzzles map[int]*Puzzle
}

// Puzzle is the format-agnostic representation of a `puzzle` block.
type Puzzle struct {
	Day int
	// Part is the part answered when the caller does not choose one. 0 means unset.
	Part int
	// Input evaluates to the input path. It may reference `day`, `part`,
	// `data_dir` and `config_dir`.
	Input hcl.Expression
	// Dir is the directory of the file that declared the block.
	Dir string
}

// NewModel returns an empty Model using the default data directory.
func NewModel() *Model {
	return &Model{
		DataDir: DefaultDataDir,
		Puzzles: make(map[int]*Puzzle),
	}
}

// DefaultPart returns the part configured for the day, or 0.
func (m *Model) DefaultPart(day int) int {
	if p, ok := m.Puzzles[day]; ok {
		return p.Part
	}
	return 0
}

// InputPath returns the input file of the puzzle. Without a configured
// `input` it is `<data_dir>/<day>.txt`.
func (m *Model) InputPath(addr puzzleid.Address) (string, error) {
	fallback := filepath.Join(m.DataDir, fmt.Sprintf("%d.txt", addr.Day))

	p, ok := m.Puzzles[addr.Day]
	if !ok || p.Input == nil {
		return fallback, nil
	}

	evalCtx := &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"day":        cty.NumberIntVal(int64(addr.Day)),
			"part":       cty.NumberIntVal(int64(addr.Part)),
			"data_dir":   cty.StringVal(m.DataDir),
			"config_dir": cty.StringVal(p.Dir),
		},
	}

	val, diags := p.Input.Value(evalCtx)
	if diags.HasErrors() {
		return "", fmt.Errorf("evaluating input of %s: %w", addr.String(), diags)
	}
	if val.IsNull() {
		return fallback, nil
	}
	if !val.IsWhollyKnown() {
		return "", fmt.Errorf("input of %s is not known", addr.String())
	}

	str, err := convert.Convert(val, cty.String)
	if err != nil {
		return "", fmt.Errorf("input of %s must be a string: %w", addr.String(), err)
	}
	if str.AsString() == "" {
		return "", fmt.Errorf("input of %s is empty", addr.String())
	}
	return str.AsString(), nil
}
