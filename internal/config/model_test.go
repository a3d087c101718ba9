package config

import (
	"path/filepath"
	"testing"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/specialistvlad/aocgridgo/internal/puzzleid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"
)

func parseExpr(t *testing.T, src string) hcl.Expression {
	t.Helper()
	expr, diags := hclsyntax.ParseExpression([]byte(src), "test.hcl", hcl.InitialPos)
	require.False(t, diags.HasErrors(), diags.Error())
	return expr
}

func TestModel_InputPath(t *testing.T) {
	testCases := []struct {
		name      string
		puzzle    *Puzzle
		addr      puzzleid.Address
		expected  string
		expectErr bool
	}{
		{
			name:     "no puzzle block",
			addr:     puzzleid.Address{Day: 3, Part: 1},
			expected: filepath.Join(DefaultDataDir, "3.txt"),
		},
		{
			name:     "literal",
			puzzle:   &Puzzle{Day: 3, Input: parseExpr(t, `"inputs/three.txt"`)},
			addr:     puzzleid.Address{Day: 3, Part: 1},
			expected: "inputs/three.txt",
		},
		{
			name:     "interpolated",
			puzzle:   &Puzzle{Day: 3, Input: parseExpr(t, `"${data_dir}/${day}-${part}.txt"`)},
			addr:     puzzleid.Address{Day: 3, Part: 2},
			expected: DefaultDataDir + "/3-2.txt",
		},
		{
			name:     "relative to config file",
			puzzle:   &Puzzle{Day: 4, Input: parseExpr(t, `"${config_dir}/4.txt"`), Dir: "/etc/aoc"},
			addr:     puzzleid.Address{Day: 4, Part: 1},
			expected: "/etc/aoc/4.txt",
		},
		{
			name:     "null falls back",
			puzzle:   &Puzzle{Day: 3, Input: hcl.StaticExpr(cty.NullVal(cty.String), hcl.Range{})},
			addr:     puzzleid.Address{Day: 3, Part: 1},
			expected: filepath.Join(DefaultDataDir, "3.txt"),
		},
		{
			name:      "error - unknown variable",
			puzzle:    &Puzzle{Day: 3, Input: parseExpr(t, `"${nope}.txt"`)},
			addr:      puzzleid.Address{Day: 3, Part: 1},
			expectErr: true,
		},
		{
			name:      "error - not a string",
			puzzle:    &Puzzle{Day: 3, Input: parseExpr(t, `["a"]`)},
			addr:      puzzleid.Address{Day: 3, Part: 1},
			expectErr: true,
		},
		{
			name:      "error - empty",
			puzzle:    &Puzzle{Day: 3, Input: parseExpr(t, `""`)},
			addr:      puzzleid.Address{Day: 3, Part: 1},
			expectErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m := NewModel()
			if tc.puzzle != nil {
				m.Puzzles[tc.puzzle.Day] = tc.puzzle
			}

			got, err := m.InputPath(tc.addr)
			if tc.expectErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestModel_DefaultPart(t *testing.T) {
	m := NewModel()
	m.Puzzles[2] = &Puzzle{Day: 2, Part: 2}

	assert.Equal(t, 2, m.DefaultPart(2))
	assert.Equal(t, 0, m.DefaultPart(3))
}
