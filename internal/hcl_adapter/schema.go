package hcl_adapter

import "github.com/hashicorp/hcl/v2"

// fileRoot decodes the top level of a run file. Unknown attributes and
// blocks are decode errors.
type fileRoot struct {
	DataDir *string        `hcl:"data_dir,optional"`
	Puzzles []*PuzzleBlock `hcl:"puzzle,block"`
}

// PuzzleBlock is the HCL schema of a `puzzle` block.
type PuzzleBlock struct {
	ID    string         `hcl:"id,label"`
	Input hcl.Expression `hcl:"input,optional"`
	Part  *int           `hcl:"part,optional"`
}
