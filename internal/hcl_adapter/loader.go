package hcl_adapter

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/aocgridgo/internal/config"
	"github.com/specialistvlad/aocgridgo/internal/ctxlog"
	"github.com/specialistvlad/aocgridgo/internal/fsutil"
	"github.com/specialistvlad/aocgridgo/internal/puzzleid"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL run file loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load parses every .hcl file under the given paths and merges them into a
// single model. A puzzle declared twice is an error, whichever files the two
// blocks come from.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path_count", len(paths))

	model := config.NewModel()

	hclFiles, err := l.findAllHCLFiles(paths)
	if err != nil {
		return nil, err
	}
	logger.Debug("Discovered HCL files.", "count", len(hclFiles))

	parser := hclparse.NewParser()

	for _, file := range hclFiles {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file %s: %w", file, diags)
		}

		var root fileRoot
		diags = gohcl.DecodeBody(hclFile.Body, nil, &root)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode HCL file %s: %w", file, diags)
		}

		if root.DataDir != nil {
			model.DataDir = *root.DataDir
		}

		dir, err := filepath.Abs(filepath.Dir(file))
		if err != nil {
			return nil, err
		}
		for _, block := range root.Puzzles {
			p, err := l.translatePuzzle(block, dir)
			if err != nil {
				return nil, fmt.Errorf("in HCL file %s: %w", file, err)
			}
			if _, exists := model.Puzzles[p.Day]; exists {
				return nil, fmt.Errorf("in HCL file %s: puzzle for day %d declared more than once", file, p.Day)
			}
			model.Puzzles[p.Day] = p
			logger.Debug("Puzzle block loaded.", "id", block.ID, "file", file)
		}
	}

	logger.Debug("HCL loading complete.", "puzzles", len(model.Puzzles), "data_dir", model.DataDir)
	return model, nil
}

// translatePuzzle converts the HCL schema into the agnostic model. The part
// may come from the label or the `part` attribute, but the two must agree.
func (l *Loader) translatePuzzle(b *PuzzleBlock, dir string) (*config.Puzzle, error) {
	addr, err := puzzleid.Parse(b.ID)
	if err != nil {
		return nil, fmt.Errorf("puzzle %q: %w", b.ID, err)
	}

	part := addr.Part
	if b.Part != nil {
		if *b.Part < 1 {
			return nil, fmt.Errorf("puzzle %q: part must be positive, got %d", b.ID, *b.Part)
		}
		if part != 0 && part != *b.Part {
			return nil, fmt.Errorf("puzzle %q: part attribute %d conflicts with label", b.ID, *b.Part)
		}
		part = *b.Part
	}

	return &config.Puzzle{
		Day:   addr.Day,
		Part:  part,
		Input: b.Input,
		Dir:   dir,
	}, nil
}

// findAllHCLFiles walks all given paths and returns a flat list of all .hcl files found.
func (l *Loader) findAllHCLFiles(paths []string) ([]string, error) {
	var allFiles []string
	seen := make(map[string]struct{})

	for _, path := range paths {
		files, err := fsutil.FindFilesByExtension(path, ".hcl")
		if err != nil {
			return nil, fmt.Errorf("error accessing path %s: %w", path, err)
		}
		for _, f := range files {
			if _, wasSeen := seen[f]; !wasSeen {
				allFiles = append(allFiles, f)
				seen[f] = struct{}{}
			}
		}
	}
	return allFiles, nil
}
