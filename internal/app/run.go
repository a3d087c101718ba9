package app

import (
	"context"
	"fmt"
	"time"

	"github.com/specialistvlad/aocgridgo/internal/ctxlog"
	"github.com/specialistvlad/aocgridgo/internal/fsutil"
	"github.com/specialistvlad/aocgridgo/internal/puzzleid"
)

const defaultPart = 1

// resolve settles which part to answer and where its input lives. The part
// chosen on the command line wins over the run file, which wins over part 1.
// The same order applies to the input path.
func (a *App) resolve() (puzzleid.Address, string, error) {
	addr := a.appCfg.Puzzle
	if !addr.HasPart() {
		addr = addr.WithPart(a.config.DefaultPart(addr.Day))
	}
	if !addr.HasPart() {
		addr = addr.WithPart(defaultPart)
	}

	if a.appCfg.InputPath != "" {
		return addr, a.appCfg.InputPath, nil
	}
	path, err := a.config.InputPath(addr)
	if err != nil {
		return addr, "", err
	}
	return addr, path, nil
}

// Run solves the configured puzzle and prints the answer, alone on its line.
// Nothing is printed when any step fails.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	addr, path, err := a.resolve()
	if err != nil {
		return err
	}
	logger := a.logger.With("puzzle", addr.String())
	logger.Debug("Puzzle resolved.", "input", path)

	solver, err := a.registry.Lookup(addr)
	if err != nil {
		return err
	}

	lines, err := fsutil.ReadLinesFromFile(path)
	if err != nil {
		return fmt.Errorf("%s: %w", addr.String(), err)
	}
	logger.Debug("Input read.", "lines", len(lines))

	start := time.Now()
	answer, err := solver.Solve(ctx, addr.Part, lines)
	if err != nil {
		return fmt.Errorf("%s: %w", addr.String(), err)
	}
	logger.Info("Puzzle solved.", "answer", answer, "duration", time.Since(start))

	if _, err := fmt.Fprintln(a.outW, answer); err != nil {
		return fmt.Errorf("writing answer: %w", err)
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}
