// Package testutil provides an end-to-end harness for running the
// application against inputs written to a temporary directory.
package testutil

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/specialistvlad/aocgridgo/internal/app"
	"github.com/specialistvlad/aocgridgo/internal/hcl_adapter"
	"github.com/specialistvlad/aocgridgo/internal/puzzle"
	"github.com/stretchr/testify/require"
)

// HarnessResult holds the outcomes of a harness run.
type HarnessResult struct {
	Output    string
	LogOutput string
	Err       error
	Dir       string
}

// RunApp writes files under a fresh temporary directory, then builds and runs
// the application. Relative InputPath and ConfigPath values in cfg are taken
// relative to that directory. A startup panic is returned as Err.
func RunApp(t *testing.T, files map[string]string, cfg app.Config, solvers ...puzzle.Solver) *HarnessResult {
	t.Helper()

	dir := t.TempDir()
	for name, content := range files {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}

	if cfg.InputPath != "" && !filepath.IsAbs(cfg.InputPath) {
		cfg.InputPath = filepath.Join(dir, cfg.InputPath)
	}
	if cfg.ConfigPath != "" && !filepath.IsAbs(cfg.ConfigPath) {
		cfg.ConfigPath = filepath.Join(dir, cfg.ConfigPath)
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "debug"
	}

	out := &bytes.Buffer{}
	logs := &bytes.Buffer{}
	result := &HarnessResult{Dir: dir}

	var testApp *app.App
	func() {
		defer func() {
			if r := recover(); r != nil {
				result.Err = fmt.Errorf("application startup panicked | %v", r)
			}
		}()
		testApp = app.NewApp(out, logs, &cfg, hcl_adapter.NewLoader(), solvers...)
	}()

	if result.Err == nil {
		result.Err = testApp.Run(context.Background())
	}

	result.Output = out.String()
	result.LogOutput = logs.String()
	if os.Getenv("AOC_TEST_LOGS") == "true" {
		t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), result.LogOutput)
	}
	return result
}
