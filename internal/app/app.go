package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/specialistvlad/aocgridgo/internal/config"
	"github.com/specialistvlad/aocgridgo/internal/ctxlog"
	"github.com/specialistvlad/aocgridgo/internal/puzzle"
	"github.com/specialistvlad/aocgridgo/internal/registry"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	registry *registry.Registry
	config   *config.Model
	appCfg   *Config
}

// NewApp is the constructor for the main application. Answers go to outW and
// logs to logW. Without explicit solvers the core solvers are registered.
//
// A run file that cannot be loaded, or a day registered twice, is a fatal
// startup error and panics.
func NewApp(outW, logW io.Writer, appConfig *Config, loader config.Loader, solvers ...puzzle.Solver) *App {
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, logW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	model := config.NewModel()
	if appConfig.ConfigPath != "" {
		var err error
		model, err = loader.Load(ctx, appConfig.ConfigPath)
		if err != nil {
			panic(fmt.Errorf("failed to load configuration: %w", err))
		}
		logger.Debug("Run file loaded.", "path", appConfig.ConfigPath, "puzzles", len(model.Puzzles))
	}

	if len(solvers) == 0 {
		solvers = coreSolvers()
	}
	reg := registry.New(solvers...)
	logger.Debug("All solvers registered.", "days", reg.Days())

	return &App{
		outW:     outW,
		logger:   logger,
		registry: reg,
		config:   model,
		appCfg:   appConfig,
	}
}

// Registry returns the application's registry. This is primarily for testing.
func (a *App) Registry() *registry.Registry {
	return a.registry
}
