package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/specialistvlad/aocgridgo/internal/app"
	"github.com/specialistvlad/aocgridgo/internal/puzzleid"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

func usageError(format string, args ...any) *ExitError {
	return &ExitError{Code: 2, Message: fmt.Sprintf(format, args...)}
}

// Parse processes command-line arguments. It returns a populated app.Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("aocgridgo", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
aocgridgo - Daily puzzle solvers.

Usage:
  aocgridgo [options] [PUZZLE]

Arguments:
  PUZZLE
    Puzzle to solve: a day, optionally with a part, e.g. 3, day3, day3.part2.

Options:
`)
		flagSet.PrintDefaults()
	}

	dayFlag := flagSet.String("day", "", "Puzzle to solve (same format as PUZZLE).")
	dFlag := flagSet.String("d", "", "Puzzle to solve (shorthand).")
	partFlag := flagSet.Int("part", 0, "Part to solve. Defaults to the run file's choice, then 1.")
	inputFlag := flagSet.String("input", "", "Path to the puzzle input. Defaults to <data_dir>/<day>.txt.")
	configFlag := flagSet.String("config", "", "Path to an .hcl run file or a directory of them.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "warn", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	rawID := ""
	if *dayFlag != "" {
		rawID = *dayFlag
	} else if *dFlag != "" {
		rawID = *dFlag
	} else if flagSet.NArg() > 0 {
		rawID = flagSet.Arg(0)
	}
	slog.Debug("Puzzle determined.", "puzzle", rawID)

	if rawID == "" {
		slog.Debug("No puzzle provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}

	addr, err := puzzleid.Parse(rawID)
	if err != nil {
		return nil, false, usageError("invalid puzzle: %v", err)
	}

	if *partFlag < 0 {
		return nil, false, usageError("invalid part: must be positive")
	}
	if *partFlag > 0 {
		if addr.HasPart() && addr.Part != *partFlag {
			return nil, false, usageError("part %d conflicts with puzzle %s", *partFlag, addr.String())
		}
		addr.Part = *partFlag
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, usageError("invalid log-format: must be 'text' or 'json'")
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, usageError("invalid log-level: must be 'debug', 'info', 'warn', or 'error'")
	}
	slog.Debug("CLI parameter validation complete.")

	config, err := app.NewConfig(app.Config{
		Puzzle:     *addr,
		InputPath:  *inputFlag,
		ConfigPath: *configFlag,
		LogFormat:  logFormat,
		LogLevel:   logLevel,
	})
	if err != nil {
		return nil, false, usageError("%s", err.Error())
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}
