package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/vk/declargo/internal/app"
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

// Parse processes command-line arguments. It returns a populated app.Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")

	fileCfg, err := app.LoadFileConfig(".")
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("failed to load config file: %v", err)}
	}

	flagSet := flag.NewFlagSet("declargo", flag.ContinueOnError)
	flagSet.SetOutput(output)

	// Custom usage/help text function
	flagSet.Usage = func() {
		fmt.Fprint(output, `
declargo - A declarative resource model and manifest tool.

Usage:
  declargo [options] [MANIFEST_PATH]

Arguments:
  MANIFEST_PATH
    Path to a single .hcl manifest or a directory containing .hcl manifests.

Options:
`)
		flagSet.PrintDefaults()
	}

	manifestFlag := flagSet.String("manifest", "", "Path to the manifest file or directory.")
	mFlag := flagSet.String("m", "", "Path to the manifest file or directory (shorthand).")
	outputFlag := flagSet.String("output", fileCfg.Output, "Output format. Options: 'manifest', 'json', or 'yaml'.")
	validateFlag := flagSet.Bool("validate", false, "Convert every resource to a runtime handle before emitting.")
	factsFlag := flagSet.String("facts-for", "", "Append an environment fact bundle for the named node.")
	logFormatFlag := flagSet.String("log-format", fileCfg.Log.Format, "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", fileCfg.Log.Level, "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	path := ""
	if *manifestFlag != "" {
		path = *manifestFlag
	} else if *mFlag != "" {
		path = *mFlag
	} else if flagSet.NArg() > 0 {
		path = flagSet.Arg(0)
	}
	slog.Debug("Manifest path determined.", "path", path)

	if path == "" {
		slog.Debug("No manifest path provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}
	slog.Debug("CLI parameter validation complete.")

	config, err := app.NewConfig(app.Config{
		ManifestPath: path,
		Output:       strings.ToLower(*outputFlag),
		LogFormat:    logFormat,
		LogLevel:     logLevel,
		Validate:     *validateFlag,
		FactsFor:     *factsFlag,
	})

	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}
