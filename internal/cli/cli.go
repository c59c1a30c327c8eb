package cli

import (
	"flag"
	"fmt"
	"io"

	"github.com/vk/flowgraphgo/internal/app"
)

// ExitError is an error carrying a specific process exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a validated
// app.Config, a boolean indicating the program should exit cleanly (help
// requested, or nothing to do), or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	flagSet := flag.NewFlagSet("flowgraphgo", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
FlowGraphGo - build strict-order execution plans from declarative flow files.

Usage:
  flowgraphgo [options] [FLOW_PATH]

Arguments:
  FLOW_PATH
    Path to a single .hcl flow file or a directory containing .hcl files.

Options:
`)
		flagSet.PrintDefaults()
	}

	flowFlag := flagSet.String("flow", "", "Path to the flow file or directory.")
	fFlag := flagSet.String("f", "", "Path to the flow file or directory (shorthand).")
	outputFlag := flagSet.String("output", "text", "Plan output format. Options: 'text' or 'json'.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	path := ""
	switch {
	case *flowFlag != "":
		path = *flowFlag
	case *fFlag != "":
		path = *fFlag
	case flagSet.NArg() > 0:
		path = flagSet.Arg(0)
	}

	if path == "" {
		flagSet.Usage()
		return nil, true, nil
	}

	cfg, err := app.NewConfig(app.Config{
		FlowPath:  path,
		Output:    *outputFlag,
		LogFormat: *logFormatFlag,
		LogLevel:  *logLevelFlag,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	return cfg, false, nil
}
