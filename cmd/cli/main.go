package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/vk/flowgraphgo/internal/app"
	"github.com/vk/flowgraphgo/internal/cli"
	"github.com/vk/flowgraphgo/internal/hclflow"
)

// main is the entrypoint for the flowgraphgo binary.
func main() {
	// Minimal logger until the configured one takes over.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	if err := run(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		if exitErr, ok := err.(*cli.ExitError); ok {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run contains the real logic so tests can drive it with buffers.
func run(outW, errW io.Writer, args []string) (err error) {
	cfg, shouldExit, err := cli.Parse(args, errW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	// Nothing below is expected to panic; this converts any surprise into
	// a clean error instead of a crash.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("application startup panicked: %v", r)
		}
	}()

	flowApp, err := app.NewApp(outW, errW, cfg, hclflow.NewLoader())
	if err != nil {
		return err
	}

	return flowApp.Run(context.Background())
}
