package app

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/vk/flowgraphgo/internal/config"
	"github.com/vk/flowgraphgo/internal/plan"
)

// Config holds everything an App instance needs to run.
type Config struct {
	FlowPath  string
	Output    string
	LogFormat string
	LogLevel  string
}

// NewConfig applies defaults and validates a raw config.
func NewConfig(c Config) (*Config, error) {
	if c.FlowPath == "" {
		return nil, errors.New("flow path is required")
	}
	if c.Output == "" {
		c.Output = "text"
	}
	if c.LogFormat == "" {
		c.LogFormat = "text"
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}

	if c.Output != "text" && c.Output != "json" {
		return nil, fmt.Errorf("invalid output format %q: must be 'text' or 'json'", c.Output)
	}
	if c.LogFormat != "text" && c.LogFormat != "json" {
		return nil, fmt.Errorf("invalid log-format %q: must be 'text' or 'json'", c.LogFormat)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return nil, fmt.Errorf("invalid log-level %q: must be 'debug', 'info', 'warn', or 'error'", c.LogLevel)
	}

	return &c, nil
}

// App encapsulates the application's dependencies and configuration. The
// plan goes to outW; logs go to their own writer so piping plan output
// stays clean.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	config   *Config
	loader   config.Loader
	renderer plan.Renderer
}

// NewApp constructs the application with an isolated logger.
func NewApp(outW, logW io.Writer, cfg *Config, loader config.Loader) (*App, error) {
	renderer, err := plan.NewRenderer(cfg.Output)
	if err != nil {
		return nil, err
	}

	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	logger.Debug("Logger configured successfully.")

	return &App{
		outW:     outW,
		logger:   logger,
		config:   cfg,
		loader:   loader,
		renderer: renderer,
	}, nil
}
