package config

import "context"

// Loader is the interface for a format-specific flow loader.
type Loader interface {
	// Load reads flow declarations from the given paths (files or
	// directories) and translates them into the format-agnostic model.
	Load(ctx context.Context, paths ...string) (*Model, error)
}
