package config

import "context"

// Loader is the interface for a format-specific manifest loader.
type Loader interface {
	// Load reads declarations from the given files or directories and
	// returns them in source order.
	Load(ctx context.Context, paths ...string) (*Model, error)
}
