package app

import (
	"errors"
	"fmt"
	"strings"
)

// Mode selects the front end App.Run drives.
type Mode string

const (
	ModeREPL  Mode = "repl"
	ModeServe Mode = "serve"
	ModeCheck Mode = "check"
)

var (
	logLevels  = []string{"debug", "info", "warn", "error"}
	logFormats = []string{"text", "json"}
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	Mode      Mode
	Manifests []string // .hcl/.yaml files or directories, replayed in order

	LogFormat string
	LogLevel  string
	Addr      string // serve only
}

// NewConfig validates cfg and returns a normalized copy.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.Mode == "" {
		cfg.Mode = ModeREPL
	}
	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	cfg.LogFormat = strings.ToLower(cfg.LogFormat)

	var errs []error
	switch cfg.Mode {
	case ModeREPL, ModeServe, ModeCheck:
	default:
		errs = append(errs, fmt.Errorf("invalid mode %q", cfg.Mode))
	}
	if !oneOf(cfg.LogLevel, logLevels) {
		errs = append(errs, fmt.Errorf("invalid log-level %q: must be one of %s", cfg.LogLevel, strings.Join(logLevels, ", ")))
	}
	if !oneOf(cfg.LogFormat, logFormats) {
		errs = append(errs, fmt.Errorf("invalid log-format %q: must be one of %s", cfg.LogFormat, strings.Join(logFormats, ", ")))
	}
	if cfg.Mode == ModeServe && cfg.Addr == "" {
		errs = append(errs, errors.New("serve needs a listen address"))
	}
	if cfg.Mode == ModeCheck && len(cfg.Manifests) == 0 {
		errs = append(errs, errors.New("check needs at least one manifest"))
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func oneOf(s string, allowed []string) bool {
	for _, a := range allowed {
		if s == a {
			return true
		}
	}
	return false
}
