package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/vk/tombstone/internal/config"
	"github.com/vk/tombstone/internal/ctxlog"
	"github.com/vk/tombstone/internal/metrics"
	"github.com/vk/tombstone/internal/resolver"
	"github.com/vk/tombstone/internal/session"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW    io.Writer
	logger  *slog.Logger
	config  *Config
	session *session.Session
	metrics *metrics.Collector

	// rejected holds manifest declarations the session refused.
	rejected []error
}

// NewApp is the constructor for the main application. Command output goes
// to outW and logs to logW. Manifests in cfg are loaded with loader and
// replayed into a fresh session; a declaration the session rejects is logged
// and does not stop startup.
func NewApp(outW, logW io.Writer, cfg *Config, loader config.Loader) (*App, error) {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	collector := metrics.New()
	sess, err := session.New(ctx, resolver.WithObserver(collector))
	if err != nil {
		return nil, err
	}

	a := &App{
		outW:    outW,
		logger:  logger,
		config:  cfg,
		session: sess,
		metrics: collector,
	}

	if len(cfg.Manifests) > 0 {
		model, err := loader.Load(ctx, cfg.Manifests...)
		if err != nil {
			return nil, fmt.Errorf("failed to load manifests: %w", err)
		}
		report := sess.Apply(ctx, model)
		a.rejected = report.Rejected
		logger.Debug("Manifests replayed.", "paths", cfg.Manifests, "applied", report.Applied)
	}

	return a, nil
}

// Session returns the application's session. This is primarily for testing.
func (a *App) Session() *session.Session {
	return a.session
}
