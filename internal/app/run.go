package app

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/vk/tombstone/internal/ctxlog"
	"github.com/vk/tombstone/internal/lang"
	"github.com/vk/tombstone/internal/repl"
	"github.com/vk/tombstone/internal/server"
)

// ErrCheckFailed is returned by a check run when a manifest declaration was
// rejected or a program is not executable.
var ErrCheckFailed = errors.New("check failed")

// Run executes the front end selected by the configuration. in feeds the
// REPL and is ignored otherwise.
func (a *App) Run(ctx context.Context, in io.Reader) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.", "mode", a.config.Mode)

	var err error
	switch a.config.Mode {
	case ModeServe:
		err = server.New(ctx, a.session, a.metrics.Registry).Run(ctx, a.config.Addr)
	case ModeCheck:
		err = a.check(ctx)
	default:
		err = repl.New(a.session, a.outW).Run(ctx, in)
	}

	a.logger.Debug("App.Run method finished.", "error", err)
	return err
}

// check prints one line per program and fails when any program cannot
// reach LOCAL or any manifest declaration was rejected.
func (a *App) check(ctx context.Context) error {
	for _, err := range a.rejected {
		fmt.Fprintf(a.outW, "rejected: %v\n", err)
	}

	programs := a.session.Snapshot().Programs
	failed := 0
	for _, p := range programs {
		exp, err := a.session.Explain(ctx, p.Name)
		if err != nil {
			return err
		}
		if exp.Executable {
			fmt.Fprintf(a.outW, "ok       %s [%s] %s\n", p.Name, p.Language, lang.JoinPath(exp.Path))
			continue
		}
		failed++
		fmt.Fprintf(a.outW, "FAIL     %s [%s] cannot reach %s\n", p.Name, p.Language, lang.Local)
		for _, c := range exp.Blocking {
			fmt.Fprintf(a.outW, "         waiting on translator %s\n", c)
		}
	}

	ctxlog.FromContext(ctx).Info("Check finished.", "programs", len(programs), "failed", failed, "rejected", len(a.rejected))
	if failed > 0 || len(a.rejected) > 0 {
		return fmt.Errorf("%w: %d of %d programs not executable, %d declarations rejected",
			ErrCheckFailed, failed, len(programs), len(a.rejected))
	}
	return nil
}
