// Package session wires one resolver to the logging and metrics of an
// application run, and is the entry point the REPL, the HTTP server and the
// manifest loader share.
//
// Every method re-validates the tokens it receives; the resolver itself only
// enforces the invariants it owns. A Session is not safe for concurrent use.
package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/vk/tombstone/internal/config"
	"github.com/vk/tombstone/internal/ctxlog"
	"github.com/vk/tombstone/internal/lang"
	"github.com/vk/tombstone/internal/resolver"
)

// Session is a single simulation of declarations and queries.
type Session struct {
	resolver *resolver.Resolver
}

// New creates a Session. The context's logger is handed to the resolver.
func New(ctx context.Context, opts ...resolver.Option) (*Session, error) {
	opts = append([]resolver.Option{resolver.WithLogger(ctxlog.FromContext(ctx))}, opts...)
	r, err := resolver.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create resolver: %w", err)
	}
	return &Session{resolver: r}, nil
}

// DefineProgram validates and registers a program.
func (s *Session) DefineProgram(ctx context.Context, name, language string) error {
	if err := lang.ValidateProgramName(name); err != nil {
		return err
	}
	l, err := lang.Parse(language)
	if err != nil {
		return err
	}
	return s.resolver.DefineProgram(name, l)
}

// DefineInterpreter validates and declares an interpreter for language written in base.
func (s *Session) DefineInterpreter(ctx context.Context, base, language string) error {
	names, err := lang.ParseAll(base, language)
	if err != nil {
		return err
	}
	s.resolver.DefineInterpreter(names[0], names[1])
	return nil
}

// DefineTranslator validates and declares a translator. It reports whether
// the translator was held pending because base is not executable yet.
func (s *Session) DefineTranslator(ctx context.Context, base, source, target string) (bool, error) {
	names, err := lang.ParseAll(base, source, target)
	if err != nil {
		return false, err
	}
	before := s.resolver.PendingCount()
	s.resolver.DefineTranslator(names[0], names[1], names[2])
	return s.resolver.PendingCount() > before, nil
}

// QueryExecutable reports whether the named program can be run by LOCAL.
func (s *Session) QueryExecutable(ctx context.Context, name string) (bool, error) {
	ok, err := s.resolver.QueryExecutable(name)
	if err != nil {
		return false, err
	}
	ctxlog.FromContext(ctx).Debug("Executability queried.", "program", name, "executable", ok)
	return ok, nil
}

// Explain returns the executability of a program along with its path to LOCAL.
func (s *Session) Explain(ctx context.Context, name string) (resolver.Explanation, error) {
	return s.resolver.Explain(name)
}

// Snapshot returns a copy of the session state.
func (s *Session) Snapshot() resolver.Snapshot {
	return s.resolver.Snapshot()
}

// Stats returns the sizes of the session's structures.
func (s *Session) Stats() resolver.Stats {
	return s.resolver.Stats()
}

// ApplyReport summarizes replaying a manifest.
type ApplyReport struct {
	Applied  int
	Rejected []error
}

// Err joins every rejection, or returns nil.
func (r ApplyReport) Err() error {
	return errors.Join(r.Rejected...)
}

// Apply replays every declaration of model in order. A declaration that is
// rejected, such as a duplicate program, is recorded in the report and the
// rest are still applied.
func (s *Session) Apply(ctx context.Context, model *config.Model) ApplyReport {
	logger := ctxlog.FromContext(ctx)

	var report ApplyReport
	for _, d := range model.Declarations {
		var err error
		switch d.Kind {
		case config.KindProgram:
			err = s.DefineProgram(ctx, d.Name, d.Language)
		case config.KindInterpreter:
			err = s.DefineInterpreter(ctx, d.Base, d.Language)
		case config.KindTranslator:
			_, err = s.DefineTranslator(ctx, d.Base, d.Source, d.Target)
		default:
			err = fmt.Errorf("%w: unknown kind %q", config.ErrInvalidDeclaration, d.Kind)
		}

		if err != nil {
			if d.Origin != "" {
				err = fmt.Errorf("%s: %w", d.Origin, err)
			}
			logger.Warn("Declaration rejected.", "kind", d.Kind, "error", err)
			report.Rejected = append(report.Rejected, err)
			continue
		}
		report.Applied++
	}

	stats := s.Stats()
	logger.Info("Manifest applied.", "applied", report.Applied, "rejected", len(report.Rejected), "pending", stats.Pending, "edges", stats.Edges)
	return report
}
