package resolver

import (
	"log/slog"

	"github.com/vk/tombstone/internal/graphstore"
)

// DefaultReachCacheSize bounds the number of memoized reachability answers.
const DefaultReachCacheSize = 4096

// Option configures a Resolver.
type Option func(*Resolver)

// WithLogger sets the logger used for declaration and propagation events.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Resolver) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithObserver registers an observer for resolver events.
func WithObserver(o Observer) Option {
	return func(r *Resolver) {
		if o != nil {
			r.observer = o
		}
	}
}

// WithGraph replaces the default in-memory capability graph. The store must
// already contain the LOCAL node and nothing the resolver did not insert.
func WithGraph(g graphstore.Store) Option {
	return func(r *Resolver) {
		if g != nil {
			r.graph = g
		}
	}
}

// WithReachCacheSize sets the size of the reachability memo. Zero or a
// negative value disables memoization.
func WithReachCacheSize(n int) Option {
	return func(r *Resolver) {
		r.cacheSize = n
	}
}
