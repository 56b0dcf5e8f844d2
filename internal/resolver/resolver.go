package resolver

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/vk/tombstone/internal/ctxlog"
	"github.com/vk/tombstone/internal/graphstore"
	"github.com/vk/tombstone/internal/inmemorygraph"
	"github.com/vk/tombstone/internal/lang"
	"github.com/vk/tombstone/internal/pending"
	"github.com/vk/tombstone/internal/programs"
)

// Resolver owns the capability graph, the program registry and the pending
// translator set. It is not safe for concurrent use.
type Resolver struct {
	graph    graphstore.Store
	programs *programs.Registry
	pending  *pending.Set

	// reach memoizes HasPath(x, LOCAL). It is purged on every new edge, so a
	// hit is always the answer the graph would give right now.
	reach     *lru.Cache[lang.Name, bool]
	cacheSize int

	logger   *slog.Logger
	observer Observer
}

// New creates a Resolver whose graph holds only LOCAL.
func New(opts ...Option) (*Resolver, error) {
	r := &Resolver{
		programs:  programs.New(),
		pending:   pending.New(),
		cacheSize: DefaultReachCacheSize,
		observer:  NopObserver{},
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.graph == nil {
		r.graph = inmemorygraph.New(lang.Local)
	}
	if r.logger == nil {
		r.logger = ctxlog.FromContext(context.Background())
	}
	if !r.graph.HasNode(lang.Local) {
		return nil, fmt.Errorf("capability graph is missing the %s node", lang.Local)
	}
	if r.cacheSize > 0 {
		cache, err := lru.New[lang.Name, bool](r.cacheSize)
		if err != nil {
			return nil, fmt.Errorf("failed to create reachability cache: %w", err)
		}
		r.reach = cache
	}
	return r, nil
}

// DefineProgram registers name as a program written in language. It fails
// with ErrDuplicateProgram, changing nothing, when the name is taken.
func (r *Resolver) DefineProgram(name string, language lang.Name) error {
	if err := r.programs.Define(name, language); err != nil {
		if errors.Is(err, programs.ErrDuplicate) {
			err = duplicateProgram(name, err)
		}
		r.logger.Debug("Program definition rejected.", "program", name, "error", err)
		r.observer.ProgramDefined(name, language, err)
		return err
	}
	r.graph.EnsureNode(language)
	r.logger.Debug("Program defined.", "program", name, "language", language)
	r.observer.ProgramDefined(name, language, nil)
	return nil
}

// DefineInterpreter declares an interpreter for language written in base.
// The edge language -> base is inserted unconditionally.
func (r *Resolver) DefineInterpreter(base, language lang.Name) {
	r.graph.EnsureNode(base)
	r.graph.EnsureNode(language)

	added := r.addEdge(language, base, graphstore.OriginInterpreter)
	r.logger.Debug("Interpreter defined.", "base", base, "language", language, "new_edge", added)
	r.observer.InterpreterDefined(base, language, added)
	if added {
		r.propagate()
	}
}

// DefineTranslator declares a translator from source to target written in
// base. Its edge source -> target is inserted now if base already reaches
// LOCAL, otherwise the translator is held pending until it does.
func (r *Resolver) DefineTranslator(base, source, target lang.Name) {
	r.graph.EnsureNode(base)
	r.graph.EnsureNode(source)
	r.graph.EnsureNode(target)

	c := pending.Constraint{Base: base, Source: source, Target: target}
	if !r.reachesLocal(base) {
		r.pending.Add(c)
		r.logger.Debug("Translator held pending.", "base", base, "source", source, "target", target, "pending", r.pending.Len())
		r.observer.TranslatorDefined(c, true)
		return
	}

	added := r.addEdge(source, target, graphstore.OriginTranslator)
	r.logger.Debug("Translator defined.", "base", base, "source", source, "target", target, "new_edge", added)
	r.observer.TranslatorDefined(c, false)
	if added {
		r.propagate()
	}
}

// QueryExecutable reports whether the named program can be run by LOCAL.
func (r *Resolver) QueryExecutable(name string) (bool, error) {
	language, err := r.programs.Lookup(name)
	if err != nil {
		err = unknownProgram(name, err)
		r.observer.Queried(name, false, err)
		return false, err
	}
	ok := r.reachesLocal(language)
	r.observer.Queried(name, ok, nil)
	return ok, nil
}

// propagate runs the pending set to a fixed point. Each pass drains every
// constraint whose base reaches LOCAL against the graph as it stood when the
// pass began, then inserts their edges. It stops after a pass that drains
// nothing and returns the number of constraints materialized.
func (r *Resolver) propagate() int {
	total := 0
	for pass := 1; ; pass++ {
		ready := r.pending.DrainSatisfied(func(c pending.Constraint) bool {
			return r.reachesLocal(c.Base)
		})
		if len(ready) == 0 {
			if total > 0 {
				r.logger.Debug("Propagation reached a fixed point.", "passes", pass, "materialized", total, "pending", r.pending.Len())
			}
			return total
		}

		for _, c := range ready {
			r.addEdge(c.Source, c.Target, graphstore.OriginPropagated)
			r.logger.Info("Pending translator materialized.", "base", c.Base, "source", c.Source, "target", c.Target, "pass", pass)
			r.observer.Materialized(c)
		}
		total += len(ready)
	}
}

// addEdge inserts from -> to and drops memoized reachability when the graph changed.
func (r *Resolver) addEdge(from, to lang.Name, origin graphstore.Origin) bool {
	added := r.graph.AddEdge(from, to, origin)
	if added && r.reach != nil {
		r.reach.Purge()
	}
	return added
}

// reachesLocal reports whether programs in n can be run by LOCAL.
func (r *Resolver) reachesLocal(n lang.Name) bool {
	if r.reach == nil {
		return r.graph.HasPath(n, lang.Local)
	}
	if ok, hit := r.reach.Get(n); hit {
		return ok
	}
	ok := r.graph.HasPath(n, lang.Local)
	r.reach.Add(n, ok)
	return ok
}
