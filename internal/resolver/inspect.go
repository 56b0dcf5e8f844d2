package resolver

import (
	"github.com/vk/tombstone/internal/graphstore"
	"github.com/vk/tombstone/internal/lang"
	"github.com/vk/tombstone/internal/pending"
	"github.com/vk/tombstone/internal/programs"
)

// Explanation describes why a program is, or is not, executable.
type Explanation struct {
	Program    string               `json:"program"`
	Language   lang.Name            `json:"language"`
	Executable bool                 `json:"executable"`
	Path       []lang.Name          `json:"path,omitempty"` // language ... LOCAL, set only when executable
	Blocking   []pending.Constraint `json:"blocking,omitempty"`
}

// Explain answers the same question as QueryExecutable and also returns one
// shortest chain of languages leading to LOCAL. When the program is not
// executable, Blocking lists the pending translators that would translate
// out of its language once their base becomes runnable. Observers see it as
// a query.
func (r *Resolver) Explain(name string) (Explanation, error) {
	language, err := r.programs.Lookup(name)
	if err != nil {
		err = unknownProgram(name, err)
		r.observer.Queried(name, false, err)
		return Explanation{}, err
	}

	exp := Explanation{Program: name, Language: language}
	if path, ok := r.graph.PathTo(language, lang.Local); ok {
		exp.Executable = true
		exp.Path = path
	} else {
		for _, c := range r.pending.All() {
			if r.graph.HasPath(language, c.Source) {
				exp.Blocking = append(exp.Blocking, c)
			}
		}
	}
	r.observer.Queried(name, exp.Executable, nil)
	return exp, nil
}

// Snapshot is a read-only copy of the resolver state.
type Snapshot struct {
	Nodes    []lang.Name          `json:"nodes"`
	Edges    []graphstore.Edge    `json:"edges"`
	Programs []programs.Program   `json:"programs"`
	Pending  []pending.Constraint `json:"pending"`
}

// Snapshot copies the current graph, registry and pending set.
func (r *Resolver) Snapshot() Snapshot {
	return Snapshot{
		Nodes:    r.graph.Nodes(),
		Edges:    r.graph.Edges(),
		Programs: r.programs.All(),
		Pending:  r.pending.All(),
	}
}

// Stats holds the sizes of the resolver's structures.
type Stats struct {
	Nodes    int `json:"nodes"`
	Edges    int `json:"edges"`
	Programs int `json:"programs"`
	Pending  int `json:"pending"`
}

// Stats returns the current sizes.
func (r *Resolver) Stats() Stats {
	return Stats{
		Nodes:    r.graph.NodeCount(),
		Edges:    r.graph.EdgeCount(),
		Programs: r.programs.Len(),
		Pending:  r.pending.Len(),
	}
}

// HasEdge reports whether the capability edge from -> to is present.
func (r *Resolver) HasEdge(from, to lang.Name) bool {
	return r.graph.HasEdge(from, to)
}

// PendingCount returns the number of translators awaiting their base.
func (r *Resolver) PendingCount() int {
	return r.pending.Len()
}
