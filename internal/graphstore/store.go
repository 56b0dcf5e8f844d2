// Package graphstore defines the interface for storing and querying the
// capability graph: a directed graph over language names in which an edge
// A -> B means "a program in A can be executed provided a program in B can
// be executed".
//
// # Why Graph Store Exists
//
// The resolver owns the rules that decide WHEN an edge may be inserted
// (unconditionally for interpreters, conditionally for translators). The
// store owns only the structure and the reachability query. Keeping the two
// apart lets the propagation algorithm be tested against any implementation
// and keeps the traversal code free of declaration semantics.
//
// # Lifecycle and Usage
//
// A store is:
//  1. **Created** once per session with its sink node already present
//  2. **Grown** by the resolver; nodes and edges are never removed
//  3. **Queried** for reachability after every declaration and on every query
//  4. **Discarded** when the session ends (there is no persistence)
package graphstore

import "github.com/vk/tombstone/internal/lang"

// Origin records which declaration rule inserted an edge. Reachability
// ignores it; it only feeds rendering and snapshots.
type Origin string

const (
	// OriginInterpreter marks an edge inserted unconditionally by an interpreter declaration.
	OriginInterpreter Origin = "interpreter"
	// OriginTranslator marks an edge inserted by a translator whose base was already runnable.
	OriginTranslator Origin = "translator"
	// OriginPropagated marks an edge materialized later from a pending translator.
	OriginPropagated Origin = "propagated"
)

// Edge is a directed capability edge From -> To.
type Edge struct {
	From   lang.Name `json:"from"`
	To     lang.Name `json:"to"`
	Origin Origin    `json:"origin"`
}

// Store is the interface for managing the capability graph.
//
// # Thread-Safety
//
// Implementations are NOT required to be safe for concurrent use. The
// resolver is the single owner of its store and processes one request at a
// time; callers that accept concurrent requests serialize them upstream.
type Store interface {
	// EnsureNode inserts the node if it is absent. It is idempotent.
	EnsureNode(n lang.Name)

	// AddEdge inserts the directed edge from -> to, creating missing
	// endpoints. It returns true only when the edge was not present before;
	// re-inserting an existing edge is a no-op and keeps the first origin.
	AddEdge(from, to lang.Name, origin Origin) bool

	// HasNode reports whether the node exists.
	HasNode(n lang.Name) bool

	// HasEdge reports whether the exact edge from -> to exists.
	HasEdge(from, to lang.Name) bool

	// HasPath reports whether to is reachable from from. A node always
	// reaches itself, even if it has never been inserted. The query is
	// read-only and runs in O(V+E).
	HasPath(from, to lang.Name) bool

	// PathTo returns one shortest chain of languages from -> ... -> to,
	// or false when to is unreachable.
	PathTo(from, to lang.Name) ([]lang.Name, bool)

	// Nodes returns all nodes sorted by name.
	Nodes() []lang.Name

	// Edges returns all edges sorted by (From, To).
	Edges() []Edge

	// NodeCount returns the number of nodes.
	NodeCount() int

	// EdgeCount returns the number of edges.
	EdgeCount() int
}
