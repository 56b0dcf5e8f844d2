package inmemorygraph

import (
	"sort"

	"github.com/vk/tombstone/internal/graphstore"
	"github.com/vk/tombstone/internal/lang"
)

// Store implements the graphstore.Store interface using maps.
type Store struct {
	nodes map[lang.Name]struct{}
	out   map[lang.Name]map[lang.Name]graphstore.Origin // Key: source node, Value: targets with origin
	edges int
}

var _ graphstore.Store = (*Store)(nil)

// New creates a graph containing only the given sink node.
func New(sink lang.Name) *Store {
	s := &Store{
		nodes: make(map[lang.Name]struct{}),
		out:   make(map[lang.Name]map[lang.Name]graphstore.Origin),
	}
	s.EnsureNode(sink)
	return s
}

// EnsureNode adds n if it is not present yet.
func (s *Store) EnsureNode(n lang.Name) {
	if _, exists := s.nodes[n]; exists {
		return
	}
	s.nodes[n] = struct{}{}
}

// AddEdge inserts from -> to and reports whether it is new.
func (s *Store) AddEdge(from, to lang.Name, origin graphstore.Origin) bool {
	s.EnsureNode(from)
	s.EnsureNode(to)

	targets := s.out[from]
	if targets == nil {
		targets = make(map[lang.Name]graphstore.Origin)
		s.out[from] = targets
	}
	if _, exists := targets[to]; exists {
		return false
	}
	targets[to] = origin
	s.edges++
	return true
}

// HasNode reports whether n exists.
func (s *Store) HasNode(n lang.Name) bool {
	_, ok := s.nodes[n]
	return ok
}

// HasEdge reports whether from -> to exists.
func (s *Store) HasEdge(from, to lang.Name) bool {
	_, ok := s.out[from][to]
	return ok
}

// HasPath runs a breadth-first search from from and stops as soon as to is seen.
func (s *Store) HasPath(from, to lang.Name) bool {
	if from == to {
		return true
	}
	_, found := s.search(from, to)
	return found
}

// PathTo returns the shortest chain from -> ... -> to.
func (s *Store) PathTo(from, to lang.Name) ([]lang.Name, bool) {
	if from == to {
		return []lang.Name{from}, true
	}
	parent, found := s.search(from, to)
	if !found {
		return nil, false
	}

	path := []lang.Name{to}
	for cur := to; cur != from; {
		cur = parent[cur]
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, true
}

// search is the shared BFS. It returns the parent links of every visited
// node and whether to was reached. Neighbours are visited in sorted order so
// PathTo is deterministic.
func (s *Store) search(from, to lang.Name) (map[lang.Name]lang.Name, bool) {
	if _, ok := s.nodes[from]; !ok {
		return nil, false
	}

	parent := map[lang.Name]lang.Name{from: from}
	queue := []lang.Name{from}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		for _, next := range sortedTargets(s.out[cur]) {
			if _, seen := parent[next]; seen {
				continue
			}
			parent[next] = cur
			if next == to {
				return parent, true
			}
			queue = append(queue, next)
		}
	}
	return parent, false
}

// Nodes returns every node sorted by name.
func (s *Store) Nodes() []lang.Name {
	nodes := make([]lang.Name, 0, len(s.nodes))
	for n := range s.nodes {
		nodes = append(nodes, n)
	}
	sort.Slice(nodes, func(i, j int) bool { return nodes[i] < nodes[j] })
	return nodes
}

// Edges returns every edge sorted by (From, To).
func (s *Store) Edges() []graphstore.Edge {
	edges := make([]graphstore.Edge, 0, s.edges)
	for from, targets := range s.out {
		for to, origin := range targets {
			edges = append(edges, graphstore.Edge{From: from, To: to, Origin: origin})
		}
	}
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].From != edges[j].From {
			return edges[i].From < edges[j].From
		}
		return edges[i].To < edges[j].To
	})
	return edges
}

// NodeCount returns the number of nodes.
func (s *Store) NodeCount() int { return len(s.nodes) }

// EdgeCount returns the number of edges.
func (s *Store) EdgeCount() int { return s.edges }

func sortedTargets(targets map[lang.Name]graphstore.Origin) []lang.Name {
	names := make([]lang.Name, 0, len(targets))
	for n := range targets {
		names = append(names, n)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
	return names
}
