package inmemorygraph

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/tombstone/internal/graphstore"
	"github.com/vk/tombstone/internal/lang"
)

func TestNew_ContainsOnlySink(t *testing.T) {
	s := New(lang.Local)

	require.True(t, s.HasNode(lang.Local))
	assert.Equal(t, 1, s.NodeCount())
	assert.Equal(t, 0, s.EdgeCount())
}

func TestEnsureNode_IsIdempotent(t *testing.T) {
	s := New(lang.Local)
	s.EnsureNode("A")
	s.EnsureNode("A")

	assert.Equal(t, []lang.Name{"A", "LOCAL"}, s.Nodes())
}

func TestAddEdge_ReportsNewInsertionOnly(t *testing.T) {
	s := New(lang.Local)

	require.True(t, s.AddEdge("A", "B", graphstore.OriginInterpreter))
	require.False(t, s.AddEdge("A", "B", graphstore.OriginPropagated))

	assert.True(t, s.HasNode("A"))
	assert.True(t, s.HasNode("B"))
	assert.True(t, s.HasEdge("A", "B"))
	assert.False(t, s.HasEdge("B", "A"))
	assert.Equal(t, 1, s.EdgeCount())

	// The first insertion's origin is kept.
	assert.Equal(t, graphstore.OriginInterpreter, s.Edges()[0].Origin)
}

func TestHasPath(t *testing.T) {
	s := New(lang.Local)
	s.AddEdge("A", "B", graphstore.OriginInterpreter)
	s.AddEdge("B", lang.Local, graphstore.OriginInterpreter)
	s.AddEdge("C", "D", graphstore.OriginInterpreter)
	s.AddEdge("D", "C", graphstore.OriginInterpreter)

	testCases := []struct {
		name     string
		from, to lang.Name
		want     bool
	}{
		{name: "direct edge", from: "B", to: lang.Local, want: true},
		{name: "transitive", from: "A", to: lang.Local, want: true},
		{name: "reflexive", from: "C", to: "C", want: true},
		{name: "reflexive unknown node", from: "Z", to: "Z", want: true},
		{name: "wrong direction", from: lang.Local, to: "A", want: false},
		{name: "cycle without exit", from: "C", to: lang.Local, want: false},
		{name: "unknown source", from: "Z", to: lang.Local, want: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, s.HasPath(tc.from, tc.to))
		})
	}
}

func TestPathTo_ReturnsShortestChain(t *testing.T) {
	s := New(lang.Local)
	s.AddEdge("A", "B", graphstore.OriginInterpreter)
	s.AddEdge("B", "C", graphstore.OriginInterpreter)
	s.AddEdge("C", lang.Local, graphstore.OriginInterpreter)
	s.AddEdge("A", "D", graphstore.OriginInterpreter)
	s.AddEdge("D", lang.Local, graphstore.OriginInterpreter)

	path, ok := s.PathTo("A", lang.Local)
	require.True(t, ok)
	if diff := cmp.Diff([]lang.Name{"A", "D", "LOCAL"}, path); diff != "" {
		t.Errorf("PathTo() mismatch (-want +got):\n%s", diff)
	}

	path, ok = s.PathTo(lang.Local, lang.Local)
	require.True(t, ok)
	assert.Equal(t, []lang.Name{lang.Local}, path)

	_, ok = s.PathTo(lang.Local, "A")
	assert.False(t, ok)
}

func TestEdges_SortedSnapshot(t *testing.T) {
	s := New(lang.Local)
	s.AddEdge("S", "T", graphstore.OriginTranslator)
	s.AddEdge("B", lang.Local, graphstore.OriginInterpreter)
	s.AddEdge("B", "A", graphstore.OriginPropagated)

	want := []graphstore.Edge{
		{From: "B", To: "A", Origin: graphstore.OriginPropagated},
		{From: "B", To: lang.Local, Origin: graphstore.OriginInterpreter},
		{From: "S", To: "T", Origin: graphstore.OriginTranslator},
	}
	if diff := cmp.Diff(want, s.Edges()); diff != "" {
		t.Errorf("Edges() mismatch (-want +got):\n%s", diff)
	}
}
