// Package render prints a resolver snapshot for humans: a plain adjacency
// listing for the terminal and a Graphviz DOT document for tooling.
package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/vk/tombstone/internal/graphstore"
	"github.com/vk/tombstone/internal/lang"
	"github.com/vk/tombstone/internal/resolver"
)

// Text writes the snapshot as an adjacency listing, one source language per
// line, followed by the registered programs and the pending translators.
func Text(w io.Writer, snap resolver.Snapshot) error {
	var b strings.Builder

	out := make(map[lang.Name][]graphstore.Edge, len(snap.Nodes))
	for _, e := range snap.Edges {
		out[e.From] = append(out[e.From], e)
	}

	b.WriteString("Languages:\n")
	for _, n := range snap.Nodes {
		edges := out[n]
		if len(edges) == 0 {
			fmt.Fprintf(&b, "  %s\n", n)
			continue
		}
		targets := make([]string, 0, len(edges))
		for _, e := range edges {
			targets = append(targets, fmt.Sprintf("%s (%s)", e.To, e.Origin))
		}
		fmt.Fprintf(&b, "  %s -> %s\n", n, strings.Join(targets, ", "))
	}

	if len(snap.Programs) > 0 {
		b.WriteString("Programs:\n")
		for _, p := range snap.Programs {
			fmt.Fprintf(&b, "  %s [%s]\n", p.Name, p.Language)
		}
	}

	if len(snap.Pending) > 0 {
		b.WriteString("Pending translators:\n")
		for _, c := range snap.Pending {
			fmt.Fprintf(&b, "  %s\n", c)
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// DOT writes the snapshot as a Graphviz digraph. LOCAL is drawn as a double
// circle, edges are labelled with their origin and pending translators are
// drawn dashed from source to target.
func DOT(w io.Writer, snap resolver.Snapshot) error {
	var b strings.Builder

	b.WriteString("digraph capabilities {\n")
	b.WriteString("  rankdir=LR;\n")
	b.WriteString("  node [shape=circle];\n")
	for _, n := range snap.Nodes {
		if n.IsLocal() {
			fmt.Fprintf(&b, "  %s [shape=doublecircle];\n", quote(n))
			continue
		}
		fmt.Fprintf(&b, "  %s;\n", quote(n))
	}
	for _, e := range snap.Edges {
		fmt.Fprintf(&b, "  %s -> %s [label=%s];\n", quote(e.From), quote(e.To), strconv.Quote(string(e.Origin)))
	}
	for _, c := range snap.Pending {
		fmt.Fprintf(&b, "  %s -> %s [style=dashed, label=%s];\n",
			quote(c.Source), quote(c.Target), strconv.Quote("needs "+string(c.Base)))
	}
	b.WriteString("}\n")

	_, err := io.WriteString(w, b.String())
	return err
}

func quote(n lang.Name) string {
	return strconv.Quote(string(n))
}
