// Package inmemorygraph provides a simple in-memory implementation of the
// graphstore.Store interface backed by adjacency sets.
package inmemorygraph
