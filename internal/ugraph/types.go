// Package ugraph implements an undirected graph over integer node indices,
// with de-duplication, Kruskal MST via union-find, and DFS traversal
// (spec.md C3). It is a rewrite of lvlath's prim_kruskal/core packages
// specialized to int keys: this domain's nodes are positional plane/point
// indices (spec.md §3's "back-reference" invariant), not the string vertex
// IDs lvlath's core.Graph uses, so the adaptation swaps the key type rather
// than reusing core.Graph directly.
package ugraph

import "errors"

// ErrInvalidEdge indicates an edge referenced a node outside [0, NodeCount).
var ErrInvalidEdge = errors.New("ugraph: edge endpoint out of range")

// Edge is an undirected edge in canonical form: A < B.
type Edge struct {
	A, B int
	Cost float64
}

// Graph is an undirected, weighted multigraph over node indices
// [0, NodeCount). Edges accumulate via AddEdge; CleanDuplicateEdges must
// run before GenerateMST.
type Graph struct {
	NodeCount int
	Edges     []Edge
}

// New returns an empty Graph over nodeCount nodes.
func New(nodeCount int) *Graph {
	return &Graph{NodeCount: nodeCount}
}

// AddEdge appends an edge between a and b, canonicalizing so A < B.
// De-duplication is deferred to CleanDuplicateEdges.
func (g *Graph) AddEdge(a, b int, cost float64) error {
	if a < 0 || a >= g.NodeCount || b < 0 || b >= g.NodeCount {
		return ErrInvalidEdge
	}
	if a > b {
		a, b = b, a
	}
	g.Edges = append(g.Edges, Edge{A: a, B: b, Cost: cost})
	return nil
}
