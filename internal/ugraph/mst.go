package ugraph

import "sort"

// CleanDuplicateEdges stable-sorts edges by (A, B) then compacts adjacent
// duplicates, keeping the first occurrence. Required before GenerateMST.
//
// Complexity: O(E log E).
func (g *Graph) CleanDuplicateEdges() {
	sort.SliceStable(g.Edges, func(i, j int) bool {
		ei, ej := g.Edges[i], g.Edges[j]
		if ei.A != ej.A {
			return ei.A < ej.A
		}
		return ei.B < ej.B
	})

	if len(g.Edges) == 0 {
		return
	}
	out := g.Edges[:1]
	for _, e := range g.Edges[1:] {
		last := out[len(out)-1]
		if e.A == last.A && e.B == last.B {
			continue
		}
		out = append(out, e)
	}
	g.Edges = out
}

// unionFind is a disjoint-set structure with path compression and
// union-by-rank, transient for the lifetime of one GenerateMST call
// (spec.md §3's UnionFindEntry).
type unionFind struct {
	parent []int
	rank   []int
}

func newUnionFind(n int) *unionFind {
	uf := &unionFind{parent: make([]int, n), rank: make([]int, n)}
	for i := range uf.parent {
		uf.parent[i] = i
	}
	return uf
}

func (uf *unionFind) find(i int) int {
	for uf.parent[i] != i {
		uf.parent[i] = uf.parent[uf.parent[i]] // path compression (halving)
		i = uf.parent[i]
	}
	return i
}

func (uf *unionFind) union(a, b int) {
	ra, rb := uf.find(a), uf.find(b)
	if ra == rb {
		return
	}
	switch {
	case uf.rank[ra] < uf.rank[rb]:
		uf.parent[ra] = rb
	case uf.rank[ra] > uf.rank[rb]:
		uf.parent[rb] = ra
	default:
		uf.parent[rb] = ra
		uf.rank[ra]++
	}
}

// GenerateMST computes a minimum spanning tree (or forest, if the graph is
// disconnected) via Kruskal's algorithm: sort edges ascending by cost,
// accept an edge iff its endpoints have different union-find roots, stop
// after NodeCount-1 accepted edges or when the edge list is exhausted.
//
// The edge list must already be de-duplicated (CleanDuplicateEdges); this
// method does not de-duplicate for the caller.
//
// Complexity: O(E log E + α(V)·E).
func (g *Graph) GenerateMST() *Graph {
	mst := New(g.NodeCount)
	if g.NodeCount == 0 {
		return mst
	}

	sorted := make([]Edge, len(g.Edges))
	copy(sorted, g.Edges)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Cost < sorted[j].Cost })

	uf := newUnionFind(g.NodeCount)
	for _, e := range sorted {
		if len(mst.Edges) == g.NodeCount-1 {
			break
		}
		if uf.find(e.A) != uf.find(e.B) {
			uf.union(e.A, e.B)
			mst.Edges = append(mst.Edges, e)
		}
	}

	return mst
}
