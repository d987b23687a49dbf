// Package orient implements global normal-orientation propagation
// (spec.md C4): a Riemannian proximity graph over planes, its MST, and a
// DFS sign-propagation pass seeded from the plane with maximum
// y-coordinate.
package orient

import (
	"context"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/hoppe/internal/logging"
	"github.com/katalvlaran/hoppe/internal/meshmodel"
	"github.com/katalvlaran/hoppe/internal/spatial"
	"github.com/katalvlaran/hoppe/internal/ugraph"
)

// Mode selects how orientation signs propagate along the MST, resolving
// spec.md §9's Open Question about DFS-predecessor vs MST-parent
// propagation (see SPEC_FULL.md §3.4).
type Mode int

const (
	// ModeParent flips each node's sign relative to its actual MST parent.
	// This is order-independent and is the recommended default.
	ModeParent Mode = iota

	// ModeDFSOrder reproduces the original source's behavior: each node's
	// sign is flipped relative to whichever node the DFS visited
	// immediately before it, which is order-sensitive for nodes with
	// multiple MST neighbors visited before them.
	ModeDFSOrder
)

// worldUp is the orientation anchor's up direction (spec.md §4.4): an
// input-coordinate-frame assumption, not a claim about the geometry.
var worldUp = meshmodel.Point{X: 0, Y: 1, Z: 0}

// Fix orients every plane's normal, returning a new PlaneCloud with
// corrected signs (the input is not modified; origins are untouched). With
// ModeParent, every MST edge (u,v) in the seed's component satisfies
// n̂_u · n̂_v ≥ 0 after completion; ModeDFSOrder compares each node with the
// previously visited node instead, so it does not guarantee this.
//
// Returns ErrInvalidK if k <= 1, ErrEmptyPlanes if planes is empty.
func Fix(planes meshmodel.PlaneCloud, k int, mode Mode, log *logging.Logger) (meshmodel.PlaneCloud, error) {
	if k <= 1 {
		return nil, ErrInvalidK
	}
	if len(planes) == 0 {
		return nil, ErrEmptyPlanes
	}

	out := make(meshmodel.PlaneCloud, len(planes))
	copy(out, planes)

	origins := make(meshmodel.PointCloud, len(out))
	for i, p := range out {
		origins[i] = p.Origin
	}
	idx, err := spatial.Build(origins)
	if err != nil {
		return nil, err
	}

	graph, err := buildRiemannianGraph(out, idx, k, log)
	if err != nil {
		return nil, err
	}
	graph.CleanDuplicateEdges()
	log.Infof("orientation graph: %d nodes, %d edges", graph.NodeCount, len(graph.Edges))

	mst := graph.GenerateMST()
	log.Infof("orientation MST: %d edges", len(mst.Edges))
	if len(mst.Edges) < graph.NodeCount-1 {
		log.Warnf("orientation graph is disconnected: MST is a spanning forest with %d of %d edges", len(mst.Edges), graph.NodeCount-1)
	}

	seed := highestPlane(out)
	if out[seed].Normal.Dot(worldUp) < 0 {
		out[seed].Normal = out[seed].Normal.Scale(-1)
	}

	propagate(out, mst, seed, mode)

	return out, nil
}

// buildRiemannianGraph builds the proximity graph over plane indices: for
// each plane i, query its k+1 nearest plane origins and add an edge to each
// neighbor j != i with cost 1 - |n̂_i · n̂_j|. Work is partitioned across a
// worker pool (spec.md §5); edges accumulate under a mutex that guards
// edge insertion only (warnings are logged outside it).
func buildRiemannianGraph(planes meshmodel.PlaneCloud, idx *spatial.Index, k int, log *logging.Logger) (*ugraph.Graph, error) {
	graph := ugraph.New(len(planes))
	numNeighbors := k + 1

	numWorkers := workerCount(len(planes))
	chunk := (len(planes) + numWorkers - 1) / numWorkers

	var mu sync.Mutex
	g, _ := errgroup.WithContext(context.Background())
	for w := 0; w < numWorkers; w++ {
		start := w * chunk
		end := start + chunk
		if start >= len(planes) {
			break
		}
		if end > len(planes) {
			end = len(planes)
		}
		g.Go(func() error {
			for i := start; i < end; i++ {
				neighbors, err := idx.Query(planes[i].Origin, numNeighbors)
				if err != nil {
					return err
				}
				if len(neighbors) != numNeighbors {
					log.Warnf("plane %d: found only %d of %d requested neighbors", i, len(neighbors), numNeighbors)
				}
				for _, n := range neighbors {
					if n.Index == i {
						continue
					}
					cost := 1.0 - absDot(planes[i].Normal, planes[n.Index].Normal)
					mu.Lock()
					_ = graph.AddEdge(i, n.Index, cost)
					mu.Unlock()
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return graph, nil
}

func absDot(a, b meshmodel.Point) float64 {
	d := a.Dot(b)
	if d < 0 {
		return -d
	}
	return d
}

// highestPlane returns the index of the plane with maximum origin
// y-coordinate (spec.md §4.4's orientation anchor).
func highestPlane(planes meshmodel.PlaneCloud) int {
	best := 0
	for i := 1; i < len(planes); i++ {
		if planes[i].Origin.Y > planes[best].Origin.Y {
			best = i
		}
	}
	return best
}

// propagate flips plane normals along the MST so that adjacent MST nodes
// agree in sign, per the selected Mode.
func propagate(planes meshmodel.PlaneCloud, mst *ugraph.Graph, seed int, mode Mode) {
	switch mode {
	case ModeDFSOrder:
		propagateDFSOrder(planes, mst, seed)
	default:
		propagateParent(planes, mst, seed)
	}
}

// propagateDFSOrder reproduces the original source's order-sensitive
// behavior (original_source/hoppe/Hoppe.cpp's fix_orientations): each
// visited node's sign is compared against "previous", the node the DFS
// visited immediately before it, not necessarily its MST parent.
func propagateDFSOrder(planes meshmodel.PlaneCloud, mst *ugraph.Graph, seed int) {
	previous := planes[seed]
	mst.TraverseDFS(seed, func(idx int) {
		if planes[idx].Normal.Dot(previous.Normal) < 0 {
			planes[idx].Normal = planes[idx].Normal.Scale(-1)
		}
		previous = planes[idx]
	})
}

// propagateParent flips each node's sign relative to its actual MST
// parent, the order-independent resolution of spec.md §9's Open Question
// (SPEC_FULL.md §3.4 records this as the default).
func propagateParent(planes meshmodel.PlaneCloud, mst *ugraph.Graph, seed int) {
	parent := make(map[int]int)
	visited := make([]bool, mst.NodeCount)
	visited[seed] = true

	var visitOrder []int
	var dfs func(node int)
	dfs = func(node int) {
		visitOrder = append(visitOrder, node)
		for _, e := range mst.Edges {
			if e.A != node && e.B != node {
				continue
			}
			nbr := e.B
			if e.A != node {
				nbr = e.A
			}
			if !visited[nbr] {
				visited[nbr] = true
				parent[nbr] = node
				dfs(nbr)
			}
		}
	}
	dfs(seed)

	for _, idx := range visitOrder {
		if idx == seed {
			continue
		}
		p := planes[parent[idx]]
		if planes[idx].Normal.Dot(p.Normal) < 0 {
			planes[idx].Normal = planes[idx].Normal.Scale(-1)
		}
	}
}

func workerCount(work int) int {
	n := runtime.GOMAXPROCS(0)
	if work < n {
		n = work
	}
	if n < 1 {
		n = 1
	}
	return n
}
