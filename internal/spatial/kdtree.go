package spatial

import (
	"container/heap"
	"sort"

	"github.com/katalvlaran/hoppe/internal/meshmodel"
)

// Neighbor is one result of a k-NN query: the index into the point set the
// Index was built over, and the squared distance from the query point.
type Neighbor struct {
	Index        int
	SquaredDistT float64
}

// node is one split of the static k-d tree. Leaves have left == right == nil
// and point == the sole indexed point in that subtree.
type node struct {
	pointIdx    int
	axis        int
	left, right *node
}

// Index is a static 3-D k-d tree over a fixed point set, built once and
// queried many times. There is no incremental insertion: the underlying
// set must be finalized before Build is called, matching the "rebuilt
// after the underlying set is finalized" contract of the spec's spatial
// index component.
//
// An Index borrows the point slice passed to Build; callers must not
// mutate it for the lifetime of the Index.
type Index struct {
	points meshmodel.PointCloud
	root   *node
}

// Build constructs a static k-d tree over points. Returns ErrEmptySet if
// points is empty.
//
// Complexity: O(n log² n) (recursive median-of-widest-axis split, sorting
// each subtree's points at every level).
func Build(points meshmodel.PointCloud) (*Index, error) {
	if len(points) == 0 {
		return nil, ErrEmptySet
	}

	idx := &Index{points: points}
	order := make([]int, len(points))
	for i := range order {
		order[i] = i
	}
	idx.root = idx.build(order)

	return idx, nil
}

// build recursively partitions order (a slice of point indices) around the
// median along whichever axis has the widest extent in this subtree, which
// keeps the tree reasonably balanced for anisotropic point clouds (e.g. a
// thin, wide surface sample) without tracking axis-aligned bounds
// explicitly.
func (idx *Index) build(order []int) *node {
	if len(order) == 0 {
		return nil
	}
	if len(order) == 1 {
		return &node{pointIdx: order[0], axis: -1}
	}

	axis := idx.widestAxis(order)
	sort.Slice(order, func(i, j int) bool {
		return idx.coord(order[i], axis) < idx.coord(order[j], axis)
	})
	mid := len(order) / 2

	n := &node{pointIdx: order[mid], axis: axis}
	n.left = idx.build(order[:mid])
	n.right = idx.build(order[mid+1:])

	return n
}

// widestAxis returns 0, 1, or 2 for whichever of x/y/z has the largest
// spread among the points named by order.
func (idx *Index) widestAxis(order []int) int {
	var lo, hi [3]float64
	for i := 0; i < 3; i++ {
		lo[i] = idx.coord(order[0], i)
		hi[i] = lo[i]
	}
	for _, pi := range order[1:] {
		for a := 0; a < 3; a++ {
			c := idx.coord(pi, a)
			if c < lo[a] {
				lo[a] = c
			}
			if c > hi[a] {
				hi[a] = c
			}
		}
	}
	best, bestSpread := 0, hi[0]-lo[0]
	for a := 1; a < 3; a++ {
		if spread := hi[a] - lo[a]; spread > bestSpread {
			best, bestSpread = a, spread
		}
	}
	return best
}

func (idx *Index) coord(pointIdx, axis int) float64 {
	p := idx.points[pointIdx]
	switch axis {
	case 0:
		return p.X
	case 1:
		return p.Y
	default:
		return p.Z
	}
}

// Query returns the k points nearest to q, in ascending squared-distance
// order. If the tree holds fewer than k points, all of them are returned.
// Returns ErrInvalidK if k <= 0.
//
// Complexity: O(log n) average per query for well-balanced trees, O(n)
// worst case.
func (idx *Index) Query(q meshmodel.Point, k int) ([]Neighbor, error) {
	if k <= 0 {
		return nil, ErrInvalidK
	}

	bh := &boundedHeap{}
	idx.search(idx.root, q, k, bh)

	out := make([]Neighbor, len(*bh))
	copy(out, *bh)
	sort.Slice(out, func(i, j int) bool { return out[i].SquaredDistT < out[j].SquaredDistT })

	return out, nil
}

// search walks the tree, maintaining bh as a bounded max-heap of the k
// closest candidates seen so far (classic k-d tree k-NN pruning: a subtree
// is skipped once the splitting-plane distance alone exceeds the current
// k-th best).
func (idx *Index) search(n *node, q meshmodel.Point, k int, bh *boundedHeap) {
	if n == nil {
		return
	}

	p := idx.points[n.pointIdx]
	d2 := q.SquaredDistance(p)
	bh.offer(Neighbor{Index: n.pointIdx, SquaredDistT: d2}, k)

	if n.axis < 0 {
		return // leaf
	}

	var qc, pc float64
	switch n.axis {
	case 0:
		qc, pc = q.X, p.X
	case 1:
		qc, pc = q.Y, p.Y
	default:
		qc, pc = q.Z, p.Z
	}

	near, far := n.left, n.right
	if qc > pc {
		near, far = n.right, n.left
	}
	idx.search(near, q, k, bh)

	planeDist := qc - pc
	if bh.Len() < k || planeDist*planeDist < bh.worst() {
		idx.search(far, q, k, bh)
	}
}

// boundedHeap is a max-heap of Neighbor capped (by convention, not by the
// heap.Interface itself) at k entries via offer.
type boundedHeap []Neighbor

func (h boundedHeap) Len() int            { return len(h) }
func (h boundedHeap) Less(i, j int) bool  { return h[i].SquaredDistT > h[j].SquaredDistT } // max-heap
func (h boundedHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *boundedHeap) Push(x interface{}) { *h = append(*h, x.(Neighbor)) }
func (h *boundedHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

func (h *boundedHeap) worst() float64 {
	return (*h)[0].SquaredDistT
}

func (h *boundedHeap) offer(n Neighbor, k int) {
	if h.Len() < k {
		heap.Push(h, n)
		return
	}
	if n.SquaredDistT < h.worst() {
		heap.Pop(h)
		heap.Push(h, n)
	}
}
