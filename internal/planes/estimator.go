// Package planes implements tangent-plane estimation (spec.md C2): for each
// sample point, fit a local least-squares plane to its k-nearest-neighbor
// covariance and take the eigenvector of smallest eigenvalue as the normal.
//
// Normal *sign* is left arbitrary here — orientation is resolved later by
// internal/orient (C4).
package planes

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/hoppe/internal/linalg"
	"github.com/katalvlaran/hoppe/internal/logging"
	"github.com/katalvlaran/hoppe/internal/meshmodel"
	"github.com/katalvlaran/hoppe/internal/spatial"
)

// minDistinctNeighbors is the smallest neighborhood (besides the query
// point itself) spec.md §4.2 allows before a sample is skipped as
// DegenerateNeighborhood.
const minDistinctNeighbors = 3

// result holds the outcome of estimating a single sample's plane: either a
// Plane, or a signal that the sample was too degenerate to fit.
type result struct {
	plane meshmodel.Plane
	ok    bool
}

// Estimate fits a tangent plane to every sample in cloud using its k
// nearest neighbors (k+1, dropping the self-match). Returns the resulting
// PlaneCloud together with sourceIndex, where sourceIndex[i] is the index
// into cloud that produced planes[i] — the identity mapping unless some
// samples were skipped as degenerate (spec.md's "back-reference" note,
// §9 DESIGN NOTES).
//
// Returns ErrInvalidK if k <= 1, ErrEmptyInput if cloud is empty.
func Estimate(cloud meshmodel.PointCloud, k int, log *logging.Logger) (meshmodel.PlaneCloud, []int, error) {
	if k <= 1 {
		return nil, nil, ErrInvalidK
	}
	if len(cloud) == 0 {
		return nil, nil, ErrEmptyInput
	}

	idx, err := spatial.Build(cloud)
	if err != nil {
		return nil, nil, err
	}

	results := make([]result, len(cloud))
	numWorkers := workerCount(len(cloud))
	chunk := (len(cloud) + numWorkers - 1) / numWorkers

	g, _ := errgroup.WithContext(context.Background())
	for w := 0; w < numWorkers; w++ {
		start := w * chunk
		end := start + chunk
		if start >= len(cloud) {
			break
		}
		if end > len(cloud) {
			end = len(cloud)
		}
		g.Go(func() error {
			for i := start; i < end; i++ {
				results[i] = estimateOne(cloud, idx, i, k, log)
			}
			return nil
		})
	}
	_ = g.Wait() // estimateOne never returns an error; degenerate samples are skipped, not failed

	out := make(meshmodel.PlaneCloud, 0, len(cloud))
	sourceIndex := make([]int, 0, len(cloud))
	for i, r := range results {
		if !r.ok {
			continue
		}
		out = append(out, r.plane)
		sourceIndex = append(sourceIndex, i)
	}

	return out, sourceIndex, nil
}

// estimateOne fits the tangent plane for sample i.
func estimateOne(cloud meshmodel.PointCloud, idx *spatial.Index, i, k int, log *logging.Logger) result {
	neighbors, err := idx.Query(cloud[i], k+1)
	if err != nil {
		return result{}
	}
	if len(neighbors) != k+1 && log != nil {
		log.Warnf("sample %d: found only %d of %d requested neighbors", i, len(neighbors), k+1)
	}

	var distinct []meshmodel.Point
	for _, n := range neighbors {
		if n.Index == i {
			continue
		}
		distinct = append(distinct, cloud[n.Index])
	}
	if len(distinct) < minDistinctNeighbors {
		if log != nil {
			log.Warnf("sample %d: only %d distinct neighbors, skipping (degenerate)", i, len(distinct))
		}
		return result{}
	}

	centroid := meshmodel.Point{}
	for _, p := range distinct {
		centroid = centroid.Add(p)
	}
	centroid = centroid.Scale(1.0 / float64(len(distinct)))

	cov, err := covariance(distinct, centroid)
	if err != nil {
		return result{}
	}

	eigs, vecs, err := linalg.Eigen(cov, 1e-10, 100)
	if err != nil {
		if log != nil {
			log.Warnf("sample %d: eigen decomposition failed: %v", i, err)
		}
		return result{}
	}

	minIdx := 0
	for j := 1; j < len(eigs); j++ {
		if eigs[j] < eigs[minIdx] {
			minIdx = j
		}
	}
	nx, _ := vecs.At(0, minIdx)
	ny, _ := vecs.At(1, minIdx)
	nz, _ := vecs.At(2, minIdx)
	normal := meshmodel.Point{X: nx, Y: ny, Z: nz}.Normalize()

	return result{ok: true, plane: meshmodel.Plane{Origin: centroid, Normal: normal}}
}

// covariance accumulates M = Σ (n_j - c)(n_j - c)ᵀ over neighbors, a 3×3
// symmetric matrix suitable for linalg.Eigen.
func covariance(neighbors []meshmodel.Point, centroid meshmodel.Point) (*linalg.Dense, error) {
	m, err := linalg.NewDense(3, 3)
	if err != nil {
		return nil, err
	}
	for _, p := range neighbors {
		d := p.Sub(centroid)
		v := [3]float64{d.X, d.Y, d.Z}
		for r := 0; r < 3; r++ {
			for c := 0; c < 3; c++ {
				cur, _ := m.At(r, c)
				_ = m.Set(r, c, cur+v[r]*v[c])
			}
		}
	}
	return m, nil
}

// workerCount caps parallelism at min(hardware_concurrency, work_units),
// matching spec.md §5's shared-resource policy.
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
