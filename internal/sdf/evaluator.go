// Package sdf implements pointwise signed-distance evaluation against an
// oriented plane cloud (spec.md C5), with support-radius truncation.
package sdf

import (
	"errors"

	"github.com/katalvlaran/hoppe/internal/meshmodel"
	"github.com/katalvlaran/hoppe/internal/spatial"
)

// ErrEmptyPlanes indicates an Evaluator was built over zero planes.
var ErrEmptyPlanes = errors.New("sdf: no planes to evaluate against")

// Evaluator answers signed-distance queries against a fixed, oriented
// PlaneCloud. It borrows a spatial.Index built over the plane origins, so
// "closest plane" lookups are O(log n) rather than the O(n) linear scan
// spec.md §4.5 also permits.
type Evaluator struct {
	planes  meshmodel.PlaneCloud
	index   *spatial.Index
	support float64 // density + noise
}

// New builds an Evaluator. support is the SDF support radius
// (density + noise per spec.md §4.5); queries whose distance from the
// closest plane is not below it return ok=false ("no value").
func New(planes meshmodel.PlaneCloud, support float64) (*Evaluator, error) {
	if len(planes) == 0 {
		return nil, ErrEmptyPlanes
	}
	origins := make(meshmodel.PointCloud, len(planes))
	for i, p := range planes {
		origins[i] = p.Origin
	}
	idx, err := spatial.Build(origins)
	if err != nil {
		return nil, err
	}
	return &Evaluator{planes: planes, index: idx, support: support}, nil
}

// At evaluates the signed distance from q to the nearest oriented plane.
// The support test measures the point origin + normal*distance against the
// plane's origin, i.e. |distance| for a unit normal. Returns (distance, true)
// if that is below the support radius; otherwise (0, false), meaning "outside
// the surface's support region" (spec.md §4.5's SDFOutOfSupport, not an
// error — callers such as internal/marching treat it as the +1 sentinel).
func (e *Evaluator) At(q meshmodel.Point) (float64, bool) {
	neighbors, err := e.index.Query(q, 1)
	if err != nil || len(neighbors) == 0 {
		return 0, false
	}
	plane := e.planes[neighbors[0].Index]

	signedDist := q.Sub(plane.Origin).Dot(plane.Normal)
	foot := plane.Origin.Add(plane.Normal.Scale(signedDist))
	if foot.Sub(plane.Origin).Norm() >= e.support {
		return 0, false
	}

	return signedDist, true
}
