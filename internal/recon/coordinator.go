// Package recon implements the pipeline coordinator (spec.md C7): it
// orchestrates plane estimation, orientation fixing, density estimation,
// and the marching-cubes sweep into a single Run call.
package recon

import (
	"fmt"
	"io"
	"math"

	"github.com/katalvlaran/hoppe/internal/logging"
	"github.com/katalvlaran/hoppe/internal/marching"
	"github.com/katalvlaran/hoppe/internal/meshio"
	"github.com/katalvlaran/hoppe/internal/meshmodel"
	"github.com/katalvlaran/hoppe/internal/orient"
	"github.com/katalvlaran/hoppe/internal/planes"
	"github.com/katalvlaran/hoppe/internal/reconconfig"
	"github.com/katalvlaran/hoppe/internal/sdf"
)

// densityFactor is the heuristic factor spec.md §4.7 step 5 applies when
// deriving voxel resolution from the bounding-box extent and sample count:
// it keeps voxels roughly coarser than the inter-sample spacing.
const densityFactor = 8.0

// Result holds a completed reconstruction: the triangle soup plus the
// intermediate oriented plane cloud, kept around so callers can dump it
// for debugging (spec.md §6's optional PLY export).
type Result struct {
	Mesh   meshmodel.Mesh
	Planes meshmodel.PlaneCloud
}

// Run executes the full reconstruction pipeline (spec.md §4.7):
//  1. reject an empty cloud
//  2. estimate tangent planes (C2)
//  3. fix their orientation (C4)
//  4. compute a bounding box over the resulting plane origins
//  5. estimate voxel density from the box extent and plane count
//  6. derive grid dimensions, doubling density until the voxel cap holds
//  7. sweep marching cubes (C6) against an SDF evaluator (C5) over the box
//
// debugOut, if non-nil, receives an ASCII PLY dump of the oriented plane
// cloud prior to the sweep.
func Run(cloud meshmodel.PointCloud, params reconconfig.Parameters, log *logging.Logger, debugOut io.Writer) (Result, error) {
	if len(cloud) == 0 {
		return Result{}, ErrEmptyInput
	}
	if err := params.Validate(); err != nil {
		return Result{}, err
	}

	estimated, _, err := planes.Estimate(cloud, params.K, log)
	if err != nil {
		return Result{}, fmt.Errorf("recon: estimating planes: %w", err)
	}
	log.Infof("estimated %d planes from %d points", len(estimated), len(cloud))

	oriented, err := orient.Fix(estimated, params.K, params.OrientMode, log)
	if err != nil {
		return Result{}, fmt.Errorf("recon: fixing orientation: %w", err)
	}

	if debugOut != nil {
		if err := meshio.WritePlaneOriginsPLY(debugOut, oriented); err != nil {
			log.Warnf("writing plane debug dump: %v", err)
		}
	}

	box := boundingBox(oriented)
	density := params.Density
	if density == 0 {
		density = estimateDensity(box, len(oriented))
	}

	grid, density := gridFor(box, density, params.MaxVolume)
	log.Infof("grid %dx%dx%d at resolution %g (cap %d)", grid.Nx, grid.Ny, grid.Nz, density, params.MaxVolume)

	support := density + params.Noise
	eval, err := sdf.New(oriented, support)
	if err != nil {
		return Result{}, fmt.Errorf("recon: building sdf evaluator: %w", err)
	}

	mesh, err := marching.Sweep(grid, eval.At, log)
	if err != nil {
		return Result{}, fmt.Errorf("recon: sweeping marching cubes: %w", err)
	}

	return Result{Mesh: mesh, Planes: oriented}, nil
}

// box is an axis-aligned bounding box.
type box struct {
	min, max meshmodel.Point
}

func (b box) extent() meshmodel.Point {
	return meshmodel.Point{X: b.max.X - b.min.X, Y: b.max.Y - b.min.Y, Z: b.max.Z - b.min.Z}
}

// boundingBox computes the axis-aligned box spanning every plane's origin
// (spec.md §4.7 step 4).
func boundingBox(planeCloud meshmodel.PlaneCloud) box {
	min := planeCloud[0].Origin
	max := planeCloud[0].Origin
	for _, p := range planeCloud[1:] {
		o := p.Origin
		min.X, max.X = math.Min(min.X, o.X), math.Max(max.X, o.X)
		min.Y, max.Y = math.Min(min.Y, o.Y), math.Max(max.Y, o.Y)
		min.Z, max.Z = math.Min(min.Z, o.Z), math.Max(max.Z, o.Z)
	}
	return box{min: min, max: max}
}

// estimateDensity computes d = 8*W*H*D/N (spec.md §4.7 step 5). Degenerate
// (near-zero) extents are floored so the grid always has at least a voxel
// of size to work with.
func estimateDensity(b box, n int) float64 {
	e := b.extent()
	const floor = 1e-6
	w, h, d := math.Max(e.X, floor), math.Max(e.Y, floor), math.Max(e.Z, floor)
	return densityFactor * w * h * d / float64(n)
}

// gridFor derives (Nx,Ny,Nz) from the box extent and density, doubling
// density (and therefore roughly halving the per-axis voxel count) until
// the voxel count (Nx-1)*(Ny-1)*(Nz-1) stays within maxVolume. Returns the grid
// plus the (possibly doubled) final density, which callers reuse as the
// SDF support radius base (spec.md §4.6: "density used by the SDF support
// test is set to this final resolution").
func gridFor(b box, density float64, maxVolume uint64) (marching.Grid, float64) {
	e := b.extent()
	for {
		nx := axisCount(e.X, density)
		ny := axisCount(e.Y, density)
		nz := axisCount(e.Z, density)
		voxels := uint64(nx-1) * uint64(ny-1) * uint64(nz-1)
		if voxels <= maxVolume {
			return marching.Grid{Nx: nx, Ny: ny, Nz: nz, Resolution: density, Origin: b.min}, density
		}
		density *= 2
	}
}

// axisCount returns the corner count along one axis: ceil(extent/density)+1,
// floored at 2 so every axis has at least one voxel.
func axisCount(extent, density float64) int {
	n := int(math.Ceil(extent/density)) + 1
	if n < 2 {
		n = 2
	}
	return n
}
