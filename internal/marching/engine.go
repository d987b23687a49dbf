// Package marching implements the marching-cubes isosurface engine
// (spec.md C6): a fixed corner/edge layout, a 256-entry triangulation
// table, a shared corner cache, and a parallel voxel sweep.
package marching

import (
	"context"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/hoppe/internal/logging"
	"github.com/katalvlaran/hoppe/internal/meshmodel"
)

// SDF is the functor the sweep queries at each cube corner: it returns a
// signed distance and true if q is within the surface's support region,
// or (_, false) if undefined (treated as outside, sentinel +1, per
// spec.md §4.5/§4.6).
type SDF func(q meshmodel.Point) (float64, bool)

// Grid describes the voxel lattice a Sweep traverses: Nx*Ny*Nz corners
// spaced Resolution apart, rooted at Origin.
type Grid struct {
	Nx, Ny, Nz int
	Resolution float64
	Origin     meshmodel.Point
}

func (g Grid) validate() error {
	if g.Nx <= 0 || g.Ny <= 0 || g.Nz <= 0 || g.Resolution <= 0 {
		return ErrInvalidGrid
	}
	return nil
}

// voxelCount returns the number of sweepable voxels (one fewer than the
// corner count along each axis).
func (g Grid) voxelCount() int {
	vx, vy, vz := g.Nx-1, g.Ny-1, g.Nz-1
	if vx <= 0 || vy <= 0 || vz <= 0 {
		return 0
	}
	return vx * vy * vz
}

// Sweep polygonizes sdf over the grid, emitting one triangle per table
// entry per non-trivial voxel state. Work is partitioned into contiguous
// voxel-index ranges across a worker pool (spec.md §5); a corner cache and
// the output buffer are each guarded by their own mutex.
func Sweep(grid Grid, sdf SDF, log *logging.Logger) (meshmodel.Mesh, error) {
	if err := grid.validate(); err != nil {
		return nil, err
	}

	total := grid.voxelCount()
	if total == 0 {
		return meshmodel.Mesh{}, nil
	}

	cache := newCornerCache()
	var mu sync.Mutex
	mesh := make(meshmodel.Mesh, 0)

	vx, vy := grid.Nx-1, grid.Ny-1

	numWorkers := workerCount(total)
	chunk := (total + numWorkers - 1) / numWorkers

	g, _ := errgroup.WithContext(context.Background())
	for w := 0; w < numWorkers; w++ {
		start := w * chunk
		end := start + chunk
		if start >= total {
			break
		}
		if end > total {
			end = total
		}
		g.Go(func() error {
			local := make(meshmodel.Mesh, 0, (end-start)/4+1)
			for flat := start; flat < end; flat++ {
				x := flat % vx
				y := (flat / vx) % vy
				z := flat / (vx * vy)

				state := cellState(grid, cache, sdf, x, y, z)
				if state == 0 || state == 255 {
					continue
				}
				for _, tri := range triangulation(state) {
					local = append(local, meshmodel.Triangle{
						edgeMidpoint(x, y, z, grid.Resolution, grid.Origin, tri[0]),
						edgeMidpoint(x, y, z, grid.Resolution, grid.Origin, tri[1]),
						edgeMidpoint(x, y, z, grid.Resolution, grid.Origin, tri[2]),
					})
				}
			}
			if len(local) > 0 {
				mu.Lock()
				mesh = append(mesh, local...)
				mu.Unlock()
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	log.Infof("marching cubes: swept %d voxels, emitted %d triangles", total, len(mesh))

	return mesh, nil
}

// cellState computes the 8-bit corner sign pattern for the voxel at
// (x,y,z), consulting/populating the shared corner cache for each corner.
func cellState(grid Grid, cache *cornerCache, sdf SDF, x, y, z int) int {
	state := 0
	for i := 0; i < 8; i++ {
		off := cornerOffset[i]
		cx, cy, cz := x+off[0], y+off[1], z+off[2]
		key := cornerKey(cx, cy, cz)
		v := cache.getOrCompute(key, func() float64 {
			p := cornerWorld(x, y, z, grid.Resolution, grid.Origin, i)
			val, ok := sdf(p)
			if !ok {
				return 1
			}
			return val
		})
		if v < 0 {
			state |= 1 << uint(i)
		}
	}
	return state
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
