package marching

import "github.com/katalvlaran/hoppe/internal/logging"

// DumpStates logs the cell state of every voxel in the grid, a diagnostic
// extension of the original implementation's cell-state dump. The
// original iterates all three loop bounds using a single axis's extent
// (spec.md §9's Open Questions); this iterates each axis's own extent.
func DumpStates(grid Grid, sdf SDF, log *logging.Logger) {
	if err := grid.validate(); err != nil {
		log.Warnf("marching: cannot dump states: %v", err)
		return
	}

	cache := newCornerCache()
	for x := 0; x < grid.Nx-1; x++ {
		for y := 0; y < grid.Ny-1; y++ {
			for z := 0; z < grid.Nz-1; z++ {
				state := cellState(grid, cache, sdf, x, y, z)
				log.Infof("cell (%d,%d,%d): state=%d", x, y, z, state)
			}
		}
	}
}
