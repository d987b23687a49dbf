package marching

import "github.com/katalvlaran/hoppe/internal/meshmodel"

// cornerOffset gives the (dx,dy,dz) grid-cell offset of corner i, in units
// of the voxel resolution, per spec.md §4.6's fixed corner ordering.
var cornerOffset = [8][3]int{
	{0, 0, 0},
	{1, 0, 0},
	{1, 1, 0},
	{0, 1, 0},
	{0, 0, 1},
	{1, 0, 1},
	{1, 1, 1},
	{0, 1, 1},
}

// edgeCorners gives the two corner indices each of the twelve edges
// connects, using the conventional Paul Bourke numbering: edges 0-3 form
// the bottom face, 4-7 the top face, 8-11 the verticals between them.
var edgeCorners = [12][2]int{
	{0, 1}, {1, 2}, {2, 3}, {3, 0},
	{4, 5}, {5, 6}, {6, 7}, {7, 4},
	{0, 4}, {1, 5}, {2, 6}, {3, 7},
}

// edgeMidpoint returns the world-space midpoint of edge e within the voxel
// rooted at grid cell (x,y,z), given resolution r and world offset origin.
// Spec.md §4.6 places every triangle vertex at an edge midpoint (no
// zero-crossing interpolation).
func edgeMidpoint(x, y, z int, r float64, origin meshmodel.Point, e int) meshmodel.Point {
	c0, c1 := edgeCorners[e][0], edgeCorners[e][1]
	a := cornerWorld(x, y, z, r, origin, c0)
	b := cornerWorld(x, y, z, r, origin, c1)
	return meshmodel.Point{
		X: (a.X + b.X) / 2,
		Y: (a.Y + b.Y) / 2,
		Z: (a.Z + b.Z) / 2,
	}
}

// cornerWorld returns the world-space position of corner i of the voxel
// rooted at grid cell (x,y,z).
func cornerWorld(x, y, z int, r float64, origin meshmodel.Point, i int) meshmodel.Point {
	off := cornerOffset[i]
	return meshmodel.Point{
		X: origin.X + float64(x+off[0])*r,
		Y: origin.Y + float64(y+off[1])*r,
		Z: origin.Z + float64(z+off[2])*r,
	}
}

// cornerKey packs a corner's integer grid coordinate into a single cache
// key. Grid coordinates are small (bounded by max_volume per axis), so this
// is collision-free for any realistic grid size.
func cornerKey(x, y, z int) int64 {
	return (int64(x)<<42 | int64(y)<<21 | int64(z))
}
