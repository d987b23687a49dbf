package orient

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hoppe/internal/logging"
	"github.com/katalvlaran/hoppe/internal/meshmodel"
	"github.com/katalvlaran/hoppe/internal/spatial"
	"github.com/katalvlaran/hoppe/internal/ugraph"
)

// spherePlanes builds a PlaneCloud over n points on the unit sphere, each
// with the correct outward normal, every third one sign-flipped — exercising
// Fix's ability to recover consistent orientation.
func spherePlanes(n int) meshmodel.PlaneCloud {
	planes := make(meshmodel.PlaneCloud, n)
	golden := math.Pi * (3 - math.Sqrt(5))
	for i := 0; i < n; i++ {
		y := 1 - (float64(i)/float64(n-1))*2
		r := math.Sqrt(1 - y*y)
		theta := golden * float64(i)
		x := math.Cos(theta) * r
		z := math.Sin(theta) * r
		p := meshmodel.Point{X: x, Y: y, Z: z}
		normal := p.Normalize()
		if i%3 == 0 {
			normal = normal.Scale(-1)
		}
		planes[i] = meshmodel.Plane{Origin: p, Normal: normal}
	}
	return planes
}

func TestFix_InvalidK(t *testing.T) {
	_, err := Fix(meshmodel.PlaneCloud{{}}, 1, ModeParent, logging.Noop())
	require.ErrorIs(t, err, ErrInvalidK)
}

func TestFix_EmptyPlanes(t *testing.T) {
	_, err := Fix(nil, 8, ModeParent, logging.Noop())
	require.ErrorIs(t, err, ErrEmptyPlanes)
}

func TestFix_MSTEdgesAgreeInSign(t *testing.T) {
	planes := spherePlanes(200)
	fixed, err := Fix(planes, 8, ModeParent, logging.Noop())
	require.NoError(t, err)
	require.Len(t, fixed, len(planes))

	// Rebuild the same Riemannian MST the solver computed, to check
	// invariant 4 from spec.md §8 independently of internal propagation
	// order: every MST edge's endpoints should now agree in sign.
	origins := make(meshmodel.PointCloud, len(fixed))
	for i, p := range fixed {
		origins[i] = p.Origin
	}
	idx, err := spatial.Build(origins)
	require.NoError(t, err)

	graph := ugraph.New(len(fixed))
	for i := range fixed {
		neighbors, err := idx.Query(fixed[i].Origin, 9)
		require.NoError(t, err)
		for _, n := range neighbors {
			if n.Index == i {
				continue
			}
			cost := 1.0 - absDot(fixed[i].Normal, fixed[n.Index].Normal)
			_ = graph.AddEdge(i, n.Index, cost)
		}
	}
	graph.CleanDuplicateEdges()
	mst := graph.GenerateMST()

	for _, e := range mst.Edges {
		require.GreaterOrEqual(t, fixed[e.A].Normal.Dot(fixed[e.B].Normal), -1e-4)
	}
}

func TestFix_SeedPointsOutward(t *testing.T) {
	planes := spherePlanes(150)
	fixed, err := Fix(planes, 8, ModeParent, logging.Noop())
	require.NoError(t, err)

	seed := highestPlane(fixed)
	require.GreaterOrEqual(t, fixed[seed].Normal.Dot(worldUp), 0.0)
}

func TestFix_DFSOrderModeRuns(t *testing.T) {
	planes := spherePlanes(100)
	fixed, err := Fix(planes, 8, ModeDFSOrder, logging.Noop())
	require.NoError(t, err)
	require.Len(t, fixed, len(planes))
}
