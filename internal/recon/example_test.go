package recon_test

import (
	"fmt"
	"math"

	"github.com/katalvlaran/hoppe/internal/logging"
	"github.com/katalvlaran/hoppe/internal/meshmodel"
	"github.com/katalvlaran/hoppe/internal/recon"
	"github.com/katalvlaran/hoppe/internal/reconconfig"
)

// ExampleRun reconstructs a mesh from a dense sampling of the unit sphere
// and reports whether the pipeline produced a non-empty surface and
// oriented one plane per input point.
func ExampleRun() {
	cloud := make(meshmodel.PointCloud, 400)
	golden := math.Pi * (3 - math.Sqrt(5))
	for i := range cloud {
		y := 1 - (float64(i)/float64(len(cloud)-1))*2
		r := math.Sqrt(1 - y*y)
		theta := golden * float64(i)
		cloud[i] = meshmodel.Point{X: math.Cos(theta) * r, Y: y, Z: math.Sin(theta) * r}
	}

	params, err := reconconfig.NewParameters(reconconfig.WithK(10), reconconfig.WithMaxVolume(50_000))
	if err != nil {
		panic(err)
	}

	result, err := recon.Run(cloud, params, logging.Noop(), nil)
	if err != nil {
		panic(err)
	}

	fmt.Println(len(result.Mesh) > 0, len(result.Planes) == len(cloud))
	// Output:
	// true true
}
