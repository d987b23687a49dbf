package meshio

import (
	"bufio"
	"fmt"
	"io"

	"github.com/katalvlaran/hoppe/internal/meshmodel"
)

// debugColor is the fixed vertex color (255,125,0) spec.md §6 specifies for
// the optional intermediate PLY debug export.
var debugColor = [3]int{255, 125, 0}

// WritePLY emits points as an ASCII PLY point cloud (spec.md §6,
// "intermediate, optional debug"): a header declaring vertex count and the
// float x/y/z + uchar red/green/blue properties, followed by one line per
// point, every vertex colored (255,125,0). This folds the original
// implementation's two near-duplicate debug-dump writers (plane origins,
// plane normals-as-points) into the single general-purpose point writer
// SPEC_FULL.md calls for.
func WritePLY(w io.Writer, points meshmodel.PointCloud) error {
	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintf(bw, "ply\nformat ascii 1.0\nelement vertex %d\n", len(points)); err != nil {
		return fmt.Errorf("meshio: writing ply header: %w", err)
	}
	header := "property float x\nproperty float y\nproperty float z\n" +
		"property uchar red\nproperty uchar green\nproperty uchar blue\nend_header\n"
	if _, err := bw.WriteString(header); err != nil {
		return fmt.Errorf("meshio: writing ply header: %w", err)
	}

	for _, p := range points {
		if _, err := fmt.Fprintf(bw, "%g %g %g %d %d %d\n", p.X, p.Y, p.Z, debugColor[0], debugColor[1], debugColor[2]); err != nil {
			return fmt.Errorf("meshio: writing ply vertex: %w", err)
		}
	}

	return bw.Flush()
}

// WritePlaneOriginsPLY writes the origins of a PlaneCloud as a debug point
// cloud, a convenience wrapper over WritePLY used by internal/recon to dump
// the intermediate tangent-plane cloud after orientation, before sweeping.
func WritePlaneOriginsPLY(w io.Writer, planes meshmodel.PlaneCloud) error {
	points := make(meshmodel.PointCloud, len(planes))
	for i, p := range planes {
		points[i] = p.Origin
	}
	return WritePLY(w, points)
}
