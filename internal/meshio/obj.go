package meshio

import (
	"bufio"
	"fmt"
	"io"

	"github.com/katalvlaran/hoppe/internal/meshmodel"
)

// WriteOBJ emits mesh as ASCII Wavefront OBJ (spec.md §6): three `v x y z`
// lines per triangle (vertices are not deduplicated across triangles),
// followed by one `f i j k` line per triangle using 1-based indices. No
// normals, texture coordinates, or materials are written.
func WriteOBJ(w io.Writer, mesh meshmodel.Mesh) error {
	bw := bufio.NewWriter(w)

	for _, tri := range mesh {
		for _, v := range tri {
			if _, err := fmt.Fprintf(bw, "v %g %g %g\n", v.X, v.Y, v.Z); err != nil {
				return fmt.Errorf("meshio: writing obj vertex: %w", err)
			}
		}
	}
	for i := range mesh {
		base := i*3 + 1
		if _, err := fmt.Fprintf(bw, "f %d %d %d\n", base, base+1, base+2); err != nil {
			return fmt.Errorf("meshio: writing obj face: %w", err)
		}
	}

	return bw.Flush()
}
