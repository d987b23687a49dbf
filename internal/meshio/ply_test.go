package meshio

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hoppe/internal/meshmodel"
)

func TestWritePLY_Header(t *testing.T) {
	points := meshmodel.PointCloud{{X: 1, Y: 2, Z: 3}}
	var buf strings.Builder
	require.NoError(t, WritePLY(&buf, points))

	out := buf.String()
	require.True(t, strings.HasPrefix(out, "ply\nformat ascii 1.0\nelement vertex 1\n"))
	require.Contains(t, out, "property uchar blue")
	require.Contains(t, out, "end_header")
	require.Contains(t, out, "1 2 3 255 125 0")
}

func TestWritePlaneOriginsPLY_UsesOrigins(t *testing.T) {
	planes := meshmodel.PlaneCloud{
		{Origin: meshmodel.Point{X: 5, Y: 6, Z: 7}, Normal: meshmodel.Point{X: 0, Y: 0, Z: 1}},
	}
	var buf strings.Builder
	require.NoError(t, WritePlaneOriginsPLY(&buf, planes))
	require.Contains(t, buf.String(), "5 6 7 255 125 0")
}
