package meshio

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReadXYZ_ParsesWhitespaceSeparated(t *testing.T) {
	input := "0 0 0\n1.5\t2.5   3.5\n\n-1 -2 -3\n"
	cloud, err := ReadXYZ(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, cloud, 3)
	require.Equal(t, 1.5, cloud[1].X)
	require.Equal(t, 2.5, cloud[1].Y)
	require.Equal(t, 3.5, cloud[1].Z)
}

func TestReadXYZ_EmptyInput(t *testing.T) {
	_, err := ReadXYZ(strings.NewReader(""))
	require.ErrorIs(t, err, ErrEmptyInput)
}

func TestReadXYZ_MalformedLine(t *testing.T) {
	_, err := ReadXYZ(strings.NewReader("0 0 0\nnot a point\n"))
	require.ErrorIs(t, err, ErrMalformedLine)
}
