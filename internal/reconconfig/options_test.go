package reconconfig

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hoppe/internal/orient"
)

func TestNewParameters_Defaults(t *testing.T) {
	p, err := NewParameters()
	require.NoError(t, err)
	require.Equal(t, 8, p.K)
	require.Equal(t, 0.0, p.Density)
	require.Equal(t, uint64(8_000_000), p.MaxVolume)
	require.Equal(t, orient.ModeParent, p.OrientMode)
}

func TestNewParameters_AppliesOptions(t *testing.T) {
	p, err := NewParameters(WithK(12), WithDensity(0.05), WithNoise(0.01), WithMaxVolume(1000), WithOrientMode(orient.ModeDFSOrder))
	require.NoError(t, err)
	require.Equal(t, 12, p.K)
	require.Equal(t, 0.05, p.Density)
	require.Equal(t, 0.01, p.Noise)
	require.Equal(t, uint64(1000), p.MaxVolume)
	require.Equal(t, orient.ModeDFSOrder, p.OrientMode)
}

func TestNewParameters_InvalidK(t *testing.T) {
	_, err := NewParameters(WithK(1))
	require.ErrorIs(t, err, ErrInvalidK)
}

func TestNewParameters_NegativeDensity(t *testing.T) {
	_, err := NewParameters(WithDensity(-1))
	require.ErrorIs(t, err, ErrNegativeDensity)
}

func TestNewParameters_NegativeNoise(t *testing.T) {
	_, err := NewParameters(WithNoise(-1))
	require.ErrorIs(t, err, ErrNegativeNoise)
}

func TestNewParameters_ZeroMaxVolume(t *testing.T) {
	_, err := NewParameters(WithMaxVolume(0))
	require.ErrorIs(t, err, ErrZeroMaxVolume)
}
