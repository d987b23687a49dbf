// Package reconconfig defines the reconstruction pipeline's configuration
// options and its InvalidParameter error taxonomy (spec.md §6 Parameters,
// §7 error handling), following the functional-options pattern used
// elsewhere in this module (compare prim_kruskal.MSTOptions).
package reconconfig

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/hoppe/internal/orient"
)

// ErrInvalidK indicates K <= 1.
var ErrInvalidK = errors.New("reconconfig: k must be > 1")

// ErrNegativeDensity indicates a negative Density override.
var ErrNegativeDensity = errors.New("reconconfig: density must be >= 0")

// ErrNegativeNoise indicates a negative Noise value.
var ErrNegativeNoise = errors.New("reconconfig: noise must be >= 0")

// ErrZeroMaxVolume indicates MaxVolume == 0.
var ErrZeroMaxVolume = errors.New("reconconfig: max_volume must be > 0")

const (
	defaultK         = 8
	defaultNoise     = 0.0
	defaultIsolevel  = 0.0
	defaultMaxVolume = 8_000_000
)

// Parameters configures a reconstruction run (spec.md §6).
//
//	K          int     — neighborhood size for plane estimation and the
//	                      orientation graph; must be > 1.
//	Density    float64 — voxel resolution override; 0 means "estimate
//	                      automatically from the bounding box" (spec.md
//	                      §4.7 step 5).
//	Noise      float64 — added to density in the SDF support test.
//	Isolevel   float64 — reserved; current implementation compares raw
//	                      SDF to 0.
//	MaxVolume  uint64  — hard cap on voxel count (Nx*Ny*Nz).
//	OrientMode orient.Mode — sign-propagation strategy (SPEC_FULL.md §3.4).
type Parameters struct {
	K          int
	Density    float64
	Noise      float64
	Isolevel   float64
	MaxVolume  uint64
	OrientMode orient.Mode
}

// Option configures Parameters. All Option functions modify the pointed
// Parameters.
type Option func(*Parameters)

// WithK sets the neighborhood size.
func WithK(k int) Option {
	return func(p *Parameters) { p.K = k }
}

// WithDensity sets a fixed voxel resolution, overriding auto-estimation.
func WithDensity(density float64) Option {
	return func(p *Parameters) { p.Density = density }
}

// WithNoise sets the SDF support-radius slack.
func WithNoise(noise float64) Option {
	return func(p *Parameters) { p.Noise = noise }
}

// WithIsolevel sets the reserved isolevel parameter.
func WithIsolevel(isolevel float64) Option {
	return func(p *Parameters) { p.Isolevel = isolevel }
}

// WithMaxVolume sets the hard voxel-count cap.
func WithMaxVolume(maxVolume uint64) Option {
	return func(p *Parameters) { p.MaxVolume = maxVolume }
}

// WithOrientMode selects the orientation sign-propagation strategy.
func WithOrientMode(mode orient.Mode) Option {
	return func(p *Parameters) { p.OrientMode = mode }
}

// DefaultParameters returns Parameters initialized to spec.md §6's
// defaults: K=8, Density=0 (auto), Noise=0, Isolevel=0, MaxVolume=8,000,000,
// OrientMode=orient.ModeParent.
func DefaultParameters() Parameters {
	return Parameters{
		K:          defaultK,
		Density:    0,
		Noise:      defaultNoise,
		Isolevel:   defaultIsolevel,
		MaxVolume:  defaultMaxVolume,
		OrientMode: orient.ModeParent,
	}
}

// NewParameters builds Parameters from DefaultParameters, applies opts in
// order, then validates the result.
func NewParameters(opts ...Option) (Parameters, error) {
	p := DefaultParameters()
	for _, opt := range opts {
		opt(&p)
	}
	if err := p.Validate(); err != nil {
		return Parameters{}, err
	}
	return p, nil
}

// Validate checks Parameters against spec.md §7's InvalidParameter taxonomy.
func (p Parameters) Validate() error {
	if p.K <= 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidK, p.K)
	}
	if p.Density < 0 {
		return fmt.Errorf("%w: got %v", ErrNegativeDensity, p.Density)
	}
	if p.Noise < 0 {
		return fmt.Errorf("%w: got %v", ErrNegativeNoise, p.Noise)
	}
	if p.MaxVolume == 0 {
		return ErrZeroMaxVolume
	}
	return nil
}
