package planes

import "errors"

// Sentinel errors for the planes package, following the taxonomy in
// spec.md §7.
var (
	// ErrInvalidK indicates k <= 1, which cannot support a covariance fit.
	ErrInvalidK = errors.New("planes: k must be > 1")

	// ErrEmptyInput indicates an empty point cloud was handed to Estimate.
	ErrEmptyInput = errors.New("planes: point cloud is empty")
)
