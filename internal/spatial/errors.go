package spatial

import "errors"

// Sentinel errors for spatial package operations.
var (
	// ErrEmptySet indicates a tree was asked to index zero points.
	ErrEmptySet = errors.New("spatial: cannot build a tree over an empty point set")

	// ErrInvalidK indicates a query requested a non-positive neighbor count.
	ErrInvalidK = errors.New("spatial: k must be > 0")
)
