package recon

import "errors"

// ErrEmptyInput indicates Run was called with zero input points
// (spec.md §7 EmptyInput: "return failure without side effects").
var ErrEmptyInput = errors.New("recon: no points to reconstruct")
