package orient

import "errors"

// ErrInvalidK indicates k <= 1, mirroring planes.ErrInvalidK since the
// orientation graph is built with the same neighborhood size.
var ErrInvalidK = errors.New("orient: k must be > 1")

// ErrEmptyPlanes indicates Fix was called with no planes to orient.
var ErrEmptyPlanes = errors.New("orient: no planes to orient")
