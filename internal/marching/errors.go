package marching

import "errors"

// ErrInvalidGrid indicates a Grid with a non-positive axis count or
// resolution was passed to Sweep.
var ErrInvalidGrid = errors.New("marching: grid dimensions and resolution must be positive")
