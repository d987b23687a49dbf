package meshio

import "errors"

// ErrEmptyInput indicates an XYZ stream contained no usable point lines.
var ErrEmptyInput = errors.New("meshio: input contains no points")

// ErrMalformedLine indicates a non-blank XYZ line did not parse as three
// whitespace-separated floats.
var ErrMalformedLine = errors.New("meshio: malformed point line")
