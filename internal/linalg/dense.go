// Package linalg provides the small amount of linear algebra the
// reconstruction pipeline needs: a row-major dense matrix and a Jacobi
// eigensolver for symmetric matrices. It is a trimmed, domain-specialized
// adaptation of lvlath's matrix package: the same Matrix shape (At/Set/
// Rows/Cols/Clone) and the same Jacobi sweep, stripped of the
// graph-adjacency machinery this domain has no use for (see DESIGN.md).
package linalg

import (
	"errors"
	"fmt"
)

// ErrInvalidDimensions indicates requested matrix dimensions are non-positive.
var ErrInvalidDimensions = errors.New("linalg: dimensions must be > 0")

// ErrIndexOutOfBounds indicates a row or column index fell outside the matrix.
var ErrIndexOutOfBounds = errors.New("linalg: index out of bounds")

// Matrix is the minimal interface the eigensolver needs. Dense is the only
// implementation in this package, but the interface keeps Eigen's signature
// decoupled from storage, matching the teacher's convention.
type Matrix interface {
	Rows() int
	Cols() int
	At(row, col int) (float64, error)
	Set(row, col int, v float64) error
	Clone() Matrix
}

// Dense is a row-major matrix of float64 values.
type Dense struct {
	r, c int
	data []float64
}

var _ Matrix = (*Dense)(nil)

// NewDense allocates a rows×cols matrix of zeros.
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// Rows returns the row count.
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count.
func (m *Dense) Cols() int { return m.c }

func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, fmt.Errorf("Dense(%d,%d): %w", row, col, ErrIndexOutOfBounds)
	}
	return row*m.c + col, nil
}

// At returns the element at (row, col).
func (m *Dense) At(row, col int) (float64, error) {
	i, err := m.indexOf(row, col)
	if err != nil {
		return 0, err
	}
	return m.data[i], nil
}

// Set assigns v at (row, col).
func (m *Dense) Set(row, col int, v float64) error {
	i, err := m.indexOf(row, col)
	if err != nil {
		return err
	}
	m.data[i] = v
	return nil
}

// Clone returns a deep copy.
func (m *Dense) Clone() Matrix {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)
	return &Dense{r: m.r, c: m.c, data: cp}
}
