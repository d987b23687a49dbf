package linalg

import (
	"errors"
	"fmt"
	"math"
)

// ErrNotSymmetric is returned when the input matrix is not symmetric.
var ErrNotSymmetric = errors.New("linalg: matrix is not symmetric")

// ErrEigenFailed is returned if the algorithm does not converge within maxIter.
var ErrEigenFailed = errors.New("linalg: eigen decomposition did not converge")

// defaultTol and defaultMaxIter are sane defaults for the small (3×3)
// covariance matrices this package's only caller (internal/planes) feeds it.
const (
	defaultTol     = 1e-10
	defaultMaxIter = 100
)

// Eigen performs Jacobi eigenvalue decomposition on symmetric matrix m.
// Returns the eigenvalues and a matrix Q whose columns are the corresponding
// eigenvectors. tol bounds the largest off-diagonal element at convergence;
// maxIter caps the number of iterations, each a single rotation that zeroes
// the largest off-diagonal element.
//
// Complexity: O(n²) per iteration, O(maxIter·n²) worst case.
func Eigen(m Matrix, tol float64, maxIter int) ([]float64, Matrix, error) {
	n, cols := m.Rows(), m.Cols()
	if n != cols {
		return nil, nil, fmt.Errorf("Eigen: non-square %dx%d", n, cols)
	}

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			aij, _ := m.At(i, j)
			aji, _ := m.At(j, i)
			if math.Abs(aij-aji) > tol {
				return nil, nil, ErrNotSymmetric
			}
		}
	}

	A := m.Clone()
	Q, err := NewDense(n, n)
	if err != nil {
		return nil, nil, fmt.Errorf("Eigen: %w", err)
	}
	for i := 0; i < n; i++ {
		_ = Q.Set(i, i, 1.0)
	}

	iter := 0
	for ; iter < maxIter; iter++ {
		p, q := 0, 1
		maxOff := 0.0
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				off, _ := A.At(i, j)
				if a := math.Abs(off); a > maxOff {
					maxOff, p, q = a, i, j
				}
			}
		}
		if maxOff < tol {
			break
		}

		app, _ := A.At(p, p)
		aqq, _ := A.At(q, q)
		apq, _ := A.At(p, q)

		theta := (aqq - app) / (2 * apq)
		t := math.Copysign(1.0/(math.Abs(theta)+math.Sqrt(theta*theta+1)), theta)
		c := 1.0 / math.Sqrt(t*t+1)
		s := t * c

		for i := 0; i < n; i++ {
			if i == p || i == q {
				continue
			}
			aip, _ := A.At(i, p)
			aiq, _ := A.At(i, q)
			_ = A.Set(i, p, c*aip-s*aiq)
			_ = A.Set(p, i, c*aip-s*aiq)
			_ = A.Set(i, q, s*aip+c*aiq)
			_ = A.Set(q, i, s*aip+c*aiq)
		}
		_ = A.Set(p, p, c*c*app-2*c*s*apq+s*s*aqq)
		_ = A.Set(q, q, s*s*app+2*c*s*apq+c*c*aqq)
		_ = A.Set(p, q, 0.0)
		_ = A.Set(q, p, 0.0)

		for i := 0; i < n; i++ {
			qip, _ := Q.At(i, p)
			qiq, _ := Q.At(i, q)
			_ = Q.Set(i, p, c*qip-s*qiq)
			_ = Q.Set(i, q, s*qip+c*qiq)
		}
	}

	if iter == maxIter {
		return nil, nil, ErrEigenFailed
	}

	eigs := make([]float64, n)
	for i := 0; i < n; i++ {
		eigs[i], _ = A.At(i, i)
	}

	return eigs, Q, nil
}
