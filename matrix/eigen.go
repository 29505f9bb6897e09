// Package matrix: the external eigen-solver capability.
// Diagonalize needs a general (non-symmetric) eigensystem; computing one is
// the job of an external solver, encapsulated behind Decomposer so the
// calling code needs no awareness of workspace-size probing or storage
// conventions beyond "eigenvector i is column i".

package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/lapack"
	"gonum.org/v1/gonum/lapack/lapack64"
)

// Decomposer computes the full eigensystem of a general real square matrix.
// Implementations may destroy the contents of a.
type Decomposer interface {
	// DecomposeGeneral returns the real and imaginary eigenvalue components
	// and an n×n row-major vector buffer with eigenvector i stored down
	// column i. A solver failure is reported as an error wrapping
	// ErrDecompositionFailed.
	DecomposeGeneral(n int, a []float64) (valuesReal, valuesImag, vectors []float64, err error)
}

// defaultDecomposer serves every Diagonalize call. Package-level and
// immutable after init; swapping it is not part of the public surface.
var defaultDecomposer Decomposer = LAPACK{}

// LAPACK is the stock Decomposer, backed by gonum's dgeev. It follows the
// standard two-phase calling convention: a workspace-size query with
// lwork = -1, then the actual decomposition with the recommended scratch.
type LAPACK struct{}

// DecomposeGeneral implements Decomposer.
func (LAPACK) DecomposeGeneral(n int, a []float64) ([]float64, []float64, []float64, error) {
	if n <= 0 || len(a) < n*n {
		return nil, nil, nil, fmt.Errorf("DecomposeGeneral: order %d over %d elements: %w",
			n, len(a), ErrBadShape)
	}

	am := blas64.General{Rows: n, Cols: n, Stride: n, Data: a}
	vr := blas64.General{Rows: n, Cols: n, Stride: n, Data: make([]float64, n*n)}
	var vl blas64.General // left vectors not requested
	valsRe := make([]float64, n)
	valsIm := make([]float64, n)

	// Phase one: workspace query.
	query := make([]float64, 1)
	lapack64.Geev(lapack.LeftEVNone, lapack.RightEVCompute, am, valsRe, valsIm, vl, vr, query, -1)

	// Phase two: decompose with the recommended scratch size.
	scratch := make([]float64, int(query[0]))
	first := lapack64.Geev(lapack.LeftEVNone, lapack.RightEVCompute, am, valsRe, valsIm, vl, vr, scratch, len(scratch))
	if first != 0 {
		return nil, nil, nil, fmt.Errorf("DecomposeGeneral: dgeev converged only past index %d: %w",
			first, ErrDecompositionFailed)
	}

	return valsRe, valsIm, vr.Data, nil
}
