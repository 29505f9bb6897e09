// Package matrix: inversion, spectral matrix functions and the
// eigen-decomposition ordering protocol.

package matrix

import (
	"fmt"
	"sort"
)

// Inverse returns the inverse of this square matrix, leaving the original
// untouched.
//
// Size 3 takes the closed-form adjugate/determinant fast path, valid for
// every element type; 3x3 lattice matrices dominate the solver's usage.
// Any other size is inverted spectrally and therefore supports only
// symmetric matrices: a non-symmetric input returns ErrUnsupported (a
// known limitation — a general LAPACK inversion would be needed to lift
// it, and nothing in this repository requires one).
func (m *Matrix[T]) Inverse() (*Matrix[T], error) {
	if err := m.CheckSquare(); err != nil {
		return nil, fmt.Errorf("Inverse: %w", err)
	}

	if m.rows == 3 {
		d := m.data
		det := d[0]*(d[4]*d[8]-d[7]*d[5]) -
			d[1]*(d[3]*d[8]-d[5]*d[6]) +
			d[2]*(d[3]*d[7]-d[4]*d[6])
		detInv := fromFloat64[T](1) / det

		inv, err := New[T](3, 3)
		if err != nil {
			return nil, fmt.Errorf("Inverse: %w", err)
		}
		o := inv.data
		o[0] = (d[4]*d[8] - d[7]*d[5]) * detInv
		o[1] = (d[2]*d[7] - d[1]*d[8]) * detInv
		o[2] = (d[1]*d[5] - d[2]*d[4]) * detInv
		o[3] = (d[5]*d[6] - d[3]*d[8]) * detInv
		o[4] = (d[0]*d[8] - d[2]*d[6]) * detInv
		o[5] = (d[3]*d[2] - d[0]*d[5]) * detInv
		o[6] = (d[3]*d[7] - d[6]*d[4]) * detInv
		o[7] = (d[6]*d[1] - d[0]*d[7]) * detInv
		o[8] = (d[0]*d[4] - d[3]*d[1]) * detInv

		return inv, nil
	}

	if err := m.CheckSymmetric(DefaultSymmetryTolerance); err != nil {
		return nil, fmt.Errorf("Inverse: general non-symmetric inversion: %w", ErrUnsupported)
	}

	one := fromFloat64[T](1)

	return m.ApplyOperation(func(v T) T { return one / v })
}

// ApplyOperation applies a scalar function to this symmetric matrix's
// spectrum, leaving the original untouched.
// Blueprint:
//
//	Stage 1 (Validate): require symmetry within DefaultSymmetryTolerance.
//	Stage 2 (Decompose): diagonalize; eigenvalues with non-negligible
//	imaginary parts fail with ErrComplexSpectrum.
//	Stage 3 (Transform): apply fn to each real eigenvalue.
//	Stage 4 (Reconstruct): scale row i of Vᵗ by fn(λᵢ), then return V·Vᵗ.
//	Scaling the rows stands in for the diagonal factor, so no explicit
//	diag(fn(λ)) matrix is formed.
func (m *Matrix[T]) ApplyOperation(fn func(T) T) (*Matrix[T], error) {
	if err := m.CheckSymmetric(DefaultSymmetryTolerance); err != nil {
		return nil, fmt.Errorf("ApplyOperation: %w", err)
	}

	eig, err := m.Diagonalize(Ascending)
	if err != nil {
		return nil, fmt.Errorf("ApplyOperation: %w", err)
	}
	if !eig.ValuesImag.IsNearZero(DefaultZeroTolerance) {
		return nil, fmt.Errorf("ApplyOperation: %w", ErrComplexSpectrum)
	}

	for i, v := range eig.ValuesReal.data {
		eig.ValuesReal.data[i] = fn(v)
	}

	vt := eig.Vectors.Transpose()
	for row := 0; row < vt.rows; row++ {
		vt.Row(row).MulScalar(eig.ValuesReal.data[row])
	}

	out, err := eig.Vectors.Multiply(vt)
	if err != nil {
		return nil, fmt.Errorf("ApplyOperation: %w", err)
	}

	return out, nil
}

// eigenPair carries one (eigenvalue, eigenvector) association through the
// sort: the vector is addressed by its row index in the solver output
// rather than copied.
type eigenPair struct {
	re, im float64
	row    int
}

// Diagonalize computes the full eigensystem of this square matrix, leaving
// the original untouched. The external general eigen-solver is consulted
// through the Decomposer capability (its two-phase workspace protocol is
// hidden there); the rows of its vector output are reinterpreted as
// eigenvectors, sorted together with the eigenvalues by real part
// (ascending, with the whole sequence reversed for Descending), and the
// vector storage is transposed in place so eigenvectors end up stored as
// columns of the result.
//
// The sort is keyed on the real part only; the relative order of eigenpairs
// sharing an identical real part is unspecified.
//
// Complex element types are not supported (the solver capability is real
// general) and return ErrUnsupported. A non-zero solver status surfaces as
// ErrDecompositionFailed.
func (m *Matrix[T]) Diagonalize(order SortOrder) (*EigenDecomposition[T], error) {
	if err := m.CheckSquare(); err != nil {
		return nil, fmt.Errorf("Diagonalize: %w", err)
	}
	if isComplex[T]() {
		return nil, fmt.Errorf("Diagonalize: complex element type: %w", ErrUnsupported)
	}
	n := m.rows

	// The solver mutates its input, so hand it a float64 copy.
	work := make([]float64, n*n)
	for i, v := range m.data {
		work[i] = realPart(v)
	}
	valsRe, valsIm, vectors, err := defaultDecomposer.DecomposeGeneral(n, work)
	if err != nil {
		return nil, fmt.Errorf("Diagonalize: %w", err)
	}

	// The solver stores eigenvector i down column i; flip the storage so
	// vector i occupies row i for the rearrangement below.
	vm := &Matrix[float64]{rows: n, cols: n, data: vectors, owned: true}
	vm.TransposeInPlace()

	pairs := make([]eigenPair, n)
	for i := range pairs {
		pairs[i] = eigenPair{re: valsRe[i], im: valsIm[i], row: i}
	}
	sort.Slice(pairs, func(i, j int) bool { return pairs[i].re < pairs[j].re })
	if order == Descending {
		for i, j := 0, n-1; i < j; i, j = i+1, j-1 {
			pairs[i], pairs[j] = pairs[j], pairs[i]
		}
	}

	outRe, err := New[T](n, 1)
	if err != nil {
		return nil, fmt.Errorf("Diagonalize: %w", err)
	}
	outIm, _ := New[T](n, 1)
	outVecs, _ := New[T](n, n)
	for i, p := range pairs {
		outRe.data[i] = fromFloat64[T](p.re)
		outIm.data[i] = fromFloat64[T](p.im)
		src := vm.RowData(p.row)
		dst := outVecs.RowData(i)
		for c, v := range src {
			dst[c] = fromFloat64[T](v)
		}
	}
	outVecs.TransposeInPlace()

	return &EigenDecomposition[T]{ValuesReal: outRe, ValuesImag: outIm, Vectors: outVecs}, nil
}
