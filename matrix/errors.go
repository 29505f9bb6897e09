// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All operations MUST return these sentinels and tests MUST check them
// via errors.Is. No operation panics on user-triggered error conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. DO NOT %w wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("ctx: %w", ErrX)
// at the call site — callers will still use errors.Is to match.

var (
	// ErrBadShape is returned when a requested shape is invalid (r<=0 or c<=0)
	// or a wrapped buffer is too short for the requested dimensions.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrDimensionMismatch indicates incompatible dimensions between operands:
	// Multiply where a.Cols != b.Rows, Dot/AlmostEquals on different shapes,
	// slice arithmetic on views of different length, or a square-only
	// operation invoked on a rectangular matrix.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrAsymmetry signals that a matrix expected to be symmetric violated
	// symmetry within the given tolerance.
	ErrAsymmetry = errors.New("matrix: matrix is not symmetric within tolerance")

	// ErrUnsupported marks an intentionally unsupported operation, such as
	// general inversion of a non-symmetric matrix of size other than 3x3,
	// or spectral routines over complex element types.
	ErrUnsupported = errors.New("matrix: operation not supported")

	// ErrComplexSpectrum is returned when a spectral matrix function finds
	// eigenvalues with non-negligible imaginary parts.
	ErrComplexSpectrum = errors.New("matrix: unexpected complex eigenvalues")

	// ErrDecompositionFailed indicates that the external eigen-solver
	// reported a non-zero status.
	ErrDecompositionFailed = errors.New("matrix: eigen decomposition failed")

	// ErrNonContiguous is returned when view-to-view arithmetic is attempted
	// on a strided (non-contiguous) slice, e.g. a column view.
	ErrNonContiguous = errors.New("matrix: slice is not contiguous")

	// ErrMalformedLiteral is returned by FromRows when the nested rows have
	// inconsistent lengths.
	ErrMalformedLiteral = errors.New("matrix: inconsistent row lengths")
)
