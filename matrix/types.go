// Package matrix: shared types and documented defaults.

package matrix

// Numeric policy defaults (single source of truth).
const (
	// DefaultZeroTolerance is the magnitude below which an element is
	// considered zero by IsNearZero and by the complex-spectrum check.
	DefaultZeroTolerance = 1e-10

	// DefaultSymmetryTolerance bounds |m[i][j] - m[j][i]| in CheckSymmetric.
	DefaultSymmetryTolerance = 1e-10

	// DefaultEqualityTolerance is the conventional per-element tolerance for
	// AlmostEquals comparisons in tests and consumers.
	DefaultEqualityTolerance = 1e-6
)

// SortOrder selects how Diagonalize orders eigenpairs, keyed on the real
// part of each eigenvalue.
type SortOrder int

const (
	// Ascending orders eigenpairs by non-decreasing real part.
	Ascending SortOrder = iota

	// Descending is the exact reverse of the Ascending sequence.
	Descending
)

// EigenDecomposition holds the result of Diagonalize: eigenvalue components
// as n×1 column vectors and the eigenvectors stored as the columns of an
// n×n matrix. A fresh value is produced per call; nothing is cached.
type EigenDecomposition[T Element] struct {
	// ValuesReal holds the real parts of the eigenvalues, sorted.
	ValuesReal *Matrix[T]

	// ValuesImag holds the imaginary parts, in the same order.
	ValuesImag *Matrix[T]

	// Vectors holds the eigenvectors by column: column i pairs with
	// eigenvalue i.
	Vectors *Matrix[T]
}
