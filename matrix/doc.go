// Package matrix provides the dense linear-algebra kernel used by the
// reciprocal-space solver.
//
// The matrix package provides:
//
//   - A generic, row-major Matrix over real and complex element types,
//     either owning its storage or borrowing caller-supplied memory
//     without copying (the borrowed-view contract used at the foreign
//     boundary).
//   - Strided Slice views over single rows and columns, with in-place
//     scalar and view-to-view arithmetic.
//   - In-place transposition by cycle-following permutation, classic
//     triple-loop multiplication, closed-form 3x3 inversion and
//     spectral inversion of symmetric matrices.
//   - Spectral matrix functions (apply a scalar function to a symmetric
//     matrix's eigenvalues and reconstruct), and an eigen-decomposition
//     protocol built atop an external general eigen-solver.
//
// All shape and structure violations surface as package sentinel errors
// matched via errors.Is; element access itself is unchecked by design
// (performance-critical path, bounds are the caller's responsibility).
package matrix
