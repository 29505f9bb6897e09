// Package matrix: the dense container and its constructors.
// Matrix is a row-major 2-D view over a flat element slice. The storage is
// either owned (allocated here) or borrowed (wrapped caller memory, never
// freed or reallocated by this package). Logical element (r,c) lives at
// data[r*cols+c].

package matrix

import "fmt"

// Matrix is a dense, row-major matrix over a real or complex element type.
// The zero value is an empty matrix with no storage.
//
// Exactly one storage mode is active per value: owned (allocated by a
// constructor in this package) or borrowed (Wrap). A borrowed Matrix must
// not outlive the buffer it views, and the kernel assumes exclusive access
// to that buffer for the duration of any operation.
type Matrix[T Element] struct {
	rows, cols int
	data       []T
	owned      bool
}

// New creates an owned, zero-initialized rows×cols matrix.
// Returns ErrBadShape when rows or cols is non-positive.
// Complexity: O(r*c) time and memory.
func New[T Element](rows, cols int) (*Matrix[T], error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("New(%d,%d): %w", rows, cols, ErrBadShape)
	}

	return &Matrix[T]{rows: rows, cols: cols, data: make([]T, rows*cols), owned: true}, nil
}

// FromRows creates an owned matrix from nested row literals, copying the
// values. Every row must have the same length; a ragged literal returns
// ErrMalformedLiteral, and an empty one returns ErrBadShape.
func FromRows[T Element](rows [][]T) (*Matrix[T], error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("FromRows: empty literal: %w", ErrBadShape)
	}
	cols := len(rows[0])
	data := make([]T, 0, len(rows)*cols)
	for i, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("FromRows: row %d has %d elements, want %d: %w",
				i, len(row), cols, ErrMalformedLiteral)
		}
		data = append(data, row...)
	}

	return &Matrix[T]{rows: len(rows), cols: cols, data: data, owned: true}, nil
}

// ColumnVector creates an owned n×1 matrix from a flat literal, copying the
// values. Returns ErrBadShape for an empty slice.
func ColumnVector[T Element](values []T) (*Matrix[T], error) {
	if len(values) == 0 {
		return nil, fmt.Errorf("ColumnVector: empty literal: %w", ErrBadShape)
	}
	data := make([]T, len(values))
	copy(data, values)

	return &Matrix[T]{rows: len(values), cols: 1, data: data, owned: true}, nil
}

// Wrap creates a borrowed rows×cols view over buf without allocating or
// copying. The caller guarantees buf stays valid (and is not mutated
// concurrently) for the lifetime of the returned Matrix; mutations through
// either alias are visible to the other. Returns ErrBadShape when buf is
// too short or the dimensions are non-positive.
func Wrap[T Element](buf []T, rows, cols int) (*Matrix[T], error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("Wrap(%d,%d): %w", rows, cols, ErrBadShape)
	}
	if len(buf) < rows*cols {
		return nil, fmt.Errorf("Wrap(%d,%d): buffer holds %d elements, need %d: %w",
			rows, cols, len(buf), rows*cols, ErrBadShape)
	}

	return &Matrix[T]{rows: rows, cols: cols, data: buf[:rows*cols]}, nil
}

// Rows returns the number of rows.
func (m *Matrix[T]) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m *Matrix[T]) Cols() int { return m.cols }

// IsOwned reports whether the matrix owns its storage (false for Wrap views).
func (m *Matrix[T]) IsOwned() bool { return m.owned }

// At returns element (r,c). Bounds are the caller's responsibility; there is
// deliberately no bounds check on this hot path.
func (m *Matrix[T]) At(r, c int) T { return m.data[r*m.cols+c] }

// Set assigns element (r,c). Bounds are the caller's responsibility.
func (m *Matrix[T]) Set(r, c int, v T) { m.data[r*m.cols+c] = v }

// RowData returns the backing slice of row r, for interop with
// buffer-oriented external routines. Writes through the returned slice
// mutate the matrix.
func (m *Matrix[T]) RowData(r int) []T { return m.data[r*m.cols : (r+1)*m.cols] }

// Data returns the full backing slice in row-major order.
func (m *Matrix[T]) Data() []T { return m.data }

// SetConstant assigns v to every element.
func (m *Matrix[T]) SetConstant(v T) {
	for i := range m.data {
		m.data[i] = v
	}
}

// SetZero assigns zero to every element.
func (m *Matrix[T]) SetZero() {
	var zero T
	m.SetConstant(zero)
}

// IsNearZero reports whether every element's magnitude is at most threshold
// (DefaultZeroTolerance is the conventional choice).
func (m *Matrix[T]) IsNearZero(threshold float64) bool {
	for _, v := range m.data {
		if absElem(v) > threshold {
			return false
		}
	}

	return true
}

// Cast copies m into a newly owned matrix of a different element type,
// converting elementwise. Casting a complex matrix to a real type drops the
// imaginary parts.
func Cast[To, From Element](m *Matrix[From]) *Matrix[To] {
	out := &Matrix[To]{rows: m.rows, cols: m.cols, data: make([]To, len(m.data)), owned: true}
	for i, v := range m.data {
		out.data[i] = fromParts[To](realPart(v), imagPart(v))
	}

	return out
}
