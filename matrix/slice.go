// Package matrix: strided row/column views.
// A Slice is a read/write projection over every stride-th element of a
// matrix's backing buffer. Slices are only constructed by Row and Col and
// never outlive the Matrix they view.

package matrix

import "fmt"

// Slice is a strided view over a matrix row (stride 1) or column
// (stride = column count). start and end are flat indices into the backing
// buffer, end exclusive; (end-start) is always evenly divisible by stride.
type Slice[T Element] struct {
	data   []T
	start  int
	end    int
	stride int
}

// Row returns a contiguous view over row r.
func (m *Matrix[T]) Row(r int) Slice[T] {
	return Slice[T]{data: m.data, start: r * m.cols, end: (r + 1) * m.cols, stride: 1}
}

// Col returns a strided view over column c.
// Note the end index is one stride past the last element and may exceed the
// buffer length; it is a loop bound, never dereferenced.
func (m *Matrix[T]) Col(c int) Slice[T] {
	return Slice[T]{data: m.data, start: c, end: m.rows*m.cols + c, stride: m.cols}
}

// Len returns the number of elements the view projects.
func (s Slice[T]) Len() int { return (s.end - s.start) / s.stride }

// At returns the i-th projected element.
func (s Slice[T]) At(i int) T { return s.data[s.start+i*s.stride] }

// SetAt assigns the i-th projected element.
func (s Slice[T]) SetAt(i int, v T) { s.data[s.start+i*s.stride] = v }

// MulScalar multiplies every element of the view by v, in place.
func (s Slice[T]) MulScalar(v T) {
	for i := s.start; i < s.end; i += s.stride {
		s.data[i] *= v
	}
}

// DivScalar divides every element of the view by v, in place.
// Implemented as multiplication by the reciprocal.
func (s Slice[T]) DivScalar(v T) {
	inv := fromFloat64[T](1) / v
	for i := s.start; i < s.end; i += s.stride {
		s.data[i] *= inv
	}
}

// AddScalar adds v to every element of the view, in place.
func (s Slice[T]) AddScalar(v T) {
	for i := s.start; i < s.end; i += s.stride {
		s.data[i] += v
	}
}

// SubScalar subtracts v from every element of the view, in place.
func (s Slice[T]) SubScalar(v T) {
	for i := s.start; i < s.end; i += s.stride {
		s.data[i] -= v
	}
}

// checkPair validates a view-to-view operation: both views must project the
// same number of elements (ErrDimensionMismatch) and both must be
// contiguous, i.e. stride 1 (ErrNonContiguous). Column views fail the
// contiguity requirement by construction.
func (s Slice[T]) checkPair(other Slice[T]) error {
	if s.Len() != other.Len() {
		return fmt.Errorf("slice sizes %d and %d: %w", s.Len(), other.Len(), ErrDimensionMismatch)
	}
	if s.stride != 1 || other.stride != 1 {
		return ErrNonContiguous
	}

	return nil
}

// Sub returns the elementwise difference s - other as a new 1×n matrix.
// Both views must be contiguous and of equal size.
func (s Slice[T]) Sub(other Slice[T]) (*Matrix[T], error) {
	if err := s.checkPair(other); err != nil {
		return nil, fmt.Errorf("Slice.Sub: %w", err)
	}
	out, err := New[T](1, s.Len())
	if err != nil {
		return nil, fmt.Errorf("Slice.Sub: %w", err)
	}
	for i := 0; i < s.Len(); i++ {
		out.data[i] = s.data[s.start+i] - other.data[other.start+i]
	}

	return out, nil
}

// SubInPlace subtracts other from s elementwise, writing into s.
// Both views must be contiguous and of equal size.
func (s Slice[T]) SubInPlace(other Slice[T]) error {
	if err := s.checkPair(other); err != nil {
		return fmt.Errorf("Slice.SubInPlace: %w", err)
	}
	for i := 0; i < s.Len(); i++ {
		s.data[s.start+i] -= other.data[other.start+i]
	}

	return nil
}

// AddInPlace adds other to s elementwise, writing into s.
// Both views must be contiguous and of equal size.
func (s Slice[T]) AddInPlace(other Slice[T]) error {
	if err := s.checkPair(other); err != nil {
		return fmt.Errorf("Slice.AddInPlace: %w", err)
	}
	for i := 0; i < s.Len(); i++ {
		s.data[s.start+i] += other.data[other.start+i]
	}

	return nil
}
