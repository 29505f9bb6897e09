// Package matrix: multiplication, inner product and tolerance comparison.

package matrix

import "fmt"

// Multiply returns the matrix product m·other as a new owned matrix.
// Blueprint:
//
//	Stage 1 (Validate): m.Cols must equal other.Rows.
//	Stage 2 (Execute): classic triple-loop accumulation, output written
//	sequentially in row-major order.
//
// No BLAS-level speedup is attempted; the solver multiplies small (3x3 and
// n-atom by small) matrices where the triple loop is adequate.
// Complexity: O(m.Rows * other.Cols * m.Cols).
func (m *Matrix[T]) Multiply(other *Matrix[T]) (*Matrix[T], error) {
	if m.cols != other.rows {
		return nil, fmt.Errorf("Multiply: %dx%d by %dx%d: %w",
			m.rows, m.cols, other.rows, other.cols, ErrDimensionMismatch)
	}
	product, err := New[T](m.rows, other.cols)
	if err != nil {
		return nil, fmt.Errorf("Multiply: %w", err)
	}

	out := 0 // flat write cursor into product.data
	for row := 0; row < m.rows; row++ {
		rowData := m.data[row*m.cols : (row+1)*m.cols]
		for col := 0; col < other.cols; col++ {
			var acc T
			for link := 0; link < m.cols; link++ {
				acc += rowData[link] * other.data[link*other.cols+col]
			}
			product.data[out] = acc
			out++
		}
	}

	return product, nil
}

// Dot computes the flattened inner product of two same-shaped matrices,
// accumulated in the element type. No conjugation is applied for complex
// elements.
func (m *Matrix[T]) Dot(other *Matrix[T]) (T, error) {
	var acc T
	if err := m.CheckSameSize(other); err != nil {
		return acc, fmt.Errorf("Dot: %w", err)
	}
	for i, v := range m.data {
		acc += v * other.data[i]
	}

	return acc, nil
}

// AlmostEquals reports whether every element of m matches other within
// tolerance. Real element types compare the signed difference against
// ±tolerance; complex element types compare real and imaginary parts
// independently against the real part of tolerance.
// Returns ErrDimensionMismatch when the shapes differ.
func (m *Matrix[T]) AlmostEquals(other *Matrix[T], tolerance T) (bool, error) {
	if err := m.CheckSameSize(other); err != nil {
		return false, fmt.Errorf("AlmostEquals: %w", err)
	}
	tol := realPart(tolerance)
	for i, v := range m.data {
		if !elemWithin(v, other.data[i], tol) {
			return false, nil
		}
	}

	return true, nil
}
