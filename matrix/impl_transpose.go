// Package matrix: transposition and deep copies.

package matrix

// TransposeInPlace transposes the matrix in place using cycle-following
// permutation over the flattened buffer, then swaps the row and column
// counts. The visited bit-set costs O(r*c) auxiliary bits; no second
// full-size element buffer is allocated, which is the point of the
// algorithm — a copy-transpose would double the footprint on the large
// borrowed buffers the solver hands in.
// Complexity: O(r*c) time.
func (m *Matrix[T]) TransposeInPlace() {
	size := m.rows * m.cols
	if size > 1 {
		last := size - 1
		visited := make([]bool, size)
		for cycle := 1; cycle < size; cycle++ {
			if visited[cycle] {
				continue
			}
			// Follow the permutation cycle starting at this index: in the
			// transposed layout, flat index a receives the element from
			// (rows*a) mod (size-1), with the final index fixed.
			a := cycle
			for {
				if a != last {
					a = (m.rows * a) % last
				}
				m.data[a], m.data[cycle] = m.data[cycle], m.data[a]
				visited[a] = true
				if a == cycle {
					break
				}
			}
		}
	}
	m.rows, m.cols = m.cols, m.rows
}

// Clone returns a deep copy of the matrix with newly owned storage.
// Cloning a borrowed view yields an owned matrix.
func (m *Matrix[T]) Clone() *Matrix[T] {
	data := make([]T, len(m.data))
	copy(data, m.data)

	return &Matrix[T]{rows: m.rows, cols: m.cols, data: data, owned: true}
}

// Transpose returns a transposed deep copy, leaving the original untouched.
func (m *Matrix[T]) Transpose() *Matrix[T] {
	out := m.Clone()
	out.TransposeInPlace()

	return out
}
