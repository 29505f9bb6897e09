// Package matrix: shape and structure preconditions.
// Every shape-sensitive operation funnels through these checks; they return
// sentinels for errors.Is matching rather than panicking.

package matrix

import "fmt"

// CheckSquare returns ErrDimensionMismatch unless the matrix is square.
func (m *Matrix[T]) CheckSquare() error {
	if m.rows != m.cols {
		return fmt.Errorf("square operation on %dx%d matrix: %w", m.rows, m.cols, ErrDimensionMismatch)
	}

	return nil
}

// CheckSameSize returns ErrDimensionMismatch unless other has identical
// dimensions.
func (m *Matrix[T]) CheckSameSize(other *Matrix[T]) error {
	if m.rows != other.rows || m.cols != other.cols {
		return fmt.Errorf("shapes %dx%d and %dx%d: %w",
			m.rows, m.cols, other.rows, other.cols, ErrDimensionMismatch)
	}

	return nil
}

// CheckSymmetric returns ErrAsymmetry if |m[i][j] - m[j][i]| exceeds
// threshold for any pair below the diagonal, after first requiring a square
// shape. DefaultSymmetryTolerance is the conventional threshold.
func (m *Matrix[T]) CheckSymmetric(threshold float64) error {
	if err := m.CheckSquare(); err != nil {
		return err
	}
	for r := 1; r < m.rows; r++ {
		for c := 0; c < r; c++ {
			if absElem(m.data[r*m.cols+c]-m.data[c*m.cols+r]) > threshold {
				return fmt.Errorf("elements (%d,%d) and (%d,%d) differ: %w", r, c, c, r, ErrAsymmetry)
			}
		}
	}

	return nil
}
