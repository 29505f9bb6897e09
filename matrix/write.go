// Package matrix: formatted output.

package matrix

import (
	"fmt"
	"io"
	"strings"
)

// Write dumps the matrix to w in fixed notation: 10 decimal places padded
// to 18 columns, one row per line, a trailing blank line after the last
// row. Complex elements render as (real,imag) pairs in the same field
// width.
func (m *Matrix[T]) Write(w io.Writer) error {
	for r := 0; r < m.rows; r++ {
		for _, v := range m.RowData(r) {
			if _, err := io.WriteString(w, formatElem(v)+" "); err != nil {
				return fmt.Errorf("Write: %w", err)
			}
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return fmt.Errorf("Write: %w", err)
		}
	}
	if _, err := io.WriteString(w, "\n"); err != nil {
		return fmt.Errorf("Write: %w", err)
	}

	return nil
}

// String implements fmt.Stringer using the Write format.
func (m *Matrix[T]) String() string {
	var sb strings.Builder
	_ = m.Write(&sb) // strings.Builder never fails

	return sb.String()
}

// formatElem renders one element in fixed 18.10 notation.
func formatElem[T Element](v T) string {
	switch x := any(v).(type) {
	case float32:
		return fmt.Sprintf("%18.10f", x)
	case float64:
		return fmt.Sprintf("%18.10f", x)
	case complex64:
		return fmt.Sprintf("%18s", fmt.Sprintf("(%.10f,%.10f)", real(x), imag(x)))
	case complex128:
		return fmt.Sprintf("%18s", fmt.Sprintf("(%.10f,%.10f)", real(x), imag(x)))
	}

	return ""
}
