// Package matrix: test-only access to package privates.
// Mirrors the convention of keeping all white-box hooks in one file so the
// public surface stays clean.

package matrix

// SetDecomposerForTest swaps the package eigen-solver and returns a restore
// function. Tests use it to simulate solver failure modes (non-zero status,
// complex spectra) that the stock LAPACK path cannot produce from the
// symmetric inputs the spectral routines accept.
func SetDecomposerForTest(d Decomposer) (restore func()) {
	prev := defaultDecomposer
	defaultDecomposer = d

	return func() { defaultDecomposer = prev }
}
