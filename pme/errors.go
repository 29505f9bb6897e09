// Package pme: sentinel error set.
// All operations return these sentinels (wrapped with context) and tests
// check them via errors.Is; the fatal-on-error policy lives exclusively in
// the foreign-call shim, never here.

package pme

import "errors"

var (
	// ErrInvalidParameter is returned by Setup, SetLatticeVectors and the
	// compute path when a configuration value or buffer shape is
	// semantically empty or out of range.
	ErrInvalidParameter = errors.New("pme: invalid parameter")

	// ErrNotConfigured is returned when energy evaluation is requested
	// before both Setup and SetLatticeVectors have succeeded.
	ErrNotConfigured = errors.New("pme: instance not configured")

	// ErrUnsupported marks requested functionality outside the implemented
	// kernel: interaction powers other than Coulomb, or multipole orders
	// above point charges.
	ErrUnsupported = errors.New("pme: operation not supported")
)
