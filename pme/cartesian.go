package pme

// CartesianCount returns the number of Cartesian multipole parameters per
// particle for all shells up to and including angular momentum l:
// (l+1)(l+2)(l+3)/6. Charge-only systems (l=0) carry one parameter;
// charge+dipole (l=1) carries four; adding quadrupoles (l=2) makes ten.
// The result is the required column count of the parameter matrix.
func CartesianCount(angMom int) int {
	return (angMom + 1) * (angMom + 2) * (angMom + 3) / 6
}
