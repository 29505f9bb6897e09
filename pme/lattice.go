// Package pme: periodic unit cell construction.
// The cell is held as a 3x3 matrix whose rows are the lattice vectors; its
// closed-form inverse supplies the reciprocal lattice by column.

package pme

import (
	"fmt"
	"math"

	"github.com/mdforge/gopme/matrix"
)

// LatticeType selects how the unit cell is oriented relative to the
// coordinate axes.
type LatticeType int

const (
	// XAligned places lattice vector A along the x axis and B in the
	// xy plane (the standard triclinic convention).
	XAligned LatticeType = iota

	// ShapeMatrix uses the unique symmetric representation of the cell,
	// obtained as the spectral square root of the Gram matrix.
	ShapeMatrix
)

// SetLatticeVectors defines the periodic unit cell from edge lengths
// a, b, c and angles alpha, beta, gamma (degrees), oriented per
// latticeType. The reciprocal lattice (cell inverse) and volume are
// derived immediately so the compute path never re-inverts per step.
// Degenerate or non-realizable cells return ErrInvalidParameter.
func (p *Instance[T]) SetLatticeVectors(a, b, c, alpha, beta, gamma T, latticeType LatticeType) error {
	av, bv, cv := float64(a), float64(b), float64(c)
	if av <= 0 || bv <= 0 || cv <= 0 {
		return fmt.Errorf("SetLatticeVectors: edge lengths %g,%g,%g: %w", av, bv, cv, ErrInvalidParameter)
	}
	al := float64(alpha)
	be := float64(beta)
	ga := float64(gamma)
	if !validAngle(al) || !validAngle(be) || !validAngle(ga) {
		return fmt.Errorf("SetLatticeVectors: angles %g,%g,%g: %w", al, be, ga, ErrInvalidParameter)
	}
	if latticeType != XAligned && latticeType != ShapeMatrix {
		return fmt.Errorf("SetLatticeVectors: lattice type %d: %w", latticeType, ErrInvalidParameter)
	}

	// Standard triclinic construction with A along x and B in the xy plane.
	alR, beR, gaR := radians(al), radians(be), radians(ga)
	cx := cv * math.Cos(beR)
	cy := cv * (math.Cos(alR) - math.Cos(beR)*math.Cos(gaR)) / math.Sin(gaR)
	czSq := cv*cv - cx*cx - cy*cy
	if czSq <= 0 {
		return fmt.Errorf("SetLatticeVectors: angles do not form a realizable cell: %w", ErrInvalidParameter)
	}
	cz := math.Sqrt(czSq)

	box, err := matrix.FromRows([][]T{
		{T(av), 0, 0},
		{T(bv * math.Cos(gaR)), T(bv * math.Sin(gaR)), 0},
		{T(cx), T(cy), T(cz)},
	})
	if err != nil {
		return fmt.Errorf("SetLatticeVectors: %w", err)
	}

	if latticeType == ShapeMatrix {
		// The symmetric cell is sqrt(H·Hᵗ): same Gram matrix, no preferred
		// axis alignment.
		gram, mulErr := box.Multiply(box.Transpose())
		if mulErr != nil {
			return fmt.Errorf("SetLatticeVectors: %w", mulErr)
		}
		box, err = gram.ApplyOperation(func(v T) T { return T(math.Sqrt(float64(v))) })
		if err != nil {
			return fmt.Errorf("SetLatticeVectors: %w", err)
		}
	}

	det := det3(box)
	if math.Abs(det) < minCellVolume {
		return fmt.Errorf("SetLatticeVectors: singular cell (volume %g): %w", det, ErrInvalidParameter)
	}
	inv, err := box.Inverse()
	if err != nil {
		return fmt.Errorf("SetLatticeVectors: %w", err)
	}

	p.boxVecs = box
	p.recVecs = inv
	p.volume = math.Abs(det)
	p.latticeSet = true

	return nil
}

// minCellVolume guards the closed-form inversion against a numerically
// collapsed cell.
const minCellVolume = 1e-12

func validAngle(deg float64) bool { return deg > 0 && deg < 180 }

func radians(deg float64) float64 { return deg * math.Pi / 180 }

// det3 returns the determinant of a 3x3 lattice matrix in float64.
func det3[T matrix.Float](m *matrix.Matrix[T]) float64 {
	a := float64(m.At(0, 0))
	b := float64(m.At(0, 1))
	c := float64(m.At(0, 2))
	d := float64(m.At(1, 0))
	e := float64(m.At(1, 1))
	f := float64(m.At(1, 2))
	g := float64(m.At(2, 0))
	h := float64(m.At(2, 1))
	i := float64(m.At(2, 2))

	return a*(e*i-h*f) - b*(d*i-f*g) + c*(d*h-e*g)
}
