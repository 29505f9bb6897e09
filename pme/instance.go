// Package pme: instance lifecycle and the compute entry point.

package pme

import (
	"fmt"

	"github.com/mdforge/gopme/matrix"
)

// Instance drives reciprocal-space electrostatics for one periodic system,
// instantiated per precision (float64 for the high-precision surface,
// float32 for the reduced-precision one).
//
// Configuration is two-step: Setup fixes the interaction kernel and grid,
// SetLatticeVectors fixes the cell. Both must succeed before
// ComputeEnergyAndForces. Instances hold no locks; concurrent calls on the
// same Instance require external serialization.
type Instance[T matrix.Float] struct {
	rPower      int
	kappa       float64
	splineOrder int
	dimA        int
	dimB        int
	dimC        int
	scaleFactor float64
	nThreads    int

	boxVecs *matrix.Matrix[T] // 3x3, rows are the lattice vectors
	recVecs *matrix.Matrix[T] // closed-form inverse of boxVecs
	volume  float64

	configured bool
	latticeSet bool
}

// New allocates an unconfigured solver instance.
func New[T matrix.Float]() *Instance[T] {
	return &Instance[T]{}
}

// Setup configures the reciprocal-space pipeline.
// Blueprint:
//
//	Stage 1 (Validate): every value must be semantically non-empty —
//	positive counts and dimensions, positive attenuation, non-zero scale.
//	Stage 2 (Store): record the configuration; nothing is allocated until
//	the first compute call.
//
// rPower selects the interaction-kernel power (1 for Coulomb); kappa is
// the Ewald attenuation parameter; dimA/dimB/dimC bound the reciprocal
// lattice per axis; scaleFactor multiplies the returned energy and forces;
// nThreads caps the compute fan-out (it is configuration handed to the
// pipeline, not kernel behavior).
func (p *Instance[T]) Setup(rPower int, kappa T, splineOrder, dimA, dimB, dimC int, scaleFactor T, nThreads int) error {
	switch {
	case rPower < 1:
		return fmt.Errorf("Setup: rPower %d: %w", rPower, ErrInvalidParameter)
	case float64(kappa) <= 0:
		return fmt.Errorf("Setup: kappa %g: %w", float64(kappa), ErrInvalidParameter)
	case splineOrder < 1:
		return fmt.Errorf("Setup: spline order %d: %w", splineOrder, ErrInvalidParameter)
	case dimA < 1 || dimB < 1 || dimC < 1:
		return fmt.Errorf("Setup: grid %dx%dx%d: %w", dimA, dimB, dimC, ErrInvalidParameter)
	case float64(scaleFactor) == 0:
		return fmt.Errorf("Setup: zero scale factor: %w", ErrInvalidParameter)
	case nThreads < 1:
		return fmt.Errorf("Setup: thread count %d: %w", nThreads, ErrInvalidParameter)
	}

	p.rPower = rPower
	p.kappa = float64(kappa)
	p.splineOrder = splineOrder
	p.dimA, p.dimB, p.dimC = dimA, dimB, dimC
	p.scaleFactor = float64(scaleFactor)
	p.nThreads = nThreads
	p.configured = true

	return nil
}

// LatticeVectors returns a copy of the 3x3 cell matrix (rows are the
// lattice vectors), or nil before SetLatticeVectors.
func (p *Instance[T]) LatticeVectors() *matrix.Matrix[T] {
	if !p.latticeSet {
		return nil
	}

	return p.boxVecs.Clone()
}

// CellVolume returns the unit cell volume, or 0 before SetLatticeVectors.
func (p *Instance[T]) CellVolume() float64 { return p.volume }

// ComputeEnergyAndForces evaluates the reciprocal-space energy and
// accumulates forces into the caller's force buffer in place.
//
// params, coords and forces are typically borrowed views over host memory
// (matrix.Wrap): params is nAtoms×CartesianCount(angMom), coords and
// forces are nAtoms×3. The shapes are validated, the energy is returned
// as a scalar, and nothing else is written.
//
// Only point charges (angMom 0) under the Coulomb kernel (rPower 1) are
// implemented; higher multipoles and dispersion powers return
// ErrUnsupported.
func (p *Instance[T]) ComputeEnergyAndForces(angMom int, params, coords, forces *matrix.Matrix[T]) (T, error) {
	if !p.configured || !p.latticeSet {
		return 0, fmt.Errorf("ComputeEnergyAndForces: %w", ErrNotConfigured)
	}
	if angMom < 0 {
		return 0, fmt.Errorf("ComputeEnergyAndForces: angular momentum %d: %w", angMom, ErrInvalidParameter)
	}
	if angMom > 0 {
		return 0, fmt.Errorf("ComputeEnergyAndForces: angular momentum %d: %w", angMom, ErrUnsupported)
	}
	if p.rPower != 1 {
		return 0, fmt.Errorf("ComputeEnergyAndForces: rPower %d: %w", p.rPower, ErrUnsupported)
	}

	nAtoms := coords.Rows()
	nParam := CartesianCount(angMom)
	switch {
	case coords.Cols() != 3:
		return 0, fmt.Errorf("ComputeEnergyAndForces: coordinate matrix %dx%d, want nx3: %w",
			coords.Rows(), coords.Cols(), ErrInvalidParameter)
	case forces.Rows() != nAtoms || forces.Cols() != 3:
		return 0, fmt.Errorf("ComputeEnergyAndForces: force matrix %dx%d, want %dx3: %w",
			forces.Rows(), forces.Cols(), nAtoms, ErrInvalidParameter)
	case params.Rows() != nAtoms || params.Cols() != nParam:
		return 0, fmt.Errorf("ComputeEnergyAndForces: parameter matrix %dx%d, want %dx%d: %w",
			params.Rows(), params.Cols(), nAtoms, nParam, ErrInvalidParameter)
	}

	energy := p.reciprocalSum(params, coords, forces)

	return T(energy), nil
}
