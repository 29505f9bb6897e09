// Package pme_test: instance configuration and compute-path validation.
package pme_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mdforge/gopme/matrix"
	"github.com/mdforge/gopme/pme"
)

// configured returns an instance ready for compute calls: Coulomb kernel,
// cubic 10 Å box, modest grid.
func configured(t *testing.T) *pme.Instance[float64] {
	t.Helper()
	inst := pme.New[float64]()
	require.NoError(t, inst.Setup(1, 0.3, 4, 8, 8, 8, 1.0, 2))
	require.NoError(t, inst.SetLatticeVectors(10, 10, 10, 90, 90, 90, pme.XAligned))

	return inst
}

// buffers allocates parameter/coordinate/force matrices for n point
// charges.
func buffers(t *testing.T, n int) (params, coords, forces *matrix.Matrix[float64]) {
	t.Helper()
	var err error
	params, err = matrix.New[float64](n, 1)
	require.NoError(t, err)
	coords, err = matrix.New[float64](n, 3)
	require.NoError(t, err)
	forces, err = matrix.New[float64](n, 3)
	require.NoError(t, err)

	return params, coords, forces
}

// TestSetupValidation exercises every semantically-empty parameter.
func TestSetupValidation(t *testing.T) {
	cases := []struct {
		name        string
		rPower      int
		kappa       float64
		splineOrder int
		dimA        int
		dimB        int
		dimC        int
		scale       float64
		threads     int
	}{
		{"zero rPower", 0, 0.3, 4, 8, 8, 8, 1, 1},
		{"zero kappa", 1, 0, 4, 8, 8, 8, 1, 1},
		{"negative kappa", 1, -0.3, 4, 8, 8, 8, 1, 1},
		{"zero spline order", 1, 0.3, 0, 8, 8, 8, 1, 1},
		{"zero grid a", 1, 0.3, 4, 0, 8, 8, 1, 1},
		{"zero grid b", 1, 0.3, 4, 8, 0, 8, 1, 1},
		{"zero grid c", 1, 0.3, 4, 8, 8, 0, 1, 1},
		{"zero scale", 1, 0.3, 4, 8, 8, 8, 0, 1},
		{"zero threads", 1, 0.3, 4, 8, 8, 8, 1, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			inst := pme.New[float64]()
			err := inst.Setup(tc.rPower, tc.kappa, tc.splineOrder, tc.dimA, tc.dimB, tc.dimC, tc.scale, tc.threads)
			require.ErrorIs(t, err, pme.ErrInvalidParameter)
		})
	}
}

// TestComputeBeforeConfigure ensures both configuration steps are required.
func TestComputeBeforeConfigure(t *testing.T) {
	params, coords, forces := buffers(t, 1)

	inst := pme.New[float64]()  // neither step done
	_, err := inst.ComputeEnergyAndForces(0, params, coords, forces)
	require.ErrorIs(t, err, pme.ErrNotConfigured)

	require.NoError(t, inst.Setup(1, 0.3, 4, 8, 8, 8, 1.0, 1))  // lattice still missing
	_, err = inst.ComputeEnergyAndForces(0, params, coords, forces)
	require.ErrorIs(t, err, pme.ErrNotConfigured)
}

// TestComputeUnsupported covers the documented kernel limitations.
func TestComputeUnsupported(t *testing.T) {
	params, coords, forces := buffers(t, 1)

	inst := configured(t)
	_, err := inst.ComputeEnergyAndForces(1, params, coords, forces)  // dipoles
	require.ErrorIs(t, err, pme.ErrUnsupported)

	_, err = inst.ComputeEnergyAndForces(-1, params, coords, forces)
	require.ErrorIs(t, err, pme.ErrInvalidParameter)

	dispersion := pme.New[float64]()
	require.NoError(t, dispersion.Setup(6, 0.3, 4, 8, 8, 8, 1.0, 1))  // r^-6 kernel
	require.NoError(t, dispersion.SetLatticeVectors(10, 10, 10, 90, 90, 90, pme.XAligned))
	_, err = dispersion.ComputeEnergyAndForces(0, params, coords, forces)
	require.ErrorIs(t, err, pme.ErrUnsupported)
}

// TestComputeShapeValidation ensures mis-shaped buffers are rejected
// before any work happens.
func TestComputeShapeValidation(t *testing.T) {
	inst := configured(t)

	params, coords, forces := buffers(t, 2)

	narrow, err := matrix.New[float64](2, 2)  // coords must be n×3
	require.NoError(t, err)
	_, err = inst.ComputeEnergyAndForces(0, params, narrow, forces)
	require.ErrorIs(t, err, pme.ErrInvalidParameter)

	short, err := matrix.New[float64](1, 3)  // force rows must match atoms
	require.NoError(t, err)
	_, err = inst.ComputeEnergyAndForces(0, params, coords, short)
	require.ErrorIs(t, err, pme.ErrInvalidParameter)

	wide, err := matrix.New[float64](2, 4)  // param cols must match angMom
	require.NoError(t, err)
	_, err = inst.ComputeEnergyAndForces(0, wide, coords, forces)
	require.ErrorIs(t, err, pme.ErrInvalidParameter)
}
