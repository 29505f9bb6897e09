package main

/*
#include <stdint.h>
*/
import "C"

import (
	"os"
	"runtime/cgo"
	"unsafe"

	"github.com/rs/zerolog"

	"github.com/mdforge/gopme/matrix"
	"github.com/mdforge/gopme/pme"
)

// boundaryLog writes failure descriptions to stderr before termination.
var boundaryLog = zerolog.New(os.Stderr).With().Timestamp().Logger()

// fatal implements the fail-fast boundary policy: log the description,
// terminate with status 1. Nothing recoverable crosses back to the host.
func fatal(op string, err error) {
	boundaryLog.Error().Err(err).Str("op", op).Msg("gopme: fatal error at foreign boundary")
	os.Exit(1)
}

// instanceD resolves a handle created by gopme_createD, terminating on a
// stale or foreign handle.
func instanceD(h C.uintptr_t, op string) *pme.Instance[float64] {
	inst, ok := cgo.Handle(h).Value().(*pme.Instance[float64])
	if !ok {
		fatal(op, pme.ErrInvalidParameter)
	}

	return inst
}

func instanceF(h C.uintptr_t, op string) *pme.Instance[float32] {
	inst, ok := cgo.Handle(h).Value().(*pme.Instance[float32])
	if !ok {
		fatal(op, pme.ErrInvalidParameter)
	}

	return inst
}

// wrap adapts a raw host buffer to a borrowed matrix view; no copy is
// taken and the host retains ownership.
func wrap[T matrix.Float](ptr *T, rows, cols int, op string) *matrix.Matrix[T] {
	m, err := matrix.Wrap(unsafe.Slice(ptr, rows*cols), rows, cols)
	if err != nil {
		fatal(op, err)
	}

	return m
}

//export gopme_createD
func gopme_createD() C.uintptr_t {
	return C.uintptr_t(cgo.NewHandle(pme.New[float64]()))
}

//export gopme_createF
func gopme_createF() C.uintptr_t {
	return C.uintptr_t(cgo.NewHandle(pme.New[float32]()))
}

//export gopme_destroyD
func gopme_destroyD(h C.uintptr_t) {
	instanceD(h, "gopme_destroyD")
	cgo.Handle(h).Delete()
}

//export gopme_destroyF
func gopme_destroyF(h C.uintptr_t) {
	instanceF(h, "gopme_destroyF")
	cgo.Handle(h).Delete()
}

//export gopme_setupD
func gopme_setupD(h C.uintptr_t, rPower C.short, kappa C.double, splineOrder, aDim, bDim, cDim C.int,
	scaleFactor C.double, nThreads C.int) {
	inst := instanceD(h, "gopme_setupD")
	err := inst.Setup(int(rPower), float64(kappa), int(splineOrder),
		int(aDim), int(bDim), int(cDim), float64(scaleFactor), int(nThreads))
	if err != nil {
		fatal("gopme_setupD", err)
	}
}

//export gopme_setupF
func gopme_setupF(h C.uintptr_t, rPower C.short, kappa C.float, splineOrder, aDim, bDim, cDim C.int,
	scaleFactor C.float, nThreads C.int) {
	inst := instanceF(h, "gopme_setupF")
	err := inst.Setup(int(rPower), float32(kappa), int(splineOrder),
		int(aDim), int(bDim), int(cDim), float32(scaleFactor), int(nThreads))
	if err != nil {
		fatal("gopme_setupF", err)
	}
}

//export gopme_set_lattice_vectorsD
func gopme_set_lattice_vectorsD(h C.uintptr_t, a, b, c, alpha, beta, gamma C.double, latticeType C.int) {
	inst := instanceD(h, "gopme_set_lattice_vectorsD")
	err := inst.SetLatticeVectors(float64(a), float64(b), float64(c),
		float64(alpha), float64(beta), float64(gamma), pme.LatticeType(latticeType))
	if err != nil {
		fatal("gopme_set_lattice_vectorsD", err)
	}
}

//export gopme_set_lattice_vectorsF
func gopme_set_lattice_vectorsF(h C.uintptr_t, a, b, c, alpha, beta, gamma C.float, latticeType C.int) {
	inst := instanceF(h, "gopme_set_lattice_vectorsF")
	err := inst.SetLatticeVectors(float32(a), float32(b), float32(c),
		float32(alpha), float32(beta), float32(gamma), pme.LatticeType(latticeType))
	if err != nil {
		fatal("gopme_set_lattice_vectorsF", err)
	}
}

//export gopme_compute_EF_recD
func gopme_compute_EF_recD(h C.uintptr_t, nAtoms, angMom C.int,
	parameters, coordinates, forces *C.double) C.double {
	const op = "gopme_compute_EF_recD"
	inst := instanceD(h, op)
	n := int(nAtoms)
	nParam := pme.CartesianCount(int(angMom))
	paramMat := wrap((*float64)(unsafe.Pointer(parameters)), n, nParam, op)
	coordMat := wrap((*float64)(unsafe.Pointer(coordinates)), n, 3, op)
	forceMat := wrap((*float64)(unsafe.Pointer(forces)), n, 3, op)
	energy, err := inst.ComputeEnergyAndForces(int(angMom), paramMat, coordMat, forceMat)
	if err != nil {
		fatal(op, err)
	}

	return C.double(energy)
}

//export gopme_compute_EF_recF
func gopme_compute_EF_recF(h C.uintptr_t, nAtoms, angMom C.int,
	parameters, coordinates, forces *C.float) C.float {
	const op = "gopme_compute_EF_recF"
	inst := instanceF(h, op)
	n := int(nAtoms)
	nParam := pme.CartesianCount(int(angMom))
	paramMat := wrap((*float32)(unsafe.Pointer(parameters)), n, nParam, op)
	coordMat := wrap((*float32)(unsafe.Pointer(coordinates)), n, 3, op)
	forceMat := wrap((*float32)(unsafe.Pointer(forces)), n, 3, op)
	energy, err := inst.ComputeEnergyAndForces(int(angMom), paramMat, coordMat, forceMat)
	if err != nil {
		fatal(op, err)
	}

	return C.float(energy)
}

// main is required by -buildmode=c-shared; it never runs.
func main() {}
