// Package pme: the reciprocal-space sum.
// Direct Ewald summation over the k-lattice bounded by the configured grid
// dimensions. Each k term carries the Gaussian screen exp(-k²/4κ²)/k²; the
// structure factor S(k) = Σᵢ qᵢ exp(i k·rᵢ) yields the energy through
// |S(k)|² and the forces through its per-atom phase derivatives.

package pme

import (
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/mdforge/gopme/matrix"
)

// reciprocalSum evaluates the scaled reciprocal-space energy and
// accumulates forces into the caller's buffer. The outermost k index fans
// out across an errgroup bounded by the configured thread count; every
// worker owns a private force buffer, and the reduction happens after the
// group drains, so the borrowed force matrix is touched by one goroutine
// only.
func (p *Instance[T]) reciprocalSum(params, coords, forces *matrix.Matrix[T]) float64 {
	nAtoms := coords.Rows()

	charges := make([]float64, nAtoms)
	positions := make([][3]float64, nAtoms)
	for i := 0; i < nAtoms; i++ {
		charges[i] = float64(params.At(i, 0))
		positions[i] = [3]float64{
			float64(coords.At(i, 0)),
			float64(coords.At(i, 1)),
			float64(coords.At(i, 2)),
		}
	}

	// Reciprocal lattice vectors are the columns of the cell inverse.
	var rec [3][3]float64
	for d := 0; d < 3; d++ {
		for j := 0; j < 3; j++ {
			rec[d][j] = float64(p.recVecs.At(d, j))
		}
	}

	maxA, maxB, maxC := p.dimA/2, p.dimB/2, p.dimC/2
	slots := 2*maxA + 1
	gaussDenom := 4 * p.kappa * p.kappa

	partialE := make([]float64, slots)
	partialF := make([][]float64, slots)

	g := new(errgroup.Group)
	g.SetLimit(p.nThreads)
	for slot := 0; slot < slots; slot++ {
		slot := slot
		ma := slot - maxA
		g.Go(func() error {
			local := make([]float64, 3*nAtoms)
			cosKR := make([]float64, nAtoms)
			sinKR := make([]float64, nAtoms)
			var energy float64
			fa := float64(ma)
			for mb := -maxB; mb <= maxB; mb++ {
				fb := float64(mb)
				for mc := -maxC; mc <= maxC; mc++ {
					if ma == 0 && mb == 0 && mc == 0 {
						continue
					}
					fc := float64(mc)
					kx := 2 * math.Pi * (fa*rec[0][0] + fb*rec[0][1] + fc*rec[0][2])
					ky := 2 * math.Pi * (fa*rec[1][0] + fb*rec[1][1] + fc*rec[1][2])
					kz := 2 * math.Pi * (fa*rec[2][0] + fb*rec[2][1] + fc*rec[2][2])
					kSq := kx*kx + ky*ky + kz*kz

					screen := math.Exp(-kSq/gaussDenom) / kSq

					var sRe, sIm float64
					for i := 0; i < nAtoms; i++ {
						arg := kx*positions[i][0] + ky*positions[i][1] + kz*positions[i][2]
						cosKR[i] = math.Cos(arg)
						sinKR[i] = math.Sin(arg)
						sRe += charges[i] * cosKR[i]
						sIm += charges[i] * sinKR[i]
					}
					energy += screen * (sRe*sRe + sIm*sIm)

					coef := 2 * screen
					for i := 0; i < nAtoms; i++ {
						phase := coef * charges[i] * (sinKR[i]*sRe - cosKR[i]*sIm)
						local[3*i] += phase * kx
						local[3*i+1] += phase * ky
						local[3*i+2] += phase * kz
					}
				}
			}
			partialE[slot] = energy
			partialF[slot] = local

			return nil
		})
	}
	_ = g.Wait() // workers are infallible; the group only bounds fan-out

	prefactor := p.scaleFactor * 2 * math.Pi / p.volume
	var energy float64
	for slot := 0; slot < slots; slot++ {
		energy += partialE[slot]
		local := partialF[slot]
		for i := 0; i < nAtoms; i++ {
			row := forces.RowData(i)
			row[0] += T(prefactor * local[3*i])
			row[1] += T(prefactor * local[3*i+1])
			row[2] += T(prefactor * local[3*i+2])
		}
	}

	return prefactor * energy
}
