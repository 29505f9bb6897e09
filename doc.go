// Package gopme is a reciprocal-space particle-mesh Ewald toolkit built
// around a small dense-matrix kernel.
//
// 🚀 What is gopme?
//
//	A generic, allocation-conscious library that brings together:
//		• Dense matrices: owning and borrowing layouts over one flat buffer
//		• Strided views: row and column slices with in-place arithmetic
//		• Linear algebra: multiply, in-place transpose, 3×3 and spectral inversion
//		• Spectral tools: eigen-decomposition, arbitrary matrix functions f(A)
//		• Solver binding: periodic cells, Ewald attenuation, energy and forces
//		• Foreign surface: a C-callable shim over the float32/float64 solvers
//
// ✨ Why choose gopme?
//
//   - Precision-generic — one implementation serves float32, float64 and
//     their complex counterparts
//   - Host-friendly — matrices wrap caller-owned buffers without copying
//   - Predictable failure — sentinel errors everywhere, exit-on-error only
//     at the foreign boundary
//
// Under the hood, everything is organized under three subpackages:
//
//	matrix/ — the dense-matrix kernel: storage, views, arithmetic, spectra
//	pme/    — solver instances: lattice setup, reciprocal-space summation
//	capi/   — the c-shared foreign interface over pme
//
// Quick ASCII example:
//
//	    q₁●        k-space
//	        ●q₂    ───────►  E, F = Σ_k  e^(−k²/4κ²)/k² · |S(k)|²
//	    q₃●
//
//	three point charges in a periodic cell, summed over the reciprocal
//	lattice.
//
//	go get github.com/mdforge/gopme
package gopme
