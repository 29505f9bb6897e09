// Package matrix: element-type genericity.
// The same algorithms run over real and complex element types; the handful of
// places where the two differ (magnitude, real/imaginary decomposition,
// tolerance comparison) are concentrated in the helpers below, each resolved
// by a type switch the compiler specializes per instantiation.

package matrix

import (
	"math"
	"math/cmplx"
)

// Element is the set of element types a Matrix may hold.
// The union is deliberately exact (no ~): the scalar helpers below dispatch
// on the concrete type.
type Element interface {
	float32 | float64 | complex64 | complex128
}

// Float is the real-valued subset of Element, used by consumers that cannot
// carry a complex spectrum (e.g. the solver binding layer).
type Float interface {
	float32 | float64
}

// absElem returns |v| as a float64, for both real and complex elements.
func absElem[T Element](v T) float64 {
	switch x := any(v).(type) {
	case float32:
		return math.Abs(float64(x))
	case float64:
		return math.Abs(x)
	case complex64:
		return cmplx.Abs(complex128(x))
	case complex128:
		return cmplx.Abs(x)
	}
	return 0 // unreachable: Element is a closed union
}

// realPart returns the real component of v (v itself for real types).
func realPart[T Element](v T) float64 {
	switch x := any(v).(type) {
	case float32:
		return float64(x)
	case float64:
		return x
	case complex64:
		return float64(real(x))
	case complex128:
		return real(x)
	}
	return 0
}

// imagPart returns the imaginary component of v (zero for real types).
func imagPart[T Element](v T) float64 {
	switch x := any(v).(type) {
	case complex64:
		return float64(imag(x))
	case complex128:
		return imag(x)
	}
	return 0
}

// fromFloat64 converts a real scalar into T (imaginary part zero for
// complex instantiations).
func fromFloat64[T Element](v float64) T {
	var zero T
	switch any(zero).(type) {
	case float32:
		return any(float32(v)).(T)
	case float64:
		return any(v).(T)
	case complex64:
		return any(complex64(complex(v, 0))).(T)
	default:
		return any(complex(v, 0)).(T)
	}
}

// fromParts assembles T from real and imaginary components; real
// instantiations drop the imaginary part.
func fromParts[T Element](re, im float64) T {
	var zero T
	switch any(zero).(type) {
	case float32:
		return any(float32(re)).(T)
	case float64:
		return any(re).(T)
	case complex64:
		return any(complex64(complex(re, im))).(T)
	default:
		return any(complex(re, im)).(T)
	}
}

// isComplex reports whether T is a complex element type.
func isComplex[T Element]() bool {
	var zero T
	switch any(zero).(type) {
	case complex64, complex128:
		return true
	}
	return false
}

// elemWithin reports whether a and b agree within tol.
// Real elements compare the signed difference against ±tol; complex elements
// compare real and imaginary parts independently against ±tol. Comparing
// parts covers both cases, since real elements carry a zero imaginary part.
func elemWithin[T Element](a, b T, tol float64) bool {
	dr := realPart(a) - realPart(b)
	di := imagPart(a) - imagPart(b)

	return dr < tol && dr > -tol && di < tol && di > -tol
}
