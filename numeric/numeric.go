package numeric

import (
	"math"
	"math/cmplx"
)

// machineEpsilon is the spacing of float64 values around 1.0 (2⁻⁵²).
const machineEpsilon = 0x1p-52

// Epsilon is the global precision tolerance of the library.
//
// Every zero test, equality test and singularity test downstream is
// expressed through this single constant, so the whole library can be
// retuned in one place. The value 1e4·machineEpsilon (≈2.22e-12) leaves
// four decimal orders of slack for rounding accumulated across chained
// matrix products while staying far below the 1/SnapDenominator grid.
const Epsilon = 1e4 * machineEpsilon

// Magnitude policy for homogeneous-coordinate coercion.
const (
	// MaxHomogeneousValue bounds the largest coordinate magnitude kept
	// after coercion; larger vectors are rescaled.
	MaxHomogeneousValue = 10.0

	// RescaleFactor divides the target magnitude when rescaling, so a
	// rescaled vector lands at MaxHomogeneousValue/RescaleFactor and has
	// headroom before the next rescale triggers.
	RescaleFactor = 3.0

	// SnapDenominator is the grid density for rational snapping: each
	// real/imaginary component within Epsilon of a multiple of
	// 1/SnapDenominator is replaced by that exact multiple.
	SnapDenominator = 1000.0
)

// IsZeroReal reports whether x is negligible, |x| ≤ Epsilon.
func IsZeroReal(x float64) bool {
	return math.Abs(x) <= Epsilon
}

// IsZero reports whether z is negligible, |z| ≤ Epsilon.
func IsZero(z complex128) bool {
	return cmplx.Abs(z) <= Epsilon
}

// EqualReal reports whether a and b agree within Epsilon.
func EqualReal(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}

// EqualScalar reports whether a and b agree within Epsilon, compared
// componentwise on the real and imaginary parts.
func EqualScalar(a, b complex128) bool {
	return EqualReal(real(a), real(b)) && EqualReal(imag(a), imag(b))
}

// IsFinite reports whether z contains neither NaN nor ±Inf components.
func IsFinite(z complex128) bool {
	return !cmplx.IsNaN(z) && !cmplx.IsInf(z)
}

// SnapReal returns x snapped to the nearest multiple of
// 1/SnapDenominator when x lies within Epsilon of that multiple, and x
// unchanged otherwise.
func SnapReal(x float64) float64 {
	snapped := math.Round(x*SnapDenominator) / SnapDenominator
	if math.Abs(x-snapped) <= Epsilon {
		return snapped
	}

	return x
}

// SnapComplex applies SnapReal independently to the real and imaginary
// parts of z.
func SnapComplex(z complex128) complex128 {
	return complex(SnapReal(real(z)), SnapReal(imag(z)))
}
