// Package hvector - the coercion engine.
//
// Purpose:
//   - Produce a canonical homogeneous representative of a coordinate
//     tuple: real representative where possible, bounded magnitude,
//     rational-grid components.
//   - Idempotence: coercing a coerced vector is a no-op. Tests rely on
//     this contract.

package hvector

import (
	"math/cmplx"

	"github.com/katalvlaran/projective/numeric"
)

// IsHomogeneousReal reports whether v is a complex scalar multiple of a
// real vector: for every coordinate pair (i, j), v[i]·conj(v[j]) must
// equal v[j]·conj(v[i]) within precision (their difference is purely
// imaginary, so the test is a vanishing imaginary part).
//
// Complexity: O(n²) over n ≤ 6.
func IsHomogeneousReal(v []complex128) bool {
	for i := 0; i < len(v); i++ {
		for j := i + 1; j < len(v); j++ {
			if !numeric.EqualScalar(v[i]*cmplx.Conj(v[j]), v[j]*cmplx.Conj(v[i])) {
				return false
			}
		}
	}

	return true
}

// CoerceHomogeneousCoordinates rewrites v in place into the canonical
// homogeneous representative and returns v.
//
// Implementation:
//   - Stage 1: if v is a scalar multiple of a real vector, drop whichever
//     of the real-part / imaginary-part vectors is entirely negligible
//     and keep the other as the real representative.
//   - Stage 2: if the maximal coordinate magnitude exceeds
//     numeric.MaxHomogeneousValue, rescale the whole vector by
//     MaxHomogeneousValue/(RescaleFactor·max).
//   - Stage 3: snap every real/imaginary component independently onto
//     the 1/SnapDenominator grid when within Epsilon of a grid value.
//
// Complexity: O(n²) for the realness test, O(n) otherwise.
func CoerceHomogeneousCoordinates(v []complex128) []complex128 {
	if len(v) == 0 {
		return v
	}

	// Stage 1: real-representative selection.
	if IsHomogeneousReal(v) {
		realNegligible, imagNegligible := true, true
		for _, z := range v {
			if !numeric.IsZeroReal(real(z)) {
				realNegligible = false
			}
			if !numeric.IsZeroReal(imag(z)) {
				imagNegligible = false
			}
		}
		switch {
		case imagNegligible:
			for i, z := range v {
				v[i] = complex(real(z), 0)
			}
		case realNegligible:
			for i, z := range v {
				v[i] = complex(imag(z), 0)
			}
		}
	}

	// Stage 2: magnitude rescale.
	maxAbs := 0.0
	var a float64
	for _, z := range v {
		if a = cmplx.Abs(z); a > maxAbs {
			maxAbs = a
		}
	}
	if maxAbs > numeric.MaxHomogeneousValue {
		scale := complex(numeric.MaxHomogeneousValue/(numeric.RescaleFactor*maxAbs), 0)
		for i := range v {
			v[i] *= scale
		}
	}

	// Stage 3: rational-grid snapping.
	for i := range v {
		v[i] = numeric.SnapComplex(v[i])
	}

	return v
}

// isZeroVector reports whether every coordinate of v is negligible.
func isZeroVector(v []complex128) bool {
	for _, z := range v {
		if !numeric.IsZero(z) {
			return false
		}
	}

	return true
}
