package hvector

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/projective/cmatrix"
	"github.com/katalvlaran/projective/numeric"
)

// HVector is an immutable homogeneous coordinate vector: a tuple of
// N ≥ 2 complex coordinates, never all zero, stored after coercion.
// Two HVectors are equal iff one is a complex scalar multiple of the
// other.
type HVector struct {
	coords []complex128
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*HVector)(nil)

// New constructs an HVector from the given coordinates.
//
// Implementation:
//   - Stage 1: validate count (≥ 2), finiteness, and non-zeroness.
//   - Stage 2: copy and coerce; the input slice is never retained.
//
// Errors:
//   - ErrTooFewCoordinates, ErrNaNInf, ErrZeroVector.
//
// Complexity: O(n²) (coercion realness test dominates).
func New(coords ...complex128) (*HVector, error) {
	if len(coords) < 2 {
		return nil, fmt.Errorf("New(%d coords): %w", len(coords), ErrTooFewCoordinates)
	}
	for i, z := range coords {
		if !numeric.IsFinite(z) {
			return nil, fmt.Errorf("New: coordinate %d: %w", i, ErrNaNInf)
		}
	}
	own := make([]complex128, len(coords))
	copy(own, coords)
	if isZeroVector(own) {
		return nil, fmt.Errorf("New: %w", ErrZeroVector)
	}
	CoerceHomogeneousCoordinates(own)
	if isZeroVector(own) {
		return nil, fmt.Errorf("New: %w", ErrZeroVector)
	}

	return &HVector{coords: own}, nil
}

// NewReal constructs an HVector from real coordinates.
func NewReal(coords ...float64) (*HVector, error) {
	cs := make([]complex128, len(coords))
	for i, x := range coords {
		cs[i] = complex(x, 0)
	}

	return New(cs...)
}

// Dim returns the number of coordinates.
func (v *HVector) Dim() int { return len(v.coords) }

// At returns the i-th coordinate. The index must be in [0, Dim()); this
// is a programmer-error boundary and panics like a slice access would.
func (v *HVector) At(i int) complex128 { return v.coords[i] }

// Coordinates returns a copy of the coordinate tuple.
func (v *HVector) Coordinates() []complex128 {
	out := make([]complex128, len(v.coords))
	copy(out, v.coords)

	return out
}

// IsReal reports whether every coordinate has a negligible imaginary
// part (the stored representative is real).
func (v *HVector) IsReal() bool {
	for _, z := range v.coords {
		if !numeric.IsZeroReal(imag(z)) {
			return false
		}
	}

	return true
}

// Dot returns the plain (bilinear, non-conjugating) dot product of the
// two coordinate tuples — the pairing that expresses incidence between
// dual coordinate types.
//
// Errors:
//   - ErrDimensionMismatch.
func (v *HVector) Dot(other *HVector) (complex128, error) {
	if other == nil || len(v.coords) != len(other.coords) {
		return 0, fmt.Errorf("Dot: %w", ErrDimensionMismatch)
	}
	var sum complex128
	for i, z := range v.coords {
		sum += z * other.coords[i]
	}

	return sum, nil
}

// IsIncident reports whether the dot product of the two raw coordinate
// tuples vanishes within precision. The caller is responsible for
// pairing dual coordinate types (e.g. a point with a line); the check
// itself is type-agnostic.
//
// Errors:
//   - ErrDimensionMismatch.
func (v *HVector) IsIncident(other *HVector) (bool, error) {
	d, err := v.Dot(other)
	if err != nil {
		return false, fmt.Errorf("IsIncident: %w", err)
	}

	return numeric.IsZero(d), nil
}

// Equals reports whether v and other represent the same projective
// element: their coordinate tuples are complex-linearly dependent within
// precision (every 2×2 minor vanishes). A nil or dimension-mismatched
// operand yields false, not an error.
//
// Complexity: O(n²) over n ≤ 6.
func (v *HVector) Equals(other *HVector) bool {
	if v == nil || other == nil || len(v.coords) != len(other.coords) {
		return false
	}
	for i := 0; i < len(v.coords); i++ {
		for j := i + 1; j < len(v.coords); j++ {
			if !numeric.IsZero(v.coords[i]*other.coords[j] - v.coords[j]*other.coords[i]) {
				return false
			}
		}
	}

	return true
}

// Multiply returns the image of v under the square matrix m, coerced.
//
// A nil result with a nil error signals that the image collapsed to the
// zero vector — the mapping is undefined/degenerate for this input (for
// instance, a correlation sending a point onto the center of
// projection). Callers must nil-check.
//
// Errors:
//   - ErrDimensionMismatch when m is not Dim()×Dim().
func (v *HVector) Multiply(m *cmatrix.Dense) (*HVector, error) {
	if m == nil || m.Rows() != len(v.coords) || m.Cols() != len(v.coords) {
		return nil, fmt.Errorf("Multiply: %w", ErrDimensionMismatch)
	}
	img, err := m.MulVec(v.coords)
	if err != nil {
		return nil, fmt.Errorf("Multiply: %w", err)
	}
	CoerceHomogeneousCoordinates(img)
	if isZeroVector(img) {
		return nil, nil
	}

	return &HVector{coords: img}, nil
}

// String renders the coordinate tuple as (z0 : z1 : … : zn).
func (v *HVector) String() string {
	if v == nil {
		return "<nil>"
	}
	parts := make([]string, len(v.coords))
	for i, z := range v.coords {
		if numeric.IsZeroReal(imag(z)) {
			parts[i] = fmt.Sprintf("%g", real(z))
		} else {
			parts[i] = fmt.Sprintf("%g", z)
		}
	}

	return "(" + strings.Join(parts, " : ") + ")"
}

// fromCoerced wraps an already-coerced, validated tuple without copying.
// Internal fast path for algorithm outputs.
func fromCoerced(coords []complex128) *HVector {
	return &HVector{coords: coords}
}
