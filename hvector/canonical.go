// Package hvector - the canonical-frame transformation.
//
// Purpose:
//   - Compute the unique (up to a global scalar) matrix mapping the
//     canonical projective frame — standard basis e₁…e_{N+1} plus the
//     unit vector (1,…,1) — onto N+2 given elements in general position.
//   - This is the engine behind building collineations and correlations
//     from correspondences: with A = canonical→preimages and
//     B = canonical→images, the desired map is B·A⁻¹.

package hvector

import (
	"fmt"

	"github.com/katalvlaran/projective/cmatrix"
	"github.com/katalvlaran/projective/numeric"
)

// CanonicalTransformation returns the matrix sending the canonical frame
// onto vs: the unit vector (1,…,1) maps onto vs[0] and the i-th basis
// vector onto a scalar multiple of vs[i] (the per-column scalars are
// exactly what the unit-vector condition resolves).
//
// Implementation:
//   - Stage 1: validate count (dim+1 vectors of equal dimension dim).
//   - Stage 2: assemble A from vs[1..] as columns; solve A·c = vs[0].
//   - Stage 3: reject any negligible coefficient cᵢ (vs[0] would lie in
//     the span of the remaining basis images — a rank-deficient subset).
//   - Stage 4: rescale column i by cᵢ; the result is non-singular by
//     construction (A non-singular, all cᵢ nonzero).
//
// Errors:
//   - ErrDimensionMismatch: wrong vector count or mixed dimensions.
//   - ErrDependentVectors: any (dim)-subset linearly dependent.
//
// Complexity: O(n³) with n = dim ≤ 6.
func CanonicalTransformation(vs []*HVector) (*cmatrix.Dense, error) {
	if len(vs) == 0 || vs[0] == nil {
		return nil, fmt.Errorf("CanonicalTransformation: %w", ErrDimensionMismatch)
	}
	dim := vs[0].Dim()
	if len(vs) != dim+1 {
		return nil, fmt.Errorf("CanonicalTransformation: %d vectors for dimension %d: %w", len(vs), dim, ErrDimensionMismatch)
	}
	for _, v := range vs {
		if v == nil || v.Dim() != dim {
			return nil, fmt.Errorf("CanonicalTransformation: %w", ErrDimensionMismatch)
		}
	}

	// Columns 0..dim-1 are the basis images vs[1..dim].
	basis, err := cmatrix.NewDense(dim, dim)
	if err != nil {
		return nil, fmt.Errorf("CanonicalTransformation: %w", err)
	}
	for j := 0; j < dim; j++ {
		for i := 0; i < dim; i++ {
			if err = basis.Set(i, j, vs[j+1].coords[i]); err != nil {
				return nil, fmt.Errorf("CanonicalTransformation: %w", err)
			}
		}
	}

	// Decompose the unit image over the basis images.
	coeffs, err := basis.Solve(vs[0].coords)
	if err != nil {
		return nil, fmt.Errorf("CanonicalTransformation: %w", ErrDependentVectors)
	}
	for _, c := range coeffs {
		if numeric.IsZero(c) {
			return nil, fmt.Errorf("CanonicalTransformation: unit image in basis hyperplane: %w", ErrDependentVectors)
		}
	}

	// Rescale columns so the unit vector maps exactly onto vs[0].
	out, err := cmatrix.NewDense(dim, dim)
	if err != nil {
		return nil, fmt.Errorf("CanonicalTransformation: %w", err)
	}
	var v complex128
	for j := 0; j < dim; j++ {
		for i := 0; i < dim; i++ {
			v, _ = basis.At(i, j)
			if err = out.Set(i, j, v*coeffs[j]); err != nil {
				return nil, fmt.Errorf("CanonicalTransformation: %w", err)
			}
		}
	}

	return out, nil
}
