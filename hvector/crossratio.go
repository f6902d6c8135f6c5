// Package hvector - two-term decomposition and the cross ratio.
//
// Purpose:
//   - Decompose: express a vector as α·u + β·w over a two-element basis,
//     verifying that the vector actually lies in the span (the pencil).
//   - CrossRatio: the projective invariant of four elements of a pencil,
//     with the first three serving as origin, infinity and unity.

package hvector

import (
	"fmt"
	"math/cmplx"

	"github.com/katalvlaran/projective/numeric"
)

// Decompose solves target = α·u + β·w.
//
// Implementation:
//   - Stage 1: pick the coordinate pair (i, j) with the most robust 2×2
//     minor of (u, w); a negligible best minor means u and w span no
//     pencil (ErrDegenerateBasis).
//   - Stage 2: solve the 2×2 system by Cramer's rule.
//   - Stage 3: verify every remaining coordinate reproduces within
//     precision; otherwise target is outside the pencil
//     (ErrNotCollinear).
//
// Errors:
//   - ErrDimensionMismatch, ErrDegenerateBasis, ErrNotCollinear.
//
// Complexity: O(n²) over n ≤ 6.
func Decompose(target, u, w *HVector) (alpha, beta complex128, err error) {
	if target == nil || u == nil || w == nil ||
		u.Dim() != target.Dim() || w.Dim() != target.Dim() {
		return 0, 0, fmt.Errorf("Decompose: %w", ErrDimensionMismatch)
	}

	n := target.Dim()
	pi, pj, best := -1, -1, 0.0
	var minor float64
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			minor = cmplx.Abs(u.coords[i]*w.coords[j] - u.coords[j]*w.coords[i])
			if minor > best {
				pi, pj, best = i, j, minor
			}
		}
	}
	if best <= numeric.Epsilon {
		return 0, 0, fmt.Errorf("Decompose: %w", ErrDegenerateBasis)
	}

	det := u.coords[pi]*w.coords[pj] - u.coords[pj]*w.coords[pi]
	alpha = (target.coords[pi]*w.coords[pj] - target.coords[pj]*w.coords[pi]) / det
	beta = (u.coords[pi]*target.coords[pj] - u.coords[pj]*target.coords[pi]) / det

	// Every coordinate must reproduce — this is the collinearity check.
	for k := 0; k < n; k++ {
		if !numeric.EqualScalar(target.coords[k], alpha*u.coords[k]+beta*w.coords[k]) {
			return 0, 0, fmt.Errorf("Decompose: %w", ErrNotCollinear)
		}
	}

	return alpha, beta, nil
}

// CrossRatio returns the cross ratio of four elements of a pencil, with
// a as origin, b as infinity and c as unity: the result is the pencil
// parameter of d in the basis normalized by c.
//
// With a=(1,0), b=(0,1), c=(1,1) on the projective line, CrossRatio
// returns the affine coordinate of d — in particular −1 for the harmonic
// conjugate of c.
//
// Implementation:
//   - Stage 1: reject coinciding basis elements (ErrDegenerateBasis).
//   - Stage 2: decompose c = α·a + β·b and d = γ·a + δ·b; both
//     decompositions enforce pencil membership (ErrNotCollinear).
//   - Stage 3: the ratio of solve-coefficients, (δ·α)/(γ·β), is the
//     cross ratio. d coinciding with b yields complex infinity — a valid
//     projective parameter, not an error.
//
// Errors:
//   - ErrDimensionMismatch, ErrDegenerateBasis, ErrNotCollinear.
func CrossRatio(a, b, c, d *HVector) (complex128, error) {
	if a == nil || b == nil || c == nil || d == nil {
		return 0, fmt.Errorf("CrossRatio: %w", ErrDimensionMismatch)
	}
	if a.Equals(b) || a.Equals(c) || b.Equals(c) {
		return 0, fmt.Errorf("CrossRatio: %w", ErrDegenerateBasis)
	}

	alpha, beta, err := Decompose(c, a, b)
	if err != nil {
		return 0, fmt.Errorf("CrossRatio: unity element: %w", err)
	}
	gamma, delta, err := Decompose(d, a, b)
	if err != nil {
		return 0, fmt.Errorf("CrossRatio: fourth element: %w", err)
	}

	if numeric.IsZero(gamma) {
		// d coincides with b (the infinity element of the pencil).
		return cmplx.Inf(), nil
	}

	return (delta * alpha) / (gamma * beta), nil
}
