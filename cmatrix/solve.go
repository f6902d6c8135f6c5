// SPDX-License-Identifier: MIT

// Package cmatrix - elimination kernels: determinant, inverse, solve.
//
// Purpose:
//   - Gaussian elimination with partial pivoting on coordinate magnitude
//     (|pivot| via cmplx.Abs), the numerically robust choice for the
//     complex field.
//   - A pivot column whose best candidate is ≤ numeric.Epsilon marks the
//     matrix singular within the library-wide precision policy.
//
// Determinism: fixed elimination order, pivot = first row attaining the
// maximal magnitude.

package cmatrix

import (
	"math/cmplx"

	"github.com/katalvlaran/projective/numeric"
)

// operation tags for unified error wrapping.
const (
	opDet     = "Det"
	opInverse = "Inverse"
	opSolve   = "Solve"
)

// pivotRow returns the row index in [col, n) whose entry at column col
// has maximal magnitude, and that magnitude.
func pivotRow(data []complex128, n, col int) (int, float64) {
	best, bestAbs := col, cmplx.Abs(data[col*n+col])
	var a float64
	for row := col + 1; row < n; row++ {
		if a = cmplx.Abs(data[row*n+col]); a > bestAbs {
			best, bestAbs = row, a
		}
	}

	return best, bestAbs
}

// swapRows exchanges rows i and j of an n-column flat buffer.
func swapRows(data []complex128, n, i, j int) {
	if i == j {
		return
	}
	for k := 0; k < n; k++ {
		data[i*n+k], data[j*n+k] = data[j*n+k], data[i*n+k]
	}
}

// Det computes the determinant by LU-style elimination.
//
// A singular matrix is not an error here: its determinant is reported as
// 0 (possibly an exact 0 after a negligible pivot).
//
// Errors:
//   - ErrNilMatrix on a nil receiver.
//   - ErrNonSquare when the receiver is not square.
//
// Complexity: O(n³).
func (m *Dense) Det() (complex128, error) {
	if m == nil {
		return 0, opErrorf(opDet, ErrNilMatrix)
	}
	if m.r != m.c {
		return 0, opErrorf(opDet, ErrNonSquare)
	}

	n := m.r
	work := make([]complex128, len(m.data))
	copy(work, m.data)

	det := complex(1, 0)
	var factor complex128
	for col := 0; col < n; col++ {
		row, abs := pivotRow(work, n, col)
		if abs <= numeric.Epsilon {
			return 0, nil
		}
		if row != col {
			swapRows(work, n, col, row)
			det = -det
		}
		det *= work[col*n+col]
		for r := col + 1; r < n; r++ {
			factor = work[r*n+col] / work[col*n+col]
			for k := col; k < n; k++ {
				work[r*n+k] -= factor * work[col*n+k]
			}
		}
	}

	return det, nil
}

// IsSingular reports whether the determinant is negligible within
// numeric.Epsilon.
//
// Errors: as Det.
func (m *Dense) IsSingular() (bool, error) {
	det, err := m.Det()
	if err != nil {
		return false, err
	}

	return numeric.IsZero(det), nil
}

// Inverse computes m⁻¹ by Gauss–Jordan elimination on the augmented
// system [m | I].
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare as usual.
//   - ErrSingular when a pivot column collapses below numeric.Epsilon.
//
// Complexity: O(n³).
func (m *Dense) Inverse() (*Dense, error) {
	if m == nil {
		return nil, opErrorf(opInverse, ErrNilMatrix)
	}
	if m.r != m.c {
		return nil, opErrorf(opInverse, ErrNonSquare)
	}

	n := m.r
	work := make([]complex128, len(m.data))
	copy(work, m.data)
	inv, err := Identity(n)
	if err != nil {
		return nil, opErrorf(opInverse, err)
	}

	var factor, pivot complex128
	for col := 0; col < n; col++ {
		row, abs := pivotRow(work, n, col)
		if abs <= numeric.Epsilon {
			return nil, opErrorf(opInverse, ErrSingular)
		}
		swapRows(work, n, col, row)
		swapRows(inv.data, n, col, row)

		pivot = work[col*n+col]
		for k := 0; k < n; k++ {
			work[col*n+k] /= pivot
			inv.data[col*n+k] /= pivot
		}
		for r := 0; r < n; r++ {
			if r == col {
				continue
			}
			factor = work[r*n+col]
			if factor == 0 {
				continue
			}
			for k := 0; k < n; k++ {
				work[r*n+k] -= factor * work[col*n+k]
				inv.data[r*n+k] -= factor * inv.data[col*n+k]
			}
		}
	}

	return inv, nil
}

// Solve returns the vector x with m·x = b.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare as usual.
//   - ErrDimensionMismatch when len(b) != n.
//   - ErrSingular when elimination meets a negligible pivot column.
//
// Complexity: O(n³).
func (m *Dense) Solve(b []complex128) ([]complex128, error) {
	if m == nil {
		return nil, opErrorf(opSolve, ErrNilMatrix)
	}
	if m.r != m.c {
		return nil, opErrorf(opSolve, ErrNonSquare)
	}
	n := m.r
	if len(b) != n {
		return nil, opErrorf(opSolve, ErrDimensionMismatch)
	}

	work := make([]complex128, len(m.data))
	copy(work, m.data)
	rhs := make([]complex128, n)
	copy(rhs, b)

	// Forward elimination.
	var factor complex128
	for col := 0; col < n; col++ {
		row, abs := pivotRow(work, n, col)
		if abs <= numeric.Epsilon {
			return nil, opErrorf(opSolve, ErrSingular)
		}
		swapRows(work, n, col, row)
		rhs[col], rhs[row] = rhs[row], rhs[col]

		for r := col + 1; r < n; r++ {
			factor = work[r*n+col] / work[col*n+col]
			if factor == 0 {
				continue
			}
			for k := col; k < n; k++ {
				work[r*n+k] -= factor * work[col*n+k]
			}
			rhs[r] -= factor * rhs[col]
		}
	}

	// Back substitution.
	x := make([]complex128, n)
	var sum complex128
	for i := n - 1; i >= 0; i-- {
		sum = rhs[i]
		for k := i + 1; k < n; k++ {
			sum -= work[i*n+k] * x[k]
		}
		x[i] = sum / work[i*n+i]
	}

	return x, nil
}
