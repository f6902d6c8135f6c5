// SPDX-License-Identifier: MIT

// Package cmatrix - multiplication kernels.
//
// Purpose:
//   - Matrix·matrix and matrix·vector products with strict fail-fast
//     validation and deterministic i→k→j loop order.

package cmatrix

import "fmt"

// operation tags for unified error wrapping.
const (
	opMul    = "Mul"
	opMatVec = "MulVec"
)

// opErrorf wraps err with an operation tag, preserving the sentinel for
// errors.Is. Call only with err != nil.
func opErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Mul returns the product m·b as a freshly allocated Dense.
//
// Errors:
//   - ErrNilMatrix when either operand is nil.
//   - ErrDimensionMismatch when m.Cols() != b.Rows().
//
// Complexity: O(r·k·c).
func (m *Dense) Mul(b *Dense) (*Dense, error) {
	if m == nil || b == nil {
		return nil, opErrorf(opMul, ErrNilMatrix)
	}
	if m.c != b.r {
		return nil, opErrorf(opMul, ErrDimensionMismatch)
	}

	out := &Dense{r: m.r, c: b.c, data: make([]complex128, m.r*b.c)}
	var sum complex128
	for i := 0; i < m.r; i++ {
		for j := 0; j < b.c; j++ {
			sum = 0
			for k := 0; k < m.c; k++ {
				sum += m.data[i*m.c+k] * b.data[k*b.c+j]
			}
			out.data[i*b.c+j] = sum
		}
	}

	return out, nil
}

// MulVec returns the product m·v, treating v as a column vector.
//
// Errors:
//   - ErrNilMatrix on a nil receiver.
//   - ErrDimensionMismatch when len(v) != m.Cols().
//
// Complexity: O(r·c).
func (m *Dense) MulVec(v []complex128) ([]complex128, error) {
	if m == nil {
		return nil, opErrorf(opMatVec, ErrNilMatrix)
	}
	if len(v) != m.c {
		return nil, opErrorf(opMatVec, ErrDimensionMismatch)
	}

	out := make([]complex128, m.r)
	var sum complex128
	for i := 0; i < m.r; i++ {
		sum = 0
		for j := 0; j < m.c; j++ {
			sum += m.data[i*m.c+j] * v[j]
		}
		out[i] = sum
	}

	return out, nil
}
