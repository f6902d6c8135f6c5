// SPDX-License-Identifier: MIT

package cmatrix_test

import (
	"testing"

	"github.com/katalvlaran/projective/cmatrix"
	"github.com/katalvlaran/projective/numeric"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewDense_BadShape verifies shape validation on construction.
func TestNewDense_BadShape(t *testing.T) {
	_, err := cmatrix.NewDense(0, 3)
	assert.ErrorIs(t, err, cmatrix.ErrBadShape, "zero rows must be rejected")

	_, err = cmatrix.NewDense(3, -1)
	assert.ErrorIs(t, err, cmatrix.ErrBadShape, "negative cols must be rejected")
}

// TestFromRows_Validation covers ragged rows and non-finite entries.
func TestFromRows_Validation(t *testing.T) {
	_, err := cmatrix.FromRows([][]complex128{{1, 2}, {3}})
	assert.ErrorIs(t, err, cmatrix.ErrBadShape, "ragged rows must be rejected")

	nan := complex(0/nonConst(), 0)
	_, err = cmatrix.FromRows([][]complex128{{1, nan}})
	assert.ErrorIs(t, err, cmatrix.ErrNaNInf, "NaN entries must be rejected")
}

// TestAtSet_Bounds exercises the safe accessors.
func TestAtSet_Bounds(t *testing.T) {
	m, err := cmatrix.NewDense(2, 2)
	require.NoError(t, err)

	require.NoError(t, m.Set(1, 0, complex(2, -1)))
	v, err := m.At(1, 0)
	require.NoError(t, err)
	assert.Equal(t, complex(2, -1), v)

	_, err = m.At(2, 0)
	assert.ErrorIs(t, err, cmatrix.ErrOutOfRange)
	assert.ErrorIs(t, m.Set(0, 2, 1), cmatrix.ErrOutOfRange)
}

// TestMul_Identity checks m·I == m and dimension validation.
func TestMul_Identity(t *testing.T) {
	m, err := cmatrix.FromRows([][]complex128{
		{1, 2i},
		{3, complex(4, 5)},
	})
	require.NoError(t, err)

	id, err := cmatrix.Identity(2)
	require.NoError(t, err)

	prod, err := m.Mul(id)
	require.NoError(t, err)
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			want, _ := m.At(i, j)
			got, _ := prod.At(i, j)
			assert.Equal(t, want, got, "m·I must equal m at (%d,%d)", i, j)
		}
	}

	tall, err := cmatrix.NewDense(3, 2)
	require.NoError(t, err)
	_, err = m.Mul(tall)
	assert.ErrorIs(t, err, cmatrix.ErrDimensionMismatch)
}

// TestDet_ComplexValues checks the determinant over ℂ.
func TestDet_ComplexValues(t *testing.T) {
	// det [[i, 1], [1, i]] = i·i − 1 = −2.
	m, err := cmatrix.FromRows([][]complex128{
		{1i, 1},
		{1, 1i},
	})
	require.NoError(t, err)

	det, err := m.Det()
	require.NoError(t, err)
	assert.True(t, numeric.EqualScalar(det, -2), "det should be −2, got %v", det)
}

// TestInverse_RoundTrip verifies m·m⁻¹ == I within Epsilon.
func TestInverse_RoundTrip(t *testing.T) {
	m, err := cmatrix.FromRows([][]complex128{
		{2, 1, 0},
		{0, 1i, 1},
		{1, 0, 1},
	})
	require.NoError(t, err)

	inv, err := m.Inverse()
	require.NoError(t, err)

	prod, err := m.Mul(inv)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			got, _ := prod.At(i, j)
			want := complex128(0)
			if i == j {
				want = 1
			}
			assert.True(t, numeric.EqualScalar(got, want), "(%d,%d): got %v", i, j, got)
		}
	}
}

// TestInverse_Singular rejects rank-deficient matrices.
func TestInverse_Singular(t *testing.T) {
	m, err := cmatrix.FromRows([][]complex128{
		{1, 2},
		{2, 4},
	})
	require.NoError(t, err)

	_, err = m.Inverse()
	assert.ErrorIs(t, err, cmatrix.ErrSingular)

	sing, err := m.IsSingular()
	require.NoError(t, err)
	assert.True(t, sing)
}

// TestSolve_Linear checks a small complex system.
func TestSolve_Linear(t *testing.T) {
	m, err := cmatrix.FromRows([][]complex128{
		{1, 1},
		{1, -1},
	})
	require.NoError(t, err)

	// x + y = 3, x − y = 1i  ⇒  x = (3+1i)/2, y = (3−1i)/2.
	x, err := m.Solve([]complex128{3, 1i})
	require.NoError(t, err)
	assert.True(t, numeric.EqualScalar(x[0], complex(1.5, 0.5)), "x = %v", x[0])
	assert.True(t, numeric.EqualScalar(x[1], complex(1.5, -0.5)), "y = %v", x[1])

	_, err = m.Solve([]complex128{1})
	assert.ErrorIs(t, err, cmatrix.ErrDimensionMismatch)
}

// TestTranspose_Columns checks FromColumns against Column extraction.
func TestTranspose_Columns(t *testing.T) {
	m, err := cmatrix.FromColumns([][]complex128{
		{1, 2, 3},
		{4, 5, 6},
	})
	require.NoError(t, err)
	assert.Equal(t, 3, m.Rows())
	assert.Equal(t, 2, m.Cols())

	col, err := m.Column(1)
	require.NoError(t, err)
	assert.Equal(t, []complex128{4, 5, 6}, col)
}

// nonConst defeats constant folding for NaN construction.
func nonConst() float64 { return 0 }
