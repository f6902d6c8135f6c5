// SPDX-License-Identifier: MIT

// Package cmatrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index
//     formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors
//     instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders).

package cmatrix

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/projective/numeric"
)

// error context tags used by denseErrorf.
const (
	ctxAt       = "At"
	ctxSet      = "Set"
	ctxFromRows = "FromRows"
)

// formatting literals for String.
const (
	fmtRowOpen  = "["
	fmtRowClose = "]\n"
	fmtSep      = ", "
)

// denseErrorf attaches method context and coordinates to a sentinel
// error, preserving errors.Is matching via %w.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major complex matrix.
//   - r, c hold dimensions (rows, cols), both > 0.
//   - data is a flat buffer of length r*c in row-major order
//     (offset = i*c + j).
type Dense struct {
	r, c int
	data []complex128
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Dense)(nil)

// NewDense creates an r×c zero matrix using row-major storage.
//
// Errors:
//   - ErrBadShape when rows ≤ 0 or cols ≤ 0.
//
// Complexity: O(r·c).
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("NewDense(%d,%d): %w", rows, cols, ErrBadShape)
	}

	return &Dense{r: rows, c: cols, data: make([]complex128, rows*cols)}, nil
}

// Identity creates the n×n identity matrix.
//
// Errors:
//   - ErrBadShape when n ≤ 0.
func Identity(n int) (*Dense, error) {
	m, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}

	return m, nil
}

// FromRows builds a Dense from row slices. All rows must be non-empty,
// of equal length and contain only finite values.
//
// Errors:
//   - ErrBadShape for empty or ragged input.
//   - ErrNaNInf for NaN/Inf components.
//
// Complexity: O(r·c).
func FromRows(rows [][]complex128) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("%s: %w", ctxFromRows, ErrBadShape)
	}
	cols := len(rows[0])
	m, err := NewDense(len(rows), cols)
	if err != nil {
		return nil, err
	}
	for i, row := range rows {
		if len(row) != cols {
			return nil, denseErrorf(ctxFromRows, i, len(row), ErrBadShape)
		}
		for j, v := range row {
			if !numeric.IsFinite(v) {
				return nil, denseErrorf(ctxFromRows, i, j, ErrNaNInf)
			}
			m.data[i*cols+j] = v
		}
	}

	return m, nil
}

// FromColumns builds a Dense whose j-th column is cols[j]. The same
// validation rules as FromRows apply.
func FromColumns(cols [][]complex128) (*Dense, error) {
	m, err := FromRows(cols)
	if err != nil {
		return nil, err
	}

	return m.Transpose(), nil
}

// Rows returns the number of rows. O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns. O(1).
func (m *Dense) Cols() int { return m.c }

// At retrieves the element at position (i, j).
//
// Errors:
//   - ErrNilMatrix on a nil receiver.
//   - ErrOutOfRange when the index is outside bounds.
func (m *Dense) At(i, j int) (complex128, error) {
	if m == nil {
		return 0, ErrNilMatrix
	}
	if i < 0 || i >= m.r || j < 0 || j >= m.c {
		return 0, denseErrorf(ctxAt, i, j, ErrOutOfRange)
	}

	return m.data[i*m.c+j], nil
}

// Set assigns the value v at position (i, j). Finite values only.
//
// Errors:
//   - ErrNilMatrix on a nil receiver.
//   - ErrOutOfRange when the index is outside bounds.
//   - ErrNaNInf when v is NaN or ±Inf.
func (m *Dense) Set(i, j int, v complex128) error {
	if m == nil {
		return ErrNilMatrix
	}
	if i < 0 || i >= m.r || j < 0 || j >= m.c {
		return denseErrorf(ctxSet, i, j, ErrOutOfRange)
	}
	if !numeric.IsFinite(v) {
		return denseErrorf(ctxSet, i, j, ErrNaNInf)
	}
	m.data[i*m.c+j] = v

	return nil
}

// Clone returns a deep copy, independent of the original. O(r·c).
func (m *Dense) Clone() *Dense {
	if m == nil {
		return nil
	}
	out := &Dense{r: m.r, c: m.c, data: make([]complex128, len(m.data))}
	copy(out.data, m.data)

	return out
}

// Transpose returns a new c×r matrix with rows and columns exchanged.
// O(r·c).
func (m *Dense) Transpose() *Dense {
	if m == nil {
		return nil
	}
	out := &Dense{r: m.c, c: m.r, data: make([]complex128, len(m.data))}
	for i := 0; i < m.r; i++ {
		for j := 0; j < m.c; j++ {
			out.data[j*m.r+i] = m.data[i*m.c+j]
		}
	}

	return out
}

// Scale returns a new matrix with every element multiplied by k. O(r·c).
func (m *Dense) Scale(k complex128) *Dense {
	if m == nil {
		return nil
	}
	out := m.Clone()
	for idx := range out.data {
		out.data[idx] *= k
	}

	return out
}

// Column returns a copy of column j.
//
// Errors:
//   - ErrNilMatrix / ErrOutOfRange as usual.
func (m *Dense) Column(j int) ([]complex128, error) {
	if m == nil {
		return nil, ErrNilMatrix
	}
	if j < 0 || j >= m.c {
		return nil, denseErrorf(ctxAt, 0, j, ErrOutOfRange)
	}
	col := make([]complex128, m.r)
	for i := 0; i < m.r; i++ {
		col[i] = m.data[i*m.c+j]
	}

	return col, nil
}

// String renders the matrix row by row, one bracketed row per line.
func (m *Dense) String() string {
	if m == nil {
		return "<nil>"
	}
	var sb strings.Builder
	for i := 0; i < m.r; i++ {
		sb.WriteString(fmtRowOpen)
		for j := 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(fmtSep)
			}
			fmt.Fprintf(&sb, "%v", m.data[i*m.c+j])
		}
		sb.WriteString(fmtRowClose)
	}

	return sb.String()
}
