// SPDX-License-Identifier: MIT

// Package cmatrix: sentinel error set.
// All public operations return these sentinels (possibly wrapped with an
// operation tag via fmt.Errorf("%s: %w", ...)); callers match them with
// errors.Is. Panics are reserved for programmer errors in private
// helpers.

package cmatrix

import "errors"

var (
	// ErrBadShape is returned when a requested shape is invalid
	// (rows ≤ 0, cols ≤ 0, empty or ragged row input).
	ErrBadShape = errors.New("cmatrix: invalid shape")

	// ErrOutOfRange indicates that a row or column index is outside the
	// valid bounds. Public indexers return this, they never panic.
	ErrOutOfRange = errors.New("cmatrix: index out of range")

	// ErrNaNInf signals a NaN or ±Inf component where finite values are
	// required (FromRows ingestion, Set).
	ErrNaNInf = errors.New("cmatrix: NaN or Inf encountered")

	// ErrDimensionMismatch indicates incompatible dimensions between
	// operands, e.g. Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("cmatrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required.
	ErrNonSquare = errors.New("cmatrix: matrix is not square")

	// ErrSingular is returned when every pivot candidate of a column is
	// negligible (|pivot| ≤ numeric.Epsilon) during Inverse or Solve.
	ErrSingular = errors.New("cmatrix: singular matrix")

	// ErrNilMatrix indicates that a nil *Dense receiver or operand was
	// used.
	ErrNilMatrix = errors.New("cmatrix: nil matrix")
)
