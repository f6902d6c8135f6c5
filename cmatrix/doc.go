// SPDX-License-Identifier: MIT

// Package cmatrix provides dense complex matrices sized for projective
// geometry: the 2×2…6×6 kernels behind collineations, correlations and
// canonical-frame solves.
//
// What:
//
//   - Dense — a row-major complex128 matrix with safe At/Set accessors.
//   - Construction: NewDense, Identity, FromRows, FromColumns.
//   - Algebra: Mul, MulVec, Transpose, Scale, Clone.
//   - Decomposition: Det, Inverse and Solve via Gaussian elimination with
//     partial pivoting on coordinate magnitude.
//
// Why:
//
//   - Every projective mapping is a small square complex matrix; the
//     library needs exact control over the singularity tolerance (the
//     shared numeric.Epsilon), which general-purpose BLAS wrappers hide.
//   - Determinism: fixed loop orders, no data-dependent allocation.
//
// Errors:
//
//   - ErrBadShape: non-positive or non-rectangular construction input.
//   - ErrOutOfRange: index outside matrix bounds in At/Set.
//   - ErrNaNInf: NaN or ±Inf where finite values are required.
//   - ErrDimensionMismatch: incompatible operand shapes.
//   - ErrNonSquare: a square matrix was required.
//   - ErrSingular: a pivot collapsed below numeric.Epsilon during
//     inversion or solving.
//   - ErrNilMatrix: nil receiver or operand.
//
// Complexity: accessors O(1); products O(n³) / O(n²); decompositions
// O(n³) — all over n ≤ 6 in practice.
package cmatrix
