// Package numeric defines the precision policy shared by every other
// package of the projective library.
//
// What:
//
//   - A single tunable tolerance, Epsilon, governs every "is this zero",
//     "are these equal" and "is this matrix singular" decision downstream.
//   - Scalar coercion helpers: zero tests, componentwise equality for
//     complex values, snapping of near-rational values onto a fixed grid.
//   - Magnitude policy constants used by homogeneous-coordinate coercion
//     (MaxHomogeneousValue, RescaleFactor, SnapDenominator).
//
// Why:
//
//   - Homogeneous coordinates are defined only up to a nonzero complex
//     scalar. Without a shared numeric policy, equality tests and rank
//     tests drift apart under repeated transformation composition.
//   - Hand-authored geometric constructions live on small integers and
//     simple fractions; the snapping grid removes floating rounding noise
//     from genuinely rational results.
//
// Errors: none — every helper is a total function on finite inputs.
//
// Complexity: all helpers are O(1).
package numeric
