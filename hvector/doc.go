// Package hvector implements homogeneous coordinate vectors over the
// complex numbers — the shared substrate of every projective entity.
//
// What:
//
//   - HVector — an immutable tuple of N ≥ 2 complex coordinates, never
//     all zero, stored after homogeneous coercion.
//   - Coercion: real-representative selection, magnitude rescaling and
//     rational-grid snapping (CoerceHomogeneousCoordinates).
//   - Equality up to a complex scale factor (Equals), incidence via the
//     plain dot product (IsIncident, Dot), matrix images (Multiply).
//   - RandomIncident — small-integer sampling of elements incident with
//     a given vector, with optional realness constraint and exclusion
//     set. The only entry point for randomness in the library.
//   - CanonicalTransformation — the frame matrix through N+2 independent
//     vectors; CrossRatio — the projective invariant of four elements of
//     a pencil; Decompose — two-term basis decomposition.
//   - Set — an order-preserving collection with Equals-based membership.
//
// Why:
//
//   - Homogeneous coordinates are defined up to an arbitrary nonzero
//     complex scalar; without coercion, equality and zero tests drift
//     under repeated transformation composition.
//   - All higher layers (points, lines, planes, complexes, collineations)
//     wrap HVector by composition and inherit its numeric guarantees.
//
// Errors:
//
//   - ErrTooFewCoordinates: construction with fewer than 2 coordinates.
//   - ErrZeroVector: construction from an (effectively) zero tuple.
//   - ErrNaNInf: non-finite coordinate at ingestion.
//   - ErrDimensionMismatch: operands of different dimension.
//   - ErrDegenerateBasis: two basis elements of a cross-ratio pencil (or
//     a decomposition basis) coincide.
//   - ErrNotCollinear: a cross-ratio element lies outside the pencil.
//   - ErrDependentVectors: a rank-deficient subset in the canonical
//     transformation.
//   - ErrSamplingExhausted: random incident sampling found no admissible
//     element within the attempt budget (algorithm-failure condition).
//
// Degenerate-but-valid outcomes (an image collapsing to zero under
// Multiply) are reported as a nil result with a nil error; callers must
// nil-check.
//
// Concurrency: HVector and Set values are immutable after construction;
// concurrent reads are safe. Randomness is drawn from an injected or
// per-call source, never from shared mutable state.
package hvector
