// Package geometry implements the projective entities of 1-, 2- and
// 3-dimensional synthetic geometry and the projective mappings between
// them.
//
// What:
//
//   - Entities: Element1D (the projective line), Point2D/Line2D (the
//     projective plane, mutually dual), Point3D/Plane3D (projective
//     space, mutually dual), LinearComplex and its special case Line3D
//     (Plücker coordinates).
//   - Incidence algebra: Join (connecting span), Meet (intersection),
//     IsIncident in every dual pairing, ToAffine/AsDirection exports for
//     drawing collaborators.
//   - Mappings: Collineation1D/2D/3D (duality-preserving) and
//     Correlation2D/3D (duality-reversing), built from explicit matrices
//     or from N+2 correspondences via the canonical transformation; 3D
//     line images through a lazily derived 6×6 Plücker matrix.
//   - Constructions: central collineations (homologies and elations),
//     sphere polarities, and random sampling of incident configurations.
//
// Why:
//
//   - Synthetic constructions (conics, stereographic projections,
//     central collineations) are assembled from exactly these meet/join
//     and correspondence primitives; the affine exports at the end of a
//     construction feed the drawing layer.
//
// Failure policy:
//
//   - Malformed construction (wrong coordinate count, singular matrix,
//     wrong correspondence count) fails immediately with a sentinel
//     error and never yields a partially built object.
//   - Degenerate geometric operations (join/meet of equal inputs, images
//     collapsing onto a center) return nil — "no unique result" is a
//     valid outcome the caller must check, not an error.
//   - Algorithmic invariant violations (a common point of supposedly
//     incident lines defeating the fallback enumeration, exhausted
//     sampling budgets) surface as distinct fatal sentinels.
//
// Concurrency: every entity and mapping is immutable after construction;
// lazily derived matrices are memoized behind sync.Once. Concurrent
// reads are safe; randomness enters only through injected sources.
package geometry
