// Package projective is an in-memory toolkit for synthetic projective
// geometry over the complex numbers — homogeneous coordinates, incidence
// algebra and projective transformations in 1, 2 and 3 dimensions.
//
// 🚀 What is projective?
//
//	A modern, dependency-light library that brings together:
//		• Numeric policy: a single ε that governs coercion, equality and rank tests
//		• Homogeneous vectors: equality up to scale, incidence, random incident sampling
//		• Entities: Point1D/2D/3D, Line2D/3D, Plane3D, linear complexes with meet & join
//		• Algorithms: Plücker products, canonical-frame transformation, cross ratio
//		• Mappings: collineations & correlations from matrices or correspondences
//		• Constructions: central collineations, sphere polarities, random configurations
//
// ✨ Why choose projective?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Rock-solid guarantees – immutable entities, sentinel errors, in-code docs
//   - Pure Go – no cgo, no hidden deps
//   - Deterministic – randomness only through injected sources
//
// Under the hood, everything is organized under five subpackages:
//
//	numeric/   — precision constants and scalar coercion helpers
//	cmatrix/   — dense complex matrices with inverse, determinant, solve
//	hvector/   — homogeneous vectors, canonical transformation, cross ratio
//	geometry/  — points, lines, planes, linear complexes, collineations, correlations
//	paramlist/ — generator-backed (parameter, value) lists for curve sampling
//
// Quick ASCII example:
//
//	    P───────Q        the join P∨Q is a line;
//	     \     /         meeting it with the line at infinity
//	      \   /          yields the direction of PQ.
//	       \ /
//	        C
//
// Dive into each package's doc.go for contracts, error taxonomies and
// worked examples.
//
//	go get github.com/katalvlaran/projective
package projective
