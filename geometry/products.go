// Package geometry - the closed-form products behind meet and join.
//
// Purpose:
//   - cross3: the homogeneous cross product carrying joins and meets of
//     the projective plane.
//   - pluckerJoin / dualPermutation: the 6-coordinate Plücker algebra of
//     spatial lines, ordered (g₀₁, g₀₂, g₀₃, g₂₃, g₃₁, g₁₂) so that the
//     planewise dual is the fixed index permutation {0↔3, 1↔4, 2↔5}.

package geometry

import "github.com/katalvlaran/projective/hvector"

// cross3 returns the cross product of two 3-coordinate vectors: the
// line joining two points of the plane, or dually the point meeting two
// lines.
func cross3(a, b *hvector.HVector) []complex128 {
	return []complex128{
		a.At(1)*b.At(2) - a.At(2)*b.At(1),
		a.At(2)*b.At(0) - a.At(0)*b.At(2),
		a.At(0)*b.At(1) - a.At(1)*b.At(0),
	}
}

// pluckerOf computes the Plücker coordinates of the join of two
// 4-tuples given as raw slices (matrix columns during line-map
// derivation).
func pluckerOf(p, q []complex128) []complex128 {
	g := func(i, j int) complex128 { return p[i]*q[j] - p[j]*q[i] }

	return []complex128{g(0, 1), g(0, 2), g(0, 3), g(2, 3), g(3, 1), g(1, 2)}
}

// pluckerJoin computes the pointwise Plücker coordinates of the line
// joining two points of space.
func pluckerJoin(p, q *hvector.HVector) []complex128 {
	return pluckerOf(p.Coordinates(), q.Coordinates())
}

// dualPermutation exchanges the two coordinate triples {0↔3, 1↔4, 2↔5},
// turning pointwise line coordinates into planewise ones and back.
func dualPermutation(c []complex128) []complex128 {
	return []complex128{c[3], c[4], c[5], c[0], c[1], c[2]}
}
