// Package mobius implements the disk-automorphism algebra underneath the
// {4,q} tiling engine: SU(1,1) Möbius transforms acting on the open unit
// disk of the Poincaré model.
//
// What
//
//   - Mobius{A, B} represents T(z) = (A·z + B) / (conj(B)·z + conj(A)),
//     the general orientation-preserving automorphism of the unit disk,
//     under the normalization invariant |A|² − |B|² = 1.
//   - Compose, Inverse and Normalized are exact algebraic operations;
//     Compose renormalizes its result on every call so that floating-point
//     error never compounds across a session.
//   - Translation(d, θ) builds the pure hyperbolic translation moving the
//     origin distance d along direction θ — the building block of the
//     tiling's edge-step transforms.
//   - Distance is the Poincaré metric; ClampToDisk pulls boundary-grazing
//     points back to a safe interior radius.
//
// Why
//
//	Every cell placement in the tiling is a chain of composed transforms.
//	The algebra must hold |A|²−|B|²=1 exactly enough that a transform
//	composed thousands of times still maps the disk onto itself; uniform
//	rescaling after each composition keeps the drift at the level of a
//	single rounding step.
//
// Sign ambiguity
//
//	SU(1,1) double-covers the automorphism group: (A,B) and (−A,−B) are
//	the same map. ApproxEq and IsIdentity compare up to this sign.
//
// Failure mode
//
//	If |A|²−|B|² ever reaches zero or below, the transform no longer maps
//	the disk to itself. That state is unreachable through this package's
//	own operations, so Normalized treats it as a fatal programming error
//	and panics with the offending determinant rather than returning
//	garbage geometry.
//
// Complexity: every operation is O(1) arithmetic on four float64 words.
package mobius
