// Package polygon computes the geometric constants of the {4,q} hyperbolic
// tiling and the four edge-step transforms that carry the canonical cell
// onto each of its neighbors.
//
// What
//
//   - Geometry is built once per session from the single tiling parameter
//     q (how many squares meet at every vertex, q ≥ 5) and is immutable:
//     circumradius from cosh(χ) = cot(π/4)·cot(π/q), inradius from
//     cosh(ψ) = cos(π/q)/sin(π/4), and the center-to-center neighbor
//     distance D from cosh(D) = 2·cosh²(ψ) − 1.
//   - Step(d), d ∈ [0,4), is the pure translation moving the canonical
//     cell's center onto the neighbor across edge d. The tiling is
//     homogeneous, so this one table places every cell at every depth;
//     no per-cell trigonometry exists anywhere.
//   - Back(d) is the direction that, from the cell just entered through
//     edge d, leads back across the same edge. It is derived numerically
//     from the step table itself (Step(d)∘Step(Back(d)) ≈ identity), not
//     assumed, so it doubles as a startup self-check of the algebra.
//   - Vertices delivers the canonical cell's corners as Euclidean
//     geom.Coord values for renderers and exporters; DiskToBowl is the
//     gentle-bowl embedding used by 3D views.
//
// Why
//
//	Every other layer (address reduction, tiling graph, rebase) treats
//	these constants as ground truth. Deriving the back-direction table and
//	validating the step inverses here turns a wrong constant into a
//	constructor error instead of a silent geometry bug three layers up.
//
// Validity
//
//	{p,q} tiles the hyperbolic plane iff 1/p + 1/q < 1/2; with p fixed at
//	4 this means q ≥ 5. New rejects anything smaller with ErrNotHyperbolic.
package polygon
