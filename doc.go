// Package octofact is an in-memory engine for the {4,q} tiling of the
// hyperbolic plane: stable cell identities plus Poincaré-disk placement
// transforms, discovered incrementally with no absolute coordinate system.
//
// 🚀 What is octofact?
//
//	A thread-safe library that answers two questions for an infinite
//	square tiling of the hyperbolic plane:
//		• "which cell does this sequence of edge-crossings reach?"
//		  → a canonical, path-independent Address
//		• "where does that cell sit in the current view frame?"
//		  → a disk-automorphism (Möbius) Transform
//
// ✨ Why octofact?
//
//   - Canonical identity – any two walks to the same cell reduce to one
//     identical address, so addresses can key maps, saves and simulations
//   - Bounded numerics – transforms renormalize on every composition and
//     the whole frame can be rebased onto any cell to keep magnitudes sane
//   - Incremental – cells are discovered by breadth-first frontier
//     expansion on demand, never renamed, never destroyed
//
// Everything is organized under five subpackages:
//
//	mobius/  — SU(1,1) disk-automorphism algebra over complex128
//	polygon/ — {4,q} geometric constants and the four edge-step transforms
//	address/ — canonical cell addresses and the word-reduction engine
//	tiling/  — the breadth-first tiling graph, dedup and rebase
//	config/  — setup-boundary configuration (q, expansion radius)
//
// Quick ASCII example (q cells meet at every vertex; here q=5):
//
//	     ┌───┐
//	  ┌──┤ 1 ├──┐
//	  │ 2┌───┐0 │        the origin cell "O" and its four
//	  ├──┤ O ├──┤        neighbors across edges 0..3
//	  │ 3└───┘  │
//	  └──┴───┴──┘
//
// Rendering, simulation, chunk streaming and persistence are external
// collaborators: they hold addresses (cheap, copyable identifiers), query
// the tiling graph each frame, and never reach into it.
//
//	go get github.com/lpriccio/octofact
package octofact
