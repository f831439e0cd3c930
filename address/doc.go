// Package address gives every cell of the {4,q} tiling a unique, stable,
// reconstructible identity: the canonical Address, a reduced sequence of
// edge-crossing directions from the origin cell.
//
// What
//
//   - Direction is an edge index in [0,4): "which edge of the current cell
//     was crossed". Address is an ordered Direction sequence; the empty
//     Address is the origin cell.
//   - Reducer collapses any raw walk to the one canonical Address of the
//     cell it reaches. Two walks reach the same cell if and only if they
//     reduce to structurally equal Addresses — the property every
//     downstream consumer (graph dedup, simulation, save keys) rests on.
//
// How reduction works
//
//	Reduction is a rewriting system whose rules are derived, numerically,
//	from the edge-step transforms themselves — never from a hand-written
//	relation table:
//
//	 1. Backtrack cancellation. Crossing edge d and then the edge leading
//	    back (Back(d)) is a no-op; such pairs are removed with a single
//	    stack pass.
//	 2. Vertex-cycle collapse. Exactly q cells meet at a vertex, so
//	    walking around a vertex is a closed relation of length q. The
//	    Reducer walks each of the four vertices of the canonical cell in
//	    both orientations, recording the relator words. Any subword
//	    covering more than half of a relator is rewritten to the shorter
//	    complementary way around; equal halves (even q) rewrite only when
//	    lexicographically smaller.
//	 3. Closure. The rules from 2 alone leave rare equal-length geodesic
//	    pairs that bound chains of two or three faces. The constructor
//	    enumerates every irreducible word up to length q+2, groups words
//	    by the cell they reach (transforms compared directly), and adds a
//	    canonicalizing rule for every group with more than one member,
//	    iterating to a fixed point.
//
// Holonomy
//
//	The step transforms are pure translations, and parallel transport
//	around a vertex of the hyperbolic plane turns the frame by a quarter
//	turn. A relator therefore closes on the cell but not on the frame:
//	its transform is a rotation R^k about the cell center, not the
//	identity. Every rewrite rule carries that exponent and rotates the
//	letters following the rewritten segment by it, keeping the remainder
//	of the walk pointing at the same physical edges.
//
// Confluence
//
//	Every rule strictly decreases (length, lexicographic) order, so
//	reduction terminates and is idempotent. That the result is canonical —
//	independent of the path taken — is validated empirically by the test
//	suite (exhaustive path equivalence to radius 3 and beyond, randomized
//	relator insertion on long words); the tiling graph additionally keeps
//	a geometric dedup pass as a safety net, so a missed relation surfaces
//	as a diagnostic rather than a silent split cell.
//
// Complexity
//
//	Reduce is O(n²) worst case over the input length (each pass shortens
//	or lex-decreases the word). Constructing a Reducer enumerates the
//	irreducible words of length ≤ q+2, which grows exponentially with q;
//	for the q of interest (single digits) it stays well under a second.
package address
