// Package tiling grows and serves the cell-adjacency graph of a {4,q}
// hyperbolic tiling, lazily and permanently.
//
// # What
//
//   - Graph: an address-keyed arena of tiles. A tile is one cell of the
//     tiling: canonical Address, cached placement transform, BFS depth
//     and (once expanded) its four neighbor addresses. Tiles are never
//     destroyed and addresses never change.
//   - EnsureRadius(r): materializes every cell within graph distance r
//     of the current center, level by level, in deterministic order.
//     Add-only and idempotent.
//   - NeighborsOf: expands a single tile on demand.
//   - Rebase: pins any materialized cell at the view origin by replacing
//     the frame transform. Pure frame change — no tile is touched, which
//     is what keeps addresses stable while the numerics stay anchored
//     near the disk center where they are well conditioned.
//
// # Why
//
// Walking far from the origin of the Poincaré disk drives coordinates
// into the crowded rim where doubles lose resolution. Splitting identity
// (Address, exact) from position (placement ∘ frame, approximate) lets a
// simulation wander indefinitely: identity arithmetic never degrades,
// and Rebase recenters the approximate part whenever the view moves.
//
// # Dedup safety net
//
// Cell identity is decided by address reduction. As insurance, every new
// tile's placement is checked against a quantized spatial index of the
// cells already materialized; a hit means the rewrite system missed a
// relation. The graph then records an alias (both addresses resolve to
// one tile), bumps DedupMisses and fires the OnDedupMiss hook. A healthy
// graph reports zero misses, and the tests pin that.
//
// # Concurrency
//
// All methods are safe for concurrent use behind one RWMutex. Hooks run
// with the lock held and must not call back into the Graph.
//
// # Errors
//
//   - ErrUnknownTile: address names no materialized tile.
//   - ErrRadiusNegative: negative EnsureRadius argument.
//   - ErrTileBudget: WithMaxTiles budget exhausted.
package tiling
