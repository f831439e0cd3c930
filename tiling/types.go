package tiling

import (
	"errors"

	"github.com/lpriccio/octofact/address"
	"github.com/lpriccio/octofact/mobius"
	"github.com/lpriccio/octofact/polygon"
)

// Sentinel errors returned by Graph operations.
var (
	// ErrUnknownTile indicates an address that names no materialized tile.
	ErrUnknownTile = errors.New("tiling: unknown tile")

	// ErrRadiusNegative indicates a negative radius passed to EnsureRadius.
	ErrRadiusNegative = errors.New("tiling: radius must be non-negative")

	// ErrTileBudget indicates the configured tile budget would be exceeded.
	ErrTileBudget = errors.New("tiling: tile budget exhausted")
)

// tile is one materialized cell. Tiles are never destroyed and their
// address never changes; only the Graph frame moves.
type tile struct {
	addr  address.Address
	place mobius.Mobius // canonical placement: origin frame → this cell
	depth int           // graph distance from the origin cell

	neighbors [polygon.Sides]string // canonical keys, valid once expanded
	expanded  bool
}

// OnTileFunc observes every newly materialized tile.
type OnTileFunc func(addr address.Address, depth int)

// OnDedupMissFunc observes a reduction miss: got reduced to a word that
// names the same cell as canon without the rewrite system catching it.
// The graph records an alias and carries on; the hook exists so a miss
// is loud in development instead of a silent duplicate.
type OnDedupMissFunc func(got, canon address.Address)

// Options configures a Graph. Zero value = no hooks, no budget.
type Options struct {
	// MaxTiles caps the number of materialized tiles; 0 means unlimited.
	MaxTiles int

	// OnTile, if non-nil, runs for every new tile while the graph lock is
	// held. It must not call back into the Graph.
	OnTile OnTileFunc

	// OnDedupMiss, if non-nil, runs for every geometric dedup miss while
	// the graph lock is held. It must not call back into the Graph.
	OnDedupMiss OnDedupMissFunc
}

// Option adjusts Options.
type Option func(*Options)

// DefaultOptions returns the zero configuration.
func DefaultOptions() Options { return Options{} }

// WithMaxTiles caps the tile arena at n tiles.
func WithMaxTiles(n int) Option {
	return func(o *Options) { o.MaxTiles = n }
}

// WithOnTile registers a new-tile hook.
func WithOnTile(fn OnTileFunc) Option {
	return func(o *Options) { o.OnTile = fn }
}

// WithOnDedupMiss registers a dedup-miss hook.
func WithOnDedupMiss(fn OnDedupMissFunc) Option {
	return func(o *Options) { o.OnDedupMiss = fn }
}
