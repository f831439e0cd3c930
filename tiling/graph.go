package tiling

import (
	"math"
	"sync"

	"github.com/lpriccio/octofact/address"
	"github.com/lpriccio/octofact/mobius"
	"github.com/lpriccio/octofact/polygon"
)

// spatialScale quantizes canonical cell centers for the geometric dedup
// index. Duplicate placements of one cell agree to ~1e-9, so they land
// in the same or an adjacent bucket; distinct cells sharing a bucket are
// told apart by polygon.SameCell.
const spatialScale = 1e4

// sameCellEps is the tolerance for comparing placement transforms when
// deciding two tiles are the same cell.
const sameCellEps = 1e-6

// Graph is the lazily grown adjacency structure of one {4,q} tiling.
//
// Tiles are keyed by canonical Address and materialized level by level;
// a tile, once created, is permanent and its address never changes. The
// frame transform — what maps canonical placements into the current view
// — is the only mutable geometry, and only Rebase moves it.
//
// Lookups match addresses exactly (through recorded dedup aliases):
// pass canonical addresses as produced by Reduce.
//
// All methods are safe for concurrent use; a single RWMutex guards the
// arena.
type Graph struct {
	mu sync.RWMutex

	geo *polygon.Geometry
	red *address.Reducer

	tiles   map[string]*tile
	aliases map[string]string     // reduced key → canonical key (dedup misses)
	spatial map[[2]int64][]string // quantized canonical center → tile keys

	frame  mobius.Mobius   // view = frame ∘ canonical placement
	center address.Address // the cell Rebase pinned at the view origin

	dedupMisses int
	opts        Options
}

// New builds an empty graph for the {4,q} tiling, containing only the
// origin tile. Fails with polygon.ErrNotHyperbolic for q < 5.
func New(q int, opts ...Option) (*Graph, error) {
	geo, err := polygon.New(q)
	if err != nil {
		return nil, err
	}
	red, err := address.NewReducer(geo)
	if err != nil {
		return nil, err
	}
	g := &Graph{
		geo:     geo,
		red:     red,
		tiles:   make(map[string]*tile),
		aliases: make(map[string]string),
		spatial: make(map[[2]int64][]string),
		frame:   mobius.Identity(),
		center:  address.Address{},
		opts:    DefaultOptions(),
	}
	for _, opt := range opts {
		opt(&g.opts)
	}
	if _, err := g.createTile(address.Address{}, mobius.Identity()); err != nil {
		return nil, err
	}
	return g, nil
}

// Geometry returns the tiling geometry the graph was built on.
func (g *Graph) Geometry() *polygon.Geometry { return g.geo }

// Len returns the number of materialized tiles.
func (g *Graph) Len() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.tiles)
}

// DedupMisses returns how many times the geometric safety net caught a
// cell the rewrite system missed. Zero in a healthy graph.
func (g *Graph) DedupMisses() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.dedupMisses
}

// Frame returns the current view transform. Canonical placements are
// composed with it to obtain on-screen positions.
func (g *Graph) Frame() mobius.Mobius {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.frame
}

// Center returns the address of the cell currently pinned at the view
// origin — the last Rebase target, initially the origin cell.
func (g *Graph) Center() address.Address {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.center.Clone()
}

// Reduce collapses a raw walk to the canonical address of the cell it
// reaches, applying any dedup aliases the graph has recorded.
func (g *Graph) Reduce(path []address.Direction) (address.Address, error) {
	a, err := g.red.Reduce(path)
	if err != nil {
		return nil, err
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	return address.FromKey(g.resolveKey(a.Key())), nil
}

// TransformFor returns the placement of a materialized tile in the
// current frame: the transform carrying the canonical cell onto it.
// Returns ErrUnknownTile for cells not yet in the graph.
func (g *Graph) TransformFor(a address.Address) (mobius.Mobius, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	t, ok := g.lookup(a)
	if !ok {
		return mobius.Mobius{}, ErrUnknownTile
	}
	return g.frame.Compose(t.place), nil
}

// DepthOf returns the graph distance from the origin cell to a
// materialized tile. Returns ErrUnknownTile for cells not in the graph.
func (g *Graph) DepthOf(a address.Address) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	t, ok := g.lookup(a)
	if !ok {
		return 0, ErrUnknownTile
	}
	return t.depth, nil
}

// NeighborsOf returns the four neighbor addresses of a materialized
// tile, indexed by crossing direction, materializing them on demand.
// Returns ErrUnknownTile if a itself is not in the graph and
// ErrTileBudget if a neighbor cannot be materialized within budget.
func (g *Graph) NeighborsOf(a address.Address) ([polygon.Sides]address.Address, error) {
	var out [polygon.Sides]address.Address
	g.mu.Lock()
	defer g.mu.Unlock()
	t, ok := g.lookup(a)
	if !ok {
		return out, ErrUnknownTile
	}
	if err := g.expand(t); err != nil {
		return out, err
	}
	for d, key := range t.neighbors {
		out[d] = address.FromKey(key)
	}
	return out, nil
}

// EnsureRadius materializes every tile within graph distance r of the
// current center, in deterministic level order (FIFO frontier, neighbor
// directions ascending). Already-present tiles are untouched; the call
// is add-only and idempotent.
func (g *Graph) EnsureRadius(r int) error {
	if r < 0 {
		return ErrRadiusNegative
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	start := g.resolveKey(g.center.Key())
	dist := map[string]int{start: 0}
	queue := []string{start}
	for len(queue) > 0 {
		key := queue[0]
		queue = queue[1:]
		d := dist[key]
		if d == r {
			continue
		}
		t := g.tiles[key]
		if err := g.expand(t); err != nil {
			return err
		}
		for _, nk := range t.neighbors {
			if _, seen := dist[nk]; !seen {
				dist[nk] = d + 1
				queue = append(queue, nk)
			}
		}
	}
	return nil
}

// Rebase pins the given cell at the view origin by changing the frame.
// Tile addresses and the arena are untouched; rebasing to the current
// center is a no-op, and rebasing back to the origin cell restores the
// identity frame exactly. Returns ErrUnknownTile for cells not in the
// graph.
func (g *Graph) Rebase(to address.Address) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	t, ok := g.lookup(to)
	if !ok {
		return ErrUnknownTile
	}
	if t.depth == 0 {
		g.frame = mobius.Identity()
	} else {
		g.frame = t.place.Inverse()
	}
	g.center = t.addr.Clone()
	return nil
}

// lookup resolves an address (through dedup aliases) to its tile.
// Callers hold the lock.
func (g *Graph) lookup(a address.Address) (*tile, bool) {
	t, ok := g.tiles[g.resolveKey(a.Key())]
	return t, ok
}

// resolveKey follows at most one alias hop; aliases always point at a
// canonical tile key.
func (g *Graph) resolveKey(key string) string {
	if canon, ok := g.aliases[key]; ok {
		return canon
	}
	return key
}

// expand materializes the four neighbors of t. Callers hold the write
// lock.
func (g *Graph) expand(t *tile) error {
	if t.expanded {
		return nil
	}
	for d := 0; d < polygon.Sides; d++ {
		raw := append(t.addr.Clone(), address.Direction(d))
		na, err := g.red.Reduce(raw)
		if err != nil {
			return err
		}
		key := g.resolveKey(na.Key())
		if _, ok := g.tiles[key]; !ok {
			// Placement comes from the canonical word itself, not from
			// parent∘step: reduction may leave a trailing frame rotation,
			// and the cached transform must match the address exactly.
			nt, err := g.createTile(na, g.placeFor(na))
			if err != nil {
				return err
			}
			key = nt.addr.Key()
		}
		t.neighbors[d] = key
	}
	t.expanded = true
	return nil
}

// placeFor composes the step transforms along a canonical address.
func (g *Graph) placeFor(a address.Address) mobius.Mobius {
	t := mobius.Identity()
	for _, d := range a {
		t = t.Compose(g.geo.Step(int(d)))
	}
	return t
}

// createTile inserts a tile for a canonical address, running the
// geometric dedup safety net first: if the placement lands on an
// already-materialized cell, an alias is recorded instead and the
// existing tile is returned. Callers hold the write lock.
func (g *Graph) createTile(a address.Address, place mobius.Mobius) (*tile, error) {
	if twin := g.spatialLookup(place); twin != nil {
		g.dedupMisses++
		g.aliases[a.Key()] = twin.addr.Key()
		if g.opts.OnDedupMiss != nil {
			g.opts.OnDedupMiss(a.Clone(), twin.addr.Clone())
		}
		return twin, nil
	}
	if g.opts.MaxTiles > 0 && len(g.tiles) >= g.opts.MaxTiles {
		return nil, ErrTileBudget
	}
	t := &tile{addr: a.Clone(), place: place, depth: a.Depth()}
	key := t.addr.Key()
	g.tiles[key] = t
	bucket := spatialKey(place.Apply(0))
	g.spatial[bucket] = append(g.spatial[bucket], key)
	if g.opts.OnTile != nil {
		g.opts.OnTile(t.addr.Clone(), t.depth)
	}
	return t, nil
}

// spatialLookup probes the 3×3 bucket neighborhood of a placement's
// center for an existing tile of the same cell.
func (g *Graph) spatialLookup(place mobius.Mobius) *tile {
	base := spatialKey(place.Apply(0))
	for dx := int64(-1); dx <= 1; dx++ {
		for dy := int64(-1); dy <= 1; dy++ {
			for _, key := range g.spatial[[2]int64{base[0] + dx, base[1] + dy}] {
				t := g.tiles[key]
				if _, ok := polygon.SameCell(t.place, place, sameCellEps); ok {
					return t
				}
			}
		}
	}
	return nil
}

func spatialKey(c complex128) [2]int64 {
	return [2]int64{
		int64(math.Round(real(c) * spatialScale)),
		int64(math.Round(imag(c) * spatialScale)),
	}
}
