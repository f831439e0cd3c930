package polygon

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"

	"github.com/jbeda/geom"

	"github.com/lpriccio/octofact/mobius"
)

// Sides is p of the {p,q} family: every cell is a square. The tiling
// family is fixed; only q varies.
const Sides = 4

// Sentinel errors for geometry construction.
var (
	// ErrNotHyperbolic indicates q too small for a hyperbolic {4,q} tiling
	// (1/4 + 1/q must stay below 1/2, i.e. q ≥ 5).
	ErrNotHyperbolic = errors.New("polygon: {4,q} tiling requires q >= 5")

	// ErrStepTable indicates the derived step transforms failed their
	// inverse self-check; it signals a broken build, not bad input.
	ErrStepTable = errors.New("polygon: edge-step transforms failed inverse check")
)

// stepEps is the tolerance for the startup self-check that pairs each
// step with its inverse.
const stepEps = 1e-9

// Geometry holds the precomputed constants of one {4,q} tiling. Built
// once by New, then read-only; safe for concurrent use.
type Geometry struct {
	q            int
	circumRadius float64 // disk radius, cell center → vertex
	inRadius     float64 // disk radius, cell center → edge midpoint
	stepDistance float64 // hyperbolic center-to-center distance D

	steps    [Sides]mobius.Mobius
	back     [Sides]int
	vertices [Sides]complex128
}

// New derives the {4,q} constants and the edge-step transform table.
// Returns ErrNotHyperbolic for q < 5 and ErrStepTable if the derived
// steps fail their pairwise-inverse self-check.
func New(q int) (*Geometry, error) {
	if q < 5 {
		return nil, fmt.Errorf("%w: got q=%d", ErrNotHyperbolic, q)
	}

	// Circumradius: cosh(χ) = cot(π/p)·cot(π/q); disk radius tanh(χ/2).
	coshChi := (1 / math.Tan(math.Pi/Sides)) * (1 / math.Tan(math.Pi/float64(q)))
	chi := math.Acosh(coshChi)

	// Inradius: cosh(ψ) = cos(π/q)/sin(π/p); neighbor distance D = 2ψ,
	// via cosh(D) = 2·cosh²(ψ) − 1.
	coshPsi := math.Cos(math.Pi/float64(q)) / math.Sin(math.Pi/Sides)
	d := math.Acosh(2*coshPsi*coshPsi - 1)

	g := &Geometry{
		q:            q,
		circumRadius: math.Tanh(chi / 2),
		inRadius:     math.Tanh(d / 4), // ψ/2 = D/4
		stepDistance: d,
	}

	// Edge d faces direction d·π/2; vertices sit between edges.
	for k := 0; k < Sides; k++ {
		g.steps[k] = mobius.Translation(d, float64(k)*math.Pi/2)
		g.vertices[k] = cmplx.Rect(g.circumRadius, float64(k)*math.Pi/2+math.Pi/4)
	}

	// Derive the back-direction table from the transforms themselves:
	// Back(d) is the unique e with Step(d)∘Step(e) ≈ identity.
	for k := 0; k < Sides; k++ {
		g.back[k] = -1
		for e := 0; e < Sides; e++ {
			if g.steps[k].Compose(g.steps[e]).IsIdentity(stepEps) {
				g.back[k] = e
				break
			}
		}
		if g.back[k] < 0 {
			return nil, fmt.Errorf("%w: no inverse for edge %d", ErrStepTable, k)
		}
	}
	return g, nil
}

// Q returns the tiling parameter (cells meeting at each vertex).
func (g *Geometry) Q() int { return g.q }

// CircumRadius returns the disk distance from a cell center to its
// vertices, for the cell at the disk origin.
func (g *Geometry) CircumRadius() float64 { return g.circumRadius }

// InRadius returns the disk distance from a cell center to its edge
// midpoints, for the cell at the disk origin.
func (g *Geometry) InRadius() float64 { return g.inRadius }

// StepDistance returns the hyperbolic center-to-center distance D between
// adjacent cells.
func (g *Geometry) StepDistance() float64 { return g.stepDistance }

// Step returns the transform carrying the canonical cell's center onto
// the neighbor across edge d. d must be in [0, Sides).
func (g *Geometry) Step(d int) mobius.Mobius { return g.steps[d] }

// Back returns the direction that, seen from the cell entered through
// edge d, leads back across the shared edge. d must be in [0, Sides).
func (g *Geometry) Back(d int) int { return g.back[d] }

// VertexPoint returns the k-th corner of the canonical cell as a disk
// point. k must be in [0, Sides).
func (g *Geometry) VertexPoint(k int) complex128 { return g.vertices[k] }

// Vertices returns the canonical cell's corners as Euclidean coordinates,
// counter-clockwise starting between edges 0 and 1.
func (g *Geometry) Vertices() [Sides]geom.Coord {
	var out [Sides]geom.Coord
	for k, v := range g.vertices {
		out[k] = DiskToCoord(v)
	}
	return out
}
