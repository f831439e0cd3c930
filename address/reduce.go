package address

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/lpriccio/octofact/mobius"
	"github.com/lpriccio/octofact/polygon"
)

const (
	// rotEps is the tolerance for holonomy/rotation detection on composed
	// transform chains of relator length.
	rotEps = 1e-7

	// vertexEps is the tolerance for "this cell touches that vertex"
	// during relator walks.
	vertexEps = 1e-6

	// closureExtra bounds the closure enumeration: irreducible words up
	// to length q+closureExtra. Two-face geodesic pairs appear at length
	// q−1 and three-face chains at q+1; +2 leaves a margin.
	closureExtra = 2

	// maxClosureRounds caps closure iteration; the fixed point is reached
	// in one or two rounds in practice.
	maxClosureRounds = 8
)

// rule rewrites an occurrence of its left-hand side to repl and rotates
// every letter after the rewritten segment by shift (the holonomy picked
// up by going the other way around).
type rule struct {
	repl  []Direction
	shift int
}

// Reducer collapses raw walks to canonical Addresses for one {4,q}
// tiling. Build it once with NewReducer; it is immutable afterwards and
// safe for concurrent use.
type Reducer struct {
	geo    *polygon.Geometry
	back   [polygon.Sides]Direction
	rules  map[string]rule
	minLHS int
	maxLHS int
}

// NewReducer derives the full rewrite system from geo's step transforms:
// backtrack pairs, the vertex relators of all four cell corners in both
// orientations (with every cyclic rotation), their Dehn splits, and the
// closure rules that canonicalize equal-length geodesic pairs.
func NewReducer(geo *polygon.Geometry) (*Reducer, error) {
	r := &Reducer{
		geo:    geo,
		rules:  make(map[string]rule),
		minLHS: math.MaxInt,
	}
	for d := 0; d < polygon.Sides; d++ {
		r.back[d] = Direction(geo.Back(d))
	}

	relators, err := r.deriveRelators()
	if err != nil {
		return nil, err
	}
	for key, holonomy := range relators {
		r.addDehnRules(FromKey(key), holonomy)
	}
	r.closeRules()
	return r, nil
}

// Geometry returns the tiling geometry the reducer was built from.
func (r *Reducer) Geometry() *polygon.Geometry { return r.geo }

// Back returns the direction leading back after crossing edge d.
func (r *Reducer) Back(d Direction) Direction { return r.back[d] }

// RuleCount returns the number of non-backtrack rewrite rules; exposed
// for diagnostics.
func (r *Reducer) RuleCount() int { return len(r.rules) }

// Reduce collapses a raw walk to the canonical Address of the cell it
// reaches. The input is not mutated. The empty path reduces to the empty
// Address (the origin). Returns ErrDirectionRange for letters ≥ 4.
//
// Reduction applies backtrack cancellation and then the leftmost,
// longest-match rewrite rule, repeating until nothing matches. Every
// rewrite strictly decreases the (length, lexicographic) order of the
// word, so this terminates, and reducing a reduced word is a no-op.
func (r *Reducer) Reduce(path []Direction) (Address, error) {
	if err := validate(path); err != nil {
		return nil, err
	}
	w := make([]Direction, len(path))
	copy(w, path)
	w = r.cancelBacktracks(w)
	for {
		changed := false
	scan:
		for i := 0; i < len(w); i++ {
			longest := r.maxLHS
			if rem := len(w) - i; rem < longest {
				longest = rem
			}
			for l := longest; l >= r.minLHS; l-- {
				rl, ok := r.rules[string(directionBytes(w[i:i+l]))]
				if !ok {
					continue
				}
				next := make([]Direction, 0, len(w)-l+len(rl.repl))
				next = append(next, w[:i]...)
				next = append(next, rl.repl...)
				next = append(next, rotWord(w[i+l:], rl.shift)...)
				w = r.cancelBacktracks(next)
				changed = true
				break scan
			}
		}
		if !changed {
			return Address(w), nil
		}
	}
}

// cancelBacktracks removes every d,Back(d) pair with one stack pass,
// reusing the input's backing array.
func (r *Reducer) cancelBacktracks(w []Direction) []Direction {
	out := w[:0]
	for _, d := range w {
		if n := len(out); n > 0 && d == r.back[out[n-1]] {
			out = out[:n-1]
		} else {
			out = append(out, d)
		}
	}
	return out
}

// wordTransform composes the step transforms along a word.
func (r *Reducer) wordTransform(w []Direction) mobius.Mobius {
	t := mobius.Identity()
	for _, d := range w {
		t = t.Compose(r.geo.Step(int(d)))
	}
	return t
}

// inverseWord returns the word undoing w: reversed, each letter replaced
// by its back direction.
func (r *Reducer) inverseWord(w []Direction) []Direction {
	out := make([]Direction, len(w))
	for i, d := range w {
		out[len(w)-1-i] = r.back[d]
	}
	return out
}

// rotWord rotates every letter by the frame shift j. j=0 returns w as is.
func rotWord(w []Direction, j int) []Direction {
	if j == 0 {
		return w
	}
	out := make([]Direction, len(w))
	for i, d := range w {
		out[i] = Direction((int(d) + j) % polygon.Sides)
	}
	return out
}

// touchesVertex reports whether the cell placed by t has v as a corner.
func (r *Reducer) touchesVertex(t mobius.Mobius, v complex128) bool {
	for k := 0; k < polygon.Sides; k++ {
		if cmplx.Abs(t.Apply(r.geo.VertexPoint(k))-v) < vertexEps {
			return true
		}
	}
	return false
}

// vertexWalk walks the ring of q cells around corner vidx of the origin
// cell, entering first through edge `first`, and returns the relator word
// with its holonomy exponent. At every cell exactly two edges touch the
// pivot corner — the one we came through and one other — so the
// continuation is forced and the walk must close after exactly q steps.
func (r *Reducer) vertexWalk(vidx, first int) ([]Direction, int, error) {
	v := r.geo.VertexPoint(vidx)
	q := r.geo.Q()
	word := []Direction{Direction(first)}
	t := r.geo.Step(first)
	came := r.geo.Back(first)

	for len(word) <= 2*q {
		if k, ok := polygon.CellRotation(t, rotEps); ok {
			if len(word) != q {
				return nil, 0, fmt.Errorf("%w: corner %d closed after %d steps, want %d",
					ErrRelatorDerivation, vidx, len(word), q)
			}
			return word, k, nil
		}
		found := -1
		for f := 0; f < polygon.Sides; f++ {
			if f == came {
				continue
			}
			if r.touchesVertex(t.Compose(r.geo.Step(f)), v) {
				found = f
				break
			}
		}
		if found < 0 {
			return nil, 0, fmt.Errorf("%w: corner %d stuck after %d steps",
				ErrRelatorDerivation, vidx, len(word))
		}
		word = append(word, Direction(found))
		t = t.Compose(r.geo.Step(found))
		came = r.geo.Back(found)
	}
	return nil, 0, fmt.Errorf("%w: corner %d never closed", ErrRelatorDerivation, vidx)
}

// deriveRelators collects every length-q relator: the eight corner walks
// (four corners, two orientations) plus all cyclic rotations. A rotation
// shifts which cell the loop starts from, so its moved prefix must be
// letter-rotated by the holonomy accumulated ahead of it; the right shift
// is found by checking the candidates against the transforms.
func (r *Reducer) deriveRelators() (map[string]int, error) {
	relators := make(map[string]int)
	q := r.geo.Q()
	for vidx := 0; vidx < polygon.Sides; vidx++ {
		for _, first := range []int{vidx, (vidx + 1) % polygon.Sides} {
			w, _, err := r.vertexWalk(vidx, first)
			if err != nil {
				return nil, err
			}
			for rot := 0; rot < q; rot++ {
				found := false
				for j := 0; j < polygon.Sides && !found; j++ {
					cand := make([]Direction, 0, q)
					cand = append(cand, w[rot:]...)
					cand = append(cand, rotWord(w[:rot], j)...)
					if k, ok := polygon.CellRotation(r.wordTransform(cand), rotEps); ok {
						relators[Address(cand).Key()] = k
						found = true
					}
				}
				if !found {
					return nil, fmt.Errorf("%w: rotation %d of corner %d walk", ErrRelatorDerivation, rot, vidx)
				}
			}
		}
	}
	return relators, nil
}

// addDehnRules splits one relator s·t (transform R^holonomy) into rewrite
// rules s → rot(inverse(t)): strictly shortening splits always, equal
// halves only when the replacement is lexicographically smaller.
func (r *Reducer) addDehnRules(relator []Direction, holonomy int) {
	for i := 1; i <= len(relator); i++ {
		lhs := relator[:i]
		repl := rotWord(r.inverseWord(relator[i:]), holonomy)
		if len(repl) < len(lhs) || (len(repl) == len(lhs) && lexLess(repl, lhs)) {
			r.addRule(lhs, repl, holonomy)
		}
	}
}

// addRule records lhs → (repl, shift) unless an at-least-as-good rule for
// lhs exists (shorter replacement wins, then lexicographic).
func (r *Reducer) addRule(lhs, repl []Direction, shift int) {
	key := string(directionBytes(lhs))
	if cur, ok := r.rules[key]; ok {
		if len(cur.repl) < len(repl) || (len(cur.repl) == len(repl) && !lexLess(repl, cur.repl)) {
			return
		}
	}
	stored := make([]Direction, len(repl))
	copy(stored, repl)
	r.rules[key] = rule{repl: stored, shift: shift}
	if len(lhs) < r.minLHS {
		r.minLHS = len(lhs)
	}
	if len(lhs) > r.maxLHS {
		r.maxLHS = len(lhs)
	}
}

func lexLess(a, b []Direction) bool {
	for i := range a {
		if i >= len(b) {
			return false
		}
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return len(a) < len(b)
}
