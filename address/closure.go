package address

import (
	"math"
	"sort"

	"github.com/lpriccio/octofact/mobius"
	"github.com/lpriccio/octofact/polygon"
)

// gridScale quantizes cell centers into lookup buckets. Duplicate
// placements of one cell agree to ~1e-10, far inside one bucket; the
// grid only narrows the candidate set, membership is always confirmed
// with polygon.SameCell.
const gridScale = 1e6

type member struct {
	word []Direction
	t    mobius.Mobius
}

type cellGroup struct {
	members []member
}

// closeRules finds irreducible words that reach an already-reachable
// cell and adds rules canonicalizing them, iterating until no new rule
// appears. The Dehn splits alone leave equal-length geodesic pairs
// around short face chains; this pass closes those gaps.
func (r *Reducer) closeRules() {
	limit := r.geo.Q() + closureExtra
	for round := 0; round < maxClosureRounds; round++ {
		if r.closureRound(limit) == 0 {
			return
		}
	}
}

// closureRound enumerates every word up to the length limit that is
// backtrack-free and contains no rule left-hand side, groups them by the
// cell their transform reaches, and adds one rule per extra member of
// each group. Returns the number of rules added.
func (r *Reducer) closureRound(limit int) int {
	buckets := make(map[[2]int64][]*cellGroup)
	var groups []*cellGroup

	record := func(w []Direction, t mobius.Mobius) {
		c := t.Apply(0)
		base := [2]int64{
			int64(math.Round(real(c) * gridScale)),
			int64(math.Round(imag(c) * gridScale)),
		}
		for dx := int64(-1); dx <= 1; dx++ {
			for dy := int64(-1); dy <= 1; dy++ {
				for _, g := range buckets[[2]int64{base[0] + dx, base[1] + dy}] {
					if _, ok := polygon.SameCell(g.members[0].t, t, rotEps); ok {
						g.members = append(g.members, member{word: append([]Direction(nil), w...), t: t})
						return
					}
				}
			}
		}
		g := &cellGroup{members: []member{{word: append([]Direction(nil), w...), t: t}}}
		groups = append(groups, g)
		buckets[base] = append(buckets[base], g)
	}

	buf := make([]Direction, 0, limit)
	var dfs func(t mobius.Mobius)
	dfs = func(t mobius.Mobius) {
		if len(buf) == limit {
			return
		}
		for d := Direction(0); int(d) < polygon.Sides; d++ {
			if n := len(buf); n > 0 && d == r.back[buf[n-1]] {
				continue
			}
			buf = append(buf, d)
			if r.suffixMatches(buf) {
				buf = buf[:len(buf)-1]
				continue
			}
			nt := t.Compose(r.geo.Step(int(d)))
			record(buf, nt)
			dfs(nt)
			buf = buf[:len(buf)-1]
		}
	}
	record(buf, mobius.Identity())
	dfs(mobius.Identity())

	added := 0
	for _, g := range groups {
		if len(g.members) < 2 {
			continue
		}
		sort.Slice(g.members, func(i, j int) bool {
			return wordLess(g.members[i].word, g.members[j].word)
		})
		canon := g.members[0]
		for _, m := range g.members[1:] {
			shift, ok := polygon.SameCell(canon.t, m.t, rotEps)
			if !ok {
				continue
			}
			r.addRule(m.word, canon.word, shift)
			added++
		}
	}
	return added
}

// suffixMatches reports whether any rule left-hand side ends the word.
// The enumeration extends one letter at a time, so checking suffixes at
// each step covers every substring.
func (r *Reducer) suffixMatches(w []Direction) bool {
	longest := r.maxLHS
	if len(w) < longest {
		longest = len(w)
	}
	for l := r.minLHS; l <= longest; l++ {
		if _, ok := r.rules[string(directionBytes(w[len(w)-l:]))]; ok {
			return true
		}
	}
	return false
}

// wordLess orders words by length, then lexicographically — the order
// every rewrite strictly decreases.
func wordLess(a, b []Direction) bool {
	if len(a) != len(b) {
		return len(a) < len(b)
	}
	return lexLess(a, b)
}
