// Copyright ©2014 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package floodsolve

import (
	"gonum.org/v1/floodsolve/internal/bitset"
	"gonum.org/v1/floodsolve/internal/history"
)

// State is one node of the search: the set of nodes currently flooded,
// the sequence of colors chosen to reach it, and a cached f-value
// (moves so far plus the admissible heuristic lower bound on what
// remains).
//
// A State is created once for the root of a search, cloned on every
// expansion, and discarded once popped from the frontier without
// yielding a solution (see Solve). filled is the only field whose
// clone cost scales with graph size; moves is a cheap Handle copy.
type State struct {
	filled    *bitset.Set
	moves     history.Handle
	valuation int
}

// newState builds the initial State for a reduced graph: only the root
// is flooded, and its first move is recorded as the root's own color.
// newState does not itself verify that g is reduced; Solve does, once,
// before starting the search.
func newState(g *Graph, t *history.Trie) *State {
	filled := bitset.New(g.Len())
	filled.Set(g.Root())

	rootColor, _ := g.Node(g.Root())
	moves := t.Append(t.Initial(), uint8(rootColor))

	s := &State{filled: filled, moves: moves}
	s.valuation = valuation(g, filled, moves.Len())
	return s
}

// clone returns an independent copy of s. The move history is shared
// (Handle is already cheap to copy and immutable), so only the filled
// bitmap is duplicated.
func (s *State) clone() *State {
	return &State{filled: s.filled.Clone(), moves: s.moves, valuation: s.valuation}
}

// apply attempts the flood move to next. It panics if next equals the
// state's current color: repeating the current color is always a
// no-op flood move, and callers (Solve) must never offer it as a
// candidate.
//
// apply returns false, leaving s unmodified, if the move is legal but
// redundant under the pruning rule of the search this State belongs
// to: a move that paints nothing new, or whose effect is already
// reachable via the canonical ascending-color ordering of a commuting
// pair of moves. Otherwise it floods every newly reachable node,
// recomputes the cached valuation, and returns true.
func (s *State) apply(g *Graph, t *history.Trie, next int) bool {
	last := int(s.moves.Back())
	if next == last {
		panic("floodsolve: apply called with the current color")
	}

	var newlyFilled []int32
	n := g.Len()
	for i := 0; i < n; i++ {
		if s.filled.Has(i) {
			continue
		}
		color, nbrs := g.Node(i)
		if color != next {
			continue
		}
		for _, u := range nbrs {
			if s.filled.Has(int(u)) {
				newlyFilled = append(newlyFilled, int32(i))
				break
			}
		}
	}

	if next > last {
		if len(newlyFilled) == 0 {
			return false
		}
	} else {
		// Reject iff every newly-absorbed node was already reachable
		// through some filled neighbor of a color other than last: in
		// that case the ascending ordering "..., next, last" dominates
		// this one.
		redundant := true
		for _, v := range newlyFilled {
			_, nbrs := g.Node(int(v))
			hasOtherNeighbor := false
			for _, u := range nbrs {
				if !s.filled.Has(int(u)) {
					continue
				}
				uColor, _ := g.Node(int(u))
				if uColor != last {
					hasOtherNeighbor = true
					break
				}
			}
			if !hasOtherNeighbor {
				redundant = false
				break
			}
		}
		if redundant {
			return false
		}
	}

	s.moves = t.Append(s.moves, uint8(next))
	for _, v := range newlyFilled {
		s.filled.Set(int(v))
	}
	s.valuation = valuation(g, s.filled, s.moves.Len())
	return true
}

// done reports whether every node of g is flooded.
func (s *State) done() bool {
	return s.filled.All()
}
