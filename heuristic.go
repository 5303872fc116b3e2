// Copyright ©2014 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package floodsolve

import "gonum.org/v1/floodsolve/internal/bitset"

// valuation returns movesLen + h, where h is an admissible, consistent
// lower bound on the number of moves still required to flood every
// node of g, given that the nodes marked in filled are already part of
// the flooded region.
//
// h is computed by a layered expansion from the flooded region,
// grounded on the frontier-by-frontier idiom of BreadthFirst.Walk in
// the traverse package this module's search is adapted from, but
// decrementing a working copy of the graph's color counts as it goes:
// whenever one or more colors are about to run out entirely, those
// colors are "free" to flood opportunistically (one extra move paints
// every remaining node of that color at once, since the true optimal
// play would reach them anyway), so only nodes of an about-to-vanish
// color are expanded that round; otherwise a single color-blind step
// is charged and every frontier node expands.
//
// An eliminating round is only charged against h if it actually
// discovers a previously-unvisited node: a round whose about-to-vanish
// colors have no unvisited neighbors left contributes nothing to the
// true remaining move count, and charging it anyway overestimates h,
// breaking admissibility.
func valuation(g *Graph, filled *bitset.Set, movesLen int) int {
	if filled.All() {
		return movesLen
	}

	n := g.Len()

	visited := filled.Clone()
	var current []int32
	for i := 0; i < n; i++ {
		if filled.Has(i) {
			current = append(current, int32(i))
		}
	}

	remaining := append([]int(nil), g.ColorCounts()...)
	for i := 0; i < n; i++ {
		if filled.Has(i) {
			color, _ := g.Node(i)
			remaining[color]--
		}
	}
	// Colors already wholly inside the flooded region (or absent from
	// the graph) need no further move, so none start out exposed.
	exposed := 0

	h := 0
	for len(current) > 0 {
		var next []int32
		var eliminating []bool
		if exposed > 0 {
			eliminating = make([]bool, len(remaining))
			for c, count := range remaining {
				eliminating[c] = count == 0
			}
		} else {
			h++
		}

		discovered := 0
		newExposed := 0
		for _, v := range current {
			color, nbrs := g.Node(int(v))
			if eliminating != nil && !eliminating[color] {
				// Not yet eligible: carry it forward unexpanded.
				next = append(next, v)
				continue
			}
			for _, u := range nbrs {
				if visited.Has(int(u)) {
					continue
				}
				visited.Set(int(u))
				next = append(next, u)
				discovered++
				uColor, _ := g.Node(int(u))
				remaining[uColor]--
				if remaining[uColor] == 0 {
					newExposed++
				}
			}
		}
		if eliminating != nil && discovered > 0 {
			h += exposed
		}
		exposed = newExposed
		current = next
	}

	return movesLen + h
}
