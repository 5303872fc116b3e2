// Copyright ©2014 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package floodsolve

import (
	"container/heap"
	"errors"

	"gonum.org/v1/floodsolve/internal/history"
)

// ErrDisconnected is returned by Solve when the search frontier empties
// without reaching a goal state, which can only happen if g has a node
// unreachable from its root.
var ErrDisconnected = errors.New("floodsolve: graph not connected")

// SolveStats, if non-nil, is populated by SolveWithStats as the search
// proceeds. It is a plain counter-output parameter rather than a
// logger: the search has no suspension points (see the package
// documentation), and adding I/O to its hot loop would defeat that.
type SolveStats struct {
	// Expanded is the number of states popped from the frontier.
	Expanded int
	// Pruned is the number of legal-but-redundant moves rejected by
	// the pruning rule in State.apply.
	Pruned int
}

// Solve returns the shortest sequence of colors that floods every node
// of the reduced graph g starting from its root, the color of the root
// node itself. len(result)-1 is the optimal number of moves.
//
// g must already be reduced (see Graph.Reduce); Solve panics if it is
// not, since that is a contract violation by the caller rather than a
// property of the puzzle.
func Solve(g *Graph) ([]uint8, error) {
	return SolveWithStats(g, nil)
}

// SolveWithStats behaves exactly like Solve but additionally records
// search statistics into stats, if stats is non-nil.
func SolveWithStats(g *Graph, stats *SolveStats) ([]uint8, error) {
	if !isReduced(g) {
		panic("floodsolve: Solve called on a graph that is not reduced")
	}

	var t history.Trie
	initial := newState(g, &t)

	front := &frontier{initial}
	heap.Init(front)

	for front.Len() > 0 {
		s := heap.Pop(front).(*State)
		if stats != nil {
			stats.Expanded++
		}
		if s.done() {
			return s.moves.Materialize(make([]uint8, s.moves.Len())), nil
		}

		last := int(s.moves.Back())
		numColors := len(g.ColorCounts())
		for c := 0; c < numColors; c++ {
			if c == last {
				continue
			}
			child := s.clone()
			if child.apply(g, &t, c) {
				heap.Push(front, child)
			} else if stats != nil {
				stats.Pruned++
			}
		}
	}

	return nil, ErrDisconnected
}

// isReduced reports whether g has no edge connecting two same-colored
// nodes, the precondition Solve (and State's constructor) requires.
func isReduced(g *Graph) bool {
	for i := 0; i < g.Len(); i++ {
		color, nbrs := g.Node(i)
		for _, nb := range nbrs {
			nbColor, _ := g.Node(int(nb))
			if nbColor == color {
				return false
			}
		}
	}
	return true
}

// frontier is a min-heap of States ordered by ascending valuation
// (f-value), breaking ties in favor of the deeper (longer move
// history) state to bias the search toward goals. Grounded on the
// container/heap-based priority queues in graph/path/dijkstra.go
// (priorityQueue/distanceNode) and the legacy path/a_star.go
// (aStarQueue/aStarNode); unlike either, frontier never needs a
// decrease-key update, since every push here is a freshly cloned state
// rather than a relaxed distance to an existing one.
type frontier []*State

func (f frontier) Len() int { return len(f) }

func (f frontier) Less(i, j int) bool {
	if f[i].valuation != f[j].valuation {
		return f[i].valuation < f[j].valuation
	}
	return f[i].moves.Len() > f[j].moves.Len()
}

func (f frontier) Swap(i, j int) { f[i], f[j] = f[j], f[i] }

func (f *frontier) Push(x any) {
	*f = append(*f, x.(*State))
}

func (f *frontier) Pop() any {
	old := *f
	n := len(old)
	x := old[n-1]
	old[n-1] = nil
	*f = old[:n-1]
	return x
}
