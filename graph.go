// Copyright ©2014 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package floodsolve

import (
	"fmt"
	"sort"

	"gonum.org/v1/floodsolve/internal/unionfind"
)

// Graph is a colored, undirected graph with a distinguished root node.
// It is built once through the SetColor/SetRoot/AddEdge methods,
// reduced with Reduce, and then consumed read-only by Solve.
//
// Graph is not safe for concurrent use; callers driving several
// independent puzzles in parallel should build one Graph per puzzle.
type Graph struct {
	nodes []node

	root int

	// colorCounts[c] is the number of nodes currently colored c. Its
	// length is always one plus the greatest color assigned through
	// SetColor, and is never trimmed back down.
	colorCounts []int
}

type node struct {
	color     int
	neighbors []int32
}

// NewGraph returns a Graph of n nodes, all colored 0, with no edges and
// root 0.
func NewGraph(n int) *Graph {
	g := &Graph{
		nodes:       make([]node, n),
		colorCounts: []int{n},
	}
	return g
}

// Len returns the number of nodes in the graph.
func (g *Graph) Len() int { return len(g.nodes) }

// SetColor sets the color of node i. Colors are small nonnegative
// integers; color_counts grows to accommodate the largest color seen
// so far.
func (g *Graph) SetColor(i, color int) {
	old := g.nodes[i].color
	if old == color {
		return
	}
	g.colorCounts[old]--
	if color >= len(g.colorCounts) {
		grown := make([]int, color+1)
		copy(grown, g.colorCounts)
		g.colorCounts = grown
	}
	g.colorCounts[color]++
	g.nodes[i].color = color
}

// SetRoot sets the distinguished root node to i.
func (g *Graph) SetRoot(i int) {
	if i < 0 || i >= len(g.nodes) {
		panic("floodsolve: root index out of range")
	}
	g.root = i
}

// AddEdge adds an undirected edge between a and b. It is a no-op if the
// edge already exists, and panics if a == b: a flood graph never has
// self-loops, so attempting to add one is a programmer error in the
// caller building the graph.
func (g *Graph) AddEdge(a, b int) {
	if a == b {
		panic("floodsolve: self-loop edge")
	}
	g.nodes[a].neighbors = insertSorted(g.nodes[a].neighbors, int32(b))
	g.nodes[b].neighbors = insertSorted(g.nodes[b].neighbors, int32(a))
}

func insertSorted(s []int32, v int32) []int32 {
	i := sort.Search(len(s), func(i int) bool { return s[i] >= v })
	if i < len(s) && s[i] == v {
		return s
	}
	s = append(s, 0)
	copy(s[i+1:], s[i:])
	s[i] = v
	return s
}

// Node returns the color and sorted, duplicate-free neighbor list of
// node i.
func (g *Graph) Node(i int) (color int, neighbors []int32) {
	return g.nodes[i].color, g.nodes[i].neighbors
}

// Root returns the index of the distinguished root node.
func (g *Graph) Root() int { return g.root }

// ColorCounts returns the number of nodes of each color, indexed by
// color. The caller must not mutate the returned slice.
func (g *Graph) ColorCounts() []int { return g.colorCounts }

// NumColors returns the number of distinct colors present in the
// graph, i.e. the number of nonzero entries of ColorCounts.
func (g *Graph) NumColors() int {
	n := 0
	for _, c := range g.colorCounts {
		if c > 0 {
			n++
		}
	}
	return n
}

// ReductionError reports that Reduce would have eliminated a color
// entirely, which a well-formed input must never cause: every color
// that appears anywhere in the graph must survive reduction as at
// least one node.
type ReductionError struct {
	Color int
	Count int
}

func (e *ReductionError) Error() string {
	return fmt.Sprintf("floodsolve: reduction eliminated color %d (count = %d)", e.Color, e.Count)
}

// Reduce collapses every maximal connected run of same-colored nodes
// into a single node, in place. After Reduce returns successfully, no
// edge in the graph connects two nodes of the same color, and every
// color with a nonzero count before reduction still has one.
//
// Reduce uses a disjoint-set forest (internal/unionfind) to find the
// same-color connected components, then renumbers surviving
// representatives in ascending order of their old index, exactly as
// they are first encountered scanning old node indices 0..N-1 — so
// Reduce(Reduce(g)) is the identity up to relabeling (idempotent).
func (g *Graph) Reduce() error {
	n := len(g.nodes)
	ds := unionfind.New(n)
	for i := range g.nodes {
		for _, j := range g.nodes[i].neighbors {
			if int(j) > i && g.nodes[i].color == g.nodes[int(j)].color {
				ds.Union(i, int(j))
			}
		}
	}

	newIndex := make([]int, n)
	seenRep := make([]bool, n)
	var repOf []int // old index of the representative for each new index
	for i := 0; i < n; i++ {
		r := ds.Find(i)
		if !seenRep[r] {
			seenRep[r] = true
			newIndex[r] = len(repOf)
			repOf = append(repOf, r)
		}
		newIndex[i] = newIndex[r]
	}
	newN := len(repOf)

	membersOf := make([][]int, newN)
	for i := 0; i < n; i++ {
		ni := newIndex[i]
		membersOf[ni] = append(membersOf[ni], i)
	}

	newColorCounts := make([]int, len(g.colorCounts))
	newNodes := make([]node, newN)
	for ni, rep := range repOf {
		color := g.nodes[rep].color
		newColorCounts[color]++

		var nbrs []int32
		for _, old := range membersOf[ni] {
			for _, nb := range g.nodes[old].neighbors {
				remapped := int32(newIndex[nb])
				if int(remapped) == ni {
					continue // dropped: now a self-reference
				}
				nbrs = append(nbrs, remapped)
			}
		}
		sort.Slice(nbrs, func(i, j int) bool { return nbrs[i] < nbrs[j] })
		nbrs = dedupeSorted(nbrs)

		newNodes[ni] = node{color: color, neighbors: nbrs}
	}

	for c, count := range newColorCounts {
		if g.colorCounts[c] > 0 && count == 0 {
			return &ReductionError{Color: c, Count: count}
		}
	}

	g.nodes = newNodes
	g.root = newIndex[g.root]
	g.colorCounts = newColorCounts
	return nil
}

func dedupeSorted(s []int32) []int32 {
	if len(s) == 0 {
		return s
	}
	out := s[:1]
	for _, v := range s[1:] {
		if v != out[len(out)-1] {
			out = append(out, v)
		}
	}
	return out
}

// Connected reports whether every node is reachable from the root.
// Solve already detects an unreachable goal by exhausting its search
// frontier, but Connected lets a caller (or test) check this cheaply
// with a single BFS before paying for a search.
func (g *Graph) Connected() bool {
	if len(g.nodes) == 0 {
		return true
	}
	visited := make([]bool, len(g.nodes))
	visited[g.root] = true
	queue := []int32{int32(g.root)}
	count := 1
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for _, v := range g.nodes[u].neighbors {
			if visited[v] {
				continue
			}
			visited[v] = true
			count++
			queue = append(queue, v)
		}
	}
	return count == len(g.nodes)
}
