// Copyright ©2014 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package floodsolve

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func buildGraph(t *testing.T, colors []int, edges [][2]int, root int) *Graph {
	t.Helper()
	g := NewGraph(len(colors))
	for i, c := range colors {
		g.SetColor(i, c)
	}
	for _, e := range edges {
		g.AddEdge(e[0], e[1])
	}
	g.SetRoot(root)
	return g
}

func neighborsOf(g *Graph, i int) []int32 {
	_, n := g.Node(i)
	return n
}

func TestAddEdgeSortedDeduped(t *testing.T) {
	t.Parallel()

	g := buildGraph(t, []int{0, 0, 0}, nil, 0)
	g.AddEdge(0, 2)
	g.AddEdge(0, 1)
	g.AddEdge(0, 2) // duplicate, must be a no-op

	want := []int32{1, 2}
	if got := neighborsOf(g, 0); !cmp.Equal(got, want) {
		t.Errorf("neighbors of 0 = %v, want %v", got, want)
	}
	if got := neighborsOf(g, 1); !cmp.Equal(got, []int32{0}) {
		t.Errorf("neighbors of 1 = %v, want [0]", got)
	}
}

func TestAddEdgeSelfLoopPanics(t *testing.T) {
	t.Parallel()

	defer func() {
		if recover() == nil {
			t.Error("AddEdge(i, i) did not panic")
		}
	}()
	g := NewGraph(3)
	g.AddEdge(1, 1)
}

func TestSetColorUpdatesCounts(t *testing.T) {
	t.Parallel()

	g := NewGraph(3)
	if got, want := g.ColorCounts(), []int{3}; !cmp.Equal(got, want) {
		t.Fatalf("initial ColorCounts() = %v, want %v", got, want)
	}

	g.SetColor(0, 2)
	want := []int{2, 0, 1}
	if got := g.ColorCounts(); !cmp.Equal(got, want) {
		t.Errorf("ColorCounts() = %v, want %v", got, want)
	}
	if got, want := g.NumColors(), 2; got != want {
		t.Errorf("NumColors() = %d, want %d", got, want)
	}

	g.SetColor(0, 0) // move back
	want = []int{3, 0, 0}
	if got := g.ColorCounts(); !cmp.Equal(got, want) {
		t.Errorf("ColorCounts() after revert = %v, want %v", got, want)
	}
}

func TestReduceMergesSameColorRuns(t *testing.T) {
	t.Parallel()

	// 0-1-2-3 path, colors A A B A: nodes 0 and 1 merge.
	g := buildGraph(t, []int{0, 0, 1, 0}, [][2]int{{0, 1}, {1, 2}, {2, 3}}, 0)
	if err := g.Reduce(); err != nil {
		t.Fatalf("Reduce() error = %v", err)
	}

	if got, want := g.Len(), 3; got != want {
		t.Fatalf("Len() = %d, want %d", got, want)
	}
	if got, want := g.Root(), 0; got != want {
		t.Errorf("Root() = %d, want %d", got, want)
	}
	colorOf := func(i int) int { c, _ := g.Node(i); return c }
	if colorOf(0) != 0 || colorOf(1) != 1 || colorOf(2) != 0 {
		t.Errorf("colors after reduce = %d,%d,%d, want 0,1,0", colorOf(0), colorOf(1), colorOf(2))
	}
	if !isReduced(g) {
		t.Error("graph not reduced after Reduce()")
	}
}

func TestReduceIdempotent(t *testing.T) {
	t.Parallel()

	g := buildGraph(t, []int{0, 0, 1, 2, 2}, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}}, 0)
	if err := g.Reduce(); err != nil {
		t.Fatalf("Reduce() error = %v", err)
	}

	before := snapshot(g)
	if err := g.Reduce(); err != nil {
		t.Fatalf("second Reduce() error = %v", err)
	}
	after := snapshot(g)

	if diff := cmp.Diff(before, after); diff != "" {
		t.Errorf("reducing an already-reduced graph changed it (-before +after):\n%s", diff)
	}
}

func TestReducePreservesRootNeighbor(t *testing.T) {
	t.Parallel()

	g := buildGraph(t, []int{0, 1, 1}, [][2]int{{0, 1}, {1, 2}}, 0)
	if err := g.Reduce(); err != nil {
		t.Fatalf("Reduce() error = %v", err)
	}
	if got, want := g.Len(), 2; got != want {
		t.Fatalf("Len() = %d, want %d", got, want)
	}
	rootColor, rootNeighbors := g.Node(g.Root())
	if rootColor != 0 {
		t.Errorf("root color = %d, want 0", rootColor)
	}
	if len(rootNeighbors) != 1 {
		t.Fatalf("root has %d neighbors, want 1", len(rootNeighbors))
	}
}

func TestConnected(t *testing.T) {
	t.Parallel()

	connected := buildGraph(t, []int{0, 1, 2}, [][2]int{{0, 1}, {1, 2}}, 0)
	if !connected.Connected() {
		t.Error("Connected() = false, want true")
	}

	disconnected := buildGraph(t, []int{0, 1, 2}, [][2]int{{0, 1}}, 0)
	if disconnected.Connected() {
		t.Error("Connected() = true, want false")
	}
}

type graphSnapshot struct {
	Root        int
	ColorCounts []int
	Nodes       []nodeSnapshot
}

type nodeSnapshot struct {
	Color     int
	Neighbors []int32
}

func snapshot(g *Graph) graphSnapshot {
	s := graphSnapshot{Root: g.Root(), ColorCounts: append([]int(nil), g.ColorCounts()...)}
	for i := 0; i < g.Len(); i++ {
		color, nbrs := g.Node(i)
		s.Nodes = append(s.Nodes, nodeSnapshot{Color: color, Neighbors: append([]int32(nil), nbrs...)})
	}
	return s
}
