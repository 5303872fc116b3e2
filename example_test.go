// Copyright ©2014 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package floodsolve_test

import (
	"fmt"

	"gonum.org/v1/floodsolve"
)

// Example builds the 4-cycle of spec scenario 6 (colors 0,1,2,0 around a
// square), solves it, and prints the resulting move sequence.
func Example() {
	g := floodsolve.NewGraph(4)
	colors := []int{0, 1, 2, 0}
	for i, c := range colors {
		g.SetColor(i, c)
	}
	g.AddEdge(0, 1)
	g.AddEdge(0, 2)
	g.AddEdge(1, 3)
	g.AddEdge(2, 3)
	g.SetRoot(0)

	if err := g.Reduce(); err != nil {
		panic(err)
	}

	moves, err := floodsolve.Solve(g)
	if err != nil {
		panic(err)
	}

	fmt.Println("moves:", len(moves)-1)
	// Output:
	// moves: 3
}
