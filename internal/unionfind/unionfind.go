// Copyright ©2014 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package unionfind implements a disjoint-set forest over a dense range
// of integer elements [0, n).
package unionfind

// Forest is a union-find structure over the elements [0, n). The zero
// value is not usable; construct one with New.
//
// Union always reparents the larger-indexed representative under the
// smaller-indexed one, so Find(x) <= x holds for every x at all times.
// This differs from a rank-balanced union (used by, e.g., a classic
// union-by-rank forest): it trades worst-case tree height for the
// smaller-representative-wins invariant that graph reduction depends on
// to assign stable new node indices in ascending order of old indices.
type Forest struct {
	parent []int32
}

// New returns a Forest with n singleton sets, one per element.
func New(n int) *Forest {
	f := &Forest{parent: make([]int32, n)}
	for i := range f.parent {
		f.parent[i] = int32(i)
	}
	return f
}

// Find returns the representative of the set containing x. It panics if
// x is out of range.
func (f *Forest) Find(x int) int {
	root := x
	for f.parent[root] != int32(root) {
		root = int(f.parent[root])
	}
	// Path compression: point every node on the walked path directly at
	// root. This is optional per the algorithm's contract but keeps
	// later Find calls cheap; it never changes which representative is
	// returned.
	for f.parent[x] != int32(root) {
		f.parent[x], x = int32(root), int(f.parent[x])
	}
	return root
}

// Union merges the sets containing a and b. The representative with the
// smaller index always becomes the parent of the other, so that
// Find(x) <= x continues to hold for every x.
func (f *Forest) Union(a, b int) {
	ra, rb := f.Find(a), f.Find(b)
	if ra == rb {
		return
	}
	if ra < rb {
		f.parent[rb] = int32(ra)
	} else {
		f.parent[ra] = int32(rb)
	}
}
