// Copyright ©2014 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package bitset implements a fixed-size, word-packed bit set, used by
// the solver to represent which graph nodes are currently flooded
// without paying a byte (or allocation) per node on every state clone.
package bitset

import "math/bits"

const wordBits = 64

// Set is a fixed-size bit set over [0, n). The zero value is an empty
// set of size 0; use New to size one.
type Set struct {
	words []uint64
	n     int
}

// New returns a Set of size n with every bit clear.
func New(n int) *Set {
	return &Set{words: make([]uint64, (n+wordBits-1)/wordBits), n: n}
}

// Len returns the number of bits the set was sized for.
func (s *Set) Len() int { return s.n }

// Set sets bit i.
func (s *Set) Set(i int) {
	s.words[i/wordBits] |= 1 << uint(i%wordBits)
}

// Has reports whether bit i is set.
func (s *Set) Has(i int) bool {
	return s.words[i/wordBits]&(1<<uint(i%wordBits)) != 0
}

// Count returns the number of set bits.
func (s *Set) Count() int {
	c := 0
	for _, w := range s.words {
		c += bits.OnesCount64(w)
	}
	return c
}

// All reports whether every one of the s.Len() bits is set.
func (s *Set) All() bool {
	return s.Count() == s.n
}

// Clone returns an independent copy of s.
func (s *Set) Clone() *Set {
	c := &Set{words: make([]uint64, len(s.words)), n: s.n}
	copy(c.words, s.words)
	return c
}
