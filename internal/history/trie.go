// Copyright ©2014 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package history implements an append-only, prefix-sharing store of
// color sequences. It is used to record the move history of every
// search state explored by the solver without paying the cost of a
// full copy of that history on every state clone.
//
// Sequences are identified by opaque, cheap-to-copy Handle values.
// Appending to a Handle never invalidates it or any other Handle
// derived from the same or an earlier prefix: the Trie owns a growing
// arena of fixed-size blocks and only ever writes into the not-yet-full
// tail of a block, past the end of every Handle that already reads
// through it.
package history

// blockSize is the number of elements stored inline in one block. The
// design goal (see the spec this module implements) is a Handle no
// larger than twice a machine pointer; with a uint8 element, a parent
// pointer and an int length field that leaves room for a block far
// larger than strictly required, so blockSize is instead chosen for
// cache-line friendliness: a block plus its header fits comfortably in
// a single 64-byte cache line alongside the handful of words used to
// address it.
const blockSize = 8

// block is one fixed-size, append-only chunk of a color sequence. A
// block is shared by every Handle whose lineage passes through it;
// once filled == blockSize a block is never mutated again.
type block struct {
	parent *block
	base   int // index, within the full sequence, of data[0]
	filled int // number of valid entries in data
	data   [blockSize]uint8
}

// Handle is an opaque, immutable reference to one specific color
// sequence. The zero Handle denotes the empty sequence.
type Handle struct {
	blk *block
	len int
}

// Trie owns the arena of blocks backing every Handle it has produced.
// The zero value is ready to use. A Trie must not be copied after use.
type Trie struct {
	// blocks holds every block ever allocated, purely so the arena
	// keeps them reachable (and so address stability is trivially
	// satisfied: growing this slice only ever copies pointers, never
	// the *block values they point to).
	blocks []*block
}

// Initial returns the handle for the empty sequence.
func (t *Trie) Initial() Handle {
	return Handle{}
}

// Append returns a handle for the sequence h++[c]. h remains valid and
// continues to denote the same sequence it did before the call.
func (t *Trie) Append(h Handle, c uint8) Handle {
	ownLen := 0
	if h.blk != nil {
		ownLen = h.len - h.blk.base
	}

	switch {
	case h.blk != nil && ownLen == h.blk.filled && ownLen < blockSize:
		// h sits at the current tip of its block and there is still
		// room: extend it in place. This is the only branch that
		// mutates an existing block, and it only ever writes past the
		// handle's own current length.
		h.blk.data[ownLen] = c
		h.blk.filled++
		return Handle{blk: h.blk, len: h.len + 1}

	case h.blk == nil || ownLen == h.blk.filled:
		// h sits at the tip of a full block (or denotes the empty
		// sequence): chain a new block onto it, no copying required.
		nb := &block{parent: h.blk, base: h.len, filled: 1}
		nb.data[0] = c
		t.blocks = append(t.blocks, nb)
		return Handle{blk: nb, len: h.len + 1}

	default:
		// h is a branch into a block some other, longer-lived handle
		// has since extended further (ownLen < h.blk.filled). We must
		// not write into h.blk, and we must not chain onto it either,
		// since that would pull in the sibling's extra data; instead
		// the new block holds a private copy of the shared prefix.
		nb := &block{parent: h.blk.parent, base: h.blk.base, filled: ownLen + 1}
		copy(nb.data[:ownLen], h.blk.data[:ownLen])
		nb.data[ownLen] = c
		t.blocks = append(t.blocks, nb)
		return Handle{blk: nb, len: h.len + 1}
	}
}

// Len returns the length of the sequence h denotes.
func (h Handle) Len() int { return h.len }

// Back returns the last element of the sequence h denotes. It panics if
// h denotes the empty sequence.
func (h Handle) Back() uint8 {
	if h.len == 0 {
		panic("history: Back called on empty handle")
	}
	return h.blk.data[h.len-h.blk.base-1]
}

// Materialize writes the full sequence h denotes into buf[:h.Len()] and
// returns that slice. buf must have length >= h.Len().
func (h Handle) Materialize(buf []uint8) []uint8 {
	out := buf[:h.len]
	end := h.len
	for b := h.blk; b != nil; b = b.parent {
		n := end - b.base
		copy(out[b.base:end], b.data[:n])
		end = b.base
	}
	return out
}
