// Copyright ©2014 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package floodsolve finds a provably shortest sequence of flood moves
// that paints an entire colored graph a single color, starting from a
// distinguished root node.
//
// A flood move recolors the whole monochromatic region containing the
// root to a chosen color, merging it with any adjacent region already
// that color. The package reduces an arbitrary colored graph to one
// with no same-color adjacency (Graph.Reduce), then runs an A* search
// over flood states (Solve) using an admissible, consistent heuristic.
//
// Parsing puzzle input, mapping color labels to indices, building the
// initial graph from a grid and driving multiple searches in parallel
// are all left to callers; this package only consumes a Graph and
// produces a move sequence.
package floodsolve
