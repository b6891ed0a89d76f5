// Package myersdiff computes the differences between two sequences as a
// list of edit hunks, using Myers' O(ND) shortest edit script algorithm.
package myersdiff

import (
	"iter"
)

// Option adjusts how a diff is computed.
type Option func(*config)

type config struct {
	optimize bool
}

// Optimize canonicalizes ambiguous edit boundaries before hunks are built.
// When a changed run borders equal elements, several placements of the run
// describe the same edit; this shifts each run as far forward as it goes so
// the placement is always the same one.
func Optimize() Option {
	return func(c *config) { c.optimize = true }
}

// Diff returns the hunks that describe the differences between a and b.
// Hunks are ordered by position, non-overlapping, and cover every changed
// element. Nil and empty sequences are valid inputs; a nil result means the
// sequences are equal.
func Diff[T comparable](a, b []T, opts ...Option) []Hunk {
	var hunks []Hunk
	for h := range Hunks(a, b, opts...) {
		hunks = append(hunks, h)
	}
	return hunks
}

// Hunks returns the differences between a and b as a lazy, in-order
// sequence of hunks, so a caller may stop early. The comparison itself runs
// when iteration starts; iterating a second time restarts it from scratch.
func Hunks[T comparable](a, b []T, opts ...Option) iter.Seq[Hunk] {
	var c config
	for _, opt := range opts {
		opt(&c)
	}
	return func(yield func(Hunk) bool) {
		d := newDiffer(a, b)
		d.compare(0, len(a), 0, len(b))
		if c.optimize {
			d.a.shiftBoundaries()
			d.b.shiftBoundaries()
		}
		d.emit(yield)
	}
}

// differ holds the state of a single comparison: the two sequence buffers
// and the search vectors shared by every level of the recursion.
type differ[T comparable] struct {
	a, b     buffer[T]
	down, up []int
	max      int
}

func newDiffer[T comparable](a, b []T) *differ[T] {
	down, up := newVectors(len(a), len(b))
	return &differ[T]{
		a:    newBuffer(a),
		b:    newBuffer(b),
		down: down,
		up:   up,
		max:  len(a) + len(b) + 1,
	}
}
