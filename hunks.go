package myersdiff

import (
	"strconv"
)

// Hunk describes one contiguous difference between two sequences: the
// DeletedA elements of the first sequence starting at StartA are replaced by
// the InsertedB elements of the second sequence starting at StartB. A hunk
// with DeletedA == 0 is a pure insertion, one with InsertedB == 0 a pure
// deletion, and one with both nonzero a replacement.
type Hunk struct {
	StartA    int
	StartB    int
	DeletedA  int
	InsertedB int
}

// EmptyHunk is the conventional "no difference" sentinel, for callers that
// need a single hunk value rather than an empty sequence.
var EmptyHunk = Hunk{StartA: -1, StartB: -1}

// IsEmpty reports whether the hunk covers no elements on either side.
func (h Hunk) IsEmpty() bool {
	return h.DeletedA == 0 && h.InsertedB == 0
}

// String satisfies the fmt.Stringer interface.
//
// Generates a header that emulates GNU diff's format like the following:
//
//	@@ -382,8 +481,9 @@
//
// Indices are printed as 1-based, not 0-based.
func (h Hunk) String() string {
	var coordsA, coordsB string
	switch {
	case h.DeletedA == 0:
		coordsA = strconv.Itoa(h.StartA) + ",0"
	case h.DeletedA == 1:
		coordsA = strconv.Itoa(h.StartA + 1)
	default:
		coordsA = strconv.Itoa(h.StartA+1) + "," + strconv.Itoa(h.DeletedA)
	}
	switch {
	case h.InsertedB == 0:
		coordsB = strconv.Itoa(h.StartB) + ",0"
	case h.InsertedB == 1:
		coordsB = strconv.Itoa(h.StartB + 1)
	default:
		coordsB = strconv.Itoa(h.StartB+1) + "," + strconv.Itoa(h.InsertedB)
	}
	return "@@ -" + coordsA + " +" + coordsB + " @@"
}

// emit walks the modified flags of both buffers with two independent
// cursors and yields each maximal changed run as one hunk. The cursors do
// not advance in lockstep: one may drain a changed run while the other
// waits on an equal element.
func (d *differ[T]) emit(yield func(Hunk) bool) {
	lenA, lenB := len(d.a.data), len(d.b.data)
	lineA, lineB := 0, 0
	for lineA < lenA || lineB < lenB {
		if lineA < lenA && lineB < lenB && !d.a.modified[lineA] && !d.b.modified[lineB] {
			// Equal elements.
			lineA++
			lineB++
			continue
		}
		startA, startB := lineA, lineB
		for lineA < lenA && (lineB >= lenB || d.a.modified[lineA]) {
			lineA++
		}
		for lineB < lenB && (lineA >= lenA || d.b.modified[lineB]) {
			lineB++
		}
		if startA < lineA || startB < lineB {
			h := Hunk{
				StartA:    startA,
				StartB:    startB,
				DeletedA:  lineA - startA,
				InsertedB: lineB - startB,
			}
			if !yield(h) {
				return
			}
		}
	}
}
