package myersdiff

import (
	"fmt"
)

// middleSnake locates a point on a shortest edit path between a[lowerA:upperA]
// and b[lowerB:upperB], both of which must be non-empty. It expands Myers'
// forward and backward searches one edit distance per round until the two
// frontiers overlap; the parity of delta decides which half can detect the
// overlap first.
func (d *differ[T]) middleSnake(lowerA, upperA, lowerB, upperB int) (int, int) {
	downK := lowerA - lowerB // start diagonal of the forward search
	upK := upperA - upperB   // start diagonal of the backward search
	delta := (upperA - lowerA) - (upperB - lowerB)
	oddDelta := delta&1 != 0

	// Diagonal numbers can be negative, so each vector is addressed through
	// a fixed offset that keeps every index non-negative.
	downOff := d.max - downK
	upOff := d.max - upK

	maxD := (upperA-lowerA+upperB-lowerB)/2 + 1

	d.down[downOff+downK+1] = lowerA
	d.up[upOff+upK-1] = upperA

	for dist := 0; dist <= maxD; dist++ {
		// Extend the forward frontier.
		for k := downK - dist; k <= downK+dist; k += 2 {
			var x int
			if k == downK-dist {
				x = d.down[downOff+k+1] // step down
			} else {
				x = d.down[downOff+k-1] + 1 // step right
				if k < downK+dist && d.down[downOff+k+1] >= x {
					x = d.down[downOff+k+1] // step down
				}
			}
			y := x - k
			// Slide along the diagonal while the elements match.
			for x < upperA && y < upperB && d.a.data[x] == d.b.data[y] {
				x, y = x+1, y+1
			}
			d.down[downOff+k] = x
			if oddDelta && upK-dist < k && k < upK+dist && d.up[upOff+k] <= x {
				return x, x - k
			}
		}
		// Extend the backward frontier.
		for k := upK - dist; k <= upK+dist; k += 2 {
			var x int
			if k == upK+dist {
				x = d.up[upOff+k-1] // step up
			} else {
				x = d.up[upOff+k+1] - 1 // step left
				if k > upK-dist && d.up[upOff+k-1] < x {
					x = d.up[upOff+k-1] // step up
				}
			}
			y := x - k
			for x > lowerA && y > lowerB && d.a.data[x-1] == d.b.data[y-1] {
				x, y = x-1, y-1
			}
			d.up[upOff+k] = x
			if !oddDelta && downK-dist <= k && k <= downK+dist && x <= d.down[downOff+k] {
				return d.down[downOff+k], d.down[downOff+k] - k
			}
		}
	}
	panic(fmt.Sprintf("myersdiff: no middle snake for a[%d:%d], b[%d:%d]", lowerA, upperA, lowerB, upperB))
}
