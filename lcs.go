package myersdiff

// compare marks every element of a[lowerA:upperA] and b[lowerB:upperB] that
// is not part of an optimal common subsequence, bisecting the ranges at
// middle snakes until one side of a range is exhausted.
func (d *differ[T]) compare(lowerA, upperA, lowerB, upperB int) {
	// Walk through the equal elements at the start and the end of both
	// ranges first.
	n := commonPrefixLength(d.a.data[lowerA:upperA], d.b.data[lowerB:upperB])
	lowerA, lowerB = lowerA+n, lowerB+n
	n = commonSuffixLength(d.a.data[lowerA:upperA], d.b.data[lowerB:upperB])
	upperA, upperB = upperA-n, upperB-n

	switch {
	case lowerA == upperA:
		// Everything left in b is an insertion.
		for ; lowerB < upperB; lowerB++ {
			d.b.modified[lowerB] = true
		}
	case lowerB == upperB:
		// Everything left in a is a deletion.
		for ; lowerA < upperA; lowerA++ {
			d.a.modified[lowerA] = true
		}
	default:
		// Split at a point on a shortest edit path, lower halves first so
		// the marks accumulate in order.
		x, y := d.middleSnake(lowerA, upperA, lowerB, upperB)
		d.compare(lowerA, x, lowerB, y)
		d.compare(x, upperA, y, upperB)
	}
}
