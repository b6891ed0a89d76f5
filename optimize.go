package myersdiff

// shiftBoundaries moves changed runs forward through equal elements: while
// the element just past a run equals the element the run starts with, the
// run rotates one position forward. Both placements describe the same edit.
// Each shift advances the scan, so the pass stays linear.
func (buf buffer[T]) shiftBoundaries() {
	n := len(buf.data)
	start := 0
	for start < n {
		for start < n && !buf.modified[start] {
			start++
		}
		end := start
		for end < n && buf.modified[end] {
			end++
		}
		if end < n && buf.data[start] == buf.data[end] {
			// Rotate the run one position forward and rescan from its new
			// start.
			buf.modified[start] = false
			buf.modified[end] = true
		} else {
			start = end
		}
	}
}
