package myersdiff

// buffer pairs one input sequence with the flags marking which of its
// positions fall outside the common subsequence. The flag array carries two
// trailing sentinel slots beyond the sequence length.
type buffer[T comparable] struct {
	data     []T
	modified []bool
}

func newBuffer[T comparable](data []T) buffer[T] {
	return buffer[T]{
		data:     data,
		modified: make([]bool, len(data)+2),
	}
}

// newVectors allocates the forward and backward search frontiers for one
// comparison of sequences with the given lengths. A single backing array
// serves both; the recursion reuses them at every level.
func newVectors(lenA, lenB int) (down, up []int) {
	size := 2*(lenA+lenB+1) + 2
	v := make([]int, 2*size)
	return v[:size], v[size:]
}
