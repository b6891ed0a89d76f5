package myersdiff

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

// flagged builds a buffer over data with the given positions marked and
// returns the marked positions after boundary shifting.
func flagged(data []int, marks []int) []int {
	buf := newBuffer(data)
	for _, i := range marks {
		buf.modified[i] = true
	}
	buf.shiftBoundaries()
	var out []int
	for i := range data {
		if buf.modified[i] {
			out = append(out, i)
		}
	}
	return out
}

func TestShiftBoundaries(t *testing.T) {
	tests := []struct {
		Name     string
		Data     []int
		Marks    []int
		Expected []int
	}{
		{"No marks", []int{1, 2, 3}, nil, nil},
		{"Shift through equal", []int{1, 2, 2, 3}, []int{1}, []int{2}},
		{"Chain shift", []int{1, 2, 2, 2, 3}, []int{1}, []int{3}},
		{"Run at end", []int{1, 2, 2}, []int{2}, []int{2}},
		{"Unequal border", []int{1, 2, 3, 4}, []int{1, 2}, []int{1, 2}},
		{"Two runs", []int{1, 1, 2, 1, 1, 2}, []int{0, 3}, []int{1, 4}},
		{"Whole sequence", []int{5, 5, 5}, []int{0, 1, 2}, []int{0, 1, 2}},
	}
	for i, test := range tests {
		actual := flagged(test.Data, test.Marks)
		if diff := cmp.Diff(test.Expected, actual); diff != "" {
			t.Errorf("Test case #%d, %s: (-want +got)\n%s", i, test.Name, diff)
		}
	}
}

func TestShiftBoundariesIdempotent(t *testing.T) {
	tests := []struct {
		Name  string
		Data  []int
		Marks []int
	}{
		{"Shift through equal", []int{1, 2, 2, 3}, []int{1}},
		{"Chain shift", []int{1, 2, 2, 2, 3}, []int{1}},
		{"Two runs", []int{1, 1, 2, 1, 1, 2}, []int{0, 3}},
		{"Stable already", []int{1, 2, 3, 4}, []int{1, 2}},
	}
	for i, test := range tests {
		once := flagged(test.Data, test.Marks)
		twice := flagged(test.Data, once)
		assert.Equal(t, once, twice, fmt.Sprintf("Test case #%d, %s", i, test.Name))
	}
}

func TestDiffOptimize(t *testing.T) {
	// Inserting a repeated element is ambiguous; without the post-pass the
	// replacement sits where the bisection put it, with it the run shifts
	// to the end of the repeat block.
	a := []int{1, 3, 2, 2}
	b := []int{1, 2, 2, 2}
	assert.Equal(t, []Hunk{{1, 1, 1, 1}}, Diff(a, b))
	assert.Equal(t, []Hunk{{1, 1, 1, 0}, {4, 3, 0, 1}}, Diff(a, b, Optimize()))
}

func TestLinesOptimize(t *testing.T) {
	a := "r\ns\nt\nt\n"
	b := "r\nt\nt\nt\n"
	assert.Equal(t, []Hunk{{1, 1, 1, 1}}, Lines(a, b))
	assert.Equal(t, []Hunk{{1, 1, 1, 0}, {4, 3, 0, 1}}, Lines(a, b, Optimize()))
}

func TestOptimizeReconstruction(t *testing.T) {
	tests := []struct {
		Name  string
		Text1 string
		Text2 string
	}{
		{"Repeat insert", "abbc", "abbbc"},
		{"Repeat delete", "abbbc", "abbc"},
		{"Mixed runs", "xxaybb", "xxbyaa"},
		{"Classic", "ABCABBA", "CBABAC"},
		{"No repeats", "abc", "xyz"},
	}
	for i, test := range tests {
		a, b := []rune(test.Text1), []rune(test.Text2)
		hunks := Diff(a, b, Optimize())
		assert.Equal(t, test.Text2, string(applyHunks(a, b, hunks)), fmt.Sprintf("Test case #%d, %s", i, test.Name))
	}
}
