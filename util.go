package myersdiff

import (
	"strings"
	"unicode/utf8"

	"github.com/pgavlin/text"
)

// commonPrefixLength returns the length of the common prefix of two slices.
func commonPrefixLength[T comparable](a, b []T) int {
	// Linear search. See comment in commonSuffixLength.
	n := 0
	for ; n < len(a) && n < len(b); n++ {
		if a[n] != b[n] {
			return n
		}
	}
	return n
}

// commonSuffixLength returns the length of the common suffix of two slices.
func commonSuffixLength[T comparable](a, b []T) int {
	// Use linear search rather than the binary search discussed at
	// https://neil.fraser.name/news/2007/10/09/.  See discussion at
	// https://github.com/sergi/go-diff/issues/54.
	i1, i2 := len(a), len(b)
	for n := 0; ; n++ {
		i1--
		i2--
		if i1 < 0 || i2 < 0 || a[i1] != b[i2] {
			return n
		}
	}
}

// splitLines splits s after every newline, keeping the newline attached to
// its line. The final line may be unterminated. Empty input yields no lines.
func splitLines[S text.String](s S) []string {
	if len(s) == 0 {
		return nil
	}
	lines := strings.SplitAfter(string(s), "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// isASCII reports whether s contains only ASCII bytes.
func isASCII[S text.String](s S) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}
