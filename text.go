package myersdiff

import (
	"github.com/pgavlin/text"
)

// Chars returns the character-level differences between two texts. Each
// decoded rune is one element, so hunk positions and spans count runes, not
// bytes. Empty inputs are valid zero-length sequences.
func Chars[S1, S2 text.String](a S1, b S2, opts ...Option) []Hunk {
	if text.Compare(a, b) == 0 {
		return nil // common case
	}
	if isASCII(a) && isASCII(b) {
		// Byte and rune positions coincide, skip decoding.
		return Diff([]byte(a), []byte(b), opts...)
	}
	return Diff(text.ToRunes(a), text.ToRunes(b), opts...)
}

// Lines returns the line-level differences between two texts. Each line is
// one element, keeps its trailing newline, and compares by string equality;
// hunk positions and spans count lines.
func Lines[S1, S2 text.String](a S1, b S2, opts ...Option) []Hunk {
	return Diff(splitLines(a), splitLines(b), opts...)
}
