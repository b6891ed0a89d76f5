// _example/example.go
package main

import (
	"fmt"

	"github.com/kenshaw/myersdiff"
)

const (
	text1 = "Lorem ipsum dolor."
	text2 = "Lorem dolor sit amet."
)

func main() {
	for _, h := range myersdiff.Chars(text1, text2) {
		fmt.Println(h)
	}
	fmt.Println()
	for h := range myersdiff.Hunks([]rune(text1), []rune(text2), myersdiff.Optimize()) {
		fmt.Printf("%s: -%d elements, +%d elements\n", h, h.DeletedA, h.InsertedB)
	}
}
