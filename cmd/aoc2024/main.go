// The aoc2024 command runs the 2024 puzzles that are solved with a path
// search. Inputs are read from <inputs>/2024/<day>.input.
package main

import (
	_ "embed"

	aoc "github.com/maisem/aoc2024"
)

func main() {
	aoc.Run(2024, source, &solver{})
}

//go:embed solver.go
var source []byte
