// Command aoc solves the registered puzzle days.
//
//	aoc list
//	aoc check [--jobs N]
//	aoc run 16 inputs/day16.txt [--config aoc.yaml] [--visualize]
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
