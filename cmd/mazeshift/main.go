// Command mazeshift drives the maze engine from the command line: it
// generates a seeded perfect maze and can shift its walls a number of
// times while keeping a goal reachable from a start cell.
//
// Usage:
//
//	mazeshift generate --width 20 --height 15 --seed 12345
//	mazeshift shift --steps 50 --start 0,0 --goal 19,14 --log-level debug
//	mazeshift shift --config mazeshift.yaml
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
