package shift_test

import (
	"fmt"

	"github.com/katalvlaran/mazeshift/maze"
	"github.com/katalvlaran/mazeshift/reach"
	"github.com/katalvlaran/mazeshift/shift"
)

// ExampleMutate shifts a maze ten times and checks the goal stays reachable.
func ExampleMutate() {
	g, _ := maze.Generate(6, 6, 7)
	rng := maze.NewRand(2024)
	start, goal := maze.Point{X: 0, Y: 0}, maze.Point{X: 5, Y: 5}

	for i := 0; i < 10; i++ {
		if _, err := shift.Mutate(g, start, goal, rng); err != nil {
			fmt.Println("error:", err)
			return
		}
	}
	fmt.Println("reachable:", reach.IsReachable(g, start, goal))
	fmt.Println("valid:", g.Validate() == nil)

	// Output:
	// reachable: true
	// valid: true
}
