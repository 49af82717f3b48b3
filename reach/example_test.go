package reach_test

import (
	"fmt"

	"github.com/katalvlaran/mazeshift/maze"
	"github.com/katalvlaran/mazeshift/reach"
)

// ExampleSearch finds the shortest route through a small hand-built maze.
//
//	+---+---+
//	|       |
//	+---+   +
//	|       |
//	+---+---+
func ExampleSearch() {
	g, _ := maze.FromCells([][]maze.Direction{
		{maze.East, maze.West | maze.South},
		{maze.East, maze.West | maze.North},
	})
	res, _ := reach.Search(g, maze.Point{X: 0, Y: 0})
	path, _ := res.PathTo(maze.Point{X: 0, Y: 1})
	fmt.Println("reached:", res.Len())
	fmt.Println("path:", path)
	fmt.Println("reachable:", reach.IsReachable(g, maze.Point{}, maze.Point{X: 0, Y: 1}))

	// Output:
	// reached: 4
	// path: [(0,0) (1,0) (1,1) (0,1)]
	// reachable: true
}
