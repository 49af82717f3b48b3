// Package mazeshift is a maze topology engine: it builds perfect mazes with
// randomized Kruskal and rewrites them live without ever cutting the goal
// off from the start.
//
// What is in the box:
//
//	• dsu:   disjoint-set forest over dense integer elements
//	• maze:  grid model, directions, seeded RNG, Kruskal generator
//	• reach: BFS reachability oracle and shortest-path search
//	• shift: close-one/open-one mutator guarded by the oracle
//
// Typical session:
//
//	g, _ := maze.Generate(20, 15, seed)               // once
//	rng := maze.NewRand(maze.DeriveSeed(seed, 1))
//	res, _ := shift.Mutate(g, start, goal, rng)       // every tick
//	ok := g.IsPassageOpen(x, y, maze.East)            // render / input
//
// Everything is synchronous, allocation-bounded and deterministic for a
// given seed. Nothing is locked: the caller owns each grid and its rng.
//
// A small driver lives in cmd/mazeshift.
package mazeshift
