package shift

import (
	"fmt"

	"github.com/katalvlaran/mazeshift/maze"
	"github.com/katalvlaran/mazeshift/reach"
)

// Mutate closes at most one passage and opens at most one wall of g,
// keeping goal reachable from start whenever it was reachable before.
//
// Error Conditions (grid untouched):
//   - ErrGridNil, ErrRandNil: nil g or rng.
//   - ErrOutOfBounds: start or goal outside g.
//   - ErrSameEndpoints: start == goal.
func Mutate(g *maze.Grid, start, goal maze.Point, rng maze.Rand, opts ...Option) (Result, error) {
	if err := validate(g, start, goal, rng); err != nil {
		return Result{}, err
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	var res Result
	res.Closed, res.Attempts = closeOne(g, start, goal, rng)
	if res.Closed != nil {
		o.onClose(*res.Closed)
	}
	res.Opened = openOne(g, rng)
	if res.Opened != nil {
		o.onOpen(*res.Opened)
	}

	return res, nil
}

func validate(g *maze.Grid, start, goal maze.Point, rng maze.Rand) error {
	switch {
	case g == nil:
		return ErrGridNil
	case rng == nil:
		return ErrRandNil
	case !g.Contains(start):
		return fmt.Errorf("%w: start %s in %dx%d grid", ErrOutOfBounds, start, g.Width(), g.Height())
	case !g.Contains(goal):
		return fmt.Errorf("%w: goal %s in %dx%d grid", ErrOutOfBounds, goal, g.Width(), g.Height())
	case start == goal:
		return fmt.Errorf("%w: %s", ErrSameEndpoints, start)
	}
	return nil
}

// closeOne tries open passages in shuffled order and keeps the first
// closure after which goal is still reachable. A failed try is undone by
// reopening the same edge, which restores exactly the two cells it touched.
func closeOne(g *maze.Grid, start, goal maze.Point, rng maze.Rand) (*maze.Edge, int) {
	candidates := OpenCandidates(g)
	rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})

	attempts := 0
	for _, e := range candidates {
		attempts++
		g.Close(e)
		if reach.IsReachable(g, start, goal) {
			return &e, attempts
		}
		g.Open(e)
	}
	return nil, attempts
}

// openOne opens one closed wall chosen uniformly by rng.
func openOne(g *maze.Grid, rng maze.Rand) *maze.Edge {
	walls := ClosedCandidates(g)
	if len(walls) == 0 {
		return nil
	}
	e := walls[rng.Intn(len(walls))]
	g.Open(e)
	return &e
}

// OpenCandidates lists every open passage once, named South or East from
// its upper/left cell, in row-major order.
func OpenCandidates(g *maze.Grid) []maze.Edge {
	return walls(g, true)
}

// ClosedCandidates lists every closed interior wall once, named South or
// East from its upper/left cell, in row-major order.
func ClosedCandidates(g *maze.Grid) []maze.Edge {
	return walls(g, false)
}

func walls(g *maze.Grid, open bool) []maze.Edge {
	var out []maze.Edge
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			for _, d := range [2]maze.Direction{maze.South, maze.East} {
				if _, ok := g.Neighbor(maze.Point{X: x, Y: y}, d); !ok {
					continue
				}
				if g.IsPassageOpen(x, y, d) == open {
					out = append(out, maze.Edge{X: x, Y: y, Dir: d})
				}
			}
		}
	}
	return out
}
