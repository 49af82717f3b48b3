package reach

import (
	"fmt"

	"github.com/katalvlaran/mazeshift/maze"
)

// walker encapsulates mutable BFS state.
type walker struct {
	grid  *maze.Grid
	opts  Options
	queue []int
	head  int
	res   *Result
}

// IsReachable reports whether goal can be reached from start through open
// passages. It returns false when either cell lies outside the grid or g
// is nil. The grid is never modified.
//
// Complexity: O(W×H) time and memory in the worst case.
func IsReachable(g *maze.Grid, start, goal maze.Point) bool {
	if g == nil || !g.Contains(start) || !g.Contains(goal) {
		return false
	}
	res, err := Search(g, start, WithTarget(goal))
	if err != nil {
		return false
	}
	return res.Reached(goal)
}

// Search runs breadth-first search over g from start.
// Returns ErrGridNil, ErrStartOutOfBounds or ErrOptionViolation for bad
// input, or any error returned by the OnVisit hook.
func Search(g *maze.Grid, start maze.Point, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.Contains(start) {
		return nil, fmt.Errorf("%w: %s in %dx%d grid", ErrStartOutOfBounds, start, g.Width(), g.Height())
	}

	n := g.Len()
	w := &walker{
		grid:  g,
		opts:  o,
		queue: make([]int, 0, n),
		res: &Result{
			Order:  make([]maze.Point, 0, n),
			width:  g.Width(),
			height: g.Height(),
			depth:  make([]int, n),
			parent: make([]int, n),
		},
	}
	for i := 0; i < n; i++ {
		w.res.depth[i] = -1
		w.res.parent[i] = -1
	}

	w.enqueue(g.Index(start), 0, -1)
	return w.res, w.loop()
}

// enqueue records depth and parent for idx and appends it to the queue.
func (w *walker) enqueue(idx, depth, parent int) {
	w.res.depth[idx] = depth
	w.res.parent[idx] = parent
	w.queue = append(w.queue, idx)
}

// loop drains the queue, stopping early on the target or a hook error.
func (w *walker) loop() error {
	for w.head < len(w.queue) {
		idx := w.queue[w.head]
		w.head++
		p := w.grid.Coordinate(idx)
		depth := w.res.depth[idx]

		w.res.Order = append(w.res.Order, p)
		if err := w.opts.OnVisit(p, depth); err != nil {
			return fmt.Errorf("reach: OnVisit error at %s: %w", p, err)
		}
		if w.opts.HasTarget && p == w.opts.Target {
			return nil
		}
		w.enqueueNeighbors(p, idx, depth)
	}
	return nil
}

// enqueueNeighbors follows every open passage out of p to unseen cells
// within MaxDepth.
func (w *walker) enqueueNeighbors(p maze.Point, idx, depth int) {
	next := depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return
	}
	for _, d := range maze.Directions {
		if !w.grid.IsPassageOpen(p.X, p.Y, d) {
			continue
		}
		ni := w.grid.Index(p.Step(d))
		if w.res.depth[ni] < 0 {
			w.enqueue(ni, next, idx)
		}
	}
}
