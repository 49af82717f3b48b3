package reach

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/mazeshift/maze"
)

// Sentinel errors for Search.
var (
	// ErrGridNil is returned if a nil grid pointer is passed.
	ErrGridNil = errors.New("reach: grid is nil")

	// ErrStartOutOfBounds is returned when the start cell lies outside the grid.
	ErrStartOutOfBounds = errors.New("reach: start cell out of bounds")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("reach: invalid option supplied")

	// ErrNoPath is returned by PathTo for a cell the search never reached.
	ErrNoPath = errors.New("reach: no path")
)

// Option configures Search via functional arguments.
// Invalid values are recorded and surfaced as ErrOptionViolation.
type Option func(*Options)

// Options holds the parameters of one Search.
type Options struct {
	// Target, when HasTarget is set, stops the search as soon as that
	// cell is dequeued.
	Target    maze.Point
	HasTarget bool

	// MaxDepth, if > 0, stops exploring beyond this many steps.
	MaxDepth int

	// OnVisit is called for each dequeued cell. Returning an error
	// aborts the search and propagates that error.
	OnVisit func(p maze.Point, depth int) error

	err error
}

// DefaultOptions returns Options with no target, no depth limit and a
// no-op visit hook.
func DefaultOptions() Options {
	return Options{
		OnVisit: func(maze.Point, int) error { return nil },
	}
}

// WithTarget stops the search the moment p is dequeued.
func WithTarget(p maze.Point) Option {
	return func(o *Options) {
		o.Target = p
		o.HasTarget = true
	}
}

// WithMaxDepth limits exploration to d steps from the start.
//
//	d > 0: limit to depth d
//	d == 0: no limit
//	d < 0: ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithOnVisit registers a hook run on every dequeued cell.
func WithOnVisit(fn func(p maze.Point, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// Result holds the outcome of a Search.
//   - Order: cells in dequeue order.
//   - depth/parent: per-cell BFS distance and predecessor, row-major,
//     -1 where unset.
type Result struct {
	Order []maze.Point

	width, height int
	depth         []int
	parent        []int
}

// Len returns the number of cells reached, including the start.
// Cells enqueued but not yet dequeued when a target stops the search
// are counted as reached.
func (r *Result) Len() int {
	count := 0
	for _, d := range r.depth {
		if d >= 0 {
			count++
		}
	}
	return count
}

// Reached reports whether p was discovered by the search.
func (r *Result) Reached(p maze.Point) bool {
	_, ok := r.Depth(p)
	return ok
}

// Depth returns the BFS distance from the start to p.
func (r *Result) Depth(p maze.Point) (int, bool) {
	if p.X < 0 || p.X >= r.width || p.Y < 0 || p.Y >= r.height {
		return 0, false
	}
	d := r.depth[p.Y*r.width+p.X]
	return d, d >= 0
}

// PathTo reconstructs a shortest path from the start to dest, inclusive.
// Returns ErrNoPath if dest was not reached.
func (r *Result) PathTo(dest maze.Point) ([]maze.Point, error) {
	d, ok := r.Depth(dest)
	if !ok {
		return nil, fmt.Errorf("%w to %s", ErrNoPath, dest)
	}
	path := make([]maze.Point, d+1)
	cur := dest.Y*r.width + dest.X
	for i := d; i >= 0; i-- {
		path[i] = maze.Point{X: cur % r.width, Y: cur / r.width}
		cur = r.parent[cur]
	}

	return path, nil
}
