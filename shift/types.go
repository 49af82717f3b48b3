package shift

import (
	"errors"

	"github.com/katalvlaran/mazeshift/maze"
)

// Sentinel errors for precondition violations.
var (
	// ErrGridNil is returned if a nil grid pointer is passed.
	ErrGridNil = errors.New("shift: grid is nil")
	// ErrRandNil is returned if a nil random source is passed.
	ErrRandNil = errors.New("shift: random source is nil")
	// ErrOutOfBounds is returned when start or goal lies outside the grid.
	ErrOutOfBounds = errors.New("shift: endpoint out of bounds")
	// ErrSameEndpoints is returned when start equals goal.
	ErrSameEndpoints = errors.New("shift: start and goal must differ")
)

// Result reports what one Mutate call changed.
type Result struct {
	// Closed is the passage closed in step A, or nil if none could be
	// closed without cutting start off from goal.
	Closed *maze.Edge
	// Opened is the wall opened in step B, or nil if every wall was open.
	Opened *maze.Edge
	// Attempts counts the closures tried in step A, including the kept one.
	Attempts int
}

// Option configures Mutate via functional arguments.
type Option func(*options)

type options struct {
	onClose func(e maze.Edge)
	onOpen  func(e maze.Edge)
}

func defaultOptions() options {
	return options{
		onClose: func(maze.Edge) {},
		onOpen:  func(maze.Edge) {},
	}
}

// WithOnClose registers a hook called with the passage kept closed in step A.
func WithOnClose(fn func(e maze.Edge)) Option {
	return func(o *options) {
		if fn != nil {
			o.onClose = fn
		}
	}
}

// WithOnOpen registers a hook called with the wall opened in step B.
func WithOnOpen(fn func(e maze.Edge)) Option {
	return func(o *options) {
		if fn != nil {
			o.onOpen = fn
		}
	}
}
