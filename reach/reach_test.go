package reach_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazeshift/maze"
	"github.com/katalvlaran/mazeshift/reach"
)

const (
	n = maze.North
	s = maze.South
	e = maze.East
	w = maze.West
)

func pt(x, y int) maze.Point { return maze.Point{X: x, Y: y} }

// corridor is 0-1-2 open along a single row.
func corridor(t *testing.T) *maze.Grid {
	t.Helper()
	g, err := maze.FromCells([][]maze.Direction{{e, e | w, w}})
	require.NoError(t, err)
	return g
}

// square is a fully open 2×2 grid, the smallest grid with a cycle.
func square(t *testing.T) *maze.Grid {
	t.Helper()
	g, err := maze.FromCells([][]maze.Direction{
		{e | s, w | s},
		{n | e, n | w},
	})
	require.NoError(t, err)
	return g
}

// TestSearch_Errors verifies that invalid inputs and options are rejected.
func TestSearch_Errors(t *testing.T) {
	_, err := reach.Search(nil, pt(0, 0))
	assert.ErrorIs(t, err, reach.ErrGridNil)

	g := corridor(t)
	_, err = reach.Search(g, pt(3, 0))
	assert.ErrorIs(t, err, reach.ErrStartOutOfBounds)
	_, err = reach.Search(g, pt(0, -1))
	assert.ErrorIs(t, err, reach.ErrStartOutOfBounds)

	_, err = reach.Search(g, pt(0, 0), reach.WithMaxDepth(-1))
	assert.ErrorIs(t, err, reach.ErrOptionViolation)
}

// TestSearch_Corridor checks order, depths and path on a straight line.
func TestSearch_Corridor(t *testing.T) {
	res, err := reach.Search(corridor(t), pt(0, 0))
	require.NoError(t, err)

	assert.Equal(t, []maze.Point{pt(0, 0), pt(1, 0), pt(2, 0)}, res.Order)
	assert.Equal(t, 3, res.Len())
	d, ok := res.Depth(pt(2, 0))
	require.True(t, ok)
	assert.Equal(t, 2, d)

	path, err := res.PathTo(pt(2, 0))
	require.NoError(t, err)
	assert.Equal(t, []maze.Point{pt(0, 0), pt(1, 0), pt(2, 0)}, path)

	path, err = res.PathTo(pt(0, 0))
	require.NoError(t, err)
	assert.Equal(t, []maze.Point{pt(0, 0)}, path)
}

// TestSearch_ShortestOnCycle picks the two-step route around a square.
func TestSearch_ShortestOnCycle(t *testing.T) {
	res, err := reach.Search(square(t), pt(0, 0))
	require.NoError(t, err)
	require.Equal(t, 4, res.Len())

	d, _ := res.Depth(pt(1, 1))
	assert.Equal(t, 2, d)
	path, err := res.PathTo(pt(1, 1))
	require.NoError(t, err)
	require.Len(t, path, 3)
	assert.Equal(t, pt(0, 0), path[0])
	assert.Equal(t, pt(1, 1), path[2])
}

// TestSearch_Target stops as soon as the target is dequeued.
func TestSearch_Target(t *testing.T) {
	res, err := reach.Search(corridor(t), pt(0, 0), reach.WithTarget(pt(1, 0)))
	require.NoError(t, err)
	assert.Equal(t, []maze.Point{pt(0, 0), pt(1, 0)}, res.Order)
	assert.False(t, res.Reached(pt(2, 0)))
}

// TestSearch_MaxDepth limits exploration.
func TestSearch_MaxDepth(t *testing.T) {
	res, err := reach.Search(corridor(t), pt(0, 0), reach.WithMaxDepth(1))
	require.NoError(t, err)
	assert.Equal(t, 2, res.Len())
	assert.False(t, res.Reached(pt(2, 0)))

	res, err = reach.Search(corridor(t), pt(0, 0), reach.WithMaxDepth(0))
	require.NoError(t, err)
	assert.Equal(t, 3, res.Len())
}

// TestSearch_OnVisit propagates hook errors and sees every dequeued cell.
func TestSearch_OnVisit(t *testing.T) {
	var visited []maze.Point
	_, err := reach.Search(corridor(t), pt(2, 0), reach.WithOnVisit(func(p maze.Point, _ int) error {
		visited = append(visited, p)
		return nil
	}))
	require.NoError(t, err)
	assert.Equal(t, []maze.Point{pt(2, 0), pt(1, 0), pt(0, 0)}, visited)

	stop := errors.New("stop")
	_, err = reach.Search(corridor(t), pt(0, 0), reach.WithOnVisit(func(p maze.Point, depth int) error {
		if depth == 1 {
			return stop
		}
		return nil
	}))
	assert.ErrorIs(t, err, stop)
}

// TestSearch_Unreached reports ErrNoPath for cells behind a wall.
func TestSearch_Unreached(t *testing.T) {
	g, err := maze.FromCells([][]maze.Direction{{e, w, 0}})
	require.NoError(t, err)
	res, err := reach.Search(g, pt(0, 0))
	require.NoError(t, err)

	assert.Equal(t, 2, res.Len())
	_, err = res.PathTo(pt(2, 0))
	assert.ErrorIs(t, err, reach.ErrNoPath)
	_, err = res.PathTo(pt(9, 9))
	assert.ErrorIs(t, err, reach.ErrNoPath)
}

// TestIsReachable covers connected, disconnected and invalid queries.
func TestIsReachable(t *testing.T) {
	g, err := maze.FromCells([][]maze.Direction{
		{e, w | s, 0},
		{0, n, 0},
	})
	require.NoError(t, err)

	cases := []struct {
		name        string
		grid        *maze.Grid
		start, goal maze.Point
		want        bool
	}{
		{"Adjacent", g, pt(0, 0), pt(1, 0), true},
		{"TwoSteps", g, pt(0, 0), pt(1, 1), true},
		{"Reverse", g, pt(1, 1), pt(0, 0), true},
		{"Self", g, pt(2, 1), pt(2, 1), true},
		{"Walled", g, pt(0, 0), pt(2, 0), false},
		{"Isolated", g, pt(0, 1), pt(0, 0), false},
		{"StartOutside", g, pt(-1, 0), pt(0, 0), false},
		{"GoalOutside", g, pt(0, 0), pt(3, 0), false},
		{"NilGrid", nil, pt(0, 0), pt(0, 0), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, reach.IsReachable(tc.grid, tc.start, tc.goal))
		})
	}
}

// TestIsReachable_ReadOnly leaves the grid untouched.
func TestIsReachable_ReadOnly(t *testing.T) {
	g, err := maze.Generate(10, 10, 3)
	require.NoError(t, err)
	before := g.Clone()

	for y := 0; y < 10; y++ {
		assert.True(t, reach.IsReachable(g, pt(0, 0), pt(9, y)))
	}
	assert.True(t, before.Equal(g))
}
