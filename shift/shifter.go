package shift

import (
	"github.com/katalvlaran/mazeshift/maze"
)

// Shifter binds a grid, its endpoints and a random source so a caller's
// loop can mutate the same maze repeatedly with one call per tick.
type Shifter struct {
	grid        *maze.Grid
	start, goal maze.Point
	rng         maze.Rand
	opts        []Option
	steps       int
}

// New validates the arguments once and returns a Shifter over g.
// It returns the same errors as Mutate.
func New(g *maze.Grid, start, goal maze.Point, rng maze.Rand, opts ...Option) (*Shifter, error) {
	if err := validate(g, start, goal, rng); err != nil {
		return nil, err
	}
	return &Shifter{grid: g, start: start, goal: goal, rng: rng, opts: opts}, nil
}

// Step runs one Mutate over the bound grid.
func (s *Shifter) Step() (Result, error) {
	res, err := Mutate(s.grid, s.start, s.goal, s.rng, s.opts...)
	if err != nil {
		return res, err
	}
	s.steps++
	return res, nil
}

// Steps returns how many Step calls have completed.
func (s *Shifter) Steps() int { return s.steps }

// Grid returns the grid being mutated.
func (s *Shifter) Grid() *maze.Grid { return s.grid }
