package maze

import (
	"github.com/katalvlaran/mazeshift/dsu"
)

// GenerateOption configures Generate and GenerateRand.
type GenerateOption func(*generateOptions)

type generateOptions struct {
	onCarve func(e Edge)
}

// WithOnCarve registers a callback invoked for every passage the
// generator opens, in carve order. A nil fn is ignored.
func WithOnCarve(fn func(e Edge)) GenerateOption {
	return func(o *generateOptions) {
		if fn != nil {
			o.onCarve = fn
		}
	}
}

// Generate builds a perfect maze of width×height cells from seed.
// The same arguments always yield a bit-identical grid.
//
// Error Conditions:
//   - ErrInvalidDimensions: width <= 0 or height <= 0.
func Generate(width, height int, seed int64, opts ...GenerateOption) (*Grid, error) {
	return GenerateRand(width, height, NewRand(seed), opts...)
}

// GenerateRand builds a perfect maze drawing its wall order from rng.
//
// Steps:
//  1. Validate dimensions and allocate a closed grid plus one forest
//     element per cell.
//  2. Enumerate every interior wall once: North for y > 0, West for x > 0.
//  3. Shuffle the walls with rng.
//  4. For each wall in shuffled order, if its two cells are still in
//     different sets, union them and open the passage; otherwise drop it.
//
// The result is a spanning tree: W×H-1 passages, every cell reachable,
// no cycles.
//
// Error Conditions:
//   - ErrRandNil: rng is nil.
//   - ErrInvalidDimensions: width <= 0 or height <= 0.
//
// Complexity: O(W×H·α) time, O(W×H) memory.
func GenerateRand(width, height int, rng Rand, opts ...GenerateOption) (*Grid, error) {
	if rng == nil {
		return nil, ErrRandNil
	}
	o := generateOptions{onCarve: func(Edge) {}}
	for _, opt := range opts {
		opt(&o)
	}

	// 1. Closed grid and singleton forest.
	g, err := NewGrid(width, height)
	if err != nil {
		return nil, err
	}
	forest := dsu.New(g.Len())

	// 2-3. Candidate walls in seeded order.
	edges := wallEdges(width, height)
	shuffleEdges(edges, rng)

	// 4. Kruskal over the shuffled walls.
	for _, e := range edges {
		if !forest.Union(g.Index(e.From()), g.Index(e.To())) {
			continue
		}
		g.Open(e)
		o.onCarve(e)
	}

	return g, nil
}

// wallEdges lists every interior wall once, named from the cell with the
// larger coordinate: width*(height-1) + height*(width-1) edges in total.
func wallEdges(width, height int) []Edge {
	edges := make([]Edge, 0, width*(height-1)+height*(width-1))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if y > 0 {
				edges = append(edges, Edge{X: x, Y: y, Dir: North})
			}
			if x > 0 {
				edges = append(edges, Edge{X: x, Y: y, Dir: West})
			}
		}
	}
	return edges
}
