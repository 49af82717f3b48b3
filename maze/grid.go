package maze

import (
	"fmt"
	"strings"
)

// Grid is a rectangular maze of Width()×Height() cells.
// cells[y][x] holds the open directions of cell (x,y).
//
// A Grid is not safe for concurrent use; callers serialize every call
// that touches the same instance.
type Grid struct {
	width, height int
	cells         [][]Direction
}

// NewGrid returns a width×height grid with every wall closed.
// Returns ErrInvalidDimensions if either dimension is not positive.
func NewGrid(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidDimensions, width, height)
	}
	cells := make([][]Direction, height)
	for y := range cells {
		cells[y] = make([]Direction, width)
	}

	return &Grid{width: width, height: height, cells: cells}, nil
}

// FromCells builds a Grid from a [row][col] slice of cell bitsets.
// The input is deep-copied. It must be non-empty, rectangular, and
// satisfy the grid invariants checked by Validate.
func FromCells(cells [][]Direction) (*Grid, error) {
	if len(cells) == 0 || len(cells[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(cells), len(cells[0])
	for _, row := range cells {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	g := &Grid{width: w, height: h, cells: make([][]Direction, h)}
	for y := 0; y < h; y++ {
		g.cells[y] = make([]Direction, w)
		copy(g.cells[y], cells[y])
	}
	if err := g.Validate(); err != nil {
		return nil, err
	}

	return g, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// Len returns the number of cells.
func (g *Grid) Len() int { return g.width * g.height }

// InBounds reports whether (x,y) lies within the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// Contains reports whether p lies within the grid.
func (g *Grid) Contains(p Point) bool {
	return g.InBounds(p.X, p.Y)
}

// Index maps p to its row-major index y*Width + x.
func (g *Grid) Index(p Point) int {
	return p.Y*g.width + p.X
}

// Coordinate converts a row-major index back to a Point.
func (g *Grid) Coordinate(idx int) Point {
	return Point{X: idx % g.width, Y: idx / g.width}
}

// Cell returns the open directions of (x,y), or zero when out of bounds.
func (g *Grid) Cell(x, y int) Direction {
	if !g.InBounds(x, y) {
		return 0
	}
	return g.cells[y][x]
}

// Neighbor returns the cell adjacent to p toward d and whether it exists.
func (g *Grid) Neighbor(p Point, d Direction) (Point, bool) {
	if d.Opposite() == 0 {
		return Point{}, false
	}
	n := p.Step(d)
	return n, g.Contains(p) && g.Contains(n)
}

// IsPassageOpen reports whether a passage leads from (x,y) toward d.
// It is false for out-of-bounds cells, walls on the boundary, and
// values of d that are not a single direction.
func (g *Grid) IsPassageOpen(x, y int, d Direction) bool {
	n, ok := g.Neighbor(Point{X: x, Y: y}, d)
	if !ok {
		return false
	}
	return g.cells[y][x]&d != 0 && g.cells[n.Y][n.X]&d.Opposite() != 0
}

// Open opens the passage named by e in both endpoint cells.
// It reports false, and changes nothing, when e leaves the grid.
func (g *Grid) Open(e Edge) bool {
	n, ok := g.Neighbor(e.From(), e.Dir)
	if !ok {
		return false
	}
	g.cells[e.Y][e.X] |= e.Dir
	g.cells[n.Y][n.X] |= e.Dir.Opposite()
	return true
}

// Close closes the passage named by e in both endpoint cells.
// It reports false, and changes nothing, when e leaves the grid.
func (g *Grid) Close(e Edge) bool {
	n, ok := g.Neighbor(e.From(), e.Dir)
	if !ok {
		return false
	}
	g.cells[e.Y][e.X] &^= e.Dir
	g.cells[n.Y][n.X] &^= e.Dir.Opposite()
	return true
}

// PassageCount returns the number of open passages, counting each wall once.
func (g *Grid) PassageCount() int {
	count := 0
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if g.cells[y][x]&East != 0 {
				count++
			}
			if g.cells[y][x]&South != 0 {
				count++
			}
		}
	}
	return count
}

// Validate checks every cell for unknown bits, passages leaving the grid,
// and passages that are not mirrored by the neighbour.
// The returned error wraps ErrInvalidDirection, ErrOpenBoundary or ErrAsymmetric.
func (g *Grid) Validate() error {
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			c := g.cells[y][x]
			if c&^allDirections != 0 {
				return fmt.Errorf("%w: cell (%d,%d) = %#02x", ErrInvalidDirection, x, y, uint8(c))
			}
			for _, d := range Directions {
				if c&d == 0 {
					continue
				}
				n, ok := g.Neighbor(Point{X: x, Y: y}, d)
				if !ok {
					return fmt.Errorf("%w: cell (%d,%d) toward %s", ErrOpenBoundary, x, y, d)
				}
				if g.cells[n.Y][n.X]&d.Opposite() == 0 {
					return fmt.Errorf("%w: cell (%d,%d) toward %s", ErrAsymmetric, x, y, d)
				}
			}
		}
	}
	return nil
}

// Clone returns a deep copy of g.
func (g *Grid) Clone() *Grid {
	c := &Grid{width: g.width, height: g.height, cells: make([][]Direction, g.height)}
	for y := range g.cells {
		c.cells[y] = make([]Direction, g.width)
		copy(c.cells[y], g.cells[y])
	}
	return c
}

// Equal reports whether g and other have the same shape and cell bits.
func (g *Grid) Equal(other *Grid) bool {
	if g == nil || other == nil {
		return g == other
	}
	if g.width != other.width || g.height != other.height {
		return false
	}
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if g.cells[y][x] != other.cells[y][x] {
				return false
			}
		}
	}
	return true
}

// Cells returns a deep copy of the [row][col] bitsets.
func (g *Grid) Cells() [][]Direction {
	out := make([][]Direction, g.height)
	for y := range g.cells {
		out[y] = make([]Direction, g.width)
		copy(out[y], g.cells[y])
	}
	return out
}

// String draws the maze in ASCII, one "+---+" block per cell.
func (g *Grid) String() string {
	var sb strings.Builder

	sb.WriteString("+" + strings.Repeat("---+", g.width) + "\n")
	for y := 0; y < g.height; y++ {
		sb.WriteByte('|')
		for x := 0; x < g.width; x++ {
			sb.WriteString("   ")
			if g.cells[y][x]&East != 0 {
				sb.WriteByte(' ')
			} else {
				sb.WriteByte('|')
			}
		}
		sb.WriteString("\n+")
		for x := 0; x < g.width; x++ {
			if g.cells[y][x]&South != 0 {
				sb.WriteString("   +")
			} else {
				sb.WriteString("---+")
			}
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
