package maze

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for maze construction and validation.
var (
	// ErrInvalidDimensions indicates a non-positive width or height.
	ErrInvalidDimensions = errors.New("maze: width and height must be positive")
	// ErrEmptyGrid indicates FromCells input with no rows or no columns.
	ErrEmptyGrid = errors.New("maze: input grid must have at least one row and one column")
	// ErrNonRectangular indicates FromCells rows of differing lengths.
	ErrNonRectangular = errors.New("maze: all rows must have the same length")
	// ErrInvalidDirection indicates bits outside North|South|East|West.
	ErrInvalidDirection = errors.New("maze: invalid direction bits")
	// ErrOpenBoundary indicates a passage leading out of the grid.
	ErrOpenBoundary = errors.New("maze: passage opens past the grid boundary")
	// ErrAsymmetric indicates a passage not mirrored by its neighbour.
	ErrAsymmetric = errors.New("maze: passage is not bidirectional")
	// ErrRandNil indicates a nil random source.
	ErrRandNil = errors.New("maze: random source is nil")
)

// Direction is a bitset over the four compass directions.
// A single-bit value names one direction; a cell stores the OR of its
// open directions.
type Direction uint8

const (
	North Direction = 1 << iota
	South
	East
	West
)

// allDirections is the union of every valid direction bit.
const allDirections = North | South | East | West

// Directions lists the four single-bit directions in a fixed order.
var Directions = [4]Direction{North, South, East, West}

// Opposite returns the direction pointing back across the same wall.
// Non-single-bit values map to zero.
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	case West:
		return East
	}
	return 0
}

// Delta returns the (dx, dy) step for a single-bit direction.
// Rows grow southward, so North is dy = -1.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case North:
		return 0, -1
	case South:
		return 0, 1
	case East:
		return 1, 0
	case West:
		return -1, 0
	}
	return 0, 0
}

// Has reports whether every bit of other is set in d.
func (d Direction) Has(other Direction) bool {
	return other != 0 && d&other == other
}

// String renders single directions by name and sets as "North|East".
func (d Direction) String() string {
	if d == 0 {
		return "None"
	}
	names := make([]string, 0, 4)
	for _, dir := range Directions {
		if d&dir == 0 {
			continue
		}
		switch dir {
		case North:
			names = append(names, "North")
		case South:
			names = append(names, "South")
		case East:
			names = append(names, "East")
		case West:
			names = append(names, "West")
		}
	}
	if d&^allDirections != 0 {
		names = append(names, fmt.Sprintf("0x%02x", uint8(d&^allDirections)))
	}
	return strings.Join(names, "|")
}

// Point addresses a cell: X is the column, Y is the row.
type Point struct {
	X, Y int
}

// String formats the point as "(x,y)".
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Step returns the point one cell away toward d. The result may lie
// outside the grid.
func (p Point) Step(d Direction) Point {
	dx, dy := d.Delta()
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// Edge names the wall between cell (X,Y) and its neighbour toward Dir.
// The same wall can be named from either side; generation names walls
// by North/West, mutation by East/South.
type Edge struct {
	X, Y int
	Dir  Direction
}

// From returns the cell the edge is named from.
func (e Edge) From() Point {
	return Point{X: e.X, Y: e.Y}
}

// To returns the neighbour across the wall.
func (e Edge) To() Point {
	return e.From().Step(e.Dir)
}

// Reverse names the same wall from the other side.
func (e Edge) Reverse() Edge {
	to := e.To()
	return Edge{X: to.X, Y: to.Y, Dir: e.Dir.Opposite()}
}

// String formats the edge as "(x,y)->Dir".
func (e Edge) String() string {
	return fmt.Sprintf("(%d,%d)->%s", e.X, e.Y, e.Dir)
}
