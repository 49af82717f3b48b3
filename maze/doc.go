// Package maze holds the grid model of a perfect maze and its randomized
// Kruskal generator.
//
// What:
//
//   - Grid stores one Direction bitset per cell, indexed [row][col].
//     A set bit means "passage open toward that direction".
//   - Passages are always bidirectional: Open and Close update both
//     endpoint cells together, and Validate checks the invariant.
//   - Generate builds a spanning tree over all cells by walking a seeded
//     shuffle of every interior wall and joining disjoint cells through a
//     dsu.Forest.
//
// Why:
//
//   - Same seed ⇒ bit-identical maze, so fixtures and replays are stable.
//   - A bitset grid is cheap to copy, compare and query from a game loop.
//
// Complexity:
//
//   - Generate: O(W×H·α) time, O(W×H) memory.
//   - IsPassageOpen / Open / Close: O(1).
//   - Validate, PassageCount, String: O(W×H).
//
// Errors:
//
//   - ErrInvalidDimensions: width or height is not positive.
//   - ErrEmptyGrid, ErrNonRectangular: malformed FromCells input.
//   - ErrInvalidDirection, ErrOpenBoundary, ErrAsymmetric: a cell bitset
//     that breaks the grid invariants.
//   - ErrRandNil: a nil random source was supplied.
//
// Randomness is always injected through the Rand interface; nothing in
// this package touches the process-global math/rand source.
package maze
