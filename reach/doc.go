// Package reach answers connectivity questions over a maze.Grid by
// breadth-first search along open passages.
//
// IsReachable is the yes/no oracle used by the shift package to vet
// candidate wall closures. Search exposes the full traversal (visit order,
// depths, shortest-path parents) with functional options in the style of
// a general BFS: a stop target, a depth limit, and a visit hook.
//
// Both functions treat the grid as read-only and may be called
// speculatively between edits.
package reach
