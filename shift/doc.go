// Package shift rewrites a generated maze in place while keeping a goal
// cell reachable from a start cell.
//
// Each Mutate call does two independent steps:
//
//	A. Try to close one open passage. Candidates are every open East/South
//	   passage in a random order; each is closed, checked with
//	   reach.IsReachable, and reopened if the goal became unreachable.
//	   The first closure that keeps the goal reachable is kept. If none
//	   does, nothing is closed.
//	B. Open one closed wall chosen uniformly at random. Opening only adds
//	   connectivity, so no check is needed. If no wall is closed, nothing
//	   is opened.
//
// Both no-op outcomes are normal and are reported through Result, not as
// errors. Preconditions (non-nil grid and rng, in-bounds and distinct
// endpoints) are checked before the grid is touched.
//
// Rollback touches only the two cells of the tried candidate, so a call
// costs O(C×W×H) in the worst case, C being the number of open passages.
//
// Nothing here is synchronized: one goroutine owns a grid and its rng.
package shift
