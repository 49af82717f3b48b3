// Package dsu implements a disjoint-set forest (union-find) over dense
// integer elements.
//
// What:
//
//   - Elements are indices 0..Len()-1 into a flat parent arena.
//   - Find walks to the root with path halving.
//   - Union attaches the second root under the first; no rank balancing.
//
// Why:
//
//   - Kruskal-style generators need "are these two cells already joined?"
//     in near-constant time.
//   - An index arena keeps the whole forest in one slice and makes path
//     compression a single store per step.
//
// Complexity:
//
//   - New: O(n) time and memory.
//   - Find / Union / Connected: amortized O(log n) with path halving alone.
//
// Operations are total over valid elements. Passing an index outside
// [0, Len()) is a programming error and panics like any slice access.
//
// A Forest is not safe for concurrent use.
package dsu
