// Package dfs delivers the uninformed depth-first baseline of the engine.
//
// # Overview
//
// Depth-first search dives along successors, backtracking when a state has
// none left. An explicit frame stack replaces recursion, so the dive depth
// is limited by memory rather than by goroutine stack growth. Only simple
// paths are explored: the set of states on the current path blocks cycles,
// and WithMaxDepth caps how far a dive may go. The first path that touches
// the goal wins, so the reported cost is a feasibility answer, not an
// optimal one.
//
// # When to use
//
//   - As the cautionary baseline in experiments: it shows what happens to
//     solution quality when order of exploration ignores cost entirely.
//   - For cheap reachability probes under a small depth bound.
//
// # Instrumentation
//
// Duplicates here counts successors rejected because they already sit on
// the current path, not hits against a run-global seen set; depth-first
// keeps no such set. PeakRecursion reports the deepest frame reached and
// BoundFinal echoes the configured depth bound (zero when unlimited).
//
// # Errors
//
//   - ErrNilNeighbors: the neighbor function is nil.
//   - ErrOptionViolation: an Option carried an invalid value.
//
// Search is safe for concurrent use as long as each call receives its own
// option set; no package-level state is mutated.
package dfs
