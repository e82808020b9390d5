// Package core defines the contracts shared by every search engine in this
// module: the State value, the Step transition, the NeighborFunc and
// Heuristic callbacks, and the Result / Termination instrumentation types.
//
// The engines (astar, idastar, bfs, dfs) are written purely against these
// types and never inspect what a State encodes; the puzzle package is one
// domain that produces them, and any other domain satisfying the same
// contracts plugs in unchanged.
//
// Contracts:
//
//   - State is opaque, immutable and comparable; it is used directly as a
//     map key in visited sets and parent tables.
//   - NeighborFunc is side-effect-free and total: a malformed State yields
//     an empty slice, never a panic.
//   - Heuristic is non-negative; admissibility (never overestimating the
//     true remaining cost) is the caller's responsibility and is what the
//     optimality guarantees of the informed engines rest on.
//   - Result is the uniform record all engines return. Its counters keep
//     each algorithm's own counting convention (documented per package);
//     they are comparable across runs of one algorithm, not across
//     algorithms.
//   - Termination is a value, not an error: ok, timeout and exhausted are
//     all expected outcomes the caller branches on. Go errors are reserved
//     for contract violations such as nil callbacks or invalid options.
package core
