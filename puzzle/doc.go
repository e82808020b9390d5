// Package puzzle implements the sliding-tile domain behind every search
// engine in this module: rectangular R×C boards whose blank cell swaps with
// an orthogonally adjacent tile, one unit of cost per slide.
//
// What:
//
//   - Board describes an R×C puzzle (3×3 classic, N×N, or any R×C with
//     rows, cols ≥ 2 and rows*cols ≤ 256) with precomputed blank adjacency
//     and per-tile goal positions.
//   - Neighbors emits the legal transitions of a state as []core.Step.
//   - Scramble generates reproducible instances by a depth-limited random
//     walk from the goal that never immediately undoes a move.
//   - Solvable applies the inversion-parity rule (with the even-width
//     blank-row adjustment), so generators can reject unreachable states.
//   - Manhattan and LinearConflict are the two admissible, consistent
//     heuristics the informed engines run on.
//   - StateOf, Tiles and Render convert between []int tile layouts, packed
//     core.State values and printable grids.
//
// Why:
//
//   - The engines (astar, idastar, bfs, dfs) are written purely against
//     core.NeighborFunc and core.Heuristic; this package is the concrete
//     domain they are benchmarked on.
//   - One Board implementation covers the 3×3, N×N and R×C variants, so no
//     engine ever special-cases dimensions.
//
// Complexity (size = rows*cols):
//
//   - Neighbors:      O(size) per call (≤4 successors, one copy each).
//   - Scramble:       O(depth × size).
//   - Solvable:       O(size²) (inversion count).
//   - Manhattan:      O(size).
//   - LinearConflict: O(size × max(rows, cols)).
//
// Errors:
//
//   - ErrBoardSize: rows or cols below 2.
//   - ErrBoardTooLarge: rows*cols exceeds 256 cells.
//   - ErrStateLength: tile count does not match the board size.
//   - ErrNotPermutation: tiles are not a permutation of 0..size-1.
//
// States are immutable byte-packed strings (see core.State); all Board
// methods treat malformed states as dead ends rather than panicking.
package puzzle
