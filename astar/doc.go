// Package astar provides best-first branch-and-bound search (A*) over an
// implicit graph of core.State values.
//
// Overview:
//
//   - Search expands states in order of the bound f = g + h, where g is the
//     best known path cost and h a caller-supplied heuristic estimate.
//   - With an admissible h (never overestimating), the first time the goal
//     is popped its path cost is minimal. A non-admissible h silently
//     forfeits that guarantee; the engine does not detect it.
//   - The frontier is a min-heap with lazy deletion: improving a state's
//     cost pushes a fresh entry, and outdated entries are skipped at pop
//     time via the closed set.
//
// When to use:
//
//   - Single-pair shortest path on large or implicit graphs where a decent
//     lower-bound heuristic exists (tile puzzles, route planning, planning
//     problems).
//   - As the memory-hungry, fast baseline against the idastar engine, which
//     trades re-expansion for O(depth) memory.
//
// Tie-break policies (WithTieBreak):
//
//   - TieBreakLowH:  among equal f, prefer smaller h. Default.
//   - TieBreakHighG: among equal f, prefer larger g.
//   - TieBreakFIFO:  among equal f, oldest insertion first.
//   - TieBreakLIFO:  among equal f, newest insertion first.
//
// The policy never changes the returned cost on admissible heuristics, only
// which optimal path is found and how many equal-f states are expanded; the
// experiment layer sweeps policies to measure exactly that.
//
// Instrumentation (core.Result):
//
//   - Expanded counts closed states, Generated counts examined edges, and
//     Duplicates counts edges into states generated before (whether or not
//     the new path improves them).
//   - PeakOpen and PeakClosed are the frontier and closed-set high-water
//     marks, sampled before each pop and after each close respectively.
//   - Termination is ok on a goal pop, exhausted when the frontier runs
//     dry, timeout when the budget or context expires (sampled once per
//     pop). Counters are reported in all three cases.
//
// Errors (sentinel):
//
//   - ErrNilNeighbors:    neighbor function is nil.
//   - ErrNilHeuristic:    heuristic function is nil.
//   - ErrOptionViolation: an invalid Option was supplied.
//
// Thread safety: one Search call is single-threaded and self-contained;
// run concurrent searches by calling Search from separate goroutines.
package astar
