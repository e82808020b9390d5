// Package idastar provides iterative-deepening A* (IDA*), the O(depth)
// memory counterpart of the astar engine, with optional bidirectional
// pathmax propagation (BPMX) for inconsistent heuristics.
//
// Overview:
//
//   - An outer loop raises a cost bound from h(start) to the minimal f that
//     exceeded the previous bound, one bounded depth-first walk per step.
//   - The walk prunes on f = g + h, avoids only the states on its current
//     path, and keeps no closed set; revisits through other paths are
//     counted as Duplicates against an ever-seen set that spans the whole
//     run (statistics only, never pruning).
//   - With an admissible heuristic the returned cost is minimal, and with a
//     consistent one Result.BoundFinal equals the cost.
//
// BPMX (WithBPMX):
//
//   - Child to parent: a child's heuristic minus the edge cost is a sound
//     lower bound for the parent; raising the parent's value can cut off
//     all remaining siblings at once.
//   - Parent to child: the parent's (possibly raised) value minus the edge
//     cost lower-bounds the child, so the child's estimate is bumped before
//     recursing.
//   - Both propagations follow from consistency and never change the
//     returned cost. On an already-consistent heuristic neither ever fires;
//     they pay off when plugging in cheap inconsistent bounds.
//
// Errors (sentinel): ErrNilNeighbors, ErrNilHeuristic, ErrOptionViolation.
//
// Thread safety: one Search call is single-threaded and self-contained;
// run concurrent searches by calling Search from separate goroutines.
package idastar
