// Package bfs delivers the uninformed breadth-first baseline of the engine.
//
// # Overview
//
// Breadth-first search explores the implicit state graph level by level:
// states sit in a FIFO queue, every dequeued non-goal state is expanded,
// and successors enter the queue at most once thanks to a run-global seen
// set. Because every move costs the same, the depth at which the goal is
// dequeued equals the minimal move count.
//
// # When to use
//
//   - As a ground-truth oracle for small instances: the cost it reports is
//     optimal with no heuristic involved.
//   - As the reference point heuristic engines are measured against in
//     node-count experiments.
//
// # Instrumentation
//
// Expanded counts dequeued non-goal states, Generated counts every edge
// examined, and Duplicates counts edges leading to an already-seen state.
// The queue-size peaks tracked by the best-first engines do not apply here
// and stay zero.
//
// # Errors
//
//   - ErrNilNeighbors: the neighbor function is nil.
//   - ErrOptionViolation: an Option carried an invalid value.
//
// Search is safe for concurrent use as long as each call receives its own
// option set; no package-level state is mutated.
package bfs
