// Package core: State, Step, NeighborFunc and Heuristic.
//
// This file declares the domain-facing value types; result.go declares the
// engine-facing Result and Termination types.
package core

// State is one configuration of the searched system, encoded as an opaque
// immutable string. States are comparable and hashable, so they serve
// directly as map keys in visited sets, best-cost tables and parent tables.
//
// The puzzle package packs one byte per cell (0x00 marks the blank), which
// keeps equality checks and map lookups allocation-free for boards of up to
// 256 cells.
type State string

// Step is a single outgoing transition: the successor state and the
// non-negative cost of taking it.
type Step struct {
	// To is the successor state.
	To State

	// Cost is the transition cost. It must be non-negative; sliding-tile
	// moves all cost 1.
	Cost int
}

// NeighborFunc enumerates the outgoing transitions of a state. Engines call
// it once per expansion.
//
// Implementations must be side-effect-free and total: a malformed or
// unrecognized state yields an empty slice, never a panic or an error.
type NeighborFunc func(s State) []Step

// Heuristic estimates the remaining cost from a state to the nearest goal.
// It must be non-negative. The optimality guarantees of the astar and
// idastar engines additionally require it to be admissible, and the pathmax
// propagation in idastar exploits consistency; neither property is checked
// at runtime.
type Heuristic func(s State) int
