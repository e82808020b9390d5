// Package core: Result and Termination, the uniform instrumentation record
// returned by every search engine.
package core

import "time"

// Termination reports how a search run ended. All three values are valid,
// expected outcomes; none of them is an error.
type Termination int

const (
	// TerminationOK means a goal state was reached.
	TerminationOK Termination = iota

	// TerminationTimeout means the wall-clock budget (or the supplied
	// context) expired before a goal was reached. The Result still carries
	// every counter accumulated up to that point.
	TerminationTimeout

	// TerminationExhausted means the reachable space, under the active
	// bound if any, was fully explored without finding a goal.
	TerminationExhausted
)

// String returns "ok", "timeout" or "exhausted".
func (t Termination) String() string {
	switch t {
	case TerminationOK:
		return "ok"
	case TerminationTimeout:
		return "timeout"
	case TerminationExhausted:
		return "exhausted"
	default:
		return "unknown"
	}
}

// Result is the instrumentation record shared by all four engines. Exactly
// one of {Cost >= 0, Termination != TerminationOK} holds; Expanded and
// Generated are monotonically non-decreasing during a run and their final
// values are reported even on timeout or exhaustion.
type Result struct {
	// Algorithm labels the engine that produced this record:
	// "A*", "IDA*", "IDA*+BPMX", "BFS" or "DFS".
	Algorithm string

	// Termination reports how the run ended.
	Termination Termination

	// Cost is the total cost of the solution path, or -1 when no goal was
	// reached. Cost >= 0 exactly when Termination == TerminationOK.
	Cost int

	// Path holds the solution states from start to goal inclusive. It is
	// nil unless path return was requested and the run solved.
	Path []State

	// Expanded counts states whose successors were generated.
	Expanded int

	// Generated counts successor edges examined.
	Generated int

	// Duplicates counts re-encounters of already-known states. "Known" is
	// algorithm-specific: ever seen during the run for BFS, A* and IDA*,
	// currently on the active path for DFS. See each package's doc.
	Duplicates int

	// PeakOpen is the frontier high-water mark. Best-first only.
	PeakOpen int

	// PeakClosed is the closed-set high-water mark. Best-first only.
	PeakClosed int

	// PeakRecursion is the deepest point the run reached: the bounded-walk
	// depth for IDA*, the explicit-stack high-water mark for DFS.
	PeakRecursion int

	// BoundFinal is the last cost bound active when IDA* stopped, or the
	// configured depth bound for DFS.
	BoundFinal int

	// Elapsed is the wall-clock duration of the run.
	Elapsed time.Duration
}

// Solved reports whether the run reached a goal state.
func (r *Result) Solved() bool {
	return r.Termination == TerminationOK
}
