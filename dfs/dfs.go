// Package dfs implements depth-first search over implicit state graphs,
// driven by an explicit stack rather than recursion.
//
// The dive follows the first untried successor of the deepest state and
// backtracks when a state runs out of successors. States on the current
// path are excluded, so only simple paths are explored; an optional depth
// bound keeps the enumeration tractable on cyclic domains. The cost
// reported is the move count of the first path that touches the goal,
// which is not optimal in general.
package dfs

import (
	"time"

	"github.com/katalvlaran/tilesearch/core"
)

// Algorithm is the label stamped into core.Result.Algorithm.
const Algorithm = "DFS"

// Search runs depth-first search from start to goal over the graph induced
// by neighbors.
//
// Search returns:
//   - (*core.Result, nil) on a completed run; inspect Result.Termination
//     to distinguish success, exhaustion and timeout. A depth-bounded run
//     that never touches the goal exhausts.
//   - (nil, ErrNilNeighbors) when neighbors is nil.
//   - (nil, ErrOptionViolation) when an Option was invalid.
func Search(start, goal core.State, neighbors core.NeighborFunc, opts ...Option) (*core.Result, error) {
	// 1) Apply options.
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// 2) Validate inputs.
	if neighbors == nil {
		return nil, ErrNilNeighbors
	}

	t0 := time.Now()

	// 3) Trivial case: nothing to dive for.
	if start == goal {
		res := &core.Result{
			Algorithm:   Algorithm,
			Termination: core.TerminationOK,
			Cost:        0,
			BoundFinal:  o.MaxDepth,
		}
		if o.ReturnPath {
			res.Path = []core.State{start}
		}
		res.Elapsed = time.Since(t0)
		return res, nil
	}

	// 4) Initialize the walker with the start frame on the stack.
	w := &walker{
		goal:      goal,
		neighbors: neighbors,
		opts:      &o,
		stack:     []frame{{state: start, steps: neighbors(start)}},
		onPath:    map[core.State]bool{start: true},
		t0:        t0,
		res: &core.Result{
			Algorithm:  Algorithm,
			Cost:       -1,
			BoundFinal: o.MaxDepth,
		},
	}
	if o.TimeLimit > 0 {
		w.deadline = t0.Add(o.TimeLimit)
	}

	// 5) Run the dive and stamp the elapsed time.
	w.process()
	w.res.Elapsed = time.Since(w.t0)
	return w.res, nil
}

// frame is one level of the dive: a state, its depth, its precomputed
// successors and a cursor over them. expanded flips when the first
// surviving successor is pulled, so states whose successors are all
// filtered out never count as expanded.
type frame struct {
	state    core.State
	depth    int
	steps    []core.Step
	next     int
	expanded bool
}

// walker carries the mutable state of one depth-first run.
type walker struct {
	goal      core.State
	neighbors core.NeighborFunc
	opts      *Options

	stack  []frame
	onPath map[core.State]bool

	t0       time.Time
	deadline time.Time
	res      *core.Result
}

// process advances the dive one successor at a time. Each iteration pulls
// the next untried successor of the top frame, filters it through the
// depth bound and the on-path set, and either reports the goal, pushes a
// new frame, or backtracks.
func (w *walker) process() {
	for len(w.stack) > 0 {
		// Time check once per iteration.
		if w.expired() {
			w.res.Termination = core.TerminationTimeout
			return
		}

		top := len(w.stack) - 1
		depth := w.stack[top].depth
		if depth > w.res.PeakRecursion {
			w.res.PeakRecursion = depth
		}

		// Frame exhausted: leave the path and backtrack.
		if w.stack[top].next >= len(w.stack[top].steps) {
			delete(w.onPath, w.stack[top].state)
			w.stack = w.stack[:top]
			continue
		}
		st := w.stack[top].steps[w.stack[top].next]
		w.stack[top].next++

		// Depth bound: too-deep children are skipped without being counted.
		if w.opts.MaxDepth > 0 && depth+1 > w.opts.MaxDepth {
			continue
		}

		// A successor already on the current path would close a cycle.
		if w.onPath[st.To] {
			w.res.Duplicates++
			continue
		}

		// First surviving successor marks the frame as expanded.
		if !w.stack[top].expanded {
			w.stack[top].expanded = true
			w.res.Expanded++
		}
		w.res.Generated++

		// Goal test on generation: the goal itself is never pushed.
		if st.To == w.goal {
			w.res.Termination = core.TerminationOK
			w.res.Cost = depth + 1
			if w.opts.ReturnPath {
				w.res.Path = w.pathTo(st.To)
			}
			return
		}

		w.onPath[st.To] = true
		w.stack = append(w.stack, frame{
			state: st.To,
			depth: depth + 1,
			steps: w.neighbors(st.To),
		})
	}

	// Every simple path within the bound was tried.
	w.res.Termination = core.TerminationExhausted
}

// expired reports whether the context is done or the deadline has passed.
func (w *walker) expired() bool {
	if w.opts.Ctx.Err() != nil {
		return true
	}
	return !w.deadline.IsZero() && time.Now().After(w.deadline)
}

// pathTo returns the states on the stack, bottom to top, plus the goal.
// The stack is exactly the current path, so no parent map is needed.
func (w *walker) pathTo(goal core.State) []core.State {
	path := make([]core.State, 0, len(w.stack)+1)
	for i := range w.stack {
		path = append(path, w.stack[i].state)
	}
	return append(path, goal)
}
