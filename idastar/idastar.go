// Package idastar implements iterative-deepening A* (IDA*) with optional
// bidirectional pathmax propagation (BPMX) over an implicit graph described
// by a core.NeighborFunc.
//
// The outer loop holds a scalar cost bound, initially h(start). Each
// iteration runs one depth-first walk that prunes every node whose
// f = g + h exceeds the bound and reports the smallest excess it saw; that
// minimum becomes the next bound. Memory stays O(depth) where best-first
// keeps O(states), at the price of re-walking shallow levels every
// iteration.
//
// Notes on implementation choices:
//
//   - The walk returns a tagged outcome (found, timeout, or bound-exceeded
//     with the excess value); an unbounded excess means the reachable space
//     fits under the bound and the search is exhausted.
//   - Cycle avoidance tracks only the states on the current path. There is
//     no closed set; revisits through different paths are inherent to the
//     algorithm and show up in the Duplicates counter instead.
//   - Parents, the ever-seen set and all counters persist across bound
//     iterations; the path set is rebuilt per iteration.
package idastar

import (
	"context"
	"math"
	"time"

	"github.com/katalvlaran/tilesearch/core"
)

// Algorithm labels stamped into core.Result.Algorithm.
const (
	Algorithm     = "IDA*"
	AlgorithmBPMX = "IDA*+BPMX"
)

// unbounded marks "no node exceeded the bound" when the walk unwinds.
const unbounded = math.MaxInt

// walkOutcome tags the three ways a bounded walk can end.
type walkOutcome int

const (
	// walkBound: the subtree was cut off; the accompanying value is the
	// minimal f that exceeded the bound (unbounded when none did).
	walkBound walkOutcome = iota

	// walkFound: the goal was reached; the walker recorded its cost.
	walkFound

	// walkTimeout: the budget expired mid-walk.
	walkTimeout
)

// Search runs iterative-deepening A* from start to goal over the
// transitions of neighbors, guided by h. It accepts functional options
// (WithBPMX, WithTimeLimit, WithContext, WithReturnPath).
//
// The returned error is non-nil only for contract violations:
//  1. neighbors must be non-nil (ErrNilNeighbors).
//  2. h must be non-nil (ErrNilHeuristic).
//  3. every supplied Option must be valid (ErrOptionViolation).
//
// Search outcomes, including timeout and exhaustion, are reported in
// Result.Termination, never as errors. Result.BoundFinal carries the bound
// active when the run stopped and Result.PeakRecursion the deepest walk
// level reached.
func Search(start, goal core.State, h core.Heuristic, neighbors core.NeighborFunc, opts ...Option) (*core.Result, error) {
	// 1) Build and validate Options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	// 2) Validate the callback contract.
	if neighbors == nil {
		return nil, ErrNilNeighbors
	}
	if h == nil {
		return nil, ErrNilHeuristic
	}

	label := Algorithm
	if cfg.BPMX {
		label = AlgorithmBPMX
	}

	// 3) Prepare the walker. Parents, the ever-seen set and the counters
	//    live for the whole multi-iteration search.
	w := &walker{
		start:     start,
		goal:      goal,
		h:         h,
		neighbors: neighbors,
		bpmx:      cfg.BPMX,
		ctx:       cfg.Ctx,
		parents:   make(map[core.State]core.State),
		seen:      map[core.State]bool{start: true},
		t0:        time.Now(),
		res:       &core.Result{Algorithm: label, Cost: -1},
	}
	if cfg.TimeLimit > 0 {
		w.deadline = w.t0.Add(cfg.TimeLimit)
	}

	// 4) Deepen the bound until the walk finds the goal, times out, or
	//    unwinds with nothing left above the bound.
	h0 := h(start)
	bound := h0
	for {
		w.pathset = map[core.State]bool{start: true}
		out, next := w.walk(start, 0, bound, h0, 0)

		switch {
		case out == walkTimeout:
			return w.finish(core.TerminationTimeout, -1, bound), nil
		case out == walkFound:
			res := w.finish(core.TerminationOK, w.solutionG, bound)
			if cfg.ReturnPath {
				res.Path = w.reconstruct()
			}
			return res, nil
		case next == unbounded:
			return w.finish(core.TerminationExhausted, -1, bound), nil
		}
		bound = next
	}
}

// walker holds the mutable state of a single Search execution.
type walker struct {
	start     core.State
	goal      core.State
	h         core.Heuristic
	neighbors core.NeighborFunc
	bpmx      bool

	ctx      context.Context
	t0       time.Time
	deadline time.Time // zero when no limit

	parents   map[core.State]core.State // survives across iterations
	pathset   map[core.State]bool       // states on the current walk path
	seen      map[core.State]bool       // every state ever generated, start included
	solutionG int
	res       *core.Result
}

// walk is one bounded depth-first step.
//
// Order of operations at entry: budget check, depth peak, f-bound pruning,
// goal test. Only then does the node count as expanded and its children get
// walked. The return value is a tagged outcome plus, for walkBound, the
// minimal f observed above the bound in this subtree.
func (w *walker) walk(s core.State, g, bound, hS, depth int) (walkOutcome, int) {
	if w.expired() {
		return walkTimeout, 0
	}
	if depth > w.res.PeakRecursion {
		w.res.PeakRecursion = depth
	}
	if f := g + hS; f > bound {
		return walkBound, f
	}
	if s == w.goal {
		w.solutionG = g
		return walkFound, 0
	}

	w.res.Expanded++
	minNext := unbounded

	// hParent may rise as children reveal larger heuristics (BPMX).
	hParent := hS

	for _, st := range w.neighbors(s) {
		// Cycle avoidance against the current path only; such skips are
		// free and uncounted.
		if w.pathset[st.To] {
			continue
		}

		g2 := g + st.Cost
		h2 := w.h(st.To)

		if w.bpmx {
			// Child to parent raise: consistency gives
			// h(parent) >= h(child) - cost.
			if up := h2 - st.Cost; up > hParent {
				hParent = up
				// The raised parent alone may now exceed the bound;
				// abandon the remaining siblings and hand the cutoff
				// value up as a next-bound candidate.
				if g+hParent > bound {
					return walkBound, g + hParent
				}
			}
			// Parent to child bump (pathmax down); can only raise the
			// child's estimate, so admissibility is preserved.
			if down := hParent - st.Cost; down > h2 {
				h2 = down
			}
		}

		w.res.Generated++
		if w.seen[st.To] {
			w.res.Duplicates++
		} else {
			w.seen[st.To] = true
		}

		w.parents[st.To] = s
		w.pathset[st.To] = true

		out, next := w.walk(st.To, g2, bound, h2, depth+1)
		if out == walkTimeout || out == walkFound {
			return out, next
		}
		if next < minNext {
			minNext = next
		}

		delete(w.pathset, st.To)
	}

	return walkBound, minNext
}

// expired reports whether the context is done or the deadline has passed.
// Sampled once per walk entry.
func (w *walker) expired() bool {
	if w.ctx.Err() != nil {
		return true
	}
	return !w.deadline.IsZero() && time.Now().After(w.deadline)
}

// finish stamps the terminal fields onto the result.
func (w *walker) finish(term core.Termination, cost, bound int) *core.Result {
	w.res.Termination = term
	w.res.Cost = cost
	w.res.BoundFinal = bound
	w.res.Elapsed = time.Since(w.t0)
	return w.res
}

// reconstruct rebuilds start..goal by walking the parent map backwards;
// the start state has no parent entry and terminates the walk.
func (w *walker) reconstruct() []core.State {
	path := []core.State{w.goal}
	for cur := w.goal; ; {
		p, ok := w.parents[cur]
		if !ok {
			break
		}
		path = append(path, p)
		cur = p
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
