// Package bfs implements breadth-first search over implicit state graphs.
//
// The traversal expands states in FIFO order and treats every step as
// cost 1, so the first time the goal leaves the queue its depth is the
// minimal number of moves. Step costs reported by the neighbor function
// are ignored.
package bfs

import (
	"time"

	"github.com/katalvlaran/tilesearch/core"
)

// Algorithm is the label stamped into core.Result.Algorithm.
const Algorithm = "BFS"

// Search runs breadth-first search from start to goal over the graph
// induced by neighbors.
//
// Search returns:
//   - (*core.Result, nil) on a completed run; inspect Result.Termination
//     to distinguish success, exhaustion and timeout.
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

	// 3) Initialize the walker. The start state is marked seen at enqueue
	//    time, as every later state will be.
	w := &walker{
		goal:      goal,
		neighbors: neighbors,
		opts:      &o,
		queue:     []core.State{start},
		parent:    make(map[core.State]core.State),
		seen:      map[core.State]bool{start: true},
		t0:        time.Now(),
		res: &core.Result{
			Algorithm: Algorithm,
			Cost:      -1,
		},
	}
	if o.TimeLimit > 0 {
		w.deadline = w.t0.Add(o.TimeLimit)
	}

	// 4) Run the FIFO loop and stamp the elapsed time.
	w.process()
	w.res.Elapsed = time.Since(w.t0)
	return w.res, nil
}

// walker carries the mutable state of one breadth-first run.
type walker struct {
	goal      core.State
	neighbors core.NeighborFunc
	opts      *Options

	queue  []core.State
	parent map[core.State]core.State
	seen   map[core.State]bool

	t0       time.Time
	deadline time.Time
	res      *core.Result
}

// process drains the queue until the goal is dequeued, the frontier
// empties, or the time budget runs out.
func (w *walker) process() {
	for len(w.queue) > 0 {
		// Time check once per dequeue.
		if w.expired() {
			w.res.Termination = core.TerminationTimeout
			return
		}

		s := w.queue[0]
		w.queue = w.queue[1:]

		// Goal test on dequeue, before the state counts as expanded.
		if s == w.goal {
			path := w.reconstruct()
			w.res.Termination = core.TerminationOK
			w.res.Cost = len(path) - 1
			if w.opts.ReturnPath {
				w.res.Path = path
			}
			return
		}

		w.res.Expanded++
		for _, st := range w.neighbors(s) {
			w.res.Generated++
			if w.seen[st.To] {
				w.res.Duplicates++
				continue
			}
			w.seen[st.To] = true
			w.parent[st.To] = s
			w.queue = append(w.queue, st.To)
		}
	}

	// Queue drained without reaching the goal.
	w.res.Termination = core.TerminationExhausted
}

// expired reports whether the context is done or the deadline has passed.
func (w *walker) expired() bool {
	if w.opts.Ctx.Err() != nil {
		return true
	}
	return !w.deadline.IsZero() && time.Now().After(w.deadline)
}

// reconstruct rebuilds the start→goal chain from the parent map.
func (w *walker) reconstruct() []core.State {
	var rev []core.State
	s := w.goal
	for {
		rev = append(rev, s)
		p, ok := w.parent[s]
		if !ok {
			break
		}
		s = p
	}
	path := make([]core.State, 0, len(rev))
	for i := len(rev) - 1; i >= 0; i-- {
		path = append(path, rev[i])
	}
	return path
}
