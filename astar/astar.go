// Package astar implements best-first branch-and-bound search (A*) over an
// implicit graph described by a core.NeighborFunc.
//
// The engine orders a priority frontier by the bound f = g+h, finalizes
// states through a closed set, and keeps the best known path cost per
// discovered state. With an admissible heuristic the first goal pop is a
// minimum-cost solution.
//
// Complexity (b = branching factor, d = solution depth):
//
//   - Time:  O(b^d log b^d) worst case; the heuristic prunes most of it.
//   - Space: O(b^d) for the frontier, closed set and cost table.
//
// Notes on implementation choices:
//
//   - Lazy deletion: rediscovering a state with a better cost pushes a
//     fresh frontier entry instead of rewiring the heap; stale entries are
//     recognized by the closed-set check at pop and skipped.
//   - The wall-clock budget is sampled once per pop, so a run never stops
//     mid-expansion and counters stay consistent.
//   - Parents are tracked in a map keyed by state, which rediscoveries
//     overwrite alongside the cost table.
package astar

import (
	"container/heap"
	"time"

	"github.com/katalvlaran/tilesearch/core"
)

// Algorithm is the label stamped into core.Result.Algorithm.
const Algorithm = "A*"

// Search runs best-first search from start to goal over the transitions of
// neighbors, guided by h. It accepts functional options (WithTieBreak,
// WithTimeLimit, WithContext, WithReturnPath).
//
// The returned error is non-nil only for contract violations:
//  1. neighbors must be non-nil (ErrNilNeighbors).
//  2. h must be non-nil (ErrNilHeuristic).
//  3. every supplied Option must be valid (ErrOptionViolation).
//
// Search outcomes, including timeout and exhaustion, are reported in
// Result.Termination, never as errors. Counters accumulated so far are
// returned in every terminal case.
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

	// 3) Prepare the runner and seed the frontier with the start state.
	r := &runner{
		start:     start,
		goal:      goal,
		h:         h,
		neighbors: neighbors,
		opts:      cfg,
		bestG:     map[core.State]int{start: 0},
		closed:    make(map[core.State]bool),
		prev:      make(map[core.State]core.State),
		seen:      map[core.State]bool{start: true},
		t0:        time.Now(),
		res:       &core.Result{Algorithm: Algorithm, Cost: -1},
	}
	if cfg.TimeLimit > 0 {
		r.deadline = r.t0.Add(cfg.TimeLimit)
	}
	heap.Init(&r.pq)
	r.push(start, 0, h(start))
	r.res.PeakOpen = 1

	// 4) Run the pop-expand loop.
	return r.process(), nil
}

// runner holds the mutable state of a single Search execution.
type runner struct {
	start     core.State
	goal      core.State
	h         core.Heuristic
	neighbors core.NeighborFunc
	opts      Options

	pq     nodePQ
	bestG  map[core.State]int        // state → best known path cost
	closed map[core.State]bool       // finalized states; stale pops skip here
	prev   map[core.State]core.State // state → predecessor on its best path
	seen   map[core.State]bool       // every state ever generated, start included

	seq      int // insertion counter feeding the tie-break keys
	t0       time.Time
	deadline time.Time // zero when no limit
	res      *core.Result
}

// process is the main loop: pop the lowest-priority entry, skip it when
// stale, finish on goal, otherwise close and expand it.
func (r *runner) process() *core.Result {
	for r.pq.Len() > 0 {
		// Budget check once per pop.
		if r.expired() {
			return r.finish(core.TerminationTimeout, -1)
		}

		// Frontier high-water mark is sampled before the pop.
		if n := r.pq.Len(); n > r.res.PeakOpen {
			r.res.PeakOpen = n
		}

		item := heap.Pop(&r.pq).(*nodeItem)
		if r.closed[item.state] {
			continue // stale entry, a cheaper path was already finalized
		}

		// Goal pops terminate before the state is closed or counted as
		// expanded, so the goal itself never inflates the counters.
		if item.state == r.goal {
			res := r.finish(core.TerminationOK, item.g)
			if r.opts.ReturnPath {
				res.Path = r.reconstruct()
			}
			return res
		}

		r.closed[item.state] = true
		r.res.Expanded++
		if n := len(r.closed); n > r.res.PeakClosed {
			r.res.PeakClosed = n
		}

		r.expand(item)
	}

	return r.finish(core.TerminationExhausted, -1)
}

// expand relaxes every transition out of item's state.
func (r *runner) expand(item *nodeItem) {
	for _, st := range r.neighbors(item.state) {
		g2 := item.g + st.Cost

		// Every examined edge counts; duplicates count re-encounters of
		// any state generated before, improving or not.
		r.res.Generated++
		if r.seen[st.To] {
			r.res.Duplicates++
		} else {
			r.seen[st.To] = true
		}

		// Push only strict improvements. Entries superseded later stay in
		// the heap and die at the closed-set check (lazy deletion).
		if best, ok := r.bestG[st.To]; ok && g2 >= best {
			continue
		}
		r.bestG[st.To] = g2
		r.prev[st.To] = item.state
		r.push(st.To, g2, r.h(st.To))
	}
}

// push appends a frontier entry carrying the tie-break keys for this run's
// policy and advances the insertion counter.
func (r *runner) push(s core.State, g, h int) {
	f := g + h
	var key2, key3 int
	switch r.opts.TieBreak {
	case TieBreakHighG:
		key2, key3 = -g, r.seq
	case TieBreakFIFO:
		key2, key3 = 0, r.seq
	case TieBreakLIFO:
		key2, key3 = 0, -r.seq
	default: // TieBreakLowH
		key2, key3 = h, r.seq
	}
	heap.Push(&r.pq, &nodeItem{f: f, key2: key2, key3: key3, g: g, state: s})
	r.seq++
}

// expired reports whether the context is done or the deadline has passed.
func (r *runner) expired() bool {
	if r.opts.Ctx.Err() != nil {
		return true
	}
	return !r.deadline.IsZero() && time.Now().After(r.deadline)
}

// finish stamps the terminal fields onto the result.
func (r *runner) finish(term core.Termination, cost int) *core.Result {
	r.res.Termination = term
	r.res.Cost = cost
	r.res.Elapsed = time.Since(r.t0)
	return r.res
}

// reconstruct rebuilds start..goal by walking the parent map backwards.
func (r *runner) reconstruct() []core.State {
	path := []core.State{r.goal}
	for cur := r.goal; cur != r.start; {
		cur = r.prev[cur]
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// nodeItem is one frontier entry: the ordering keys, the path cost at push
// time, and the state itself.
type nodeItem struct {
	f     int // g + h, the primary key
	key2  int // policy-dependent secondary key
	key3  int // ± insertion sequence, makes the order total
	g     int
	state core.State
}

// nodePQ is a min-heap of *nodeItem ordered by (f, key2, key3) ascending.
// Stale entries from lazy deletion remain until popped.
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less compares the full key triple so ties resolve deterministically.
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].f != pq[j].f {
		return pq[i].f < pq[j].f
	}
	if pq[i].key2 != pq[j].key2 {
		return pq[i].key2 < pq[j].key2
	}
	return pq[i].key3 < pq[j].key3
}

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
// Called by heap.Push; x must be of type *nodeItem.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the last element from the heap's backing slice.
// Called by heap.Pop.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
