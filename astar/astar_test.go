// Package astar_test contains unit tests for the best-first engine. They
// validate input checking, optimality against brute-force distances,
// tie-break behavior, the three termination kinds, and counter invariants.
package astar_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/katalvlaran/tilesearch/astar"
	"github.com/katalvlaran/tilesearch/core"
	"github.com/katalvlaran/tilesearch/puzzle"
)

// ------------------------------------------------------------------------
// 1. Validation tests: invalid inputs and options are rejected.
// ------------------------------------------------------------------------

func TestSearch_Errors(t *testing.T) {
	b := puzzle.New8()
	s := b.Scramble(5, 1)

	if _, err := astar.Search(s, b.Goal(), b.Manhattan, nil); !errors.Is(err, astar.ErrNilNeighbors) {
		t.Errorf("nil neighbors: want ErrNilNeighbors, got %v", err)
	}
	if _, err := astar.Search(s, b.Goal(), nil, b.Neighbors); !errors.Is(err, astar.ErrNilHeuristic) {
		t.Errorf("nil heuristic: want ErrNilHeuristic, got %v", err)
	}
	if _, err := astar.Search(s, b.Goal(), b.Manhattan, b.Neighbors,
		astar.WithTimeLimit(-time.Second)); !errors.Is(err, astar.ErrOptionViolation) {
		t.Errorf("negative time limit: want ErrOptionViolation, got %v", err)
	}
	if _, err := astar.Search(s, b.Goal(), b.Manhattan, b.Neighbors,
		astar.WithTieBreak(astar.TieBreak(99))); !errors.Is(err, astar.ErrOptionViolation) {
		t.Errorf("unknown tie-break: want ErrOptionViolation, got %v", err)
	}
}

func TestParseTieBreak(t *testing.T) {
	for _, name := range []string{"h", "g", "fifo", "lifo"} {
		tb, err := astar.ParseTieBreak(name)
		if err != nil {
			t.Fatalf("ParseTieBreak(%q): %v", name, err)
		}
		if tb.String() != name {
			t.Errorf("round trip %q -> %q", name, tb.String())
		}
	}
	if _, err := astar.ParseTieBreak("nope"); !errors.Is(err, astar.ErrOptionViolation) {
		t.Errorf("unknown name: want ErrOptionViolation, got %v", err)
	}
}

// ------------------------------------------------------------------------
// 2. Correctness: trivial cases, optimality, path shape.
// ------------------------------------------------------------------------

func TestSearch_StartIsGoal(t *testing.T) {
	b := puzzle.New8()
	res, err := astar.Search(b.Goal(), b.Goal(), b.Manhattan, b.Neighbors, astar.WithReturnPath())
	if err != nil {
		t.Fatal(err)
	}
	if res.Termination != core.TerminationOK || res.Cost != 0 {
		t.Fatalf("start==goal: termination %v cost %d; want ok 0", res.Termination, res.Cost)
	}
	if res.Expanded != 0 || res.Generated != 0 {
		t.Errorf("start==goal must not expand: expanded %d generated %d", res.Expanded, res.Generated)
	}
	if len(res.Path) != 1 || res.Path[0] != b.Goal() {
		t.Errorf("path = %v; want just the goal state", res.Path)
	}
}

func TestSearch_ScrambleDepthBoundsCost(t *testing.T) {
	b := puzzle.New8()
	s := b.Scramble(6, 0)
	res, err := astar.Search(s, b.Goal(), b.Manhattan, b.Neighbors)
	if err != nil {
		t.Fatal(err)
	}
	if !res.Solved() {
		t.Fatalf("depth-6 scramble must solve, got %v", res.Termination)
	}
	if res.Cost < 1 || res.Cost > 6 {
		t.Errorf("cost = %d; want within [1, 6]", res.Cost)
	}
	if res.Algorithm != astar.Algorithm {
		t.Errorf("algorithm = %q; want %q", res.Algorithm, astar.Algorithm)
	}
}

func TestSearch_OptimalAgainstBruteForce(t *testing.T) {
	b := puzzle.New8()
	truth := distancesWithin(b, 8)

	for seed := int64(0); seed < 12; seed++ {
		s := b.Scramble(8, seed)
		want, ok := truth[s]
		if !ok {
			t.Fatalf("seed %d: depth-8 scramble outside the depth-8 ball", seed)
		}
		for _, h := range []core.Heuristic{b.Manhattan, b.LinearConflict} {
			res, err := astar.Search(s, b.Goal(), h, b.Neighbors)
			if err != nil {
				t.Fatal(err)
			}
			if res.Cost != want {
				t.Errorf("seed %d: cost %d; brute force says %d", seed, res.Cost, want)
			}
		}
	}
}

func TestSearch_PathIsConnected(t *testing.T) {
	b := puzzle.New8()
	s := b.Scramble(10, 3)
	res, err := astar.Search(s, b.Goal(), b.LinearConflict, b.Neighbors, astar.WithReturnPath())
	if err != nil {
		t.Fatal(err)
	}
	if !res.Solved() {
		t.Fatalf("unexpected termination %v", res.Termination)
	}
	if len(res.Path) != res.Cost+1 {
		t.Fatalf("path length %d; want cost+1 = %d", len(res.Path), res.Cost+1)
	}
	if res.Path[0] != s || res.Path[len(res.Path)-1] != b.Goal() {
		t.Fatal("path must run start..goal")
	}
	for i := 0; i+1 < len(res.Path); i++ {
		if !isNeighbor(b, res.Path[i], res.Path[i+1]) {
			t.Fatalf("path step %d is not a legal slide", i)
		}
	}
}

func TestSearch_NoPathUnlessRequested(t *testing.T) {
	b := puzzle.New8()
	res, err := astar.Search(b.Scramble(6, 2), b.Goal(), b.Manhattan, b.Neighbors)
	if err != nil {
		t.Fatal(err)
	}
	if res.Path != nil {
		t.Errorf("path materialized without WithReturnPath: %d states", len(res.Path))
	}
}

// ------------------------------------------------------------------------
// 3. Tie-break policies: same cost, possibly different effort.
// ------------------------------------------------------------------------

func TestSearch_TieBreakPoliciesAgreeOnCost(t *testing.T) {
	b := puzzle.New8()
	s := b.Scramble(14, 7)

	policies := []astar.TieBreak{astar.TieBreakLowH, astar.TieBreakHighG, astar.TieBreakFIFO, astar.TieBreakLIFO}
	costs := make([]int, 0, len(policies))
	for _, tb := range policies {
		res, err := astar.Search(s, b.Goal(), b.Manhattan, b.Neighbors, astar.WithTieBreak(tb))
		if err != nil {
			t.Fatalf("%v: %v", tb, err)
		}
		if !res.Solved() {
			t.Fatalf("%v: unexpected termination %v", tb, res.Termination)
		}
		costs = append(costs, res.Cost)
	}
	for i := 1; i < len(costs); i++ {
		if costs[i] != costs[0] {
			t.Errorf("policy %v found cost %d; policy %v found %d", policies[i], costs[i], policies[0], costs[0])
		}
	}
}

// ------------------------------------------------------------------------
// 4. Termination kinds and counter invariants.
// ------------------------------------------------------------------------

func TestSearch_UnsolvableExhausts(t *testing.T) {
	b, err := puzzle.NewBoard(2, 2)
	if err != nil {
		t.Fatal(err)
	}
	start := puzzle.UnsolvableVariant(b.Goal())
	res, err := astar.Search(start, b.Goal(), b.Manhattan, b.Neighbors)
	if err != nil {
		t.Fatal(err)
	}
	if res.Termination != core.TerminationExhausted {
		t.Fatalf("termination = %v; want exhausted", res.Termination)
	}
	if res.Cost != -1 || res.Solved() {
		t.Errorf("unsolvable run must report cost -1, got %d", res.Cost)
	}
	// Half of the 2x2 state space is reachable: 4!/2 = 12 states.
	if res.Expanded != 12 {
		t.Errorf("expanded = %d; want all 12 reachable states", res.Expanded)
	}
}

func TestSearch_TimeoutReportsCounters(t *testing.T) {
	b, err := puzzle.NewBoard(4, 4)
	if err != nil {
		t.Fatal(err)
	}
	s := b.Scramble(80, 5)
	res, err := astar.Search(s, b.Goal(), b.Manhattan, b.Neighbors, astar.WithTimeLimit(time.Nanosecond))
	if err != nil {
		t.Fatal(err)
	}
	if res.Termination != core.TerminationTimeout {
		t.Fatalf("termination = %v; want timeout", res.Termination)
	}
	if res.Cost != -1 {
		t.Errorf("cost = %d; want -1 on timeout", res.Cost)
	}
}

func TestSearch_CanceledContext(t *testing.T) {
	b := puzzle.New8()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	res, err := astar.Search(b.Scramble(20, 1), b.Goal(), b.Manhattan, b.Neighbors, astar.WithContext(ctx))
	if err != nil {
		t.Fatal(err)
	}
	if res.Termination != core.TerminationTimeout {
		t.Errorf("canceled context: termination %v; want timeout", res.Termination)
	}
}

func TestSearch_CounterInvariants(t *testing.T) {
	b := puzzle.New8()
	res, err := astar.Search(b.Scramble(16, 9), b.Goal(), b.Manhattan, b.Neighbors)
	if err != nil {
		t.Fatal(err)
	}
	if res.Generated < res.Expanded {
		t.Errorf("generated %d < expanded %d", res.Generated, res.Expanded)
	}
	if res.Duplicates > res.Generated {
		t.Errorf("duplicates %d > generated %d", res.Duplicates, res.Generated)
	}
	// The closed set only grows, one state per expansion.
	if res.PeakClosed != res.Expanded {
		t.Errorf("peak closed %d; want expanded %d", res.PeakClosed, res.Expanded)
	}
	if res.PeakOpen < 1 {
		t.Errorf("peak open %d; the start state was in the frontier", res.PeakOpen)
	}
}

// ------------------------------------------------------------------------
// Helpers.
// ------------------------------------------------------------------------

// distancesWithin floods out from the goal to the given depth and returns
// true distances (slides are reversible).
func distancesWithin(b *puzzle.Board, depth int) map[core.State]int {
	dist := map[core.State]int{b.Goal(): 0}
	frontier := []core.State{b.Goal()}
	for d := 1; d <= depth; d++ {
		var next []core.State
		for _, s := range frontier {
			for _, st := range b.Neighbors(s) {
				if _, ok := dist[st.To]; ok {
					continue
				}
				dist[st.To] = d
				next = append(next, st.To)
			}
		}
		frontier = next
	}
	return dist
}

// isNeighbor reports whether b allows a single slide from a to c.
func isNeighbor(b *puzzle.Board, a, c core.State) bool {
	for _, st := range b.Neighbors(a) {
		if st.To == c {
			return true
		}
	}
	return false
}
