// Package bfs_test contains unit tests for the breadth-first baseline:
// input validation, optimality on scrambles, path shape, termination
// kinds and counter invariants.
package bfs_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/katalvlaran/tilesearch/bfs"
	"github.com/katalvlaran/tilesearch/core"
	"github.com/katalvlaran/tilesearch/puzzle"
)

// ------------------------------------------------------------------------
// 1. Validation tests: invalid inputs and options are rejected.
// ------------------------------------------------------------------------

func TestSearch_Errors(t *testing.T) {
	b := puzzle.New8()
	s := b.Scramble(5, 1)

	if _, err := bfs.Search(s, b.Goal(), nil); !errors.Is(err, bfs.ErrNilNeighbors) {
		t.Errorf("nil neighbors: want ErrNilNeighbors, got %v", err)
	}
	if _, err := bfs.Search(s, b.Goal(), b.Neighbors,
		bfs.WithTimeLimit(-time.Millisecond)); !errors.Is(err, bfs.ErrOptionViolation) {
		t.Errorf("negative time limit: want ErrOptionViolation, got %v", err)
	}
}

// ------------------------------------------------------------------------
// 2. Correctness: trivial cases, optimality, path shape.
// ------------------------------------------------------------------------

func TestSearch_StartIsGoal(t *testing.T) {
	b := puzzle.New8()
	res, err := bfs.Search(b.Goal(), b.Goal(), b.Neighbors, bfs.WithReturnPath())
	if err != nil {
		t.Fatal(err)
	}
	if res.Termination != core.TerminationOK || res.Cost != 0 {
		t.Fatalf("start==goal: termination %v cost %d; want ok 0", res.Termination, res.Cost)
	}
	if res.Expanded != 0 || res.Generated != 0 || res.Duplicates != 0 {
		t.Errorf("start==goal must not expand: expanded %d generated %d", res.Expanded, res.Generated)
	}
	if len(res.Path) != 1 || res.Path[0] != b.Goal() {
		t.Errorf("path = %v; want just the goal state", res.Path)
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
		res, err := bfs.Search(s, b.Goal(), b.Neighbors)
		if err != nil {
			t.Fatal(err)
		}
		if res.Cost != want {
			t.Errorf("seed %d: cost %d; brute force says %d", seed, res.Cost, want)
		}
		if res.Algorithm != bfs.Algorithm {
			t.Errorf("algorithm = %q; want %q", res.Algorithm, bfs.Algorithm)
		}
	}
}

func TestSearch_PathIsConnected(t *testing.T) {
	b := puzzle.New8()
	s := b.Scramble(9, 4)
	res, err := bfs.Search(s, b.Goal(), b.Neighbors, bfs.WithReturnPath())
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
	res, err := bfs.Search(b.Scramble(6, 2), b.Goal(), b.Neighbors)
	if err != nil {
		t.Fatal(err)
	}
	if res.Path != nil {
		t.Errorf("path materialized without WithReturnPath: %d states", len(res.Path))
	}
}

// ------------------------------------------------------------------------
// 3. Termination kinds and counter invariants.
// ------------------------------------------------------------------------

func TestSearch_UnsolvableExhausts(t *testing.T) {
	b, err := puzzle.NewBoard(2, 2)
	if err != nil {
		t.Fatal(err)
	}
	start := puzzle.UnsolvableVariant(b.Goal())
	res, err := bfs.Search(start, b.Goal(), b.Neighbors)
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
	res, err := bfs.Search(s, b.Goal(), b.Neighbors, bfs.WithTimeLimit(time.Nanosecond))
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
	res, err := bfs.Search(b.Scramble(20, 1), b.Goal(), b.Neighbors, bfs.WithContext(ctx))
	if err != nil {
		t.Fatal(err)
	}
	if res.Termination != core.TerminationTimeout {
		t.Errorf("canceled context: termination %v; want timeout", res.Termination)
	}
}

func TestSearch_CounterInvariants(t *testing.T) {
	b := puzzle.New8()
	res, err := bfs.Search(b.Scramble(12, 9), b.Goal(), b.Neighbors)
	if err != nil {
		t.Fatal(err)
	}
	if res.Generated < res.Expanded {
		t.Errorf("generated %d < expanded %d", res.Generated, res.Expanded)
	}
	if res.Duplicates > res.Generated {
		t.Errorf("duplicates %d > generated %d", res.Duplicates, res.Generated)
	}
	// Slides are reversible, so every expansion past the start regenerates
	// its parent and must hit the seen set.
	if res.Expanded >= 2 && res.Duplicates == 0 {
		t.Error("duplicates = 0 on a cyclic domain with multiple expansions")
	}
	// Frontier peaks belong to the best-first engines only.
	if res.PeakOpen != 0 || res.PeakClosed != 0 {
		t.Errorf("peaks = (%d, %d); breadth-first reports none", res.PeakOpen, res.PeakClosed)
	}
	if res.PeakRecursion != 0 || res.BoundFinal != 0 {
		t.Errorf("depth fields = (%d, %d); breadth-first reports none", res.PeakRecursion, res.BoundFinal)
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
