// Package puzzle - instance generation and solvability.
package puzzle

import (
	"bytes"
	"math/rand"

	"github.com/katalvlaran/tilesearch/core"
)

// Scramble returns the state reached by a depth-step random walk from the
// goal, never sliding the same tile straight back (the previous blank cell
// is excluded from the candidates whenever another move exists).
//
// The walk is deterministic per seed, and the seed is used verbatim: in the
// experiment layer the seed doubles as the instance identity, so distinct
// seeds must stay distinct. The result is always reachable from the goal,
// hence always solvable; its true solution depth may be below depth because
// the walk can cycle.
// Complexity: O(depth×size).
func (b *Board) Scramble(depth int, seed int64) core.State {
	rng := rand.New(rand.NewSource(seed))
	s := []byte(b.goal)
	last := -1

	for step := 0; step < depth; step++ {
		z := bytes.IndexByte(s, Blank)
		cand := b.adj[z]
		if len(cand) > 1 && contains(cand, last) {
			trimmed := make([]int, 0, len(cand)-1)
			for _, j := range cand {
				if j != last {
					trimmed = append(trimmed, j)
				}
			}
			cand = trimmed
		}
		j := cand[rng.Intn(len(cand))]
		s[z], s[j] = s[j], s[z]
		last = z
	}

	return core.State(s)
}

// Solvable reports whether s can reach the goal.
//
// Parity rule: count inversions among the non-blank tiles in row-major
// order. On odd-width boards the state is solvable iff the count is even;
// on even-width boards iff the count plus the blank's row distance from the
// bottom (1-based) is odd. Malformed states are reported unsolvable.
// Complexity: O(size²).
func (b *Board) Solvable(s core.State) bool {
	z := b.blankIndex(s)
	if z < 0 {
		return false
	}

	arr := make([]byte, 0, b.size-1)
	for i := 0; i < len(s); i++ {
		if s[i] != Blank {
			arr = append(arr, s[i])
		}
	}
	inv := 0
	for i := 0; i < len(arr); i++ {
		for j := i + 1; j < len(arr); j++ {
			if arr[i] > arr[j] {
				inv++
			}
		}
	}

	if b.Cols%2 == 1 {
		return inv%2 == 0
	}
	blankRowFromBottom := b.Rows - z/b.Cols // 1-based
	return (inv+blankRowFromBottom)%2 == 1
}

// UnsolvableVariant returns s with its first two non-blank tiles swapped,
// which flips the inversion parity and therefore the solvability of any
// well-formed state. States with fewer than two tiles come back unchanged.
func UnsolvableVariant(s core.State) core.State {
	buf := []byte(s)
	i := 0
	for i < len(buf) && buf[i] == Blank {
		i++
	}
	j := i + 1
	for j < len(buf) && buf[j] == Blank {
		j++
	}
	if j >= len(buf) {
		return s
	}
	buf[i], buf[j] = buf[j], buf[i]
	return core.State(buf)
}

// contains reports whether xs holds x.
func contains(xs []int, x int) bool {
	for _, v := range xs {
		if v == x {
			return true
		}
	}
	return false
}
