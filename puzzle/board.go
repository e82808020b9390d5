// Package puzzle - Board construction and transition generation.
package puzzle

import (
	"strings"

	"github.com/katalvlaran/tilesearch/core"
)

// NewBoard constructs an R×C Board.
// Returns ErrBoardSize if rows or cols is below 2,
// ErrBoardTooLarge if rows*cols exceeds MaxCells.
// Complexity: O(rows×cols) time and memory.
func NewBoard(rows, cols int) (*Board, error) {
	if rows < 2 || cols < 2 {
		return nil, ErrBoardSize
	}
	size := rows * cols
	if size > MaxCells {
		return nil, ErrBoardTooLarge
	}

	b := &Board{
		Rows:    rows,
		Cols:    cols,
		size:    size,
		adj:     make([][]int, size),
		goalRow: make([]int, size),
		goalCol: make([]int, size),
	}

	// Blank adjacency per cell, in up, down, left, right order.
	for i := 0; i < size; i++ {
		r, c := i/cols, i%cols
		moves := make([]int, 0, 4)
		if r > 0 {
			moves = append(moves, i-cols)
		}
		if r < rows-1 {
			moves = append(moves, i+cols)
		}
		if c > 0 {
			moves = append(moves, i-1)
		}
		if c < cols-1 {
			moves = append(moves, i+1)
		}
		b.adj[i] = moves
	}

	// Goal layout (1, 2, ..., size-1, blank) and per-tile goal coordinates.
	goal := make([]byte, size)
	for t := 1; t < size; t++ {
		idx := t - 1
		goal[idx] = byte(t)
		b.goalRow[t] = idx / cols
		b.goalCol[t] = idx % cols
	}
	goal[size-1] = Blank
	b.goal = core.State(goal)

	return b, nil
}

// NewSquare constructs an N×N Board (N ≥ 2).
func NewSquare(n int) (*Board, error) {
	return NewBoard(n, n)
}

// New8 constructs the classic 3×3 board (the 8-puzzle).
// The dimensions are always valid, so no error is returned.
func New8() *Board {
	b, _ := NewBoard(3, 3)
	return b
}

// Size returns rows*cols.
func (b *Board) Size() int {
	return b.size
}

// Goal returns the solved state (1, 2, ..., size-1, blank).
func (b *Board) Goal() core.State {
	return b.goal
}

// Neighbors returns the transitions available from s: one unit-cost Step per
// tile adjacent to the blank. Neighbors satisfies core.NeighborFunc, so a
// bound method value (board.Neighbors) plugs straight into any engine.
// States of the wrong length or without a blank yield no transitions.
// Complexity: O(size) per call.
func (b *Board) Neighbors(s core.State) []core.Step {
	if len(s) != b.size {
		return nil
	}
	z := strings.IndexByte(string(s), Blank)
	if z < 0 {
		return nil
	}

	steps := make([]core.Step, 0, len(b.adj[z]))
	for _, j := range b.adj[z] {
		buf := []byte(s)
		buf[z], buf[j] = buf[j], buf[z]
		steps = append(steps, core.Step{To: core.State(buf), Cost: MoveCost})
	}

	return steps
}

// blankIndex locates the blank in s, or -1 when s is malformed.
func (b *Board) blankIndex(s core.State) int {
	if len(s) != b.size {
		return -1
	}
	return strings.IndexByte(string(s), Blank)
}
