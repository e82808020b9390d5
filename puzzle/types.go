// Package puzzle defines core types, constants, and sentinel errors
// for the sliding-tile domain.
package puzzle

import (
	"errors"

	"github.com/katalvlaran/tilesearch/core"
)

// Sentinel errors for puzzle operations.
var (
	// ErrBoardSize indicates rows or cols below the 2×2 minimum.
	ErrBoardSize = errors.New("puzzle: rows and cols must both be at least 2")

	// ErrBoardTooLarge indicates rows*cols exceeds MaxCells.
	ErrBoardTooLarge = errors.New("puzzle: board exceeds 256 cells")

	// ErrStateLength indicates a tile count that does not match rows*cols.
	ErrStateLength = errors.New("puzzle: tile count does not match board size")

	// ErrNotPermutation indicates tiles that are not a permutation of 0..size-1.
	ErrNotPermutation = errors.New("puzzle: tiles must be a permutation of 0..size-1")
)

const (
	// Blank is the byte that marks the empty cell inside a core.State.
	Blank byte = 0x00

	// MoveCost is the uniform cost of sliding one tile into the blank.
	MoveCost = 1

	// MaxCells caps rows*cols so that every tile label fits in one byte
	// of a core.State.
	MaxCells = 256
)

// Board is an immutable description of an R×C sliding-tile puzzle.
// Construct it with NewBoard, NewSquare or New8; the constructors precompute
// blank adjacency and per-tile goal positions once, so the per-state methods
// stay branch-light.
type Board struct {
	// Rows and Cols are the grid dimensions, both at least 2.
	Rows, Cols int

	size int        // rows*cols
	goal core.State // (1, 2, ..., size-1, blank) packed as bytes

	// adj[i] lists the cells the blank at cell i may swap with,
	// in up, down, left, right order.
	adj [][]int

	// goalRow[t] / goalCol[t] locate tile t (1..size-1) on the solved board.
	goalRow []int
	goalCol []int
}
