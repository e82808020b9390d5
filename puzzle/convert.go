// Package puzzle - converters between []int tile layouts, packed
// core.State values, and printable grids.
package puzzle

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/tilesearch/core"
)

// StateOf packs a row-major tile layout into a core.State.
// Returns ErrStateLength when the count differs from rows*cols and
// ErrNotPermutation unless tiles is a permutation of 0..size-1
// (0 marks the blank).
// Complexity: O(size).
func (b *Board) StateOf(tiles ...int) (core.State, error) {
	if len(tiles) != b.size {
		return "", ErrStateLength
	}

	seen := make([]bool, b.size)
	buf := make([]byte, b.size)
	for i, t := range tiles {
		if t < 0 || t >= b.size || seen[t] {
			return "", ErrNotPermutation
		}
		seen[t] = true
		buf[i] = byte(t)
	}

	return core.State(buf), nil
}

// Tiles unpacks s into a row-major []int layout (0 = blank), or nil when
// s has the wrong length.
func (b *Board) Tiles(s core.State) []int {
	if len(s) != b.size {
		return nil
	}
	tiles := make([]int, b.size)
	for i := 0; i < len(s); i++ {
		tiles[i] = int(s[i])
	}
	return tiles
}

// Render draws s as an ASCII grid with box borders, the blank as a dot:
//
//	+--+--+--+
//	| 1| 2| 3|
//	+--+--+--+
//	| 4| .| 5|
//	+--+--+--+
//	| 7| 8| 6|
//	+--+--+--+
//
// Cell width follows the widest label. Malformed states render as "<invalid>".
func (b *Board) Render(s core.State) string {
	if len(s) != b.size {
		return "<invalid>"
	}

	width := len(fmt.Sprintf("%d", b.size-1))
	var sb strings.Builder

	line := "+" + strings.Repeat(strings.Repeat("-", width+1)+"+", b.Cols) + "\n"
	for r := 0; r < b.Rows; r++ {
		sb.WriteString(line)
		for c := 0; c < b.Cols; c++ {
			t := int(s[r*b.Cols+c])
			if t == 0 {
				sb.WriteString(fmt.Sprintf("|%*s", width+1, "."))
			} else {
				sb.WriteString(fmt.Sprintf("|%*d", width+1, t))
			}
		}
		sb.WriteString("|\n")
	}
	sb.WriteString(line)

	return sb.String()
}
