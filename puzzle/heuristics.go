// Package puzzle - admissible heuristics over tile states.
//
// Both heuristics are consistent (they satisfy the triangle inequality along
// unit-cost slides), which is what the best-first optimality proof and the
// pathmax propagation in the iterative-deepening engine rely on.
package puzzle

import "github.com/katalvlaran/tilesearch/core"

// Manhattan returns the sum over all non-blank tiles of the grid distance
// between the tile's cell and its goal cell. Manhattan satisfies
// core.Heuristic; pass the bound method value (board.Manhattan) to an
// engine. Malformed states score 0.
// Complexity: O(size).
func (b *Board) Manhattan(s core.State) int {
	if len(s) != b.size {
		return 0
	}

	dist := 0
	for idx := 0; idx < len(s); idx++ {
		t := int(s[idx])
		if t == 0 || t >= b.size {
			continue
		}
		r, c := idx/b.Cols, idx%b.Cols
		dist += intAbs(r-b.goalRow[t]) + intAbs(c-b.goalCol[t])
	}

	return dist
}

// LinearConflict returns Manhattan plus 2 per pair of tiles that sit on
// their shared goal row (or column) in inverted order. Each such pair forces
// one of the two tiles off the line and back, so the penalty keeps the bound
// admissible while dominating plain Manhattan. Malformed states score 0.
// Complexity: O(size × max(rows, cols)).
func (b *Board) LinearConflict(s core.State) int {
	if len(s) != b.size {
		return 0
	}

	h := b.Manhattan(s)

	// Row conflicts: tiles already on their goal row, scanned left to
	// right; a pair conflicts when their goal columns are inverted.
	for r := 0; r < b.Rows; r++ {
		cols := make([]int, 0, b.Cols) // goal columns of in-row tiles, in scan order
		for c := 0; c < b.Cols; c++ {
			t := int(s[r*b.Cols+c])
			if t == 0 || t >= b.size || b.goalRow[t] != r {
				continue
			}
			cols = append(cols, b.goalCol[t])
		}
		h += 2 * inversions(cols)
	}

	// Column conflicts, symmetric.
	for c := 0; c < b.Cols; c++ {
		rows := make([]int, 0, b.Rows)
		for r := 0; r < b.Rows; r++ {
			t := int(s[r*b.Cols+c])
			if t == 0 || t >= b.size || b.goalCol[t] != c {
				continue
			}
			rows = append(rows, b.goalRow[t])
		}
		h += 2 * inversions(rows)
	}

	return h
}

// inversions counts pairs (i, j), i < j, with xs[i] > xs[j].
func inversions(xs []int) int {
	n := 0
	for i := 0; i < len(xs); i++ {
		for j := i + 1; j < len(xs); j++ {
			if xs[i] > xs[j] {
				n++
			}
		}
	}
	return n
}

// intAbs returns |x| without the float round-trip of math.Abs.
func intAbs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
