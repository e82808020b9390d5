package puzzle_test

import (
	"testing"

	"github.com/katalvlaran/tilesearch/puzzle"
)

// BenchmarkNeighbors measures successor generation on a 4×4 board.
func BenchmarkNeighbors(b *testing.B) {
	board, _ := puzzle.NewBoard(4, 4)
	s := board.Scramble(40, 1)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = board.Neighbors(s)
	}
}

// BenchmarkManhattan measures the cheap heuristic on a 4×4 board.
func BenchmarkManhattan(b *testing.B) {
	board, _ := puzzle.NewBoard(4, 4)
	s := board.Scramble(40, 1)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = board.Manhattan(s)
	}
}

// BenchmarkLinearConflict measures the stronger heuristic on a 4×4 board.
func BenchmarkLinearConflict(b *testing.B) {
	board, _ := puzzle.NewBoard(4, 4)
	s := board.Scramble(40, 1)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = board.LinearConflict(s)
	}
}

// BenchmarkScramble measures instance generation at depth 50.
func BenchmarkScramble(b *testing.B) {
	board, _ := puzzle.NewBoard(4, 4)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = board.Scramble(50, int64(i))
	}
}
