package astar_test

import (
	"fmt"

	"github.com/katalvlaran/tilesearch/astar"
	"github.com/katalvlaran/tilesearch/puzzle"
)

// ExampleSearch solves a hand-built 3×3 instance two slides from the goal
// and prints the result record fields a caller usually branches on.
func ExampleSearch() {
	b := puzzle.New8()
	start, _ := b.StateOf(
		1, 2, 3,
		4, 5, 6,
		0, 7, 8,
	)

	res, err := astar.Search(start, b.Goal(), b.Manhattan, b.Neighbors, astar.WithReturnPath())
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("termination:", res.Termination)
	fmt.Println("cost:", res.Cost)
	fmt.Println("states on path:", len(res.Path))
	// Output:
	// termination: ok
	// cost: 2
	// states on path: 3
}

// ExampleSearch_tieBreak shows that tie-break policies change effort, not
// the cost of the solution they find.
func ExampleSearch_tieBreak() {
	b := puzzle.New8()
	start := b.Scramble(12, 4)

	lifo, _ := astar.Search(start, b.Goal(), b.Manhattan, b.Neighbors, astar.WithTieBreak(astar.TieBreakLIFO))
	fifo, _ := astar.Search(start, b.Goal(), b.Manhattan, b.Neighbors, astar.WithTieBreak(astar.TieBreakFIFO))

	fmt.Println("same cost:", lifo.Cost == fifo.Cost)
	// Output:
	// same cost: true
}
