package experiment_test

import (
	"fmt"

	"github.com/katalvlaran/tilesearch/experiment"
	"github.com/katalvlaran/tilesearch/puzzle"
)

// ExampleGenerate builds a small reproducible fixture set: two instances at
// each of two depths, seeded consecutively from zero.
func ExampleGenerate() {
	b := puzzle.New8()

	insts, err := experiment.Generate(b, []int{4, 8}, 2, 0)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	first := insts[0]
	fmt.Println("instances:", len(insts))
	fmt.Printf("first: depth=%d seed=%d\n", first.Depth, first.Seed)
	fmt.Println("reproducible:", first.State == b.Scramble(first.Depth, first.Seed))
	// Output:
	// instances: 4
	// first: depth=4 seed=0
	// reproducible: true
}

// ExampleSummarize aggregates hand-built rows into per-(algorithm, depth)
// groups, the shape the plotting layer consumes.
func ExampleSummarize() {
	rows := []experiment.Row{
		{Algorithm: "A*", Depth: 6, Expanded: 10},
		{Algorithm: "A*", Depth: 6, Expanded: 14},
		{Algorithm: "A*", Depth: 10, Expanded: 120},
	}

	for _, s := range experiment.Summarize(rows) {
		fmt.Printf("%s depth=%d n=%d expanded mean=%.1f\n", s.Algorithm, s.Depth, s.N, s.Expanded.Mean)
	}
	// Output:
	// A* depth=6 n=2 expanded mean=12.0
	// A* depth=10 n=1 expanded mean=120.0
}
