package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/tilesearch/astar"
	"github.com/katalvlaran/tilesearch/bfs"
	"github.com/katalvlaran/tilesearch/core"
	"github.com/katalvlaran/tilesearch/dfs"
	"github.com/katalvlaran/tilesearch/experiment"
	"github.com/katalvlaran/tilesearch/idastar"
	"github.com/katalvlaran/tilesearch/puzzle"
)

// runSolve scrambles one instance, runs the chosen engine on it, and prints
// the run record. Counters that do not apply to the engine are omitted.
func runSolve(cmd *cobra.Command, _ []string) error {
	b, err := puzzle.NewBoard(solveRows, solveCols)
	if err != nil {
		return err
	}

	start := b.Scramble(solveDepth, solveSeed)
	instance := fmt.Sprintf("%dx%d depth=%d seed=%d", solveRows, solveCols, solveDepth, solveSeed)
	if solveTiles != "" {
		if start, err = parseTiles(b, solveTiles); err != nil {
			return err
		}
		instance = fmt.Sprintf("%dx%d tiles=%s", solveRows, solveCols, solveTiles)
	}

	res, err := searchOnce(cmd.Context(), b, start)
	if err != nil {
		return err
	}

	fmt.Printf("Algorithm:    %s\n", res.Algorithm)
	fmt.Printf("Instance:     %s\n", instance)
	fmt.Printf("Termination:  %s\n", res.Termination)
	if res.Solved() {
		fmt.Printf("Cost:         %d\n", res.Cost)
	}
	fmt.Printf("Expanded:     %d\n", res.Expanded)
	fmt.Printf("Generated:    %d\n", res.Generated)
	fmt.Printf("Duplicates:   %d\n", res.Duplicates)
	switch res.Algorithm {
	case astar.Algorithm:
		fmt.Printf("Peak open:    %d\n", res.PeakOpen)
		fmt.Printf("Peak closed:  %d\n", res.PeakClosed)
	case idastar.Algorithm, idastar.AlgorithmBPMX:
		fmt.Printf("Recursion:    %d\n", res.PeakRecursion)
		fmt.Printf("Final bound:  %d\n", res.BoundFinal)
	case dfs.Algorithm:
		fmt.Printf("Recursion:    %d\n", res.PeakRecursion)
		if res.BoundFinal > 0 {
			fmt.Printf("Depth bound:  %d\n", res.BoundFinal)
		}
	}
	fmt.Printf("Elapsed:      %s\n", res.Elapsed)

	if solveShowPath {
		for i, s := range res.Path {
			fmt.Printf("\nstep %d\n%s", i, b.Render(s))
		}
	}
	return nil
}

// parseTiles converts a comma-separated label list into a validated state.
func parseTiles(b *puzzle.Board, raw string) (core.State, error) {
	parts := strings.Split(raw, ",")
	tiles := make([]int, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return "", fmt.Errorf("bad tile %q in --tiles", p)
		}
		tiles = append(tiles, v)
	}
	return b.StateOf(tiles...)
}

// searchOnce dispatches the flag-selected engine with the flag-built options.
func searchOnce(ctx context.Context, b *puzzle.Board, start core.State) (*core.Result, error) {
	limit := time.Duration(solveTimeout * float64(time.Second))

	switch solveAlgorithm {
	case experiment.AlgorithmAStar:
		h, err := experiment.HeuristicFor(b, solveHeuristic)
		if err != nil {
			return nil, err
		}
		tb, err := astar.ParseTieBreak(solveTieBreak)
		if err != nil {
			return nil, err
		}
		opts := []astar.Option{astar.WithContext(ctx), astar.WithTimeLimit(limit), astar.WithTieBreak(tb)}
		if solveShowPath {
			opts = append(opts, astar.WithReturnPath())
		}
		return astar.Search(start, b.Goal(), h, b.Neighbors, opts...)

	case experiment.AlgorithmIDAStar:
		h, err := experiment.HeuristicFor(b, solveHeuristic)
		if err != nil {
			return nil, err
		}
		opts := []idastar.Option{idastar.WithContext(ctx), idastar.WithTimeLimit(limit)}
		if solveBPMX {
			opts = append(opts, idastar.WithBPMX())
		}
		if solveShowPath {
			opts = append(opts, idastar.WithReturnPath())
		}
		return idastar.Search(start, b.Goal(), h, b.Neighbors, opts...)

	case experiment.AlgorithmBFS:
		opts := []bfs.Option{bfs.WithContext(ctx), bfs.WithTimeLimit(limit)}
		if solveShowPath {
			opts = append(opts, bfs.WithReturnPath())
		}
		return bfs.Search(start, b.Goal(), b.Neighbors, opts...)

	case experiment.AlgorithmDFS:
		opts := []dfs.Option{dfs.WithContext(ctx), dfs.WithTimeLimit(limit), dfs.WithMaxDepth(solveDFSBound)}
		if solveShowPath {
			opts = append(opts, dfs.WithReturnPath())
		}
		return dfs.Search(start, b.Goal(), b.Neighbors, opts...)

	default:
		return nil, fmt.Errorf("unknown algorithm %q: want astar, idastar, bfs or dfs", solveAlgorithm)
	}
}
