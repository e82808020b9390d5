// SPDX-License-Identifier: MIT
// Package: tilesearch/experiment
//
// sweep.go - batch orchestration of searches over generated instances.
//
// Concurrency contract (strict):
//   • Every single search call is single-threaded; parallelism exists only
//     ACROSS independent runs, under an errgroup worker limit.
//   • Rows are written into a preallocated slice by index, so output order
//     is a pure function of the Config, never of goroutine scheduling.
//   • Context cancellation cascades into every running search, which then
//     reports TerminationTimeout like any other budget abort.

package experiment

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/tilesearch/astar"
	"github.com/katalvlaran/tilesearch/bfs"
	"github.com/katalvlaran/tilesearch/core"
	"github.com/katalvlaran/tilesearch/dfs"
	"github.com/katalvlaran/tilesearch/idastar"
	"github.com/katalvlaran/tilesearch/puzzle"
)

// log is the shared logger; the CLI tunes its level and format. Library
// packages below this layer never log.
var log = logrus.StandardLogger()

// Sweep validates cfg, generates its instances, and runs every configured
// algorithm on every instance (plus a parity-flipped variant per instance
// when IncludeUnsolvable is set). Rows come back grouped per instance in
// Config order: all algorithms on the solvable state, then all algorithms
// on the unsolvable variant.
//
// The error is non-nil only for pipeline failures (bad config, generation
// budget); search outcomes land in rows regardless of how they terminated.
func Sweep(ctx context.Context, cfg Config) ([]Row, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	b, err := puzzle.NewBoard(cfg.Rows, cfg.Cols)
	if err != nil {
		return nil, fmt.Errorf("%w: board %dx%d: %v", ErrBadConfig, cfg.Rows, cfg.Cols, err)
	}
	h, err := HeuristicFor(b, cfg.Heuristic)
	if err != nil {
		return nil, err
	}
	tb, err := astar.ParseTieBreak(cfg.TieBreak)
	if err != nil {
		return nil, fmt.Errorf("%w: tie_break %q", ErrBadConfig, cfg.TieBreak)
	}

	insts, err := Generate(b, cfg.Depths, cfg.PerDepth, cfg.StartSeed)
	if err != nil {
		return nil, err
	}

	variants := 1
	if cfg.IncludeUnsolvable {
		variants = 2
	}
	perInstance := len(cfg.Algorithms) * variants
	rows := make([]Row, len(insts)*perInstance)

	workers := cfg.workers()
	log.WithFields(logrus.Fields{
		"board":      fmt.Sprintf("%dx%d", cfg.Rows, cfg.Cols),
		"instances":  len(insts),
		"algorithms": cfg.Algorithms,
		"workers":    workers,
	}).Info("sweep started")
	t0 := time.Now()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, inst := range insts {
		inst := inst // per-iteration copy; the closure below outlives the iteration (go1.21 loop semantics)
		for v := 0; v < variants; v++ {
			start, solvable := inst.State, true
			if v == 1 {
				start, solvable = puzzle.UnsolvableVariant(inst.State), false
			}
			for a, name := range cfg.Algorithms {
				name := name // per-iteration copy, same reason as inst above
				idx := i*perInstance + v*len(cfg.Algorithms) + a
				g.Go(func() error {
					res, err := runSearch(gctx, cfg, b, h, tb, name, start)
					if err != nil {
						return err
					}
					rows[idx] = rowFrom(res, cfg, inst, solvable)
					log.WithFields(logrus.Fields{
						"algorithm":   res.Algorithm,
						"depth":       inst.Depth,
						"seed":        inst.Seed,
						"termination": res.Termination,
					}).Debug("run finished")
					return nil
				})
			}
		}
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	log.WithFields(logrus.Fields{
		"rows":    len(rows),
		"elapsed": time.Since(t0).Round(time.Millisecond),
	}).Info("sweep finished")
	return rows, nil
}

// runSearch dispatches one search call with the options cfg prescribes.
func runSearch(ctx context.Context, cfg Config, b *puzzle.Board, h core.Heuristic, tb astar.TieBreak, algo string, start core.State) (*core.Result, error) {
	limit := cfg.timeLimit()
	switch algo {
	case AlgorithmAStar:
		return astar.Search(start, b.Goal(), h, b.Neighbors,
			astar.WithContext(ctx), astar.WithTimeLimit(limit), astar.WithTieBreak(tb))
	case AlgorithmIDAStar:
		opts := []idastar.Option{idastar.WithContext(ctx), idastar.WithTimeLimit(limit)}
		if cfg.BPMX {
			opts = append(opts, idastar.WithBPMX())
		}
		return idastar.Search(start, b.Goal(), h, b.Neighbors, opts...)
	case AlgorithmBFS:
		return bfs.Search(start, b.Goal(), b.Neighbors,
			bfs.WithContext(ctx), bfs.WithTimeLimit(limit))
	case AlgorithmDFS:
		return dfs.Search(start, b.Goal(), b.Neighbors,
			dfs.WithContext(ctx), dfs.WithTimeLimit(limit), dfs.WithMaxDepth(cfg.DFSMaxDepth))
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, algo)
	}
}

// rowFrom flattens one result into a Row. The tie-break column is filled
// only for astar rows, matching which engine the policy steered.
func rowFrom(res *core.Result, cfg Config, inst Instance, solvable bool) Row {
	row := Row{
		RunID:         uuid.NewString(),
		Algorithm:     res.Algorithm,
		Heuristic:     cfg.Heuristic,
		Rows:          cfg.Rows,
		Cols:          cfg.Cols,
		Depth:         inst.Depth,
		Seed:          inst.Seed,
		Expanded:      res.Expanded,
		Generated:     res.Generated,
		Duplicates:    res.Duplicates,
		Cost:          res.Cost,
		TimeSec:       res.Elapsed.Seconds(),
		PeakOpen:      res.PeakOpen,
		PeakClosed:    res.PeakClosed,
		PeakRecursion: res.PeakRecursion,
		BoundFinal:    res.BoundFinal,
		Termination:   res.Termination.String(),
		Solvable:      solvable,
	}
	if res.Algorithm == astar.Algorithm {
		row.TieBreak = cfg.TieBreak
	}
	return row
}
