// Package tilesearch is a measurement bench for sliding-tile search:
// scramble a board, solve it with instrumented engines, and benchmark the
// lot from one YAML config.
//
// 🚀 What is tilesearch?
//
//	A compact, reproducible search lab that brings together:
//		• Boards: any rows×cols sliding-tile domain up to 256 cells
//		• Heuristics: Manhattan distance, Manhattan + linear conflict
//		• Informed engines: A* with four tie-break policies, IDA* with optional BPMX
//		• Blind baselines: BFS, depth-bounded DFS
//		• Benchmarking: deterministic sweeps, CSV records, statistics & PNG charts
//
// ✨ Why choose tilesearch?
//
//   - Uniform records – all four engines report the same counter set
//   - Reproducible – an instance is (depth, seed); every CSV row rebuilds its fixture
//   - Honest baselines – blind engines share the informed engines' option surface
//   - Scales sideways – sweeps fan out across workers while each run stays single-threaded
//
// Under the hood, everything is organized under these subpackages:
//
//	core/       — State, Step, Heuristic and the shared Result record
//	puzzle/     — boards, neighbors, parity, scrambles, rendering
//	astar/      — best-first search with tie-break policies
//	idastar/    — iterative deepening with optional BPMX propagation
//	bfs/ —
//	dfs/ —
//	experiment/ — instance generation, sweeps, CSV, stats, plots
//	cmd/        — the tilesearch CLI: solve, sweep, analyze, plot
//
// Quick ASCII example:
//
//	+--+--+--+
//	| 1| 2| 3|
//	| 4| .| 5|
//	| 7| 8| 6|
//	+--+--+--+
//
//	two slides from solved: 5 moves left, then 6 moves up.
//
// Dive into examples/ for runnable scenarios, from a single rescue to a
// full benchmark sweep.
//
//	go get github.com/katalvlaran/tilesearch
package tilesearch
