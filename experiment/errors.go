// SPDX-License-Identifier: MIT
// Package: tilesearch/experiment
//
// errors.go - sentinel errors for the experiment pipeline.
//
// Error policy (strict):
//   • Only package-level sentinels are exposed; branch with errors.Is.
//   • Sentinels carry no parameters; call sites attach context via %w.
//   • Search outcomes (ok/timeout/exhausted) are values in Row.Termination,
//     never errors; the sentinels below cover pipeline failures only.

package experiment

import "errors"

// ErrGenerationBudget indicates that Generate exceeded its retry budget at
// one depth without collecting enough solvable instances. Random walks from
// the goal are solvable by construction, so hitting the budget means the
// solvability predicate and the scramble disagree.
// Usage: if errors.Is(err, ErrGenerationBudget) { /* check domain wiring */ }.
var ErrGenerationBudget = errors.New("experiment: instance generation budget exceeded")

// ErrBadConfig indicates an invalid sweep configuration (board dimensions,
// depths, counts, names, limits). The wrapped message names the field.
// Usage: if errors.Is(err, ErrBadConfig) { /* fix the config file/flags */ }.
var ErrBadConfig = errors.New("experiment: invalid configuration")

// ErrUnknownAlgorithm indicates an algorithm name outside the known set
// (astar, idastar, bfs, dfs).
// Usage: if errors.Is(err, ErrUnknownAlgorithm) { /* fix algorithms list */ }.
var ErrUnknownAlgorithm = errors.New("experiment: unknown algorithm name")

// ErrUnknownHeuristic indicates a heuristic name outside the known set
// (manhattan, linear_conflict).
var ErrUnknownHeuristic = errors.New("experiment: unknown heuristic name")

// ErrUnknownMetric indicates a metric name Summarize does not aggregate
// (known: expanded, generated, duplicates, time_sec).
var ErrUnknownMetric = errors.New("experiment: unknown metric name")

// ErrBadCSV indicates a results file that does not match the expected
// header or carries unparsable cells. The wrapped message names the line.
// Usage: if errors.Is(err, ErrBadCSV) { /* regenerate or fix the file */ }.
var ErrBadCSV = errors.New("experiment: malformed results file")
