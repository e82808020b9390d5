// Package experiment turns the search engines into measurable science: it
// generates reproducible puzzle instances, sweeps algorithms over them in
// parallel batches, and aggregates the per-run instrumentation records into
// statistics and plots.
//
// The package offers the following key components:
//
//   - Instance generation:
//     – Instance:   one puzzle fixture (seed, scramble depth, start state).
//     – Generate:   seeded, depth-grouped instance lists with a hard retry
//     budget (ErrGenerationBudget signals broken solvability logic, the
//     only fatal condition in the pipeline).
//   - Sweep orchestration:
//     – Config:     YAML-tagged sweep description (board, depths, algorithms,
//     heuristic, tie-break, BPMX, depth bound, timeout, workers).
//     – Sweep:      runs every (instance × algorithm) pair; each search is
//     single-threaded while instances run batch-parallel under an
//     errgroup worker limit; row order is deterministic.
//   - Result records:
//     – Row:        one flattened run record with a unique run ID.
//     – WriteCSV / ReadCSV: the on-disk exchange format; cells that do not
//     apply to an algorithm stay empty.
//   - Aggregation:
//     – Summarize:  per (algorithm, depth) mean / SEM / median / min / max
//     for the expanded, generated, duplicates and time metrics.
//     – PlotMetric: mean-vs-depth PNG charts with SEM error bars.
//
// Guarantees:
//
//   - Reproducibility: an Instance regenerates from (depth, seed) alone;
//     sweeps over equal configs produce rows in identical order.
//   - Library packages stay silent; only this layer and the CLI log, through
//     logrus at Info/Debug levels.
//   - No search outcome is an error: timeouts and exhausted runs land in
//     rows like any other, with their termination recorded.
//
// See individual function documentation for contracts and complexity notes.
package experiment
