// SPDX-License-Identifier: MIT
// Package: tilesearch/experiment
//
// stats.go - per (algorithm, depth) aggregation of run records.
//
// Aggregation policy:
//   • Groups are keyed by (algorithm, depth); rows of different heuristics
//     or solvability mix into the group they land in, exactly as the rows
//     were given (callers filter first when they want a cleaner cut).
//   • Per metric: mean, sample standard deviation, SEM = σ/√n, median,
//     min, max. Single-row groups report zero spread.

package experiment

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Metric names accepted by Summary.Metric and PlotMetric.
const (
	MetricExpanded   = "expanded"
	MetricGenerated  = "generated"
	MetricDuplicates = "duplicates"
	MetricTime       = "time_sec"
)

// Metrics lists every aggregated metric, in reporting order.
var Metrics = []string{MetricExpanded, MetricGenerated, MetricDuplicates, MetricTime}

// MetricStats is the spread of one metric within one group.
type MetricStats struct {
	N      int
	Mean   float64
	Std    float64
	SEM    float64
	Median float64
	Min    float64
	Max    float64
}

// Summary aggregates one (algorithm, depth) group.
type Summary struct {
	Algorithm string
	Depth     int
	N         int

	Expanded   MetricStats
	Generated  MetricStats
	Duplicates MetricStats
	TimeSec    MetricStats
}

// Metric returns the named metric's stats, or ErrUnknownMetric.
func (s Summary) Metric(name string) (MetricStats, error) {
	switch name {
	case MetricExpanded:
		return s.Expanded, nil
	case MetricGenerated:
		return s.Generated, nil
	case MetricDuplicates:
		return s.Duplicates, nil
	case MetricTime:
		return s.TimeSec, nil
	default:
		return MetricStats{}, fmt.Errorf("%w: %q", ErrUnknownMetric, name)
	}
}

// groupKey identifies one aggregation bucket.
type groupKey struct {
	algorithm string
	depth     int
}

// Summarize groups rows by (algorithm, depth) and aggregates each metric.
// The result is sorted by algorithm, then depth, so output is deterministic
// for equal input regardless of map iteration order.
func Summarize(rows []Row) []Summary {
	type bucket struct {
		expanded, generated, duplicates, timeSec []float64
	}
	groups := make(map[groupKey]*bucket)
	for _, r := range rows {
		k := groupKey{algorithm: r.Algorithm, depth: r.Depth}
		b := groups[k]
		if b == nil {
			b = &bucket{}
			groups[k] = b
		}
		b.expanded = append(b.expanded, float64(r.Expanded))
		b.generated = append(b.generated, float64(r.Generated))
		b.duplicates = append(b.duplicates, float64(r.Duplicates))
		b.timeSec = append(b.timeSec, r.TimeSec)
	}

	keys := make([]groupKey, 0, len(groups))
	for k := range groups {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].algorithm != keys[j].algorithm {
			return keys[i].algorithm < keys[j].algorithm
		}
		return keys[i].depth < keys[j].depth
	})

	out := make([]Summary, 0, len(keys))
	for _, k := range keys {
		b := groups[k]
		out = append(out, Summary{
			Algorithm:  k.algorithm,
			Depth:      k.depth,
			N:          len(b.expanded),
			Expanded:   computeStats(b.expanded),
			Generated:  computeStats(b.generated),
			Duplicates: computeStats(b.duplicates),
			TimeSec:    computeStats(b.timeSec),
		})
	}
	return out
}

// computeStats aggregates one metric slice. The slice is sorted in place.
func computeStats(vals []float64) MetricStats {
	if len(vals) == 0 {
		return MetricStats{}
	}
	sort.Float64s(vals)
	ms := MetricStats{
		N:      len(vals),
		Mean:   stat.Mean(vals, nil),
		Median: median(vals),
		Min:    vals[0],
		Max:    vals[len(vals)-1],
	}
	if len(vals) > 1 {
		ms.Std = stat.StdDev(vals, nil)
		ms.SEM = stat.StdErr(ms.Std, float64(len(vals)))
	}
	return ms
}

// median of a sorted slice; even lengths average the two middle values.
func median(sorted []float64) float64 {
	n := len(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}
