// SPDX-License-Identifier: MIT
// Package: tilesearch/experiment
//
// plot.go - mean-vs-depth charts of aggregated run records.
//
// Chart policy:
//   • One PNG per metric: x = scramble depth, y = group mean, error bars
//     span ± SEM; one line-and-points series per algorithm.
//   • Series order and colors are deterministic (sorted algorithm names,
//     palette by series index), so regenerated charts are stable.

package experiment

import (
	"fmt"
	"sort"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// Chart dimensions.
const (
	plotWidth  = 8 * vg.Inch
	plotHeight = 6 * vg.Inch
)

// errorPoints feeds plotter.NewYErrorBars: positions plus spreads.
type errorPoints struct {
	plotter.XYs
	plotter.YErrors
}

// PlotMetric renders the named metric from the summaries into a PNG at
// path. Summaries usually come straight from Summarize; groups with no
// data for the metric are skipped.
func PlotMetric(summaries []Summary, metric, path string) error {
	if _, err := (Summary{}).Metric(metric); err != nil {
		return err
	}

	// Bucket summaries per algorithm, keeping depth order within a series.
	series := make(map[string][]Summary)
	for _, s := range summaries {
		series[s.Algorithm] = append(series[s.Algorithm], s)
	}
	names := make([]string, 0, len(series))
	for name := range series {
		names = append(names, name)
	}
	sort.Strings(names)

	p := plot.New()
	p.Title.Text = fmt.Sprintf("%s vs depth (mean ± SEM)", metric)
	p.X.Label.Text = "depth"
	p.Y.Label.Text = metric
	p.Add(plotter.NewGrid())
	p.Legend.Top = true

	for i, name := range names {
		group := series[name]
		sort.Slice(group, func(a, b int) bool { return group[a].Depth < group[b].Depth })

		pts := make(plotter.XYs, 0, len(group))
		spreads := make(plotter.YErrors, 0, len(group))
		for _, s := range group {
			ms, err := s.Metric(metric)
			if err != nil {
				return err
			}
			if ms.N == 0 {
				continue
			}
			pts = append(pts, plotter.XY{X: float64(s.Depth), Y: ms.Mean})
			spreads = append(spreads, struct{ Low, High float64 }{ms.SEM, ms.SEM})
		}
		if len(pts) == 0 {
			continue
		}

		line, points, err := plotter.NewLinePoints(pts)
		if err != nil {
			return fmt.Errorf("experiment: series %q: %w", name, err)
		}
		line.Color = plotutil.Color(i)
		points.GlyphStyle.Color = plotutil.Color(i)

		bars, err := plotter.NewYErrorBars(errorPoints{XYs: pts, YErrors: spreads})
		if err != nil {
			return fmt.Errorf("experiment: series %q error bars: %w", name, err)
		}
		bars.LineStyle.Color = plotutil.Color(i)

		p.Add(line, points, bars)
		p.Legend.Add(name, line, points)
	}

	if err := p.Save(plotWidth, plotHeight, path); err != nil {
		return fmt.Errorf("experiment: save plot: %w", err)
	}
	log.WithField("path", path).Info("plot saved")
	return nil
}
