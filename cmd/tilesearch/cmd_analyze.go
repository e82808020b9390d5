package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/tilesearch/experiment"
)

// runAnalyze aggregates a results CSV and prints one table line per
// (algorithm, depth) group, mean and sample standard deviation per metric.
func runAnalyze(_ *cobra.Command, _ []string) error {
	rows, err := readRows(analyzeIn)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "algorithm\tdepth\tn\texpanded\tgenerated\tduplicates\ttime_sec")
	for _, s := range experiment.Summarize(rows) {
		fmt.Fprintf(tw, "%s\t%d\t%d\t%.1f±%.1f\t%.1f±%.1f\t%.1f±%.1f\t%.4f±%.4f\n",
			s.Algorithm, s.Depth, s.N,
			s.Expanded.Mean, s.Expanded.Std,
			s.Generated.Mean, s.Generated.Std,
			s.Duplicates.Mean, s.Duplicates.Std,
			s.TimeSec.Mean, s.TimeSec.Std)
	}
	return tw.Flush()
}

// runPlot charts one metric of a results CSV as a PNG.
func runPlot(_ *cobra.Command, _ []string) error {
	rows, err := readRows(plotIn)
	if err != nil {
		return err
	}
	if err := experiment.PlotMetric(experiment.Summarize(rows), plotMetric, plotOut); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", plotOut)
	return nil
}

// readRows opens and parses one results CSV.
func readRows(path string) ([]experiment.Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return experiment.ReadCSV(f)
}
