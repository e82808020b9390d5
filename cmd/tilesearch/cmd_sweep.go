package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/tilesearch/experiment"
)

// runSweep loads the sweep config, runs the full grid, and writes the rows
// as CSV to the --out path (or stdout when --out is "-").
func runSweep(cmd *cobra.Command, _ []string) error {
	cfg := experiment.DefaultConfig()
	if sweepConfig != "" {
		var err error
		if cfg, err = experiment.LoadConfig(sweepConfig); err != nil {
			return err
		}
	}

	rows, err := experiment.Sweep(cmd.Context(), cfg)
	if err != nil {
		return err
	}

	if sweepOut == "-" {
		return experiment.WriteCSV(os.Stdout, rows)
	}

	f, err := os.Create(sweepOut)
	if err != nil {
		return fmt.Errorf("create %s: %w", sweepOut, err)
	}
	if err := experiment.WriteCSV(f, rows); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	fmt.Printf("wrote %d rows to %s\n", len(rows), sweepOut)
	return nil
}
