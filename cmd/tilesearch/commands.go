package main

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/tilesearch/experiment"
)

var (
	verbose bool

	// solve flags
	solveRows      int
	solveCols      int
	solveDepth     int
	solveSeed      int64
	solveTiles     string
	solveAlgorithm string
	solveHeuristic string
	solveTieBreak  string
	solveBPMX      bool
	solveDFSBound  int
	solveTimeout   float64
	solveShowPath  bool

	// sweep flags
	sweepConfig string
	sweepOut    string

	// analyze / plot flags
	analyzeIn  string
	plotIn     string
	plotMetric string
	plotOut    string

	rootCmd = &cobra.Command{
		Use:           "tilesearch",
		Short:         "Sliding-tile search engines and their benchmark harness",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(*cobra.Command, []string) {
			if verbose {
				logrus.SetLevel(logrus.DebugLevel)
			}
		},
	}

	solveCmd = &cobra.Command{
		Use:   "solve",
		Short: "Solve one scrambled instance and print its run record",
		RunE:  runSolve, // Defined in cmd_solve.go
	}

	sweepCmd = &cobra.Command{
		Use:   "sweep",
		Short: "Run the configured benchmark grid and write its rows as CSV",
		RunE:  runSweep, // Defined in cmd_sweep.go
	}

	analyzeCmd = &cobra.Command{
		Use:   "analyze",
		Short: "Aggregate a results CSV into per-algorithm, per-depth statistics",
		RunE:  runAnalyze, // Defined in cmd_analyze.go
	}

	plotCmd = &cobra.Command{
		Use:   "plot",
		Short: "Chart one metric of a results CSV as a PNG",
		RunE:  runPlot, // Defined in cmd_analyze.go
	}
)

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(solveCmd)
	solveCmd.Flags().IntVar(&solveRows, "rows", 3, "board rows")
	solveCmd.Flags().IntVar(&solveCols, "cols", 3, "board columns")
	solveCmd.Flags().IntVar(&solveDepth, "depth", 12, "scramble walk length")
	solveCmd.Flags().Int64Var(&solveSeed, "seed", 0, "scramble seed")
	solveCmd.Flags().StringVar(&solveTiles, "tiles", "",
		"explicit start state as comma-separated row-major labels, 0 = blank; overrides depth/seed")
	solveCmd.Flags().StringVar(&solveAlgorithm, "algorithm", experiment.AlgorithmAStar,
		"engine to run: astar, idastar, bfs or dfs")
	solveCmd.Flags().StringVar(&solveHeuristic, "heuristic", experiment.HeuristicManhattan,
		"heuristic for the informed engines: manhattan or linear_conflict")
	solveCmd.Flags().StringVar(&solveTieBreak, "tie-break", "h", "astar f-tie policy: h, g, fifo or lifo")
	solveCmd.Flags().BoolVar(&solveBPMX, "bpmx", false, "enable pathmax propagation (idastar only)")
	solveCmd.Flags().IntVar(&solveDFSBound, "dfs-max-depth", 0, "dfs depth bound, 0 = unlimited")
	solveCmd.Flags().Float64Var(&solveTimeout, "timeout", 0, "wall-clock budget in seconds, 0 = none")
	solveCmd.Flags().BoolVar(&solveShowPath, "show-path", false, "render every state on the solution path")

	rootCmd.AddCommand(sweepCmd)
	sweepCmd.Flags().StringVar(&sweepConfig, "config", "", "YAML sweep config; omitted = built-in defaults")
	sweepCmd.Flags().StringVarP(&sweepOut, "out", "o", "results.csv", "output CSV path, - for stdout")

	rootCmd.AddCommand(analyzeCmd)
	analyzeCmd.Flags().StringVarP(&analyzeIn, "in", "i", "results.csv", "results CSV to aggregate")

	rootCmd.AddCommand(plotCmd)
	plotCmd.Flags().StringVarP(&plotIn, "in", "i", "results.csv", "results CSV to chart")
	plotCmd.Flags().StringVar(&plotMetric, "metric", experiment.MetricExpanded,
		"metric to chart: expanded, generated, duplicates or time_sec")
	plotCmd.Flags().StringVarP(&plotOut, "out", "o", "plot.png", "output PNG path")
}
