// SPDX-License-Identifier: MIT
// Package: tilesearch/experiment
//
// config.go - sweep configuration, deterministic defaults, YAML loading.
//
// Design:
//   • Config is the single source of truth for one sweep; no globals.
//   • Defaults are deterministic and documented; LoadConfig merges a YAML
//     file over them, so a file only states what it changes.
//   • Validate is the one gate: Sweep refuses a Config that fails it.

package experiment

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/tilesearch/astar"
	"github.com/katalvlaran/tilesearch/core"
	"github.com/katalvlaran/tilesearch/puzzle"
)

// Canonical algorithm names accepted in Config.Algorithms.
const (
	AlgorithmAStar   = "astar"
	AlgorithmIDAStar = "idastar"
	AlgorithmBFS     = "bfs"
	AlgorithmDFS     = "dfs"
)

// Canonical heuristic names accepted in Config.Heuristic.
const (
	HeuristicManhattan      = "manhattan"
	HeuristicLinearConflict = "linear_conflict"
)

// Deterministic defaults (named, no magic numbers).
const (
	defaultRows     = 3                    // classic 3×3 board
	defaultCols     = 3                    //
	defaultPerDepth = 30                   // instances per depth
	defaultTieBreak = "h"                  // prefer low heuristic on f-ties
	secondsPerUnit  = float64(time.Second) // TimeoutSec → time.Duration
)

// defaultDepths is the scramble-depth ladder swept when a config names none.
var defaultDepths = []int{6, 10, 14, 18, 22, 26}

// Config describes one sweep. The YAML tags are the file schema; zero or
// omitted fields fall back to the defaults documented per field.
type Config struct {
	// Rows, Cols select the board (both ≥2, Rows*Cols ≤ 256).
	Rows int `yaml:"rows"`
	Cols int `yaml:"cols"`

	// Depths is the scramble-depth ladder; every depth must be positive.
	Depths []int `yaml:"depths"`

	// PerDepth is how many solvable instances to collect per depth.
	PerDepth int `yaml:"per_depth"`

	// StartSeed is the first scramble seed; seeds increment globally across
	// the whole generation run, never per depth.
	StartSeed int64 `yaml:"start_seed"`

	// Algorithms lists the engines to run, in row order: astar, idastar,
	// bfs, dfs.
	Algorithms []string `yaml:"algorithms"`

	// Heuristic feeds the informed engines: manhattan or linear_conflict.
	Heuristic string `yaml:"heuristic"`

	// TieBreak is the astar frontier policy: h, g, fifo or lifo.
	TieBreak string `yaml:"tie_break"`

	// BPMX enables pathmax propagation in idastar runs.
	BPMX bool `yaml:"bpmx"`

	// DFSMaxDepth bounds dfs dives; 0 leaves them unbounded, which is
	// exponential on this domain, so sweeps that include dfs should set it.
	DFSMaxDepth int `yaml:"dfs_max_depth"`

	// TimeoutSec is the per-run wall-clock budget in seconds; 0 disables.
	TimeoutSec float64 `yaml:"timeout_sec"`

	// IncludeUnsolvable additionally sweeps a parity-flipped variant of
	// every instance; those runs are expected to exhaust or time out.
	IncludeUnsolvable bool `yaml:"include_unsolvable"`

	// Workers caps batch parallelism; 0 means GOMAXPROCS.
	Workers int `yaml:"workers"`
}

// DefaultConfig returns the sweep the original study ran most: A* against
// IDA* with Manhattan over the standard depth ladder on the 3×3 board.
func DefaultConfig() Config {
	return Config{
		Rows:       defaultRows,
		Cols:       defaultCols,
		Depths:     append([]int(nil), defaultDepths...),
		PerDepth:   defaultPerDepth,
		Algorithms: []string{AlgorithmAStar, AlgorithmIDAStar},
		Heuristic:  HeuristicManhattan,
		TieBreak:   defaultTieBreak,
		Workers:    runtime.GOMAXPROCS(0),
	}
}

// LoadConfig reads a YAML file and merges it over DefaultConfig. Unknown
// keys are rejected, so typos surface instead of silently using defaults.
// An empty file yields the defaults unchanged.
func LoadConfig(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("experiment: read config: %w", err)
	}

	cfg := DefaultConfig()
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("%w: %s: %v", ErrBadConfig, path, err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks every field against its documented domain. It returns
// ErrBadConfig (or the dedicated name sentinels) naming the first offender.
func (cfg Config) Validate() error {
	// Board dimensions carry puzzle's own floor and cell cap.
	if _, err := puzzle.NewBoard(cfg.Rows, cfg.Cols); err != nil {
		return fmt.Errorf("%w: board %dx%d: %v", ErrBadConfig, cfg.Rows, cfg.Cols, err)
	}
	if len(cfg.Depths) == 0 {
		return fmt.Errorf("%w: depths list is empty", ErrBadConfig)
	}
	for _, d := range cfg.Depths {
		if d < 1 {
			return fmt.Errorf("%w: depth %d is not positive", ErrBadConfig, d)
		}
	}
	if cfg.PerDepth < 1 {
		return fmt.Errorf("%w: per_depth %d is not positive", ErrBadConfig, cfg.PerDepth)
	}
	if len(cfg.Algorithms) == 0 {
		return fmt.Errorf("%w: algorithms list is empty", ErrBadConfig)
	}
	for _, name := range cfg.Algorithms {
		switch name {
		case AlgorithmAStar, AlgorithmIDAStar, AlgorithmBFS, AlgorithmDFS:
		default:
			return fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
		}
	}
	switch cfg.Heuristic {
	case HeuristicManhattan, HeuristicLinearConflict:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownHeuristic, cfg.Heuristic)
	}
	if _, err := astar.ParseTieBreak(cfg.TieBreak); err != nil {
		return fmt.Errorf("%w: tie_break %q", ErrBadConfig, cfg.TieBreak)
	}
	if cfg.DFSMaxDepth < 0 {
		return fmt.Errorf("%w: dfs_max_depth %d is negative", ErrBadConfig, cfg.DFSMaxDepth)
	}
	if cfg.TimeoutSec < 0 {
		return fmt.Errorf("%w: timeout_sec %v is negative", ErrBadConfig, cfg.TimeoutSec)
	}
	if cfg.Workers < 0 {
		return fmt.Errorf("%w: workers %d is negative", ErrBadConfig, cfg.Workers)
	}
	return nil
}

// timeLimit converts the float seconds knob into the option duration.
func (cfg Config) timeLimit() time.Duration {
	return time.Duration(cfg.TimeoutSec * secondsPerUnit)
}

// workers resolves the effective parallelism.
func (cfg Config) workers() int {
	if cfg.Workers > 0 {
		return cfg.Workers
	}
	return runtime.GOMAXPROCS(0)
}

// HeuristicFor binds a canonical heuristic name to a board method. Sweep
// and the CLI both resolve names through it, so the accepted set cannot
// drift between them.
func HeuristicFor(b *puzzle.Board, name string) (core.Heuristic, error) {
	switch name {
	case HeuristicManhattan:
		return b.Manhattan, nil
	case HeuristicLinearConflict:
		return b.LinearConflict, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownHeuristic, name)
	}
}
