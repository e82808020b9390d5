package experiment_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tilesearch/experiment"
	"github.com/katalvlaran/tilesearch/puzzle"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sweep.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadConfig_MergesOverDefaults(t *testing.T) {
	path := writeConfig(t, `
depths: [2, 4]
per_depth: 5
algorithms: [astar, bfs]
timeout_sec: 1.5
`)
	cfg, err := experiment.LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, []int{2, 4}, cfg.Depths)
	assert.Equal(t, 5, cfg.PerDepth)
	assert.Equal(t, []string{experiment.AlgorithmAStar, experiment.AlgorithmBFS}, cfg.Algorithms)
	assert.Equal(t, 1.5, cfg.TimeoutSec)

	// Omitted keys keep their defaults.
	assert.Equal(t, 3, cfg.Rows)
	assert.Equal(t, 3, cfg.Cols)
	assert.Equal(t, experiment.HeuristicManhattan, cfg.Heuristic)
	assert.Equal(t, "h", cfg.TieBreak)
	assert.False(t, cfg.BPMX)
}

func TestLoadConfig_RejectsUnknownKeys(t *testing.T) {
	path := writeConfig(t, "algoritms: [astar]\n")
	_, err := experiment.LoadConfig(path)
	assert.ErrorIs(t, err, experiment.ErrBadConfig)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := experiment.LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestConfig_Validate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*experiment.Config)
		want   error
	}{
		{"tiny board", func(c *experiment.Config) { c.Rows = 1 }, experiment.ErrBadConfig},
		{"oversized board", func(c *experiment.Config) { c.Rows, c.Cols = 16, 17 }, experiment.ErrBadConfig},
		{"no depths", func(c *experiment.Config) { c.Depths = nil }, experiment.ErrBadConfig},
		{"zero depth", func(c *experiment.Config) { c.Depths = []int{4, 0} }, experiment.ErrBadConfig},
		{"zero per-depth", func(c *experiment.Config) { c.PerDepth = 0 }, experiment.ErrBadConfig},
		{"no algorithms", func(c *experiment.Config) { c.Algorithms = nil }, experiment.ErrBadConfig},
		{"bogus algorithm", func(c *experiment.Config) { c.Algorithms = []string{"dijkstra"} }, experiment.ErrUnknownAlgorithm},
		{"bogus heuristic", func(c *experiment.Config) { c.Heuristic = "euclidean" }, experiment.ErrUnknownHeuristic},
		{"bogus tie-break", func(c *experiment.Config) { c.TieBreak = "x" }, experiment.ErrBadConfig},
		{"negative dfs bound", func(c *experiment.Config) { c.DFSMaxDepth = -1 }, experiment.ErrBadConfig},
		{"negative timeout", func(c *experiment.Config) { c.TimeoutSec = -0.5 }, experiment.ErrBadConfig},
		{"negative workers", func(c *experiment.Config) { c.Workers = -2 }, experiment.ErrBadConfig},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := experiment.DefaultConfig()
			tc.mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), tc.want)
		})
	}

	assert.NoError(t, experiment.DefaultConfig().Validate(), "defaults must validate")
}

func TestHeuristicFor(t *testing.T) {
	b := puzzle.New8()

	for _, name := range []string{experiment.HeuristicManhattan, experiment.HeuristicLinearConflict} {
		h, err := experiment.HeuristicFor(b, name)
		require.NoErrorf(t, err, "heuristic %q", name)
		assert.Zerof(t, h(b.Goal()), "heuristic %q at the goal", name)
	}

	_, err := experiment.HeuristicFor(b, "euclidean")
	assert.ErrorIs(t, err, experiment.ErrUnknownHeuristic)
}
