package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"evoga/internal/config"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "run.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadAppliesDefaults(t *testing.T) {
	cfg, err := config.Load(writeConfig(t, "problem: onemax\nseed: 5\n"))
	require.NoError(t, err)

	assert.Equal(t, int64(5), cfg.Seed)
	assert.Equal(t, "onemax", cfg.Problem)
	assert.Equal(t, 100, cfg.Generations)
	assert.Equal(t, 100, cfg.GA.Population)
	assert.Equal(t, 5, cfg.GA.Elites)
	assert.Equal(t, 64, cfg.OneMax.Bits)
	assert.InDelta(t, 1.0/64, cfg.OneMax.MutationRate, 1e-12)
	assert.Equal(t, "runs/run.csv", cfg.Report.CSVPath)
	assert.Equal(t, 10, cfg.Report.Every)
}

func TestLoadKeepsExplicitValues(t *testing.T) {
	cfg, err := config.Load(writeConfig(t, `
problem: knapsack
generations: 7
ga:
  population: 30
  elites: 2
knapsack:
  items: 10
  capacity_frac: 0.5
report:
  csv_path: out/k.csv
`))
	require.NoError(t, err)

	assert.Equal(t, 7, cfg.Generations)
	assert.Equal(t, 30, cfg.GA.Population)
	assert.Equal(t, 2, cfg.GA.Elites)
	assert.Equal(t, 10, cfg.Knapsack.Items)
	assert.Equal(t, 0.5, cfg.Knapsack.CapacityFrac)
	assert.InDelta(t, 0.1, cfg.Knapsack.MutationRate, 1e-12)
	assert.Equal(t, "out/k.csv", cfg.Report.CSVPath)
}

func TestLoadRejectsUnknownProblem(t *testing.T) {
	_, err := config.Load(writeConfig(t, "problem: tsp\n"))
	require.ErrorContains(t, err, "unknown problem")
}

func TestLoadRejectsInvalidElites(t *testing.T) {
	_, err := config.Load(writeConfig(t, "ga:\n  population: 5\n  elites: 10\n"))
	require.ErrorContains(t, err, "out of range")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestLoadMalformedYAML(t *testing.T) {
	_, err := config.Load(writeConfig(t, "problem: [unclosed\n"))
	require.Error(t, err)
}
