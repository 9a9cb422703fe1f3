package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baldhumanity/evolve-go/genetic"
)

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		seed, historyOut, metricsOut, logEvery, verbose = 0, "", "", 10, false
	})
	err := rootCmd.Execute()
	return out.String(), err
}

func TestTSPCommand(t *testing.T) {
	dir := t.TempDir()
	historyPath := filepath.Join(dir, "history.gz")
	metricsPath := filepath.Join(dir, "metrics.prom")

	out, err := runCLI(t, "tsp",
		"--config", filepath.Join("..", "..", "configs", "tsp.ini"),
		"--seed", "7",
		"--history-out", historyPath,
		"--metrics-out", metricsPath)
	require.NoError(t, err)
	assert.Contains(t, out, "Best route: ")
	assert.Contains(t, out, "Lowest cost over run: ")

	history, err := genetic.LoadHistory(historyPath)
	require.NoError(t, err)
	assert.Equal(t, 201, history.Len())
	assert.NotEmpty(t, history.RunID)

	metrics, err := os.ReadFile(metricsPath)
	require.NoError(t, err)
	assert.Contains(t, string(metrics), "evolve_generations_total")
	assert.Contains(t, string(metrics), history.RunID)
}

func TestGenMaxCommand(t *testing.T) {
	out, err := runCLI(t, "genmax",
		"--config", filepath.Join("..", "..", "configs", "genmax.ini"),
		"--seed", "42")
	require.NoError(t, err)
	assert.Contains(t, out, "Best chromosome: ")
	assert.Contains(t, out, "Best fitness over run: ")
}

func TestGenMaxCommandRejectsInvalidConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.ini")
	require.NoError(t, os.WriteFile(path, []byte(`
[Run]
pop_size    = 20
generations = 10
pcross      = 0.7
pmutation   = 0.01

[Binary]
chromosome_length = 5
x_min             = 21
x_max             = -1
coefficients      = 1
`), 0o644))

	_, err := runCLI(t, "genmax", "--config", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config error: x_min")
}
