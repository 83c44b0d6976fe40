package report_test

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"evoga/ga"
	"evoga/internal/report"
)

func TestSummarize(t *testing.T) {
	pop := []ga.Solution[int, ga.F64]{
		{Individual: 1, Fitness: 1},
		{Individual: 2, Fitness: 3},
		{Individual: 3, Fitness: 2},
	}

	s := report.Summarize(4, pop, func(f ga.F64) float64 { return float64(f) })

	assert.Equal(t, 4, s.Generation)
	assert.Equal(t, 1.0, s.Best)
	assert.Equal(t, 2.0, s.Mean)
	assert.Equal(t, 3.0, s.Worst)
}

func TestSummarizeEmptyPopulation(t *testing.T) {
	s := report.Summarize[int, ga.F64](1, nil, func(f ga.F64) float64 { return float64(f) })
	assert.Equal(t, report.Summary{Generation: 1}, s)
}

func TestWriterProducesArtifacts(t *testing.T) {
	dir := t.TempDir()
	csvPath := filepath.Join(dir, "runs", "run.csv")
	jsonPath := filepath.Join(dir, "runs", "run.jsonl")

	w, err := report.NewWriter(csvPath, jsonPath)
	require.NoError(t, err)

	require.NoError(t, w.Write(report.Summary{Generation: 1, Best: -3, Mean: -1.5, Worst: 0}))
	require.NoError(t, w.Write(report.Summary{Generation: 2, Best: -4, Mean: -2, Worst: -1}))
	w.Close()

	csvFile, err := os.Open(csvPath)
	require.NoError(t, err)
	defer csvFile.Close()

	rows, err := csv.NewReader(csvFile).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"generation", "best", "mean", "worst"}, rows[0])
	assert.Equal(t, "1", rows[1][0])
	assert.Equal(t, "-4.000000", rows[2][1])

	jsonData, err := os.ReadFile(jsonPath)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(jsonData)), "\n")
	require.Len(t, lines, 2)

	var s report.Summary
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &s))
	assert.Equal(t, report.Summary{Generation: 2, Best: -4, Mean: -2, Worst: -1}, s)
}

func TestSaveChampion(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runs", "champion.json")

	require.NoError(t, report.SaveChampion(path, report.Champion{
		Generation: 9,
		Fitness:    -12.5,
		Individual: []bool{true, false},
	}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var c report.Champion
	require.NoError(t, json.Unmarshal(data, &c))
	assert.Equal(t, 9, c.Generation)
	assert.Equal(t, -12.5, c.Fitness)
}
