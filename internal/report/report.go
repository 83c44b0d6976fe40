// Package report writes per-generation run summaries as CSV and JSONL
// artifacts, plus a final champion snapshot.
package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"evoga/ga"
)

// Summary holds one generation's population statistics over a scalar
// projection of the fitness.
type Summary struct {
	Generation int     `json:"generation"`
	Best       float64 `json:"best"`
	Mean       float64 `json:"mean"`
	Worst      float64 `json:"worst"`
}

// Summarize projects every fitness through score and aggregates. The
// population's elite prefix puts the best solution at index zero; best and
// worst here are over the projection, which for multi-objective fitness
// need not agree with the engine's ordering.
func Summarize[I any, F ga.Ordered[F]](gen int, pop []ga.Solution[I, F], score func(F) float64) Summary {
	s := Summary{Generation: gen}
	if len(pop) == 0 {
		return s
	}

	sum := 0.0
	s.Best = score(pop[0].Fitness)
	s.Worst = s.Best
	for _, sol := range pop {
		v := score(sol.Fitness)
		sum += v
		if v < s.Best {
			s.Best = v
		}
		if v > s.Worst {
			s.Worst = v
		}
	}
	s.Mean = sum / float64(len(pop))
	return s
}

// Writer appends summaries to a CSV file and a JSONL file.
type Writer struct {
	csvFile   *os.File
	csvWriter *csv.Writer
	jsonFile  *os.File
}

// NewWriter creates the artifact directories and opens both files,
// writing the CSV header.
func NewWriter(csvPath, jsonPath string) (*Writer, error) {
	for _, p := range []string{csvPath, jsonPath} {
		if err := os.MkdirAll(filepath.Dir(p), 0755); err != nil {
			return nil, err
		}
	}

	csvFile, err := os.Create(csvPath)
	if err != nil {
		return nil, err
	}

	jsonFile, err := os.OpenFile(jsonPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		csvFile.Close()
		return nil, err
	}

	w := &Writer{
		csvFile:   csvFile,
		csvWriter: csv.NewWriter(csvFile),
		jsonFile:  jsonFile,
	}
	if err := w.csvWriter.Write([]string{"generation", "best", "mean", "worst"}); err != nil {
		w.Close()
		return nil, err
	}
	return w, nil
}

// Write appends one summary to both artifacts.
func (w *Writer) Write(s Summary) error {
	row := []string{
		strconv.Itoa(s.Generation),
		fmt.Sprintf("%.6f", s.Best),
		fmt.Sprintf("%.6f", s.Mean),
		fmt.Sprintf("%.6f", s.Worst),
	}
	if err := w.csvWriter.Write(row); err != nil {
		return err
	}
	w.csvWriter.Flush()
	if err := w.csvWriter.Error(); err != nil {
		return err
	}

	line, err := json.Marshal(s)
	if err != nil {
		return err
	}
	_, err = w.jsonFile.Write(append(line, '\n'))
	return err
}

// Close flushes and closes both files.
func (w *Writer) Close() {
	if w.csvWriter != nil {
		w.csvWriter.Flush()
	}
	if w.csvFile != nil {
		w.csvFile.Close()
	}
	if w.jsonFile != nil {
		w.jsonFile.Close()
	}
}

// Champion is the final best-solution artifact.
type Champion struct {
	Generation int `json:"generation"`
	Fitness    any `json:"fitness"`
	Individual any `json:"individual"`
}

// SaveChampion writes the champion snapshot as indented JSON.
func SaveChampion(path string, c Champion) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
