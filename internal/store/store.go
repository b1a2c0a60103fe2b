// Package store persists simulation runs: metadata, the per-generation
// population census, and the final grid, one directory per run.
package store

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/mvikstrom/chromalife/internal/cell"
	"github.com/mvikstrom/chromalife/internal/census"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID                string         `json:"id"`
	Pattern           string         `json:"pattern"`
	Timestamp         time.Time      `json:"timestamp"`
	Seed              int64          `json:"seed"`
	Width             int            `json:"width"`
	Height            int            `json:"height"`
	Generations       int            `json:"generations"`
	ChaosEnabled      bool           `json:"chaos_enabled"`
	CustomRuleProb    float64        `json:"custom_rule_prob"`
	RandomOutcomeProb float64        `json:"random_outcome_prob"`
	ScanMode          string         `json:"scan_mode"`
	Population        map[string]int `json:"population"`
}

type gridDump struct {
	Width  int            `json:"width"`
	Height int            `json:"height"`
	Cells  [][]cell.State `json:"cells"`
}

// Save writes one run directory: metadata.json, population.csv, and
// grid.json. The run ID is assigned here and returned.
func (s *Store) Save(meta RunMetadata, history []census.Snapshot, final [][]cell.State) (string, error) {
	runID := fmt.Sprintf("%s_%d", meta.Pattern, time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta.ID = runID
	meta.Timestamp = time.Now()
	if len(history) > 0 {
		last := history[len(history)-1]
		meta.Population = map[string]int{
			"red":    last.Counts[cell.Red],
			"blue":   last.Counts[cell.Blue],
			"green":  last.Counts[cell.Green],
			"yellow": last.Counts[cell.Yellow],
			"total":  last.Total(),
		}
	}

	if err := writeJSON(filepath.Join(runDir, "metadata.json"), meta); err != nil {
		return "", err
	}

	if err := writePopulationCSV(filepath.Join(runDir, "population.csv"), history); err != nil {
		return "", err
	}

	if len(final) > 0 {
		dump := gridDump{Width: len(final[0]), Height: len(final), Cells: final}
		if err := writeJSON(filepath.Join(runDir, "grid.json"), dump); err != nil {
			return "", err
		}
	}

	return runID, nil
}

func writeJSON(path string, v any) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writePopulationCSV(path string, history []census.Snapshot) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	w := csv.NewWriter(file)
	defer w.Flush()

	if err := w.Write([]string{"generation", "red", "blue", "green", "yellow", "total"}); err != nil {
		return err
	}
	for _, snap := range history {
		row := []string{
			strconv.Itoa(snap.Generation),
			strconv.Itoa(snap.Counts[cell.Red]),
			strconv.Itoa(snap.Counts[cell.Blue]),
			strconv.Itoa(snap.Counts[cell.Green]),
			strconv.Itoa(snap.Counts[cell.Yellow]),
			strconv.Itoa(snap.Total()),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return w.Error()
}

func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, err
	}
	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

// LoadPopulation reads the per-generation census back from a run directory.
func (s *Store) LoadPopulation(runID string) ([]census.Snapshot, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, "population.csv"))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 2 {
		return []census.Snapshot{}, nil
	}

	history := make([]census.Snapshot, 0, len(records)-1)
	for _, record := range records[1:] {
		if len(record) < 6 {
			continue
		}
		var snap census.Snapshot
		snap.Generation, err = strconv.Atoi(record[0])
		if err != nil {
			return nil, fmt.Errorf("bad generation %q: %w", record[0], err)
		}
		for i, c := range []cell.State{cell.Red, cell.Blue, cell.Green, cell.Yellow} {
			n, err := strconv.Atoi(record[i+1])
			if err != nil {
				return nil, fmt.Errorf("bad count %q: %w", record[i+1], err)
			}
			snap.Counts[c] = n
		}
		history = append(history, snap)
	}
	return history, nil
}

// LoadGrid reads the final grid back from a run directory.
func (s *Store) LoadGrid(runID string) ([][]cell.State, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "grid.json"))
	if err != nil {
		return nil, err
	}
	var dump gridDump
	if err := json.Unmarshal(data, &dump); err != nil {
		return nil, err
	}
	return dump.Cells, nil
}
