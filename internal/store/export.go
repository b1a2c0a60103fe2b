package store

import (
	"encoding/json"
	"io"

	"github.com/mvikstrom/chromalife/internal/cell"
	"github.com/mvikstrom/chromalife/internal/census"
)

// ExportData is the single-document form of a run, for piping to other
// tools.
type ExportData struct {
	RunMetadata
	Census []CensusRow    `json:"census"`
	Grid   [][]cell.State `json:"grid,omitempty"`
}

type CensusRow struct {
	Generation int `json:"generation"`
	Red        int `json:"red"`
	Blue       int `json:"blue"`
	Green      int `json:"green"`
	Yellow     int `json:"yellow"`
	Total      int `json:"total"`
}

// ExportJSON writes a complete run as one indented JSON document.
func ExportJSON(w io.Writer, meta RunMetadata, history []census.Snapshot, final [][]cell.State) error {
	data := ExportData{
		RunMetadata: meta,
		Census:      make([]CensusRow, len(history)),
		Grid:        final,
	}
	for i, snap := range history {
		data.Census[i] = CensusRow{
			Generation: snap.Generation,
			Red:        snap.Counts[cell.Red],
			Blue:       snap.Counts[cell.Blue],
			Green:      snap.Counts[cell.Green],
			Yellow:     snap.Counts[cell.Yellow],
			Total:      snap.Total(),
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}
