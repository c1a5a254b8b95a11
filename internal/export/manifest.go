package export

import (
	"encoding/json"
	"fmt"
	"os"

	"magnetite/internal/grid"
)

// Manifest summarises one sampling run.
type Manifest struct {
	Segments  int        `json:"segments"`
	Grid      grid.Grid  `json:"grid"`
	Stats     grid.Stats `json:"stats"`
	Image     string     `json:"image,omitempty"`
	Samples   string     `json:"samples,omitempty"`
	ElapsedMS int64      `json:"elapsed_ms"`
}

// WriteManifest writes m as indented JSON to path.
func WriteManifest(path string, m Manifest) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("export: manifest: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

// ReadManifest loads a manifest written by WriteManifest.
func ReadManifest(path string) (Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Manifest{}, fmt.Errorf("export: read %s: %w", path, err)
	}
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return Manifest{}, fmt.Errorf("export: parse %s: %w", path, err)
	}
	return m, nil
}
