package credit

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// SaveDossier writes a dossier to disk as JSON.
func SaveDossier(path string, d *Dossier) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating directory for dossier: %w", err)
	}

	data, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling dossier: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing dossier: %w", err)
	}

	return nil
}

// LoadDossier reads a dossier from disk, validates it, and normalizes
// it (chronological order, IDs assigned, stats recomputed).
func LoadDossier(path string) (*Dossier, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading dossier: %w", err)
	}

	var d Dossier
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("unmarshaling dossier: %w", err)
	}

	if err := d.Validate(); err != nil {
		return nil, fmt.Errorf("validating dossier: %w", err)
	}
	d.Normalize()

	return &d, nil
}
