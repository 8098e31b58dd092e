// Package export hands the review state to downstream collaborators as plain
// JSON. The console does not know what the report tooling does with it.
package export

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gabe/scrub/internal/project"
)

// Snapshot is the exported shape: the full aggregate plus capture metadata
type Snapshot struct {
	ExportedAt time.Time     `json:"exported_at"`
	State      project.State `json:"state"`
}

// Store manages JSON snapshot exports under a directory
type Store struct {
	dir string
}

// NewStore creates an export store at the given directory
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create export directory: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Write serializes the state to a timestamped file and returns its path
func (s *Store) Write(state project.State) (string, error) {
	snap := Snapshot{
		ExportedAt: time.Now(),
		State:      state,
	}

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to serialize snapshot: %w", err)
	}

	name := fmt.Sprintf("case-%s-%s.json", state.Case.ID, snap.ExportedAt.Format("20060102-150405"))
	path := filepath.Join(s.dir, name)

	// Write to temp file first
	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return "", err
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return "", err
	}

	return path, nil
}

// Read loads a previously written snapshot
func Read(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("failed to parse snapshot: %w", err)
	}
	return &snap, nil
}
