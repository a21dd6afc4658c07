// Package dataset loads workforce export snapshots from disk and keeps them
// fresh while the dashboard runs.
package dataset

import (
	"fmt"
	"os"
	"time"

	"utilboard/internal/logging"
	"utilboard/internal/workforce"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"
)

// Snapshot is one wholesale load of the workforce export. LoadID is fresh on
// every load so consumers can tell two loads of identical content apart.
type Snapshot struct {
	Path     string
	LoadID   string
	LoadedAt time.Time
	Records  []workforce.Record
}

// Load reads and decodes the export file at path. The decode is strict about
// JSON syntax but says nothing about record content; dropping unusable
// records is the projector's job, not the loader's.
func Load(path string) (*Snapshot, error) {
	timer := logging.StartTimer(logging.CategoryDataset, "Load")
	defer timer.Stop()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read dataset: %w", err)
	}

	var records []workforce.Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("decode dataset %s: %w", path, err)
	}

	snap := &Snapshot{
		Path:     path,
		LoadID:   uuid.NewString(),
		LoadedAt: time.Now(),
		Records:  records,
	}
	logging.Dataset("loaded %d records from %s (load %s)", len(records), path, snap.LoadID)
	return snap, nil
}
