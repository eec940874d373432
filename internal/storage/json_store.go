package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/longtraan06/studyplanner/internal/logger"
	"github.com/longtraan06/studyplanner/internal/models"
)

// JSONStore keeps the event collection as a single JSON array on disk,
// mirroring the browser storage shape (one key, one serialized array).
type JSONStore struct {
	path string
}

func NewJSONStore(configPath string) *JSONStore {
	return &JSONStore{
		path: configPath,
	}
}

func (s *JSONStore) Init() error {
	// Create config directory if it doesn't exist
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Leave an existing collection alone
	if _, err := os.Stat(s.path); err == nil {
		return nil
	}

	return s.Save([]models.Event{})
}

// Load reads the persisted collection. A missing file or unparsable
// content yields an empty collection rather than an error: calendar data
// is non-critical and the store must always be able to start.
func (s *JSONStore) Load() ([]models.Event, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []models.Event{}, nil
		}
		return nil, fmt.Errorf("failed to read storage: %w", err)
	}

	var events []models.Event
	if err := json.Unmarshal(data, &events); err != nil {
		logger.Warn("Persisted events are malformed, starting empty", "path", s.path, "error", err)
		return []models.Event{}, nil
	}
	if events == nil {
		events = []models.Event{}
	}

	return events, nil
}

func (s *JSONStore) Save(events []models.Event) error {
	if events == nil {
		events = []models.Event{}
	}

	data, err := json.MarshalIndent(events, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize events: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}

	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

// GetConfigPath returns the path to the underlying storage file.
//
// Concurrency note:
//   - JSONStore is not safe for concurrent use by multiple goroutines without
//     external synchronization.
//   - Running multiple studyplanner processes that share the same storage path
//     at the same time is not supported and may lead to data loss.
func (s *JSONStore) GetConfigPath() string {
	return s.path
}
