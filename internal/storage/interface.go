package storage

import "github.com/longtraan06/studyplanner/internal/models"

// Provider persists the full event collection. Every Save replaces the
// whole collection; there are no partial writes.
type Provider interface {
	// Lifecycle
	Init() error
	Close() error

	// Collection
	Load() ([]models.Event, error)
	Save(events []models.Event) error

	// Utils
	GetConfigPath() string
}
