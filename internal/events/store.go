package events

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/longtraan06/studyplanner/internal/logger"
	"github.com/longtraan06/studyplanner/internal/models"
	"github.com/longtraan06/studyplanner/internal/storage"
	"github.com/longtraan06/studyplanner/internal/validation"
)

// ErrPersistence marks a failed write to the persistence adapter. The
// in-memory mutation is kept: losing a just-entered event on a transient
// storage failure is the worse outcome, so callers surface the error
// without rolling back.
var ErrPersistence = errors.New("failed to persist events")

// Store owns the canonical event collection. Views hold only derived,
// recomputed projections of List(), never a mutable copy.
type Store struct {
	provider storage.Provider
	events   []models.Event

	// injectable for tests
	now   func() time.Time
	newID func() string
}

func NewStore(provider storage.Provider) *Store {
	return &Store{
		provider: provider,
		events:   []models.Event{},
		now:      time.Now,
		newID:    uuid.NewString,
	}
}

// Load hydrates the in-memory collection from the persistence adapter.
func (s *Store) Load() error {
	events, err := s.provider.Load()
	if err != nil {
		return fmt.Errorf("failed to load events: %w", err)
	}
	s.events = events
	return nil
}

// Add validates the event, assigns a fresh id and creation timestamp,
// appends it, and persists the full collection. Validation failures are
// rejected before an id is assigned.
func (s *Store) Add(e models.Event) (models.Event, error) {
	if e.Priority == "" {
		e.Priority = models.PriorityMedium
	}
	if err := validation.ValidateEvent(e); err != nil {
		return models.Event{}, err
	}

	e.ID = s.newID()
	e.CreatedAt = s.now()
	e.UpdatedAt = nil
	s.events = append(s.events, e)

	if err := s.persist(); err != nil {
		return e, err
	}
	return e, nil
}

// Update merges the provided fields into the matching record and stamps
// UpdatedAt. An unknown id is a benign miss, logged for diagnostics but
// not surfaced as an error.
func (s *Store) Update(id string, p models.EventPatch) error {
	if err := validation.ValidatePatch(p); err != nil {
		return err
	}

	idx := s.indexOf(id)
	if idx < 0 {
		logger.Debug("Update for unknown event id", "id", id)
		return nil
	}

	merged := s.events[idx]
	if p.Title != nil {
		merged.Title = *p.Title
	}
	if p.Description != nil {
		merged.Description = *p.Description
	}
	if p.Date != nil {
		merged.Date = *p.Date
	}
	if p.StartTime != nil {
		merged.StartTime = *p.StartTime
	}
	if p.EndTime != nil {
		merged.EndTime = *p.EndTime
	}
	if p.Priority != nil {
		merged.Priority = *p.Priority
	}
	if p.CustomReminderMin != nil {
		merged.CustomReminderMin = p.CustomReminderMin
	}

	// Cross-field constraints can only be checked on the merged record.
	if err := validation.ValidateEvent(merged); err != nil {
		return err
	}

	now := s.now()
	merged.UpdatedAt = &now
	s.events[idx] = merged

	return s.persist()
}

// Delete removes the matching record. Unknown ids are a no-op.
func (s *Store) Delete(id string) error {
	idx := s.indexOf(id)
	if idx < 0 {
		logger.Debug("Delete for unknown event id", "id", id)
		return nil
	}

	s.events = append(s.events[:idx], s.events[idx+1:]...)
	return s.persist()
}

// Get returns the event with the given id, if present.
func (s *Store) Get(id string) (models.Event, bool) {
	idx := s.indexOf(id)
	if idx < 0 {
		return models.Event{}, false
	}
	return s.events[idx], true
}

// List returns a copy of the full collection. Insertion order carries no
// meaning; consumers always re-sort and re-filter.
func (s *Store) List() []models.Event {
	out := make([]models.Event, len(s.events))
	copy(out, s.events)
	return out
}

// Len returns the number of events in the collection.
func (s *Store) Len() int {
	return len(s.events)
}

func (s *Store) indexOf(id string) int {
	for i, e := range s.events {
		if e.ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) persist() error {
	if err := s.provider.Save(s.events); err != nil {
		logger.Error("Failed to persist events", "error", err)
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return nil
}
