package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/longtraan06/studyplanner/internal/models"
)

// SQLiteStore is the alternate Provider backend. It keeps the same
// whole-collection Save semantics as JSONStore: every mutation rewrites
// the events table in one transaction.
type SQLiteStore struct {
	path string
	db   *sql.DB
}

func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{
		path: path,
	}
}

func (s *SQLiteStore) Init() error {
	// Create config directory if it doesn't exist
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	schema := `
	CREATE TABLE IF NOT EXISTS events (
		id TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		date TEXT NOT NULL,
		start_time TEXT NOT NULL DEFAULT '',
		end_time TEXT NOT NULL DEFAULT '',
		priority TEXT NOT NULL DEFAULT 'medium',
		custom_reminder_min INTEGER,
		created_at TEXT NOT NULL,
		updated_at TEXT
	);
	CREATE INDEX IF NOT EXISTS idx_events_date ON events(date);
	`
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

func (s *SQLiteStore) Load() ([]models.Event, error) {
	if s.db == nil {
		return nil, fmt.Errorf("storage not initialized")
	}

	rows, err := s.db.Query(`
		SELECT id, title, description, date, start_time, end_time, priority,
		       custom_reminder_min, created_at, updated_at
		FROM events
		ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query events: %w", err)
	}
	defer rows.Close()

	events := []models.Event{}
	for rows.Next() {
		var e models.Event
		var reminder sql.NullInt64
		var createdAt string
		var updatedAt sql.NullString

		if err := rows.Scan(&e.ID, &e.Title, &e.Description, &e.Date, &e.StartTime,
			&e.EndTime, &e.Priority, &reminder, &createdAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}

		if reminder.Valid {
			min := int(reminder.Int64)
			e.CustomReminderMin = &min
		}
		if t, err := time.Parse(time.RFC3339, createdAt); err == nil {
			e.CreatedAt = t
		}
		if updatedAt.Valid {
			if t, err := time.Parse(time.RFC3339, updatedAt.String); err == nil {
				e.UpdatedAt = &t
			}
		}

		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read events: %w", err)
	}

	return events, nil
}

func (s *SQLiteStore) Save(events []models.Event) error {
	if s.db == nil {
		return fmt.Errorf("storage not initialized")
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM events`); err != nil {
		return fmt.Errorf("failed to clear events: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO events (id, title, description, date, start_time, end_time,
		                    priority, custom_reminder_min, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, e := range events {
		var reminder interface{}
		if e.CustomReminderMin != nil {
			reminder = *e.CustomReminderMin
		}
		var updatedAt interface{}
		if e.UpdatedAt != nil {
			updatedAt = e.UpdatedAt.Format(time.RFC3339)
		}

		if _, err := stmt.Exec(e.ID, e.Title, e.Description, e.Date, e.StartTime,
			e.EndTime, string(e.Priority), reminder,
			e.CreatedAt.Format(time.RFC3339), updatedAt); err != nil {
			return fmt.Errorf("failed to insert event %s: %w", e.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit events: %w", err)
	}

	return nil
}

func (s *SQLiteStore) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *SQLiteStore) GetConfigPath() string {
	return s.path
}
