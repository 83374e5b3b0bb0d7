package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/conference-planner/backend/internal/schedule"
	"github.com/conference-planner/backend/internal/storage/models"
)

// activeScheduleKey is the app_state key holding the active schedule ID.
const activeScheduleKey = "active_schedule_id"

// ScheduleRepository provides data access for persisted schedules.
type ScheduleRepository struct {
	BaseRepository
}

// NewScheduleRepository creates a new schedule repository.
func NewScheduleRepository(db *DB) *ScheduleRepository {
	return &ScheduleRepository{BaseRepository: NewBaseRepository(db)}
}

// Create inserts a new schedule, assigning its ID and timestamps.
func (r *ScheduleRepository) Create(ctx context.Context, s *models.Schedule) error {
	s.ID = GenerateID()
	s.CreatedAt = r.Now()
	s.UpdatedAt = s.CreatedAt
	if s.Selections == nil {
		s.Selections = []string{}
	}

	data, err := json.Marshal(s.Data)
	if err != nil {
		return fmt.Errorf("encoding schedule data: %w", err)
	}
	selections, err := json.Marshal(s.Selections)
	if err != nil {
		return fmt.Errorf("encoding selections: %w", err)
	}

	_, err = r.DB().ExecContext(ctx, `
		INSERT INTO schedules (id, name, source, data, selections, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, s.ID, s.Name, s.Source, string(data), string(selections), s.CreatedAt, s.UpdatedAt)
	if err != nil {
		return fmt.Errorf("inserting schedule: %w", err)
	}
	return nil
}

// GetByID retrieves a schedule with its full day tree. Returns (nil, nil)
// when no schedule matches.
func (r *ScheduleRepository) GetByID(ctx context.Context, id string) (*models.Schedule, error) {
	s := &models.Schedule{}
	var data, selections string

	err := r.DB().QueryRowContext(ctx, `
		SELECT id, name, source, data, selections, created_at, updated_at
		FROM schedules WHERE id = ?
	`, id).Scan(&s.ID, &s.Name, &s.Source, &data, &selections, &s.CreatedAt, &s.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("querying schedule: %w", err)
	}

	if err := json.Unmarshal([]byte(data), &s.Data); err != nil {
		return nil, fmt.Errorf("decoding schedule data: %w", err)
	}
	if err := json.Unmarshal([]byte(selections), &s.Selections); err != nil {
		return nil, fmt.Errorf("decoding selections: %w", err)
	}
	return s, nil
}

// List returns summaries of all schedules, newest first.
func (r *ScheduleRepository) List(ctx context.Context) ([]models.ScheduleSummary, error) {
	activeID, err := r.ActiveScheduleID(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := r.DB().QueryContext(ctx, `
		SELECT id, name, source, data, selections, created_at
		FROM schedules ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("querying schedules: %w", err)
	}
	defer rows.Close()

	var summaries []models.ScheduleSummary
	for rows.Next() {
		var s models.ScheduleSummary
		var data, selections string
		if err := rows.Scan(&s.ID, &s.Name, &s.Source, &data, &selections, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning schedule: %w", err)
		}

		var days []schedule.Day
		if err := json.Unmarshal([]byte(data), &days); err == nil {
			s.Days = len(days)
		}
		var ids []string
		if err := json.Unmarshal([]byte(selections), &ids); err == nil {
			s.Selections = len(ids)
		}
		s.Active = s.ID == activeID
		summaries = append(summaries, s)
	}
	return summaries, rows.Err()
}

// Delete removes a schedule, clearing the active marker when it pointed at
// the deleted schedule.
func (r *ScheduleRepository) Delete(ctx context.Context, id string) error {
	return r.Transaction(func(tx *sql.Tx) error {
		if _, err := tx.Exec("DELETE FROM schedules WHERE id = ?", id); err != nil {
			return fmt.Errorf("deleting schedule: %w", err)
		}
		_, err := tx.Exec(
			"DELETE FROM app_state WHERE key = ? AND value = ?",
			activeScheduleKey, id,
		)
		if err != nil {
			return fmt.Errorf("clearing active schedule: %w", err)
		}
		return nil
	})
}

// UpdateSelections replaces a schedule's selected talk IDs.
func (r *ScheduleRepository) UpdateSelections(ctx context.Context, id string, talkIDs []string) error {
	if talkIDs == nil {
		talkIDs = []string{}
	}
	encoded, err := json.Marshal(talkIDs)
	if err != nil {
		return fmt.Errorf("encoding selections: %w", err)
	}

	res, err := r.DB().ExecContext(ctx, `
		UPDATE schedules SET selections = ?, updated_at = ? WHERE id = ?
	`, string(encoded), r.Now(), id)
	if err != nil {
		return fmt.Errorf("updating selections: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("schedule not found: %s", id)
	}
	return nil
}

// ActiveScheduleID returns the active schedule ID, or "" when none is set.
func (r *ScheduleRepository) ActiveScheduleID(ctx context.Context) (string, error) {
	var id string
	err := r.DB().QueryRowContext(ctx,
		"SELECT value FROM app_state WHERE key = ?", activeScheduleKey,
	).Scan(&id)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("querying active schedule: %w", err)
	}
	return id, nil
}

// SetActiveScheduleID marks a schedule as active.
func (r *ScheduleRepository) SetActiveScheduleID(ctx context.Context, id string) error {
	_, err := r.DB().ExecContext(ctx, `
		INSERT INTO app_state (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, activeScheduleKey, id)
	if err != nil {
		return fmt.Errorf("setting active schedule: %w", err)
	}
	return nil
}

// Count returns the number of stored schedules.
func (r *ScheduleRepository) Count(ctx context.Context) (int, error) {
	var n int
	err := r.DB().QueryRowContext(ctx, "SELECT COUNT(*) FROM schedules").Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("counting schedules: %w", err)
	}
	return n, nil
}
