package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/misterclayt0n/dandelion/internal/models"
)

var ErrWorkoutNotFound = errors.New("workout not found")

// AddWorkout validates and inserts one entry, filling in the ID and timestamp
// when they are empty.
func (s *Storage) AddWorkout(ctx context.Context, entry models.WorkoutEntry) (models.WorkoutEntry, error) {
	if err := ValidateWorkout(entry.Data); err != nil {
		return entry, err
	}
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	if entry.RecordedAt.IsZero() {
		entry.RecordedAt = time.Now()
	}
	entry.RecordedAt = entry.RecordedAt.UTC().Truncate(time.Second)

	_, err := s.DB.ExecContext(ctx,
		`INSERT INTO workouts (id, situps, pushups, run_distance, notes, recorded_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		entry.ID,
		entry.Data.Situps,
		entry.Data.Pushups,
		entry.Data.RunDistance,
		entry.Notes,
		entry.RecordedAt.Format(time.RFC3339),
	)
	if err != nil {
		return entry, fmt.Errorf("failed to insert workout: %w", err)
	}
	return entry, nil
}

// GetAllWorkouts returns the logged workouts, newest first. A limit of zero or
// less returns everything.
func (s *Storage) GetAllWorkouts(ctx context.Context, limit int) ([]models.WorkoutEntry, error) {
	query := `SELECT id, situps, pushups, run_distance, COALESCE(notes, ''), recorded_at
		FROM workouts ORDER BY recorded_at DESC, rowid DESC`
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query workouts: %w", err)
	}
	defer rows.Close()

	return scanWorkouts(rows)
}

// GetWorkoutsSince returns workouts recorded at or after since, oldest first.
func (s *Storage) GetWorkoutsSince(ctx context.Context, since time.Time) ([]models.WorkoutEntry, error) {
	rows, err := s.DB.QueryContext(ctx,
		`SELECT id, situps, pushups, run_distance, COALESCE(notes, ''), recorded_at
		FROM workouts WHERE recorded_at >= ? ORDER BY recorded_at ASC, rowid ASC`,
		since.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query workouts: %w", err)
	}
	defer rows.Close()

	return scanWorkouts(rows)
}

func scanWorkouts(rows *sql.Rows) ([]models.WorkoutEntry, error) {
	var entries []models.WorkoutEntry
	for rows.Next() {
		var (
			e          models.WorkoutEntry
			recordedAt string
		)
		if err := rows.Scan(&e.ID, &e.Data.Situps, &e.Data.Pushups, &e.Data.RunDistance, &e.Notes, &recordedAt); err != nil {
			return nil, fmt.Errorf("failed to scan workout: %w", err)
		}
		t, err := time.Parse(time.RFC3339, recordedAt)
		if err != nil {
			return nil, fmt.Errorf("workout %s has a bad timestamp %q: %w", e.ID, recordedAt, err)
		}
		e.RecordedAt = t
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating workouts: %w", err)
	}
	return entries, nil
}

// GetTotals sums every logged workout. An empty log yields the zero record.
func (s *Storage) GetTotals(ctx context.Context) (models.WorkoutData, error) {
	var (
		situps            int64
		pushups, distance float64
	)
	err := s.DB.QueryRowContext(ctx,
		`SELECT COALESCE(SUM(situps), 0), COALESCE(SUM(pushups), 0.0), COALESCE(SUM(run_distance), 0.0) FROM workouts`,
	).Scan(&situps, &pushups, &distance)
	if err != nil {
		return models.WorkoutData{}, fmt.Errorf("failed to sum workouts: %w", err)
	}

	return models.WorkoutData{
		Situps:      int32(situps),
		Pushups:     float32(pushups),
		RunDistance: float32(distance),
	}, nil
}

func (s *Storage) CountWorkouts(ctx context.Context) (int, error) {
	var n int
	if err := s.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM workouts`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count workouts: %w", err)
	}
	return n, nil
}

func (s *Storage) DeleteWorkout(ctx context.Context, id string) error {
	res, err := s.DB.ExecContext(ctx, `DELETE FROM workouts WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete workout: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete workout: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", ErrWorkoutNotFound, id)
	}
	return nil
}

// Snapshot is the cumulative total of the log.
func (s *Storage) Snapshot(ctx context.Context) (models.WorkoutData, error) {
	return s.GetTotals(ctx)
}

func (s *Storage) Record(ctx context.Context, data models.WorkoutData, notes string) error {
	_, err := s.AddWorkout(ctx, models.WorkoutEntry{Data: data, Notes: notes})
	return err
}
