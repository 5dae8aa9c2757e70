package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/misterclayt0n/dandelion/internal/models"
)

// ExportToTOML writes every logged workout, oldest first, to outputPath.
func (s *Storage) ExportToTOML(ctx context.Context, outputPath string) (int, error) {
	entries, err := s.GetWorkoutsSince(ctx, time.Time{})
	if err != nil {
		return 0, err
	}

	var dump models.WorkoutDump
	for _, e := range entries {
		dump.Workouts = append(dump.Workouts, models.WorkoutEntryTOML{
			ID:          e.ID,
			Situps:      e.Data.Situps,
			Pushups:     e.Data.Pushups,
			RunDistance: e.Data.RunDistance,
			Notes:       e.Notes,
			RecordedAt:  e.RecordedAt.UTC().Format(time.RFC3339),
		})
	}

	// Make the output path absolute relative to the current directory.
	outputPath, err = filepath.Abs(outputPath)
	if err != nil {
		return 0, err
	}

	f, err := os.Create(outputPath)
	if err != nil {
		return 0, fmt.Errorf("creating export file: %w", err)
	}
	if err := toml.NewEncoder(f).Encode(dump); err != nil {
		f.Close()
		return 0, fmt.Errorf("encoding TOML: %w", err)
	}
	return len(dump.Workouts), f.Close()
}

// GetDBExportPath returns ~/.config/dandelion/workouts.toml, creating the
// directory.
func GetDBExportPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(home, ".config", "dandelion")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	return filepath.Join(dir, "workouts.toml"), nil
}

// ImportFromTOML replaces the whole log with the contents of a dump file in a
// single transaction.
func (s *Storage) ImportFromTOML(ctx context.Context, filePath string) (int, error) {
	var dump models.WorkoutDump
	if _, err := toml.DecodeFile(filePath, &dump); err != nil {
		return 0, fmt.Errorf("decoding TOML %s: %w", filePath, err)
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM workouts`); err != nil {
		return 0, fmt.Errorf("clearing workouts: %w", err)
	}

	for i, w := range dump.Workouts {
		data := models.WorkoutData{Situps: w.Situps, Pushups: w.Pushups, RunDistance: w.RunDistance}
		if err := ValidateWorkout(data); err != nil {
			return 0, fmt.Errorf("workout %d: %w", i+1, err)
		}
		recordedAt, err := time.Parse(time.RFC3339, w.RecordedAt)
		if err != nil {
			return 0, fmt.Errorf("workout %d: bad recorded_at %q: %w", i+1, w.RecordedAt, err)
		}
		if w.ID == "" {
			return 0, fmt.Errorf("workout %d: missing id", i+1)
		}

		_, err = tx.ExecContext(ctx,
			`INSERT INTO workouts (id, situps, pushups, run_distance, notes, recorded_at)
			VALUES (?, ?, ?, ?, ?, ?)`,
			w.ID, w.Situps, w.Pushups, w.RunDistance, w.Notes, recordedAt.UTC().Format(time.RFC3339),
		)
		if err != nil {
			return 0, fmt.Errorf("inserting workout %s: %w", w.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing transaction: %w", err)
	}
	return len(dump.Workouts), nil
}
