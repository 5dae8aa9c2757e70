package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/misterclayt0n/dandelion/internal/models"
)

func newTestStorage(t *testing.T) *Storage {
	t.Helper()
	st, err := NewStorage(context.Background(), ":memory:", "")
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })
	return st
}

func TestDriverFor(t *testing.T) {
	tests := []struct {
		conn, token      string
		wantDriver, want string
	}{
		{"file:./dandelion.db", "", "sqlite", "file:./dandelion.db"},
		{":memory:", "", "sqlite", ":memory:"},
		{"workouts.db", "secret", "sqlite", "workouts.db"},
		{"libsql://db.turso.io", "", "libsql", "libsql://db.turso.io"},
		{"libsql://db.turso.io", "a+b", "libsql", "libsql://db.turso.io?authToken=a%2Bb"},
		{"https://db.turso.io?tls=1", "tok", "libsql", "https://db.turso.io?tls=1&authToken=tok"},
	}
	for _, tt := range tests {
		driver, dsn := driverFor(tt.conn, tt.token)
		assert.Equal(t, tt.wantDriver, driver, tt.conn)
		assert.Equal(t, tt.want, dsn, tt.conn)
	}
}

func TestInitializeIsIdempotent(t *testing.T) {
	st := newTestStorage(t)
	require.NoError(t, InitializeDB(context.Background(), st.DB))
}

func TestAddAndListWorkouts(t *testing.T) {
	ctx := context.Background()
	st := newTestStorage(t)

	first, err := st.AddWorkout(ctx, models.WorkoutEntry{
		Data:       models.WorkoutData{Situps: 20, Pushups: 10, RunDistance: 1},
		Notes:      "morning",
		RecordedAt: time.Date(2026, 10, 1, 7, 30, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.NotEmpty(t, first.ID)

	second, err := st.AddWorkout(ctx, models.WorkoutEntry{
		Data:       models.WorkoutData{Pushups: 2.5, RunDistance: 0.35},
		RecordedAt: time.Date(2026, 10, 2, 18, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	all, err := st.GetAllWorkouts(ctx, 0)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, second.ID, all[0].ID)
	assert.Equal(t, first, all[1])
	assert.Equal(t, float32(0.35), all[0].Data.RunDistance)

	limited, err := st.GetAllWorkouts(ctx, 1)
	require.NoError(t, err)
	require.Len(t, limited, 1)
	assert.Equal(t, second.ID, limited[0].ID)

	since, err := st.GetWorkoutsSince(ctx, time.Date(2026, 10, 2, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.Len(t, since, 1)
	assert.Equal(t, second.ID, since[0].ID)

	n, err := st.CountWorkouts(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestAddWorkoutDefaultsTimestamp(t *testing.T) {
	st := newTestStorage(t)

	before := time.Now().UTC().Truncate(time.Second)
	e, err := st.AddWorkout(context.Background(), models.WorkoutEntry{Data: models.WorkoutData{Situps: 1}})
	require.NoError(t, err)
	assert.False(t, e.RecordedAt.Before(before))
	assert.Equal(t, time.UTC, e.RecordedAt.Location())
}

func TestAddWorkoutRejectsInvalid(t *testing.T) {
	st := newTestStorage(t)

	_, err := st.AddWorkout(context.Background(), models.WorkoutEntry{Data: models.WorkoutData{Pushups: -1}})
	require.ErrorIs(t, err, ErrInvalidWorkout)

	n, err := st.CountWorkouts(context.Background())
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestTotalsAndSnapshot(t *testing.T) {
	ctx := context.Background()
	st := newTestStorage(t)

	empty, err := st.Snapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.WorkoutData{}, empty)

	require.NoError(t, st.Record(ctx, models.WorkoutData{Situps: 15, Pushups: 4, RunDistance: 0.5}, ""))
	require.NoError(t, st.Record(ctx, models.WorkoutData{Situps: 5, Pushups: 6, RunDistance: 0.5}, "evening"))

	total, err := st.Snapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.WorkoutData{Situps: 20, Pushups: 10, RunDistance: 1}, total)
}

func TestDeleteWorkout(t *testing.T) {
	ctx := context.Background()
	st := newTestStorage(t)

	e, err := st.AddWorkout(ctx, models.WorkoutEntry{Data: models.WorkoutData{Situps: 3}})
	require.NoError(t, err)

	require.NoError(t, st.DeleteWorkout(ctx, e.ID))
	require.ErrorIs(t, st.DeleteWorkout(ctx, e.ID), ErrWorkoutNotFound)
}

func TestExportImportTOML(t *testing.T) {
	ctx := context.Background()
	src := newTestStorage(t)

	for i, d := range []models.WorkoutData{
		{Situps: 10},
		{Pushups: 7.5, RunDistance: 1.2},
		{Situps: 2, Pushups: 1, RunDistance: 0.1},
	} {
		_, err := src.AddWorkout(ctx, models.WorkoutEntry{
			Data:       d,
			Notes:      "set",
			RecordedAt: time.Date(2026, 9, 1+i, 12, 0, 0, 0, time.UTC),
		})
		require.NoError(t, err)
	}

	path := filepath.Join(t.TempDir(), "dump.toml")
	n, err := src.ExportToTOML(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	dst := newTestStorage(t)
	_, err = dst.AddWorkout(ctx, models.WorkoutEntry{Data: models.WorkoutData{Situps: 999}})
	require.NoError(t, err)

	n, err = dst.ImportFromTOML(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	want, err := src.GetAllWorkouts(ctx, 0)
	require.NoError(t, err)
	got, err := dst.GetAllWorkouts(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestImportTOMLRollsBackOnBadRow(t *testing.T) {
	ctx := context.Background()
	st := newTestStorage(t)
	_, err := st.AddWorkout(ctx, models.WorkoutEntry{Data: models.WorkoutData{Situps: 1}})
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "bad.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[[workout]]
id = "a"
situps = 3
recorded_at = "2026-09-01T12:00:00Z"

[[workout]]
id = "b"
situps = -3
recorded_at = "2026-09-02T12:00:00Z"
`), 0644))

	_, err = st.ImportFromTOML(ctx, path)
	require.ErrorIs(t, err, ErrInvalidWorkout)

	n, err := st.CountWorkouts(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}
