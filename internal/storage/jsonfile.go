package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/misterclayt0n/dandelion/internal/models"
)

var ErrNoWorkoutData = errors.New("no workout data found")

// jsonRecord mirrors one object of the record file. Fields may be absent.
type jsonRecord struct {
	Situps      *int32   `json:"situps"`
	Pushups     *float32 `json:"pushups"`
	RunDistance *float32 `json:"run_distance"`
}

// withDefaults fills absent fields with zero.
func (r jsonRecord) withDefaults() models.WorkoutData {
	var data models.WorkoutData
	if r.Situps != nil {
		data.Situps = *r.Situps
	}
	if r.Pushups != nil {
		data.Pushups = *r.Pushups
	}
	if r.RunDistance != nil {
		data.RunDistance = *r.RunDistance
	}
	return data
}

// DecodeWorkouts reads a stream of concatenated JSON objects and returns the
// last one. An empty stream returns ErrNoWorkoutData.
func DecodeWorkouts(r io.Reader) (models.WorkoutData, error) {
	dec := json.NewDecoder(r)

	var (
		last  models.WorkoutData
		found bool
	)
	for n := 1; ; n++ {
		var rec jsonRecord
		err := dec.Decode(&rec)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return models.WorkoutData{}, fmt.Errorf("decoding record %d: %w", n, err)
		}
		last = rec.withDefaults()
		found = true
	}

	if !found {
		return models.WorkoutData{}, ErrNoWorkoutData
	}
	return last, nil
}

func ReadWorkoutFile(path string) (models.WorkoutData, error) {
	f, err := os.Open(path)
	if err != nil {
		return models.WorkoutData{}, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	data, err := DecodeWorkouts(f)
	if err != nil {
		return models.WorkoutData{}, fmt.Errorf("reading %s: %w", path, err)
	}
	return data, nil
}

// AppendWorkoutFile writes data as the new last record of the file, creating
// the file and its directory when needed.
func AppendWorkoutFile(path string, data models.WorkoutData) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("opening %s: %w", path, err)
	}

	if err := json.NewEncoder(f).Encode(data); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return f.Close()
}

// JSONFile is a Source backed by a record file where each object holds the
// running totals and the last object is the current snapshot.
type JSONFile struct {
	Path string
}

// Snapshot treats a missing or empty file as a fresh start.
func (j JSONFile) Snapshot(ctx context.Context) (models.WorkoutData, error) {
	data, err := ReadWorkoutFile(j.Path)
	if errors.Is(err, os.ErrNotExist) || errors.Is(err, ErrNoWorkoutData) {
		logrus.WithField("path", j.Path).Debug("no workout records yet")
		return models.WorkoutData{}, nil
	}
	return data, err
}

// Record appends the previous snapshot plus data. Notes have no place in the
// record format and are dropped.
func (j JSONFile) Record(ctx context.Context, data models.WorkoutData, notes string) error {
	if err := ValidateWorkout(data); err != nil {
		return err
	}
	if notes != "" {
		logrus.WithField("path", j.Path).Debug("json records do not keep notes")
	}

	current, err := j.Snapshot(ctx)
	if err != nil {
		return err
	}
	return AppendWorkoutFile(j.Path, current.Add(data))
}
