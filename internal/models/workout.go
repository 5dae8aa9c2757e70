package models

import "time"

// WorkoutData is the snapshot the progression core evaluates.
type WorkoutData struct {
	Situps      int32   `json:"situps" toml:"situps"`
	Pushups     float32 `json:"pushups" toml:"pushups"`
	RunDistance float32 `json:"run_distance" toml:"run_distance"` // Miles.
}

// Add returns the field-wise sum of two records.
func (w WorkoutData) Add(o WorkoutData) WorkoutData {
	return WorkoutData{
		Situps:      w.Situps + o.Situps,
		Pushups:     w.Pushups + o.Pushups,
		RunDistance: w.RunDistance + o.RunDistance,
	}
}

type WorkoutEntry struct {
	ID         string      `json:"id"`
	Data       WorkoutData `json:"data"`
	Notes      string      `json:"notes"`
	RecordedAt time.Time   `json:"recorded_at"`
}

//
// For TOML parsing only
//

type WorkoutEntryTOML struct {
	ID          string  `toml:"id"`
	Situps      int32   `toml:"situps"`
	Pushups     float32 `toml:"pushups"`
	RunDistance float32 `toml:"run_distance"`
	Notes       string  `toml:"notes,omitempty"`
	RecordedAt  string  `toml:"recorded_at"`
}

type WorkoutDump struct {
	Workouts []WorkoutEntryTOML `toml:"workout"`
}
