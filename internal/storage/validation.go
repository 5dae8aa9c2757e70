package storage

import (
	"errors"
	"fmt"
	"math"

	"github.com/misterclayt0n/dandelion/internal/models"
)

var ErrInvalidWorkout = errors.New("invalid workout")

// ValidateWorkout rejects negative and non-finite counts before they are
// stored. The progression core accepts anything; this is where bad input stops.
func ValidateWorkout(data models.WorkoutData) error {
	if data.Situps < 0 {
		return fmt.Errorf("%w: situps must not be negative (got %d)", ErrInvalidWorkout, data.Situps)
	}
	if err := checkReal("pushups", data.Pushups); err != nil {
		return err
	}
	return checkReal("run_distance", data.RunDistance)
}

func checkReal(name string, v float32) error {
	f := float64(v)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return fmt.Errorf("%w: %s must be finite", ErrInvalidWorkout, name)
	}
	if v < 0 {
		return fmt.Errorf("%w: %s must not be negative (got %v)", ErrInvalidWorkout, name, v)
	}
	return nil
}
