// Package progression turns a workout snapshot into experience, a level, the
// width of the current level band and a rank label. Everything here is pure.
package progression

import (
	"fmt"
	"strconv"

	"github.com/misterclayt0n/dandelion/internal/models"
)

type Progress struct {
	Experience   float32
	Level        int
	RemainingExp float32
	Rank         string
}

// Evaluate runs the calculator, resolver and classifier in sequence. On error
// the returned Progress keeps whatever was computed and Rank is UnknownRank.
func Evaluate(data models.WorkoutData, table RankTable) (Progress, error) {
	p := Progress{Experience: ComputeExperience(data)}

	lvl, err := ResolveLevel(p.Experience)
	if err != nil {
		p.Rank = UnknownRank
		return p, fmt.Errorf("resolving level: %w", err)
	}
	p.Level = lvl.Level
	p.RemainingExp = lvl.RemainingExp

	rank, err := ClassifyRank(lvl.Level, table)
	if err != nil {
		p.Rank = UnknownRank
		return p, fmt.Errorf("classifying rank: %w", err)
	}
	p.Rank = rank

	return p, nil
}

// FormatReal prints a float32 in its shortest round-tripping form (750, 4019.53).
func FormatReal(v float32) string {
	return strconv.FormatFloat(float64(v), 'f', -1, 32)
}

// Lines returns the level, remaining experience and rank display strings.
func (p Progress) Lines() [3]string {
	return [3]string{
		fmt.Sprintf("Level: %d", p.Level),
		FormatReal(p.RemainingExp) + "exp left!",
		"Rank: " + p.Rank,
	}
}

// Raw is the machine-readable form: "level remaining rank".
func (p Progress) Raw() string {
	return fmt.Sprintf("%d %s %s", p.Level, FormatReal(p.RemainingExp), p.Rank)
}
