package progression

import "math"

const (
	levelBase     float32 = 1.75
	levelExpScale float32 = 1000.0
)

type LevelResult struct {
	Level        int
	RemainingExp float32
}

// ExpForLevel is the experience threshold of a level: (1.75^L - 1) * 1000.
func ExpForLevel(level int) float32 {
	return float32(float32(pow32(levelBase, float32(level))-1) * levelExpScale)
}

// ResolveLevel inverts ExpForLevel. RemainingExp is the width of the band the
// level sits in (threshold of level+1 minus threshold of level), not the
// distance from exp to the next threshold.
func ResolveLevel(exp float32) (LevelResult, error) {
	arg := float32(exp/levelExpScale) + 1
	if arg <= 0 || math.IsNaN(float64(exp)) || math.IsInf(float64(exp), 0) {
		return LevelResult{}, &InputDomainError{Experience: exp}
	}

	lnArg := float32(math.Log(float64(arg)))
	lnBase := float32(math.Log(float64(levelBase)))
	level := int(math.Floor(float64(lnArg / lnBase)))

	return LevelResult{
		Level:        level,
		RemainingExp: RoundOrder(ExpForLevel(level+1)-ExpForLevel(level), 2),
	}, nil
}
