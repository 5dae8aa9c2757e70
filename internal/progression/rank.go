package progression

import "math"

// RankTable maps level buckets to rank labels. It has no mutators, so the
// default table is shared by every caller.
type RankTable struct {
	labels map[int]string
}

// UnknownRank is what presentation shows when classification fails.
const UnknownRank = "?"

var defaultRanks = RankTable{labels: map[int]string{
	0:   "E",
	10:  "D",
	20:  "C",
	30:  "B",
	40:  "A",
	50:  "S",
	100: "N",
}}

func DefaultRankTable() RankTable {
	return defaultRanks
}

// NewRankTable copies labels into a new table.
func NewRankTable(labels map[int]string) RankTable {
	m := make(map[int]string, len(labels))
	for k, v := range labels {
		m[k] = v
	}
	return RankTable{labels: m}
}

func (t RankTable) Lookup(bucket int) (string, bool) {
	label, ok := t.labels[bucket]
	return label, ok
}

// RankBucket returns the table key for a level. Levels 10 to 49 map to their
// leading digit times ten; the other tiers have a fixed key.
func RankBucket(level int) int {
	switch {
	case level < 10:
		return 0
	case level < 50:
		ones := firstSignificantFigure(float64(level))
		return int(math.Floor(ones) * magnitude(float64(level)))
	case level < 100:
		return 50
	default:
		return 100
	}
}

func ClassifyRank(level int, table RankTable) (string, error) {
	bucket := RankBucket(level)
	label, ok := table.Lookup(bucket)
	if !ok {
		return "", &RankLookupError{Level: level, Bucket: bucket}
	}
	return label, nil
}
