package progression

import (
	"errors"
	"fmt"
)

var (
	ErrInputDomain = errors.New("experience outside the level curve domain")
	ErrRankLookup  = errors.New("rank bucket not found")
)

// InputDomainError is returned when the level logarithm is undefined for the
// given experience (exp <= -1000, NaN or infinite).
type InputDomainError struct {
	Experience float32
}

func (e *InputDomainError) Error() string {
	return fmt.Sprintf("%s: %v", ErrInputDomain, e.Experience)
}

func (e *InputDomainError) Is(target error) bool {
	return target == ErrInputDomain
}

type RankLookupError struct {
	Level  int
	Bucket int
}

func (e *RankLookupError) Error() string {
	return fmt.Sprintf("%s: bucket %d (level %d)", ErrRankLookup, e.Bucket, e.Level)
}

func (e *RankLookupError) Is(target error) bool {
	return target == ErrRankLookup
}
