package matchdomain

import (
	"strings"

	"github.com/Black-And-White-Club/football-league/app/shared/apperrors"
)

// Status is the lifecycle stage of a match. It only moves forward.
type Status string

const (
	StatusScheduled Status = "SCHEDULED"
	StatusInPlay    Status = "IN_PLAY"
	StatusFinished  Status = "FINISHED"
)

var statusOrder = map[Status]int{
	StatusScheduled: 0,
	StatusInPlay:    1,
	StatusFinished:  2,
}

// ParseStatus accepts a status name ignoring case.
func ParseStatus(s string) (Status, error) {
	st := Status(strings.ToUpper(strings.TrimSpace(s)))
	if _, ok := statusOrder[st]; !ok {
		return "", apperrors.Validation("unknown match status %q", s)
	}
	return st, nil
}

// CanAdvance reports whether a match may move from one status to another.
// Skipping a stage is allowed; staying put or going back is not.
func CanAdvance(from, to Status) error {
	f, ok := statusOrder[from]
	if !ok {
		return apperrors.Validation("unknown match status %q", from)
	}
	t, ok := statusOrder[to]
	if !ok {
		return apperrors.Validation("unknown match status %q", to)
	}
	if t <= f {
		return apperrors.Constraint("match cannot move from %s to %s", from, to)
	}
	return nil
}
