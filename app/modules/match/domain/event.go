package matchdomain

import (
	"strings"

	"github.com/Black-And-White-Club/football-league/app/shared/apperrors"
)

// EventType is the kind of a match event.
type EventType string

const (
	EventGoal    EventType = "GOAL"
	EventOwnGoal EventType = "OWN_GOAL"
	EventAssist  EventType = "ASSIST"
	EventYellow  EventType = "YELLOW"
	EventRed     EventType = "RED"
	EventSub     EventType = "SUB"
)

// Minute bounds of a match event, extra time and stoppage included.
const (
	MinMinute = 0
	MaxMinute = 130
)

// ParseEventType accepts an event type name ignoring case and surrounding space.
func ParseEventType(s string) (EventType, error) {
	switch t := EventType(strings.ToUpper(strings.TrimSpace(s))); t {
	case EventGoal, EventOwnGoal, EventAssist, EventYellow, EventRed, EventSub:
		return t, nil
	default:
		return "", apperrors.Validation("unknown event type %q", s)
	}
}

// ValidateMinute checks the minute range.
func ValidateMinute(minute int) error {
	if minute < MinMinute || minute > MaxMinute {
		return apperrors.Validation("minute %d outside [%d, %d]", minute, MinMinute, MaxMinute)
	}
	return nil
}

// Side is the half of a match a team plays on.
type Side int

const (
	SideNone Side = iota
	SideHome
	SideAway
)

func (s Side) String() string {
	switch s {
	case SideHome:
		return "home"
	case SideAway:
		return "away"
	default:
		return "none"
	}
}

// SideOf returns the side teamID plays on, or SideNone when it is absent or
// not one of the two teams.
func SideOf(teamID *int64, homeTeamID, awayTeamID int64) Side {
	switch {
	case teamID == nil:
		return SideNone
	case *teamID == homeTeamID:
		return SideHome
	case *teamID == awayTeamID:
		return SideAway
	default:
		return SideNone
	}
}

// ScoreIncrements returns how much a GOAL or OWN_GOAL credited to side adds
// to each score. An own goal counts for the opposing side. Other event types
// and SideNone add nothing.
func ScoreIncrements(t EventType, side Side) (home, away int) {
	switch {
	case t == EventGoal && side == SideHome:
		return 1, 0
	case t == EventOwnGoal && side == SideHome:
		return 0, 1
	case t == EventGoal && side == SideAway:
		return 0, 1
	case t == EventOwnGoal && side == SideAway:
		return 1, 0
	default:
		return 0, 0
	}
}

// Counter names a cumulative player statistic.
type Counter string

const (
	CounterNone        Counter = ""
	CounterGoals       Counter = "goals"
	CounterYellowCards Counter = "yellow_cards"
	CounterRedCards    Counter = "red_cards"
)

// PlayerCounter returns the statistic an event of type t adds one to for the
// referenced player. Own goals, assists and substitutions change nothing.
func PlayerCounter(t EventType) Counter {
	switch t {
	case EventGoal:
		return CounterGoals
	case EventYellow:
		return CounterYellowCards
	case EventRed:
		return CounterRedCards
	default:
		return CounterNone
	}
}

// ReplayEvent is the part of a stored event that affects the score.
type ReplayEvent struct {
	Type   EventType
	TeamID *int64
}

// Replay recomputes a score from the event log of a match.
func Replay(homeTeamID, awayTeamID int64, events []ReplayEvent) (home, away int) {
	for _, e := range events {
		h, a := ScoreIncrements(e.Type, SideOf(e.TeamID, homeTeamID, awayTeamID))
		home += h
		away += a
	}
	return home, away
}
