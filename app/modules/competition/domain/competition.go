package competitiondomain

import (
	"strings"

	teamdomain "github.com/Black-And-White-Club/football-league/app/modules/team/domain"
	"github.com/Black-And-White-Club/football-league/app/shared/apperrors"
)

// Type distinguishes round-robin leagues from knockout tournaments.
type Type string

const (
	League     Type = "league"
	Tournament Type = "tournament"
)

// ParseType accepts a competition type ignoring case.
func ParseType(s string) (Type, error) {
	switch Type(strings.ToLower(strings.TrimSpace(s))) {
	case League:
		return League, nil
	case Tournament:
		return Tournament, nil
	default:
		return "", apperrors.Validation("unknown competition type %q", s)
	}
}

// Rules are the squad requirements a team must meet to register.
type Rules struct {
	MinSquad int
	MaxSquad int
	AgeLimit *int
}

// Validate checks the rule values themselves.
func (r Rules) Validate() error {
	if r.MinSquad < 1 {
		return apperrors.Validation("min_squad must be at least 1")
	}
	if r.MaxSquad < r.MinSquad {
		return apperrors.Validation("max_squad %d below min_squad %d", r.MaxSquad, r.MinSquad)
	}
	if r.AgeLimit != nil && (*r.AgeLimit < teamdomain.MinPlayerAge || *r.AgeLimit > teamdomain.MaxPlayerAge) {
		return apperrors.Validation("age_limit %d outside [%d, %d]", *r.AgeLimit, teamdomain.MinPlayerAge, teamdomain.MaxPlayerAge)
	}
	return nil
}

// CheckEligibility reports whether a squad with the given player ages may
// register under r. Failures are constraint violations.
func (r Rules) CheckEligibility(ages []int) error {
	size := len(ages)
	if size < r.MinSquad || size > r.MaxSquad {
		return apperrors.Constraint("squad size %d outside [%d, %d]", size, r.MinSquad, r.MaxSquad)
	}
	if r.AgeLimit == nil {
		return nil
	}
	over := 0
	for _, age := range ages {
		if age > *r.AgeLimit {
			over++
		}
	}
	if over > 0 {
		return apperrors.Constraint("%d player(s) older than age limit %d", over, *r.AgeLimit)
	}
	return nil
}
