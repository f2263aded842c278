package competitiondb

import (
	"fmt"

	"github.com/Black-And-White-Club/football-league/app/shared/apperrors"
)

var (
	// ErrCompetitionNotFound is returned when a competition is not found.
	ErrCompetitionNotFound = fmt.Errorf("competition %w", apperrors.ErrNotFound)
	// ErrTeamNotFound is returned when the team to register does not exist.
	ErrTeamNotFound = fmt.Errorf("team %w", apperrors.ErrNotFound)
)
