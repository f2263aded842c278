package standingsdb

import (
	"fmt"

	"github.com/Black-And-White-Club/football-league/app/shared/apperrors"
)

// ErrCompetitionNotFound is returned when standings are asked for an unknown competition.
var ErrCompetitionNotFound = fmt.Errorf("competition %w", apperrors.ErrNotFound)
