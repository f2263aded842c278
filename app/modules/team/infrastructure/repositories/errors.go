package teamdb

import (
	"fmt"

	"github.com/Black-And-White-Club/football-league/app/shared/apperrors"
)

var (
	// ErrTeamNotFound is returned when a team is not found.
	ErrTeamNotFound = fmt.Errorf("team %w", apperrors.ErrNotFound)
	// ErrPlayerNotFound is returned when a player is not found.
	ErrPlayerNotFound = fmt.Errorf("player %w", apperrors.ErrNotFound)
)
