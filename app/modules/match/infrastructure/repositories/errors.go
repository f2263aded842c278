package matchdb

import (
	"fmt"

	"github.com/Black-And-White-Club/football-league/app/shared/apperrors"
)

var (
	// ErrMatchNotFound is returned when a match is not found.
	ErrMatchNotFound = fmt.Errorf("match %w", apperrors.ErrNotFound)
	// ErrPlayerNotFound is returned when a counter update finds no player row.
	ErrPlayerNotFound = fmt.Errorf("player %w", apperrors.ErrNotFound)
)
