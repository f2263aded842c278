package standingsdb

import (
	"context"

	"github.com/uptrace/bun"
)

// Repository reads the inputs of a standings table. It owns no tables.
type Repository interface {
	// CompetitionName returns the competition's name, or ErrCompetitionNotFound.
	CompetitionName(ctx context.Context, db bun.IDB, competitionID int64) (string, error)
	RegisteredTeams(ctx context.Context, db bun.IDB, competitionID int64) ([]TeamRow, error)
	FinishedResults(ctx context.Context, db bun.IDB, competitionID int64) ([]ResultRow, error)
}
