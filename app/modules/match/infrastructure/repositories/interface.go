package matchdb

import (
	"context"

	matchdomain "github.com/Black-And-White-Club/football-league/app/modules/match/domain"
	"github.com/uptrace/bun"
)

// Repository defines the contract for match and match event persistence.
type Repository interface {
	CreateMatch(ctx context.Context, db bun.IDB, m *Match) error
	GetMatch(ctx context.Context, db bun.IDB, id int64) (*Match, error)
	// GetMatchForUpdate reads the match and locks its row until the
	// surrounding transaction ends.
	GetMatchForUpdate(ctx context.Context, db bun.IDB, id int64) (*Match, error)
	ListMatches(ctx context.Context, db bun.IDB, filter MatchFilter) ([]Match, error)
	// UpdateMatch writes the schedule fields. Scores and status are not touched.
	UpdateMatch(ctx context.Context, db bun.IDB, m *Match) error
	UpdateStatus(ctx context.Context, db bun.IDB, id int64, status matchdomain.Status) error
	DeleteMatch(ctx context.Context, db bun.IDB, id int64) error

	InsertEvent(ctx context.Context, db bun.IDB, e *MatchEvent) error
	ListEvents(ctx context.Context, db bun.IDB, matchID int64) ([]MatchEvent, error)

	// IncrementScore adds to the stored scores with relative updates.
	IncrementScore(ctx context.Context, db bun.IDB, matchID int64, home, away int) error
	// IncrementPlayerCounter adds one to the named player statistic.
	IncrementPlayerCounter(ctx context.Context, db bun.IDB, playerID int64, counter matchdomain.Counter) error
}
