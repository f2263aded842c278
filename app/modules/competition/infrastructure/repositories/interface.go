package competitiondb

import (
	"context"

	"github.com/uptrace/bun"
)

// Repository defines the contract for competition and registration persistence.
type Repository interface {
	CreateCompetition(ctx context.Context, db bun.IDB, c *Competition) error
	GetCompetition(ctx context.Context, db bun.IDB, id int64) (*Competition, error)
	ListCompetitions(ctx context.Context, db bun.IDB) ([]Competition, error)
	UpdateCompetition(ctx context.Context, db bun.IDB, c *Competition) error
	DeleteCompetition(ctx context.Context, db bun.IDB, id int64) error

	// SquadAges returns the age of every player of the team, locking the team
	// row so the squad cannot be re-checked concurrently. Missing teams yield
	// ErrTeamNotFound.
	SquadAges(ctx context.Context, db bun.IDB, teamID int64) ([]int, error)
	CreateRegistration(ctx context.Context, db bun.IDB, reg *Registration) error
	// ListRegistrations returns the registrations of a competition with team names.
	ListRegistrations(ctx context.Context, db bun.IDB, competitionID int64) ([]Registration, error)
}
