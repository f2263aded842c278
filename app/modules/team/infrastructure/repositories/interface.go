package teamdb

import (
	"context"

	"github.com/uptrace/bun"
)

// Repository defines the contract for team and player persistence.
type Repository interface {
	CreateTeam(ctx context.Context, db bun.IDB, team *Team) error
	GetTeam(ctx context.Context, db bun.IDB, id int64) (*Team, error)
	ListTeams(ctx context.Context, db bun.IDB) ([]Team, error)
	UpdateTeam(ctx context.Context, db bun.IDB, team *Team) error
	// DeleteTeam removes the team; players, registrations and matches cascade.
	DeleteTeam(ctx context.Context, db bun.IDB, id int64) error

	// CreatePlayers inserts the players in one statement and fills in their ids.
	CreatePlayers(ctx context.Context, db bun.IDB, players []*Player) error
	GetPlayer(ctx context.Context, db bun.IDB, id int64) (*Player, error)
	ListPlayers(ctx context.Context, db bun.IDB, teamID int64) ([]Player, error)
	UpdatePlayer(ctx context.Context, db bun.IDB, player *Player) error
	DeletePlayer(ctx context.Context, db bun.IDB, id int64) error
}
