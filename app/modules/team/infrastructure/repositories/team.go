package teamdb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Black-And-White-Club/football-league/app/shared/apperrors"
	"github.com/uptrace/bun"
)

// Impl implements the Repository interface using Bun ORM.
type Impl struct {
	db bun.IDB
}

// NewRepository creates a new team repository.
func NewRepository(db bun.IDB) Repository {
	return &Impl{db: db}
}

// resolveDB returns the provided db handle, falling back to the repository's
// default connection if db is nil.
func (r *Impl) resolveDB(db bun.IDB) bun.IDB {
	if db == nil {
		return r.db
	}
	return db
}

func (r *Impl) CreateTeam(ctx context.Context, db bun.IDB, team *Team) error {
	db = r.resolveDB(db)
	_, err := db.NewInsert().
		Model(team).
		Returning("*").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to create team: %w", apperrors.TranslateDB(err))
	}
	return nil
}

func (r *Impl) GetTeam(ctx context.Context, db bun.IDB, id int64) (*Team, error) {
	db = r.resolveDB(db)
	team := new(Team)
	err := db.NewSelect().
		Model(team).
		Where("t.id = ?", id).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}
	return team, nil
}

func (r *Impl) ListTeams(ctx context.Context, db bun.IDB) ([]Team, error) {
	db = r.resolveDB(db)
	var teams []Team
	err := db.NewSelect().
		Model(&teams).
		Order("t.name ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}
	return teams, nil
}

func (r *Impl) UpdateTeam(ctx context.Context, db bun.IDB, team *Team) error {
	db = r.resolveDB(db)
	team.UpdatedAt = time.Now()
	result, err := db.NewUpdate().
		Model(team).
		Column("name", "coach", "founded_year", "stadium", "updated_at").
		WherePK().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to update team: %w", apperrors.TranslateDB(err))
	}
	return requireRow(result, ErrTeamNotFound)
}

func (r *Impl) DeleteTeam(ctx context.Context, db bun.IDB, id int64) error {
	db = r.resolveDB(db)
	result, err := db.NewDelete().
		Model((*Team)(nil)).
		Where("id = ?", id).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete team: %w", err)
	}
	return requireRow(result, ErrTeamNotFound)
}

func (r *Impl) CreatePlayers(ctx context.Context, db bun.IDB, players []*Player) error {
	if len(players) == 0 {
		return nil
	}
	db = r.resolveDB(db)
	_, err := db.NewInsert().
		Model(&players).
		Returning("*").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to create players: %w", apperrors.TranslateDB(err))
	}
	return nil
}

func (r *Impl) GetPlayer(ctx context.Context, db bun.IDB, id int64) (*Player, error) {
	db = r.resolveDB(db)
	player := new(Player)
	err := db.NewSelect().
		Model(player).
		Where("p.id = ?", id).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPlayerNotFound
		}
		return nil, fmt.Errorf("failed to get player: %w", err)
	}
	return player, nil
}

func (r *Impl) ListPlayers(ctx context.Context, db bun.IDB, teamID int64) ([]Player, error) {
	db = r.resolveDB(db)
	var players []Player
	err := db.NewSelect().
		Model(&players).
		Where("p.team_id = ?", teamID).
		Order("p.name ASC", "p.id ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list players: %w", err)
	}
	return players, nil
}

// UpdatePlayer writes the editable profile fields. Counters are left alone.
func (r *Impl) UpdatePlayer(ctx context.Context, db bun.IDB, player *Player) error {
	db = r.resolveDB(db)
	player.UpdatedAt = time.Now()
	result, err := db.NewUpdate().
		Model(player).
		Column("name", "position", "age", "nationality", "updated_at").
		WherePK().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to update player: %w", apperrors.TranslateDB(err))
	}
	return requireRow(result, ErrPlayerNotFound)
}

func (r *Impl) DeletePlayer(ctx context.Context, db bun.IDB, id int64) error {
	db = r.resolveDB(db)
	result, err := db.NewDelete().
		Model((*Player)(nil)).
		Where("id = ?", id).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete player: %w", err)
	}
	return requireRow(result, ErrPlayerNotFound)
}

func requireRow(result sql.Result, notFound error) error {
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return notFound
	}
	return nil
}
