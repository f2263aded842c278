package standingsdb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	matchdomain "github.com/Black-And-White-Club/football-league/app/modules/match/domain"
	"github.com/uptrace/bun"
)

// Impl implements the Repository interface using Bun ORM.
type Impl struct {
	db bun.IDB
}

// NewRepository creates a new standings repository.
func NewRepository(db bun.IDB) Repository {
	return &Impl{db: db}
}

func (r *Impl) resolveDB(db bun.IDB) bun.IDB {
	if db == nil {
		return r.db
	}
	return db
}

func (r *Impl) CompetitionName(ctx context.Context, db bun.IDB, competitionID int64) (string, error) {
	db = r.resolveDB(db)
	var name string
	err := db.NewSelect().
		Table("competitions").
		Column("name").
		Where("id = ?", competitionID).
		Scan(ctx, &name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrCompetitionNotFound
		}
		return "", fmt.Errorf("failed to get competition: %w", err)
	}
	return name, nil
}

func (r *Impl) RegisteredTeams(ctx context.Context, db bun.IDB, competitionID int64) ([]TeamRow, error) {
	db = r.resolveDB(db)
	teams := []TeamRow{}
	err := db.NewSelect().
		TableExpr("registrations AS r").
		ColumnExpr("t.id, t.name").
		Join("JOIN teams AS t ON t.id = r.team_id").
		Where("r.competition_id = ?", competitionID).
		Order("t.name ASC").
		Scan(ctx, &teams)
	if err != nil {
		return nil, fmt.Errorf("failed to list registered teams: %w", err)
	}
	return teams, nil
}

func (r *Impl) FinishedResults(ctx context.Context, db bun.IDB, competitionID int64) ([]ResultRow, error) {
	db = r.resolveDB(db)
	results := []ResultRow{}
	err := db.NewSelect().
		Table("matches").
		Column("home_team_id", "away_team_id", "home_score", "away_score").
		Where("competition_id = ?", competitionID).
		Where("status = ?", string(matchdomain.StatusFinished)).
		Order("scheduled_at ASC", "id ASC").
		Scan(ctx, &results)
	if err != nil {
		return nil, fmt.Errorf("failed to list finished matches: %w", err)
	}
	return results, nil
}
