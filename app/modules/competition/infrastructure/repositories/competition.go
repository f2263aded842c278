package competitiondb

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

// NewRepository creates a new competition repository.
func NewRepository(db bun.IDB) Repository {
	return &Impl{db: db}
}

func (r *Impl) resolveDB(db bun.IDB) bun.IDB {
	if db == nil {
		return r.db
	}
	return db
}

func (r *Impl) CreateCompetition(ctx context.Context, db bun.IDB, c *Competition) error {
	db = r.resolveDB(db)
	if _, err := db.NewInsert().Model(c).Returning("*").Exec(ctx); err != nil {
		return fmt.Errorf("failed to create competition: %w", apperrors.TranslateDB(err))
	}
	return nil
}

func (r *Impl) GetCompetition(ctx context.Context, db bun.IDB, id int64) (*Competition, error) {
	db = r.resolveDB(db)
	c := new(Competition)
	err := db.NewSelect().
		Model(c).
		Where("c.id = ?", id).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrCompetitionNotFound
		}
		return nil, fmt.Errorf("failed to get competition: %w", err)
	}
	return c, nil
}

func (r *Impl) ListCompetitions(ctx context.Context, db bun.IDB) ([]Competition, error) {
	db = r.resolveDB(db)
	var competitions []Competition
	err := db.NewSelect().
		Model(&competitions).
		Order("c.name ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list competitions: %w", err)
	}
	return competitions, nil
}

func (r *Impl) UpdateCompetition(ctx context.Context, db bun.IDB, c *Competition) error {
	db = r.resolveDB(db)
	c.UpdatedAt = time.Now()
	result, err := db.NewUpdate().
		Model(c).
		Column("name", "type", "min_squad", "max_squad", "age_limit", "updated_at").
		WherePK().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to update competition: %w", apperrors.TranslateDB(err))
	}
	return requireRow(result, ErrCompetitionNotFound)
}

func (r *Impl) DeleteCompetition(ctx context.Context, db bun.IDB, id int64) error {
	db = r.resolveDB(db)
	result, err := db.NewDelete().
		Model((*Competition)(nil)).
		Where("id = ?", id).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete competition: %w", err)
	}
	return requireRow(result, ErrCompetitionNotFound)
}

func (r *Impl) SquadAges(ctx context.Context, db bun.IDB, teamID int64) ([]int, error) {
	db = r.resolveDB(db)

	var id int64
	err := db.NewSelect().
		Table("teams").
		Column("id").
		Where("id = ?", teamID).
		For("UPDATE").
		Scan(ctx, &id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to lock team: %w", err)
	}

	ages := []int{}
	err = db.NewSelect().
		Table("players").
		Column("age").
		Where("team_id = ?", teamID).
		Scan(ctx, &ages)
	if err != nil {
		return nil, fmt.Errorf("failed to load squad ages: %w", err)
	}
	return ages, nil
}

func (r *Impl) CreateRegistration(ctx context.Context, db bun.IDB, reg *Registration) error {
	db = r.resolveDB(db)
	_, err := db.NewInsert().
		Model(reg).
		Column("team_id", "competition_id").
		Returning("id, registered_at").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to create registration: %w", apperrors.TranslateDB(err))
	}
	return nil
}

func (r *Impl) ListRegistrations(ctx context.Context, db bun.IDB, competitionID int64) ([]Registration, error) {
	db = r.resolveDB(db)
	var regs []Registration
	err := db.NewSelect().
		Model(&regs).
		ColumnExpr("r.*").
		ColumnExpr("t.name AS team_name").
		Join("JOIN teams AS t ON t.id = r.team_id").
		Where("r.competition_id = ?", competitionID).
		Order("t.name ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list registrations: %w", err)
	}
	return regs, nil
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
