package matchdb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	matchdomain "github.com/Black-And-White-Club/football-league/app/modules/match/domain"
	"github.com/Black-And-White-Club/football-league/app/shared/apperrors"
	"github.com/uptrace/bun"
)

// Impl implements the Repository interface using Bun ORM.
type Impl struct {
	db bun.IDB
}

// NewRepository creates a new match repository.
func NewRepository(db bun.IDB) Repository {
	return &Impl{db: db}
}

func (r *Impl) resolveDB(db bun.IDB) bun.IDB {
	if db == nil {
		return r.db
	}
	return db
}

// playerRow addresses the players table for counter updates.
type playerRow struct {
	bun.BaseModel `bun:"table:players,alias:p"`

	ID int64 `bun:"id,pk"`
}

func (r *Impl) CreateMatch(ctx context.Context, db bun.IDB, m *Match) error {
	db = r.resolveDB(db)
	if _, err := db.NewInsert().Model(m).Returning("*").Exec(ctx); err != nil {
		return fmt.Errorf("failed to create match: %w", apperrors.TranslateDB(err))
	}
	return nil
}

func (r *Impl) GetMatch(ctx context.Context, db bun.IDB, id int64) (*Match, error) {
	return r.getMatch(ctx, r.resolveDB(db), id, false)
}

func (r *Impl) GetMatchForUpdate(ctx context.Context, db bun.IDB, id int64) (*Match, error) {
	return r.getMatch(ctx, r.resolveDB(db), id, true)
}

func (r *Impl) getMatch(ctx context.Context, db bun.IDB, id int64, lock bool) (*Match, error) {
	m := new(Match)
	q := db.NewSelect().
		Model(m).
		Where("m.id = ?", id)
	if lock {
		q = q.For("UPDATE")
	}
	if err := q.Scan(ctx); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrMatchNotFound
		}
		return nil, fmt.Errorf("failed to get match: %w", err)
	}
	return m, nil
}

func (r *Impl) ListMatches(ctx context.Context, db bun.IDB, filter MatchFilter) ([]Match, error) {
	db = r.resolveDB(db)
	var matches []Match
	q := db.NewSelect().Model(&matches)
	if filter.CompetitionID != nil {
		q = q.Where("m.competition_id = ?", *filter.CompetitionID)
	}
	if filter.Status != nil {
		q = q.Where("m.status = ?", *filter.Status)
	}
	if err := q.Order("m.scheduled_at ASC", "m.id ASC").Scan(ctx); err != nil {
		return nil, fmt.Errorf("failed to list matches: %w", err)
	}
	return matches, nil
}

func (r *Impl) UpdateMatch(ctx context.Context, db bun.IDB, m *Match) error {
	db = r.resolveDB(db)
	m.UpdatedAt = time.Now()
	result, err := db.NewUpdate().
		Model(m).
		Column("scheduled_at", "venue", "referee", "updated_at").
		WherePK().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to update match: %w", apperrors.TranslateDB(err))
	}
	return requireRow(result, ErrMatchNotFound)
}

func (r *Impl) UpdateStatus(ctx context.Context, db bun.IDB, id int64, status matchdomain.Status) error {
	db = r.resolveDB(db)
	result, err := db.NewUpdate().
		Model((*Match)(nil)).
		Set("status = ?", string(status)).
		Set("updated_at = NOW()").
		Where("id = ?", id).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to update match status: %w", apperrors.TranslateDB(err))
	}
	return requireRow(result, ErrMatchNotFound)
}

func (r *Impl) DeleteMatch(ctx context.Context, db bun.IDB, id int64) error {
	db = r.resolveDB(db)
	result, err := db.NewDelete().
		Model((*Match)(nil)).
		Where("id = ?", id).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete match: %w", err)
	}
	return requireRow(result, ErrMatchNotFound)
}

func (r *Impl) InsertEvent(ctx context.Context, db bun.IDB, e *MatchEvent) error {
	db = r.resolveDB(db)
	if _, err := db.NewInsert().Model(e).Returning("*").Exec(ctx); err != nil {
		return fmt.Errorf("failed to insert match event: %w", apperrors.TranslateDB(err))
	}
	return nil
}

func (r *Impl) ListEvents(ctx context.Context, db bun.IDB, matchID int64) ([]MatchEvent, error) {
	db = r.resolveDB(db)
	var events []MatchEvent
	err := db.NewSelect().
		Model(&events).
		Where("e.match_id = ?", matchID).
		Order("e.minute ASC", "e.id ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list match events: %w", err)
	}
	return events, nil
}

func (r *Impl) IncrementScore(ctx context.Context, db bun.IDB, matchID int64, home, away int) error {
	db = r.resolveDB(db)
	result, err := db.NewUpdate().
		Model((*Match)(nil)).
		Set("home_score = home_score + ?", home).
		Set("away_score = away_score + ?", away).
		Set("updated_at = NOW()").
		Where("id = ?", matchID).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to update score: %w", apperrors.TranslateDB(err))
	}
	return requireRow(result, ErrMatchNotFound)
}

func (r *Impl) IncrementPlayerCounter(ctx context.Context, db bun.IDB, playerID int64, counter matchdomain.Counter) error {
	if counter == matchdomain.CounterNone {
		return nil
	}
	db = r.resolveDB(db)
	col := bun.Ident(string(counter))
	result, err := db.NewUpdate().
		Model((*playerRow)(nil)).
		Set("? = ? + 1", col, col).
		Set("updated_at = NOW()").
		Where("id = ?", playerID).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to update player %s: %w", counter, apperrors.TranslateDB(err))
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
