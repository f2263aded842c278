package matchmigrations

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Creating matches and match_events tables...")

		return db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
			if _, err := tx.ExecContext(ctx, `
				CREATE TABLE IF NOT EXISTS matches (
					id BIGSERIAL PRIMARY KEY,
					competition_id BIGINT REFERENCES competitions(id) ON DELETE CASCADE,
					home_team_id BIGINT NOT NULL REFERENCES teams(id) ON DELETE CASCADE,
					away_team_id BIGINT NOT NULL REFERENCES teams(id) ON DELETE CASCADE,
					scheduled_at TIMESTAMPTZ NOT NULL,
					venue VARCHAR(100),
					referee VARCHAR(100),
					status VARCHAR(16) NOT NULL DEFAULT 'SCHEDULED'
						CHECK (status IN ('SCHEDULED', 'IN_PLAY', 'FINISHED')),
					home_score INTEGER NOT NULL DEFAULT 0 CHECK (home_score >= 0),
					away_score INTEGER NOT NULL DEFAULT 0 CHECK (away_score >= 0),
					created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
					updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
					CONSTRAINT matches_distinct_teams CHECK (home_team_id <> away_team_id)
				);
				CREATE INDEX IF NOT EXISTS idx_matches_competition_status ON matches(competition_id, status);
				CREATE INDEX IF NOT EXISTS idx_matches_scheduled_at ON matches(scheduled_at);
			`); err != nil {
				return fmt.Errorf("failed to create matches table: %w", err)
			}

			if _, err := tx.ExecContext(ctx, `
				CREATE TABLE IF NOT EXISTS match_events (
					id BIGSERIAL PRIMARY KEY,
					match_id BIGINT NOT NULL REFERENCES matches(id) ON DELETE CASCADE,
					minute INTEGER NOT NULL CHECK (minute BETWEEN 0 AND 130),
					type VARCHAR(16) NOT NULL
						CHECK (type IN ('GOAL', 'OWN_GOAL', 'ASSIST', 'YELLOW', 'RED', 'SUB')),
					player_id BIGINT REFERENCES players(id) ON DELETE SET NULL,
					team_id BIGINT REFERENCES teams(id) ON DELETE SET NULL,
					notes TEXT,
					created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
				);
				CREATE INDEX IF NOT EXISTS idx_match_events_match_id ON match_events(match_id, id);
			`); err != nil {
				return fmt.Errorf("failed to create match_events table: %w", err)
			}

			return nil
		})
	}, func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Dropping match_events and matches tables...")

		return db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
			if _, err := tx.ExecContext(ctx, `DROP TABLE IF EXISTS match_events;`); err != nil {
				return fmt.Errorf("failed to drop match_events table: %w", err)
			}
			if _, err := tx.ExecContext(ctx, `DROP TABLE IF EXISTS matches;`); err != nil {
				return fmt.Errorf("failed to drop matches table: %w", err)
			}
			return nil
		})
	})
}
