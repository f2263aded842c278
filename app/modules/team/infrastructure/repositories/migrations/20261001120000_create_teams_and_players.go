package teammigrations

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Creating teams and players tables...")

		return db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
			if _, err := tx.ExecContext(ctx, `
				CREATE TABLE IF NOT EXISTS teams (
					id BIGSERIAL PRIMARY KEY,
					name VARCHAR(100) NOT NULL UNIQUE,
					coach VARCHAR(100),
					founded_year INTEGER,
					stadium VARCHAR(100),
					created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
					updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
				);
			`); err != nil {
				return fmt.Errorf("failed to create teams table: %w", err)
			}

			if _, err := tx.ExecContext(ctx, `
				CREATE TABLE IF NOT EXISTS players (
					id BIGSERIAL PRIMARY KEY,
					team_id BIGINT NOT NULL REFERENCES teams(id) ON DELETE CASCADE,
					name VARCHAR(100) NOT NULL,
					position VARCHAR(16) NOT NULL
						CHECK (position IN ('goalkeeper', 'defender', 'midfielder', 'forward')),
					age INTEGER NOT NULL CHECK (age BETWEEN 10 AND 55),
					nationality VARCHAR(64),
					appearances INTEGER NOT NULL DEFAULT 0 CHECK (appearances >= 0),
					goals INTEGER NOT NULL DEFAULT 0 CHECK (goals >= 0),
					assists INTEGER NOT NULL DEFAULT 0 CHECK (assists >= 0),
					yellow_cards INTEGER NOT NULL DEFAULT 0 CHECK (yellow_cards >= 0),
					red_cards INTEGER NOT NULL DEFAULT 0 CHECK (red_cards >= 0),
					created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
					updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
				);
				CREATE INDEX IF NOT EXISTS idx_players_team_id ON players(team_id);
			`); err != nil {
				return fmt.Errorf("failed to create players table: %w", err)
			}

			return nil
		})
	}, func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Dropping players and teams tables...")

		return db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
			if _, err := tx.ExecContext(ctx, `DROP TABLE IF EXISTS players;`); err != nil {
				return fmt.Errorf("failed to drop players table: %w", err)
			}
			if _, err := tx.ExecContext(ctx, `DROP TABLE IF EXISTS teams CASCADE;`); err != nil {
				return fmt.Errorf("failed to drop teams table: %w", err)
			}
			return nil
		})
	})
}
