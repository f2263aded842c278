package competitionmigrations

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Creating competitions and registrations tables...")

		return db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
			if _, err := tx.ExecContext(ctx, `
				CREATE TABLE IF NOT EXISTS competitions (
					id BIGSERIAL PRIMARY KEY,
					name VARCHAR(100) NOT NULL UNIQUE,
					type VARCHAR(16) NOT NULL CHECK (type IN ('league', 'tournament')),
					min_squad INTEGER NOT NULL CHECK (min_squad >= 1),
					max_squad INTEGER NOT NULL,
					age_limit INTEGER,
					created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
					updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
					CONSTRAINT competitions_squad_bounds CHECK (min_squad <= max_squad)
				);
			`); err != nil {
				return fmt.Errorf("failed to create competitions table: %w", err)
			}

			if _, err := tx.ExecContext(ctx, `
				CREATE TABLE IF NOT EXISTS registrations (
					id BIGSERIAL PRIMARY KEY,
					team_id BIGINT NOT NULL REFERENCES teams(id) ON DELETE CASCADE,
					competition_id BIGINT NOT NULL REFERENCES competitions(id) ON DELETE CASCADE,
					registered_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
					CONSTRAINT registrations_team_competition_key UNIQUE (team_id, competition_id)
				);
				CREATE INDEX IF NOT EXISTS idx_registrations_competition_id ON registrations(competition_id);
			`); err != nil {
				return fmt.Errorf("failed to create registrations table: %w", err)
			}

			return nil
		})
	}, func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Dropping registrations and competitions tables...")

		return db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
			if _, err := tx.ExecContext(ctx, `DROP TABLE IF EXISTS registrations;`); err != nil {
				return fmt.Errorf("failed to drop registrations table: %w", err)
			}
			if _, err := tx.ExecContext(ctx, `DROP TABLE IF EXISTS competitions CASCADE;`); err != nil {
				return fmt.Errorf("failed to drop competitions table: %w", err)
			}
			return nil
		})
	})
}
