package bundb

import (
	"context"
	"fmt"

	competitionmigrations "github.com/Black-And-White-Club/football-league/app/modules/competition/infrastructure/repositories/migrations"
	matchmigrations "github.com/Black-And-White-Club/football-league/app/modules/match/infrastructure/repositories/migrations"
	teammigrations "github.com/Black-And-White-Club/football-league/app/modules/team/infrastructure/repositories/migrations"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/migrate"
)

// ModuleMigrator pairs a module with its migrator.
type ModuleMigrator struct {
	Name     string
	Migrator *migrate.Migrator
}

// Migrators returns one migrator per module, each tracking its own table, in
// the order they must run: competitions reference teams and matches reference
// both.
func Migrators(db *bun.DB) []ModuleMigrator {
	sets := []struct {
		name       string
		migrations *migrate.Migrations
	}{
		{"team", teammigrations.Migrations},
		{"competition", competitionmigrations.Migrations},
		{"match", matchmigrations.Migrations},
	}

	migrators := make([]ModuleMigrator, 0, len(sets))
	for _, s := range sets {
		migrators = append(migrators, ModuleMigrator{
			Name: s.name,
			Migrator: migrate.NewMigrator(db, s.migrations,
				migrate.WithTableName("bun_migrations_"+s.name),
				migrate.WithLocksTableName("bun_migration_locks_"+s.name),
			),
		})
	}
	return migrators
}

// MigrateAll initializes the migration tables and applies every pending
// migration of every module.
func MigrateAll(ctx context.Context, db *bun.DB) error {
	for _, m := range Migrators(db) {
		if err := m.Migrator.Init(ctx); err != nil {
			return fmt.Errorf("failed to init %s migrations: %w", m.Name, err)
		}
		if _, err := m.Migrator.Migrate(ctx); err != nil {
			return fmt.Errorf("failed to run %s migrations: %w", m.Name, err)
		}
	}
	return nil
}
