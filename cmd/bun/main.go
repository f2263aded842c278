package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/Black-And-White-Club/football-league/config"
	"github.com/Black-And-White-Club/football-league/db/bundb"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/riverqueue/river/riverdriver/riverpgxv5"
	"github.com/riverqueue/river/rivermigrate"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
	"github.com/uptrace/bun/migrate"
	"github.com/urfave/cli/v2"
)

func main() {
	cliApp := &cli.App{
		Name:  "bun",
		Usage: "football-league database migrations",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Value:   "config.yaml",
				Usage:   "path to the configuration file",
				EnvVars: []string{"CONFIG_PATH"},
			},
		},
		Commands: []*cli.Command{
			newMultiModuleDBCommand(),
		},
	}

	if err := cliApp.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func findMigrator(migrators []bundb.ModuleMigrator, name string) (*migrate.Migrator, error) {
	for _, m := range migrators {
		if m.Name == name {
			return m.Migrator, nil
		}
	}
	return nil, fmt.Errorf("invalid module name: %q", name)
}

// withMigrators opens the database named by the config flag and hands the
// migrators to fn.
func withMigrators(fn func(c *cli.Context, cfg *config.Config, migrators []bundb.ModuleMigrator) error) cli.ActionFunc {
	return func(c *cli.Context) error {
		cfg, err := config.LoadConfig(c.String("config"))
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		sqldb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(cfg.Postgres.DSN)))
		db := bun.NewDB(sqldb, pgdialect.New())
		defer db.Close()

		return fn(c, cfg, bundb.Migrators(db))
	}
}

func newMultiModuleDBCommand() *cli.Command {
	return &cli.Command{
		Name:  "migrate",
		Usage: "database migrations",
		Subcommands: []*cli.Command{
			{
				Name:  "init",
				Usage: "create migration tables",
				Action: withMigrators(func(c *cli.Context, _ *config.Config, migrators []bundb.ModuleMigrator) error {
					for _, m := range migrators {
						fmt.Printf("Initializing migrations for module: %s\n", m.Name)
						if err := m.Migrator.Init(c.Context); err != nil {
							return fmt.Errorf("init %s: %w", m.Name, err)
						}
					}
					return nil
				}),
			},
			{
				Name:  "migrate",
				Usage: "migrate database",
				Action: withMigrators(func(c *cli.Context, cfg *config.Config, migrators []bundb.ModuleMigrator) error {
					for _, m := range migrators {
						if err := m.Migrator.Lock(c.Context); err != nil {
							return fmt.Errorf("lock %s: %w", m.Name, err)
						}
						group, err := m.Migrator.Migrate(c.Context)
						unlockErr := m.Migrator.Unlock(c.Context)
						if err != nil {
							return fmt.Errorf("migrate %s: %w", m.Name, err)
						}
						if unlockErr != nil {
							return fmt.Errorf("unlock %s: %w", m.Name, unlockErr)
						}
						if group.IsZero() {
							fmt.Printf("No new migrations to run for module: %s\n", m.Name)
						} else {
							fmt.Printf("Migrated module: %s to %s\n", m.Name, group)
						}
					}

					if cfg.Queue.AutoKickoffEnabled {
						return migrateRiver(c.Context, cfg.Postgres.DSN)
					}
					return nil
				}),
			},
			{
				Name:  "rollback",
				Usage: "rollback the last migration group of every module",
				Action: withMigrators(func(c *cli.Context, _ *config.Config, migrators []bundb.ModuleMigrator) error {
					for i := len(migrators) - 1; i >= 0; i-- {
						m := migrators[i]
						group, err := m.Migrator.Rollback(c.Context)
						if err != nil {
							return fmt.Errorf("rollback %s: %w", m.Name, err)
						}
						if group.IsZero() {
							fmt.Printf("No groups to roll back for module: %s\n", m.Name)
						} else {
							fmt.Printf("Rolled back module: %s to %s\n", m.Name, group)
						}
					}
					return nil
				}),
			},
			{
				Name:      "create_go",
				Usage:     "create Go migration",
				ArgsUsage: "<module> <name...>",
				Action: withMigrators(func(c *cli.Context, _ *config.Config, migrators []bundb.ModuleMigrator) error {
					migrator, err := findMigrator(migrators, c.Args().First())
					if err != nil {
						return err
					}
					name := strings.Join(c.Args().Tail(), "_")
					mf, err := migrator.CreateGoMigration(c.Context, name)
					if err != nil {
						return err
					}
					fmt.Printf("Created migration for module %s: %s (%s)\n", c.Args().First(), mf.Name, mf.Path)
					return nil
				}),
			},
			{
				Name:      "create_sql",
				Usage:     "create up and down SQL migrations",
				ArgsUsage: "<module> <name...>",
				Action: withMigrators(func(c *cli.Context, _ *config.Config, migrators []bundb.ModuleMigrator) error {
					migrator, err := findMigrator(migrators, c.Args().First())
					if err != nil {
						return err
					}
					name := strings.Join(c.Args().Tail(), "_")
					files, err := migrator.CreateSQLMigrations(c.Context, name)
					if err != nil {
						return err
					}
					for _, mf := range files {
						fmt.Printf("Created migration for module %s: %s (%s)\n", c.Args().First(), mf.Name, mf.Path)
					}
					return nil
				}),
			},
			{
				Name:  "status",
				Usage: "print migrations status",
				Action: withMigrators(func(c *cli.Context, _ *config.Config, migrators []bundb.ModuleMigrator) error {
					for _, m := range migrators {
						ms, err := m.Migrator.MigrationsWithStatus(c.Context)
						if err != nil {
							return fmt.Errorf("status %s: %w", m.Name, err)
						}
						fmt.Printf("Migrations for module: %s\n", m.Name)
						fmt.Printf("  %s\n", ms)
						fmt.Printf("  Applied: %s\n", ms.Applied())
						fmt.Printf("  Unapplied: %s\n", ms.Unapplied())
					}
					return nil
				}),
			},
		},
	}
}

// migrateRiver creates or upgrades the kickoff queue tables.
func migrateRiver(ctx context.Context, dsn string) error {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return fmt.Errorf("failed to open river pool: %w", err)
	}
	defer pool.Close()

	migrator, err := rivermigrate.New(riverpgxv5.New(pool), nil)
	if err != nil {
		return fmt.Errorf("failed to create river migrator: %w", err)
	}
	res, err := migrator.Migrate(ctx, rivermigrate.DirectionUp, &rivermigrate.MigrateOpts{})
	if err != nil {
		return fmt.Errorf("failed to migrate river: %w", err)
	}
	fmt.Printf("Applied %d river migrations\n", len(res.Versions))
	return nil
}
