package testutils

import (
	"context"
	"fmt"
	"strings"

	"github.com/uptrace/bun"
)

// leagueTables lists every application table, children first.
var leagueTables = []string{"match_events", "matches", "registrations", "competitions", "players", "teams"}

// TruncateTables truncates the given tables and resets their sequences.
func TruncateTables(ctx context.Context, db *bun.DB, tables ...string) error {
	if len(tables) == 0 {
		return nil
	}

	quoted := make([]string, len(tables))
	for i, table := range tables {
		quoted[i] = fmt.Sprintf(`"%s"`, table)
	}
	query := "TRUNCATE TABLE " + strings.Join(quoted, ", ") + " RESTART IDENTITY CASCADE"
	if _, err := db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("failed to truncate tables %v: %w", tables, err)
	}
	return nil
}

// CleanupDatabase empties every application table.
func CleanupDatabase(ctx context.Context, db *bun.DB) error {
	return TruncateTables(ctx, db, leagueTables...)
}
