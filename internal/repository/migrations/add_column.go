package migrations

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

// addColumn applies an additive column change. SQLite has no ADD COLUMN IF
// NOT EXISTS, so "duplicate column name" is treated as "already migrated"
// and ignored; any other error aborts the migration.
func addColumn(ctx context.Context, tx *sql.Tx, table, column string) error {
	_, err := tx.ExecContext(ctx, "ALTER TABLE "+table+" ADD COLUMN "+column)
	if err != nil {
		if strings.Contains(err.Error(), "duplicate column name") {
			return nil
		}
		return fmt.Errorf("add column %s to %s: %w", column, table, err)
	}
	return nil
}
