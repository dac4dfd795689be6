package migrations

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigrationContext(upUserProfileColumns, downUserProfileColumns)
}

func upUserProfileColumns(ctx context.Context, tx *sql.Tx) error {
	if err := addColumn(ctx, tx, "users", "created_at TEXT"); err != nil {
		return err
	}
	if err := addColumn(ctx, tx, "users", "notify_classes INTEGER DEFAULT 1"); err != nil {
		return err
	}
	if err := addColumn(ctx, tx, "users", "notify_tasks INTEGER DEFAULT 1"); err != nil {
		return err
	}

	// A pre-existing profile has no recorded creation time; backfill with
	// now. Upgrading users lose their true pre-history boundary, which is a
	// documented limitation.
	now := time.Now().UTC().Format(time.RFC3339)
	if _, err := tx.ExecContext(ctx, `UPDATE users SET created_at = ? WHERE created_at IS NULL`, now); err != nil {
		return fmt.Errorf("backfill users.created_at: %w", err)
	}

	return nil
}

func downUserProfileColumns(ctx context.Context, tx *sql.Tx) error {
	return nil
}
