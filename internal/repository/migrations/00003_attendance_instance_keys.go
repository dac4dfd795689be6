package migrations

import (
	"context"
	"database/sql"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigrationContext(upAttendanceInstanceKeys, downAttendanceInstanceKeys)
}

// Attendance was originally keyed by subject+date only. Per-instance
// tracking adds two nullable foreign keys; a record carries at most one of
// them, and rows where both stay NULL remain readable as legacy records.
func upAttendanceInstanceKeys(ctx context.Context, tx *sql.Tx) error {
	if err := addColumn(ctx, tx, "attendance", "timetable_id INTEGER"); err != nil {
		return err
	}
	return addColumn(ctx, tx, "attendance", "extra_class_id INTEGER")
}

func downAttendanceInstanceKeys(ctx context.Context, tx *sql.Tx) error {
	// Additive only; old readers ignore the extra columns.
	return nil
}
