package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/yourusername/rollcall/internal/models"
)

// The profile is a singleton; id is fixed at 1 by convention so updates
// never need a lookup.
const userRowID = 1

type userRow struct {
	ID            int64          `db:"id"`
	Name          string         `db:"name"`
	MinAttendance int            `db:"min_attendance"`
	ThemePref     string         `db:"theme_pref"`
	CreatedAt     sql.NullString `db:"created_at"`
	NotifyClasses bool           `db:"notify_classes"`
	NotifyTasks   bool           `db:"notify_tasks"`
}

func (row userRow) toModel() (*models.User, error) {
	user := &models.User{
		ID:            row.ID,
		Name:          row.Name,
		MinAttendance: row.MinAttendance,
		ThemePref:     row.ThemePref,
		NotifyClasses: row.NotifyClasses,
		NotifyTasks:   row.NotifyTasks,
	}

	if row.CreatedAt.Valid {
		createdAt, err := time.Parse(time.RFC3339, row.CreatedAt.String)
		if err != nil {
			return nil, fmt.Errorf("parse users.created_at %q: %w", row.CreatedAt.String, err)
		}
		user.CreatedAt = createdAt
	}

	return user, nil
}

func (r *SQLite) CreateUser(ctx context.Context, user *models.User) error {
	query := r.psql.Insert("users").
		Columns("id", "name", "min_attendance", "theme_pref", "created_at", "notify_classes", "notify_tasks").
		Values(userRowID, user.Name, user.MinAttendance, user.ThemePref, user.CreatedAt.UTC().Format(time.RFC3339), user.NotifyClasses, user.NotifyTasks)

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("build SQL query (name: %s): %w", user.Name, err)
	}

	if _, err = r.ExecContext(ctx, sql, args...); err != nil {
		return fmt.Errorf("create user (name: %s): %w", user.Name, err)
	}

	user.ID = userRowID
	return nil
}

func (r *SQLite) GetUser(ctx context.Context) (*models.User, error) {
	query := `
		SELECT id, name, min_attendance, theme_pref, created_at, notify_classes, notify_tasks
		FROM users LIMIT 1
	`

	var row userRow
	err := r.GetContext(ctx, &row, query)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}

	return row.toModel()
}

func (r *SQLite) UserExists(ctx context.Context) (bool, error) {
	var count int
	err := r.QueryRowxContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("check user exists: %w", err)
	}
	return count > 0, nil
}

func (r *SQLite) UpdateThemePreference(ctx context.Context, theme models.ThemePreference) error {
	query := r.psql.Update("users").
		Set("theme_pref", string(theme)).
		Where("id = ?", userRowID)

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("build SQL query (theme: %s): %w", theme, err)
	}

	if _, err = r.ExecContext(ctx, sql, args...); err != nil {
		return fmt.Errorf("update theme preference (theme: %s): %w", theme, err)
	}
	return nil
}

func (r *SQLite) UpdateNotificationSetting(ctx context.Context, kind models.NotificationKind, enabled bool) error {
	var column string
	switch kind {
	case models.NotifyClasses:
		column = "notify_classes"
	case models.NotifyTasks:
		column = "notify_tasks"
	default:
		return fmt.Errorf("unknown notification kind: %s", kind)
	}

	query := r.psql.Update("users").
		Set(column, enabled).
		Where("id = ?", userRowID)

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("build SQL query (kind: %s): %w", kind, err)
	}

	if _, err = r.ExecContext(ctx, sql, args...); err != nil {
		return fmt.Errorf("update notification setting (kind: %s): %w", kind, err)
	}
	return nil
}
