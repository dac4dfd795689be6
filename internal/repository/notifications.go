package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/yourusername/rollcall/internal/models"
)

type notificationRow struct {
	ID        int64  `db:"id"`
	Title     string `db:"title"`
	Body      string `db:"body"`
	Type      string `db:"type"`
	TriggerAt string `db:"trigger_at"`
	IsRead    bool   `db:"is_read"`
}

func (row notificationRow) toModel() (*models.NotificationLogEntry, error) {
	triggerAt, err := time.Parse(time.RFC3339, row.TriggerAt)
	if err != nil {
		return nil, fmt.Errorf("parse notifications.trigger_at %q (id: %d): %w", row.TriggerAt, row.ID, err)
	}

	return &models.NotificationLogEntry{
		ID:        row.ID,
		Title:     row.Title,
		Body:      row.Body,
		Type:      row.Type,
		TriggerAt: triggerAt,
		IsRead:    row.IsRead,
	}, nil
}

func (r *SQLite) CreateNotification(ctx context.Context, entry *models.NotificationLogEntry) error {
	query := r.psql.Insert("notifications").
		Columns("title", "body", "type", "trigger_at", "is_read").
		Values(entry.Title, entry.Body, entry.Type, entry.TriggerAt.UTC().Format(time.RFC3339), entry.IsRead)

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("build SQL query (title: %s): %w", entry.Title, err)
	}

	res, err := r.ExecContext(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("create notification (title: %s, type: %s): %w", entry.Title, entry.Type, err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("notification insert id (title: %s): %w", entry.Title, err)
	}
	entry.ID = id

	return nil
}

// GetNotificationsTriggeredBy returns the log entries whose trigger time
// has passed, newest first. Entries scheduled for the future have not
// "arrived" and stay out of the inbox.
func (r *SQLite) GetNotificationsTriggeredBy(ctx context.Context, cutoff time.Time) ([]*models.NotificationLogEntry, error) {
	query := `
		SELECT id, title, body, type, trigger_at, is_read
		FROM notifications
		WHERE trigger_at <= ?
		ORDER BY trigger_at DESC, id DESC
	`

	var rows []notificationRow
	if err := r.SelectContext(ctx, &rows, query, cutoff.UTC().Format(time.RFC3339)); err != nil {
		return nil, fmt.Errorf("query notifications (cutoff: %s): %w", cutoff.Format(time.RFC3339), err)
	}

	entries := make([]*models.NotificationLogEntry, 0, len(rows))
	for _, row := range rows {
		entry, err := row.toModel()
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	return entries, nil
}

func (r *SQLite) ClearNotifications(ctx context.Context) error {
	if _, err := r.ExecContext(ctx, `DELETE FROM notifications`); err != nil {
		return fmt.Errorf("clear notifications: %w", err)
	}
	return nil
}
