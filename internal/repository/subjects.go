package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/yourusername/rollcall/internal/models"
)

func (r *SQLite) CreateSubject(ctx context.Context, subject *models.Subject) error {
	query := r.psql.Insert("subjects").
		Columns("name", "teacher", "color", "total_classes", "attended_classes").
		Values(subject.Name, subject.Teacher, subject.Color, subject.TotalClasses, subject.AttendedClasses)

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("build SQL query (name: %s): %w", subject.Name, err)
	}

	res, err := r.ExecContext(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("create subject (name: %s): %w", subject.Name, err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("subject insert id (name: %s): %w", subject.Name, err)
	}
	subject.ID = id

	return nil
}

func (r *SQLite) GetSubjects(ctx context.Context) ([]*models.Subject, error) {
	query := `
		SELECT id, name, teacher, color, total_classes, attended_classes
		FROM subjects
		ORDER BY id
	`

	var subjects []*models.Subject
	if err := r.SelectContext(ctx, &subjects, query); err != nil {
		return nil, fmt.Errorf("query subjects: %w", err)
	}

	return subjects, nil
}

func (r *SQLite) GetSubjectByID(ctx context.Context, id int64) (*models.Subject, error) {
	query := `
		SELECT id, name, teacher, color, total_classes, attended_classes
		FROM subjects
		WHERE id = ?
	`

	var subject models.Subject
	err := r.GetContext(ctx, &subject, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get subject (id: %d): %w", id, err)
	}

	return &subject, nil
}

func (r *SQLite) UpdateSubject(ctx context.Context, subject *models.Subject) error {
	query := r.psql.Update("subjects").
		Set("name", subject.Name).
		Set("teacher", subject.Teacher).
		Set("color", subject.Color).
		Where("id = ?", subject.ID)

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("build SQL query (id: %d): %w", subject.ID, err)
	}

	res, err := r.ExecContext(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("update subject (id: %d): %w", subject.ID, err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("update subject (id: %d): %w", subject.ID, models.ErrNotFound)
	}
	return nil
}

// UpdateSubjectCounters overwrites the derived counters with freshly
// recomputed values, superseding any manually seeded counts.
func (r *SQLite) UpdateSubjectCounters(ctx context.Context, id int64, total, attended int) error {
	query := r.psql.Update("subjects").
		Set("total_classes", total).
		Set("attended_classes", attended).
		Where("id = ?", id)

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("build SQL query (id: %d): %w", id, err)
	}

	if _, err = r.ExecContext(ctx, sql, args...); err != nil {
		return fmt.Errorf("update subject counters (id: %d, total: %d, attended: %d): %w", id, total, attended, err)
	}
	return nil
}

func (r *SQLite) DeleteSubject(ctx context.Context, id int64) error {
	if _, err := r.ExecContext(ctx, `DELETE FROM subjects WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete subject (id: %d): %w", id, err)
	}
	return nil
}
