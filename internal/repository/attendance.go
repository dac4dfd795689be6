package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/yourusername/rollcall/internal/models"
)

// GetAttendanceByInstance resolves the single record for an instance+date.
// Regular and extra instances are looked up by their own key; the legacy
// path matches subject+date only among rows where both instance keys are
// NULL, so it can never collide with an instance-keyed record. Returns nil
// when no record exists yet.
func (r *SQLite) GetAttendanceByInstance(ctx context.Context, subjectID int64, date string, ref models.ClassInstanceRef) (*models.AttendanceRecord, error) {
	base := `
		SELECT id, subject_id, date, status, timetable_id, extra_class_id
		FROM attendance
	`

	var (
		query string
		args  []any
	)
	switch ref.Kind {
	case models.InstanceRegular:
		query = base + ` WHERE date = ? AND timetable_id = ?`
		args = []any{date, ref.ID}
	case models.InstanceExtra:
		query = base + ` WHERE date = ? AND extra_class_id = ?`
		args = []any{date, ref.ID}
	case models.InstanceLegacy:
		query = base + ` WHERE date = ? AND subject_id = ? AND timetable_id IS NULL AND extra_class_id IS NULL`
		args = []any{date, subjectID}
	default:
		return nil, fmt.Errorf("unknown instance kind: %s", ref.Kind)
	}

	var record models.AttendanceRecord
	err := r.GetContext(ctx, &record, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get attendance (subject_id: %d, date: %s, instance: %s/%d): %w", subjectID, date, ref.Kind, ref.ID, err)
	}

	return &record, nil
}

func (r *SQLite) CreateAttendance(ctx context.Context, record *models.AttendanceRecord) error {
	query := r.psql.Insert("attendance").
		Columns("subject_id", "date", "status", "timetable_id", "extra_class_id").
		Values(record.SubjectID, record.Date, string(record.Status), record.TimetableID, record.ExtraClassID)

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("build SQL query (subject_id: %d, date: %s): %w", record.SubjectID, record.Date, err)
	}

	res, err := r.ExecContext(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("create attendance (subject_id: %d, date: %s, status: %s): %w", record.SubjectID, record.Date, record.Status, err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("attendance insert id (subject_id: %d, date: %s): %w", record.SubjectID, record.Date, err)
	}
	record.ID = id

	return nil
}

// UpdateAttendanceStatus re-marks an existing record in place, preserving
// its id. This is what makes marking idempotent-by-replacement.
func (r *SQLite) UpdateAttendanceStatus(ctx context.Context, id int64, status models.AttendanceStatus) error {
	query := r.psql.Update("attendance").
		Set("status", string(status)).
		Where("id = ?", id)

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("build SQL query (id: %d, status: %s): %w", id, status, err)
	}

	if _, err = r.ExecContext(ctx, sql, args...); err != nil {
		return fmt.Errorf("update attendance status (id: %d, status: %s): %w", id, status, err)
	}
	return nil
}

func (r *SQLite) GetAttendanceForDate(ctx context.Context, date string) ([]*models.AttendanceRecord, error) {
	query := `
		SELECT id, subject_id, date, status, timetable_id, extra_class_id
		FROM attendance
		WHERE date = ?
	`

	var records []*models.AttendanceRecord
	if err := r.SelectContext(ctx, &records, query, date); err != nil {
		return nil, fmt.Errorf("query attendance (date: %s): %w", date, err)
	}

	return records, nil
}

// CountAttendance recounts a subject's aggregates from the attendance log.
// Cancelled and holiday marks are excluded from both counters.
func (r *SQLite) CountAttendance(ctx context.Context, subjectID int64) (total, attended int, err error) {
	query := `
		SELECT
			COUNT(CASE WHEN status IN ('present', 'absent') THEN 1 END),
			COUNT(CASE WHEN status = 'present' THEN 1 END)
		FROM attendance
		WHERE subject_id = ?
	`

	if err = r.QueryRowxContext(ctx, query, subjectID).Scan(&total, &attended); err != nil {
		return 0, 0, fmt.Errorf("count attendance (subject_id: %d): %w", subjectID, err)
	}

	return total, attended, nil
}

func (r *SQLite) DeleteAttendanceForSubject(ctx context.Context, subjectID int64) error {
	if _, err := r.ExecContext(ctx, `DELETE FROM attendance WHERE subject_id = ?`, subjectID); err != nil {
		return fmt.Errorf("delete attendance (subject_id: %d): %w", subjectID, err)
	}
	return nil
}
