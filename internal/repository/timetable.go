package repository

import (
	"context"
	"fmt"

	"github.com/yourusername/rollcall/internal/models"
)

func (r *SQLite) CreateScheduleItem(ctx context.Context, entry *models.TimetableEntry) error {
	query := r.psql.Insert("timetable").
		Columns("subject_id", "day_index", "start_time", "end_time", "location").
		Values(entry.SubjectID, entry.DayIndex, entry.StartTime, entry.EndTime, entry.Location)

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("build SQL query (subject_id: %d, day_index: %d): %w", entry.SubjectID, entry.DayIndex, err)
	}

	res, err := r.ExecContext(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("create schedule item (subject_id: %d, day_index: %d): %w", entry.SubjectID, entry.DayIndex, err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("schedule item insert id (subject_id: %d): %w", entry.SubjectID, err)
	}
	entry.ID = id

	return nil
}

func (r *SQLite) GetScheduleForDay(ctx context.Context, dayIndex int) ([]*models.TimetableEntry, error) {
	query := `
		SELECT id, subject_id, day_index, start_time, end_time, location
		FROM timetable
		WHERE day_index = ?
		ORDER BY start_time, id
	`

	var entries []*models.TimetableEntry
	if err := r.SelectContext(ctx, &entries, query, dayIndex); err != nil {
		return nil, fmt.Errorf("query schedule (day_index: %d): %w", dayIndex, err)
	}

	return entries, nil
}

func (r *SQLite) DeleteScheduleItem(ctx context.Context, id int64) error {
	if _, err := r.ExecContext(ctx, `DELETE FROM timetable WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete schedule item (id: %d): %w", id, err)
	}
	return nil
}

func (r *SQLite) DeleteScheduleForSubject(ctx context.Context, subjectID int64) error {
	if _, err := r.ExecContext(ctx, `DELETE FROM timetable WHERE subject_id = ?`, subjectID); err != nil {
		return fmt.Errorf("delete schedule (subject_id: %d): %w", subjectID, err)
	}
	return nil
}

func (r *SQLite) CreateExtraClass(ctx context.Context, extra *models.ExtraClass) error {
	query := r.psql.Insert("extra_classes").
		Columns("subject_id", "date", "start_time", "end_time", "location").
		Values(extra.SubjectID, extra.Date, extra.StartTime, extra.EndTime, extra.Location)

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("build SQL query (subject_id: %d, date: %s): %w", extra.SubjectID, extra.Date, err)
	}

	res, err := r.ExecContext(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("create extra class (subject_id: %d, date: %s): %w", extra.SubjectID, extra.Date, err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("extra class insert id (subject_id: %d): %w", extra.SubjectID, err)
	}
	extra.ID = id

	return nil
}

func (r *SQLite) GetExtraClassesForDate(ctx context.Context, date string) ([]*models.ExtraClass, error) {
	query := `
		SELECT id, subject_id, date, start_time, end_time, location
		FROM extra_classes
		WHERE date = ?
		ORDER BY start_time, id
	`

	var extras []*models.ExtraClass
	if err := r.SelectContext(ctx, &extras, query, date); err != nil {
		return nil, fmt.Errorf("query extra classes (date: %s): %w", date, err)
	}

	return extras, nil
}

func (r *SQLite) DeleteExtraClassesForSubject(ctx context.Context, subjectID int64) error {
	if _, err := r.ExecContext(ctx, `DELETE FROM extra_classes WHERE subject_id = ?`, subjectID); err != nil {
		return fmt.Errorf("delete extra classes (subject_id: %d): %w", subjectID, err)
	}
	return nil
}
