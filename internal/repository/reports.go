package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/yourusername/rollcall/internal/models"
)

// GetCalendarMarkers groups attendance by date, one marker per subject per
// date. A subject marked through two different instances on the same day
// still yields a single dot; DISTINCT does the dedup.
func (r *SQLite) GetCalendarMarkers(ctx context.Context) (map[string][]models.CalendarMarker, error) {
	query := `
		SELECT DISTINCT a.date, a.subject_id, s.color
		FROM attendance a
		JOIN subjects s ON s.id = a.subject_id
		ORDER BY a.date, a.subject_id
	`

	rows, err := r.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query calendar markers: %w", err)
	}
	defer rows.Close()

	markers := make(map[string][]models.CalendarMarker)
	for rows.Next() {
		var (
			date   string
			marker models.CalendarMarker
		)
		if err := rows.Scan(&date, &marker.SubjectID, &marker.Color); err != nil {
			return nil, fmt.Errorf("scan calendar marker row: %w", err)
		}
		markers[date] = append(markers[date], marker)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate calendar marker rows: %w", err)
	}

	return markers, nil
}

func (r *SQLite) GetFullAttendanceReport(ctx context.Context) ([]*models.AttendanceReportRow, error) {
	query := `
		SELECT a.date AS date,
		       s.name AS subject,
		       a.status AS status,
		       CASE WHEN a.extra_class_id IS NOT NULL THEN 'Extra Class' ELSE 'Regular' END AS type
		FROM attendance a
		JOIN subjects s ON s.id = a.subject_id
		ORDER BY a.date DESC, a.id DESC
	`

	var report []*models.AttendanceReportRow
	if err := r.SelectContext(ctx, &report, query); err != nil {
		return nil, fmt.Errorf("query attendance report: %w", err)
	}

	return report, nil
}

// semesterTables lists everything ClearSemesterData wipes, children before
// parents so foreign-key references are respected. users stays untouched.
var semesterTables = []string{
	"attendance",
	"tasks",
	"extra_classes",
	"timetable",
	"notifications",
	"subjects",
}

// ClearSemesterData empties the semester tables and resets their
// auto-increment sequences. Callers must run it inside a transaction so
// the reset is all-or-nothing.
func (r *SQLite) ClearSemesterData(ctx context.Context) error {
	for _, table := range semesterTables {
		if _, err := r.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("clear table %s: %w", table, err)
		}
	}

	// sqlite_sequence only exists once an AUTOINCREMENT table has seen an
	// insert; a missing table just means there is nothing to reset.
	placeholders := strings.Repeat("?, ", len(semesterTables)-1) + "?"
	args := make([]any, len(semesterTables))
	for i, table := range semesterTables {
		args[i] = table
	}
	_, err := r.ExecContext(ctx, "DELETE FROM sqlite_sequence WHERE name IN ("+placeholders+")", args...)
	if err != nil && !strings.Contains(err.Error(), "no such table") {
		return fmt.Errorf("reset sequences: %w", err)
	}

	return nil
}
