package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/yourusername/rollcall/internal/models"
)

type taskRow struct {
	ID          int64   `db:"id"`
	Title       string  `db:"title"`
	Description *string `db:"description"`
	SubjectID   *int64  `db:"subject_id"`
	DueDate     string  `db:"due_date"`
	IsCompleted bool    `db:"is_completed"`
}

func (row taskRow) toModel() (*models.Task, error) {
	dueDate, err := time.Parse(time.RFC3339, row.DueDate)
	if err != nil {
		return nil, fmt.Errorf("parse tasks.due_date %q (id: %d): %w", row.DueDate, row.ID, err)
	}

	return &models.Task{
		ID:          row.ID,
		Title:       row.Title,
		Description: row.Description,
		SubjectID:   row.SubjectID,
		DueDate:     dueDate,
		IsCompleted: row.IsCompleted,
	}, nil
}

func (r *SQLite) CreateTask(ctx context.Context, task *models.Task) error {
	query := r.psql.Insert("tasks").
		Columns("title", "description", "subject_id", "due_date", "is_completed").
		Values(task.Title, task.Description, task.SubjectID, task.DueDate.UTC().Format(time.RFC3339), task.IsCompleted)

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("build SQL query (title: %s): %w", task.Title, err)
	}

	res, err := r.ExecContext(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("create task (title: %s): %w", task.Title, err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("task insert id (title: %s): %w", task.Title, err)
	}
	task.ID = id

	return nil
}

func (r *SQLite) GetTasks(ctx context.Context) ([]*models.Task, error) {
	query := `
		SELECT id, title, description, subject_id, due_date, is_completed
		FROM tasks
		ORDER BY due_date, id
	`

	var rows []taskRow
	if err := r.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("query tasks: %w", err)
	}

	tasks := make([]*models.Task, 0, len(rows))
	for _, row := range rows {
		task, err := row.toModel()
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}

	return tasks, nil
}

func (r *SQLite) ToggleTaskStatus(ctx context.Context, id int64) error {
	res, err := r.ExecContext(ctx, `UPDATE tasks SET is_completed = 1 - is_completed WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("toggle task status (id: %d): %w", id, err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("toggle task status (id: %d): %w", id, models.ErrNotFound)
	}
	return nil
}

func (r *SQLite) DeleteTask(ctx context.Context, id int64) error {
	if _, err := r.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete task (id: %d): %w", id, err)
	}
	return nil
}

// DetachTasksFromSubject keeps tasks alive when their subject is deleted;
// the subject link is optional on a task.
func (r *SQLite) DetachTasksFromSubject(ctx context.Context, subjectID int64) error {
	if _, err := r.ExecContext(ctx, `UPDATE tasks SET subject_id = NULL WHERE subject_id = ?`, subjectID); err != nil {
		return fmt.Errorf("detach tasks (subject_id: %d): %w", subjectID, err)
	}
	return nil
}
