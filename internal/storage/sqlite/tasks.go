package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/SchwenderOne/roscher4gpt5/internal/models"
)

const taskColumns = "id, kind, name, detail, notes, last_completed, frequency_days, assignee, created_at, updated_at"

func scanTask(row rowScanner) (*models.RecurringTask, error) {
	task := &models.RecurringTask{}
	var kind string
	err := row.Scan(
		&task.ID,
		&kind,
		&task.Name,
		&task.Detail,
		&task.Notes,
		&task.LastCompleted,
		&task.FrequencyDays,
		&task.Assignee,
		&task.CreatedAt,
		&task.UpdatedAt,
	)
	task.Kind = models.TaskKind(kind)
	return task, err
}

// CreateTask persists a new recurring task.
func (s *SQLiteStore) CreateTask(ctx context.Context, task *models.RecurringTask) error {
	if task.ID == "" {
		task.ID = newID()
	}
	if task.CreatedAt == 0 {
		task.CreatedAt = unixNow()
	}
	task.UpdatedAt = task.CreatedAt

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO tasks (`+taskColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		task.ID, string(task.Kind), task.Name, task.Detail, task.Notes,
		task.LastCompleted, task.FrequencyDays, task.Assignee,
		task.CreatedAt, task.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert task: %w", err)
	}
	return nil
}

// GetTask retrieves a task by ID.
func (s *SQLiteStore) GetTask(ctx context.Context, id string) (*models.RecurringTask, error) {
	task, err := scanTask(s.db.QueryRowContext(ctx, `SELECT `+taskColumns+` FROM tasks WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, notFound("task", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get task: %w", err)
	}
	return task, nil
}

// ListTasks returns tasks of one kind (or all kinds when kind is empty),
// ordered by name.
func (s *SQLiteStore) ListTasks(ctx context.Context, kind models.TaskKind) ([]*models.RecurringTask, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks`
	var args []any
	if kind != "" {
		query += ` WHERE kind = ?`
		args = append(args, string(kind))
	}
	query += ` ORDER BY name COLLATE NOCASE, id`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	defer rows.Close()

	var tasks []*models.RecurringTask
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan task: %w", err)
		}
		tasks = append(tasks, task)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate tasks: %w", err)
	}
	return tasks, nil
}

// UpdateTask overwrites an existing task. The last write wins.
func (s *SQLiteStore) UpdateTask(ctx context.Context, task *models.RecurringTask) error {
	task.UpdatedAt = unixNow()
	res, err := s.db.ExecContext(ctx,
		`UPDATE tasks SET kind = ?, name = ?, detail = ?, notes = ?, last_completed = ?,
		 frequency_days = ?, assignee = ?, updated_at = ? WHERE id = ?`,
		string(task.Kind), task.Name, task.Detail, task.Notes, task.LastCompleted,
		task.FrequencyDays, task.Assignee, task.UpdatedAt, task.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update task: %w", err)
	}
	return checkAffected(res, "task", task.ID)
}

// DeleteTask removes a task by ID.
func (s *SQLiteStore) DeleteTask(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM tasks WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	return checkAffected(res, "task", id)
}
