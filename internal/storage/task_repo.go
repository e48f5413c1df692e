package storage

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"chorepet/internal/model"
	"chorepet/internal/task"
)

// querier is satisfied by both *sql.DB and *sql.Tx, so the same repo code
// runs standalone or inside a transaction.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// TaskRepo is the sqlite implementation of task.Repo.
type TaskRepo struct {
	q querier
}

func NewTaskRepo(q querier) *TaskRepo {
	return &TaskRepo{q: q}
}

func (r *TaskRepo) Create(ctx context.Context, t model.Task) (model.Task, error) {
	res, err := r.q.ExecContext(ctx, `
		INSERT INTO tasks (task_name, task_date, task_difficulty, task_completed)
		VALUES (?, ?, ?, ?)
	`, t.Name, t.Date, t.Difficulty, boolToInt(t.Completed))
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint") {
			return model.Task{}, task.ErrDuplicate
		}
		return model.Task{}, fmt.Errorf("task insert: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return model.Task{}, fmt.Errorf("task last insert id: %w", err)
	}
	t.ID = int(id)
	return t, nil
}

func (r *TaskRepo) Get(ctx context.Context, id int) (model.Task, error) {
	row := r.q.QueryRowContext(ctx, `
		SELECT id, task_name, task_date, task_difficulty, task_completed
		FROM tasks
		WHERE id = ?
	`, id)

	t, err := scanTask(row)
	if err == sql.ErrNoRows {
		return model.Task{}, task.ErrNotFound
	}
	if err != nil {
		return model.Task{}, fmt.Errorf("task get: %w", err)
	}
	return t, nil
}

func (r *TaskRepo) List(ctx context.Context, filter task.ListFilter) ([]model.Task, error) {
	query := `
		SELECT id, task_name, task_date, task_difficulty, task_completed
		FROM tasks`
	var (
		where []string
		args  []any
	)

	if filter.Date != "" {
		where = append(where, "task_date = ?")
		args = append(args, filter.Date)
	}
	switch strings.ToLower(strings.TrimSpace(filter.Status)) {
	case "overdue":
		where = append(where, "task_date < ?", "task_completed = 0")
		args = append(args, filter.Today)
	case "upcoming":
		where = append(where, "task_date > ?")
		args = append(args, filter.Today)
	}

	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY task_date ASC, id ASC"

	rows, err := r.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("task list: %w", err)
	}
	defer rows.Close()

	var out []model.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("task scan: %w", err)
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("task list rows: %w", err)
	}
	return out, nil
}

func (r *TaskRepo) SetCompleted(ctx context.Context, id int, completed bool) error {
	res, err := r.q.ExecContext(ctx,
		`UPDATE tasks SET task_completed = ? WHERE id = ?`, boolToInt(completed), id)
	if err != nil {
		return fmt.Errorf("task set completed: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("task set completed rows: %w", err)
	}
	if n == 0 {
		return task.ErrNotFound
	}
	return nil
}

func (r *TaskRepo) Delete(ctx context.Context, id int) error {
	res, err := r.q.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("task delete: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("task delete rows: %w", err)
	}
	if n == 0 {
		return task.ErrNotFound
	}
	return nil
}

func (r *TaskRepo) Exists(ctx context.Context, name, date string) (bool, error) {
	row := r.q.QueryRowContext(ctx,
		`SELECT 1 FROM tasks WHERE task_name = ? AND task_date = ? LIMIT 1`, name, date)
	var one int
	if err := row.Scan(&one); err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, fmt.Errorf("task exists: %w", err)
	}
	return true, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanTask(row scanner) (model.Task, error) {
	var (
		t         model.Task
		completed int
	)
	if err := row.Scan(&t.ID, &t.Name, &t.Date, &t.Difficulty, &completed); err != nil {
		return model.Task{}, err
	}
	t.Completed = completed != 0
	return t, nil
}

func boolToInt(v bool) int {
	if v {
		return 1
	}
	return 0
}
