package sqlite

import (
	"context"

	"basegraph.app/taskhub/internal/model"
)

const taskColumns = `id, title, description, workspace_id, completed`

type taskStore struct {
	q Querier
}

func (s *taskStore) Create(ctx context.Context, task *model.Task) error {
	err := s.q.QueryRowContext(ctx,
		`INSERT INTO tasks (title, description, workspace_id) VALUES (?, ?, ?) RETURNING `+taskColumns,
		task.Title, task.Description, task.WorkspaceID,
	).Scan(&task.ID, &task.Title, &task.Description, &task.WorkspaceID, &task.Completed)
	if err != nil {
		return translateWriteError(err)
	}
	return nil
}

func (s *taskStore) ListByWorkspace(ctx context.Context, workspaceID int64) ([]model.Task, error) {
	rows, err := s.q.QueryContext(ctx,
		`SELECT `+taskColumns+` FROM tasks WHERE workspace_id = ? ORDER BY id`, workspaceID)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	tasks := []model.Task{}
	for rows.Next() {
		var t model.Task
		if err := rows.Scan(&t.ID, &t.Title, &t.Description, &t.WorkspaceID, &t.Completed); err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

func (s *taskStore) MarkCompleted(ctx context.Context, id int64) (*model.Task, error) {
	var t model.Task
	err := s.q.QueryRowContext(ctx,
		`UPDATE tasks SET completed = 1 WHERE id = ? RETURNING `+taskColumns, id,
	).Scan(&t.ID, &t.Title, &t.Description, &t.WorkspaceID, &t.Completed)
	if err != nil {
		return nil, translateReadError(err)
	}
	return &t, nil
}
