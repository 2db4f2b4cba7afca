package store

import (
	"context"

	"basegraph.app/taskhub/core/db/sqlc"
	"basegraph.app/taskhub/internal/model"
)

type taskStore struct {
	queries *sqlc.Queries
}

func newTaskStore(queries *sqlc.Queries) TaskStore {
	return &taskStore{queries: queries}
}

func (s *taskStore) Create(ctx context.Context, task *model.Task) error {
	row, err := s.queries.CreateTask(ctx, sqlc.CreateTaskParams{
		Title:       task.Title,
		Description: task.Description,
		WorkspaceID: task.WorkspaceID,
	})
	if err != nil {
		return translateWriteError(err)
	}
	*task = *toTaskModel(row)
	return nil
}

func (s *taskStore) ListByWorkspace(ctx context.Context, workspaceID int64) ([]model.Task, error) {
	rows, err := s.queries.ListTasksByWorkspace(ctx, workspaceID)
	if err != nil {
		return nil, err
	}
	result := make([]model.Task, len(rows))
	for i, row := range rows {
		result[i] = *toTaskModel(row)
	}
	return result, nil
}

// MarkCompleted sets completed=true; calling it on a completed task is a no-op.
func (s *taskStore) MarkCompleted(ctx context.Context, id int64) (*model.Task, error) {
	row, err := s.queries.CompleteTask(ctx, id)
	if err != nil {
		return nil, translateReadError(err)
	}
	return toTaskModel(row), nil
}

func toTaskModel(row sqlc.Task) *model.Task {
	return &model.Task{
		ID:          row.ID,
		Title:       row.Title,
		Description: row.Description,
		WorkspaceID: row.WorkspaceID,
		Completed:   row.Completed,
	}
}
