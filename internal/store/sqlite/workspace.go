package sqlite

import (
	"context"

	"basegraph.app/taskhub/internal/model"
)

type workspaceStore struct {
	q Querier
}

func (s *workspaceStore) GetByID(ctx context.Context, id int64) (*model.Workspace, error) {
	var ws model.Workspace
	err := s.q.QueryRowContext(ctx,
		`SELECT id, name, description FROM workspaces WHERE id = ?`, id,
	).Scan(&ws.ID, &ws.Name, &ws.Description)
	if err != nil {
		return nil, translateReadError(err)
	}
	return &ws, nil
}

func (s *workspaceStore) Create(ctx context.Context, ws *model.Workspace) error {
	err := s.q.QueryRowContext(ctx,
		`INSERT INTO workspaces (name, description) VALUES (?, ?) RETURNING id, name, description`,
		ws.Name, ws.Description,
	).Scan(&ws.ID, &ws.Name, &ws.Description)
	if err != nil {
		return translateWriteError(err)
	}
	return nil
}

func (s *workspaceStore) List(ctx context.Context) ([]model.Workspace, error) {
	rows, err := s.q.QueryContext(ctx, `SELECT id, name, description FROM workspaces ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	workspaces := []model.Workspace{}
	for rows.Next() {
		var ws model.Workspace
		if err := rows.Scan(&ws.ID, &ws.Name, &ws.Description); err != nil {
			return nil, err
		}
		workspaces = append(workspaces, ws)
	}
	return workspaces, rows.Err()
}
