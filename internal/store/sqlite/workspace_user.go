package sqlite

import (
	"context"

	"basegraph.app/taskhub/internal/model"
)

type workspaceUserStore struct {
	q Querier
}

func (s *workspaceUserStore) Get(ctx context.Context, workspaceID, userID int64) (*model.WorkspaceUser, error) {
	var wu model.WorkspaceUser
	err := s.q.QueryRowContext(ctx,
		`SELECT id, workspace_id, user_id FROM workspace_users WHERE workspace_id = ? AND user_id = ?`,
		workspaceID, userID,
	).Scan(&wu.ID, &wu.WorkspaceID, &wu.UserID)
	if err != nil {
		return nil, translateReadError(err)
	}
	return &wu, nil
}

func (s *workspaceUserStore) Create(ctx context.Context, wu *model.WorkspaceUser) error {
	err := s.q.QueryRowContext(ctx,
		`INSERT INTO workspace_users (workspace_id, user_id) VALUES (?, ?) RETURNING id, workspace_id, user_id`,
		wu.WorkspaceID, wu.UserID,
	).Scan(&wu.ID, &wu.WorkspaceID, &wu.UserID)
	if err != nil {
		return translateWriteError(err)
	}
	return nil
}
