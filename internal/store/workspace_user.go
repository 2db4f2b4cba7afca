package store

import (
	"context"

	"basegraph.app/taskhub/core/db/sqlc"
	"basegraph.app/taskhub/internal/model"
)

type workspaceUserStore struct {
	queries *sqlc.Queries
}

func newWorkspaceUserStore(queries *sqlc.Queries) WorkspaceUserStore {
	return &workspaceUserStore{queries: queries}
}

func (s *workspaceUserStore) Get(ctx context.Context, workspaceID, userID int64) (*model.WorkspaceUser, error) {
	row, err := s.queries.GetWorkspaceUser(ctx, sqlc.GetWorkspaceUserParams{
		WorkspaceID: workspaceID,
		UserID:      userID,
	})
	if err != nil {
		return nil, translateReadError(err)
	}
	return toWorkspaceUserModel(row), nil
}

func (s *workspaceUserStore) Create(ctx context.Context, wu *model.WorkspaceUser) error {
	row, err := s.queries.CreateWorkspaceUser(ctx, sqlc.CreateWorkspaceUserParams{
		WorkspaceID: wu.WorkspaceID,
		UserID:      wu.UserID,
	})
	if err != nil {
		return translateWriteError(err)
	}
	*wu = *toWorkspaceUserModel(row)
	return nil
}

func toWorkspaceUserModel(row sqlc.WorkspaceUser) *model.WorkspaceUser {
	return &model.WorkspaceUser{
		ID:          row.ID,
		WorkspaceID: row.WorkspaceID,
		UserID:      row.UserID,
	}
}
