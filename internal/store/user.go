package store

import (
	"context"

	"basegraph.app/taskhub/core/db/sqlc"
	"basegraph.app/taskhub/internal/model"
)

type userStore struct {
	queries *sqlc.Queries
}

func newUserStore(queries *sqlc.Queries) UserStore {
	return &userStore{queries: queries}
}

func (s *userStore) GetByID(ctx context.Context, id int64) (*model.User, error) {
	row, err := s.queries.GetUser(ctx, id)
	if err != nil {
		return nil, translateReadError(err)
	}
	return toUserModel(row), nil
}

func (s *userStore) Create(ctx context.Context, user *model.User) error {
	row, err := s.queries.CreateUser(ctx, sqlc.CreateUserParams{
		Name:  user.Name,
		Email: user.Email,
	})
	if err != nil {
		return translateWriteError(err)
	}
	*user = *toUserModel(row)
	return nil
}

func (s *userStore) List(ctx context.Context) ([]model.User, error) {
	rows, err := s.queries.ListUsers(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]model.User, len(rows))
	for i, row := range rows {
		result[i] = *toUserModel(row)
	}
	return result, nil
}

func toUserModel(row sqlc.User) *model.User {
	return &model.User{
		ID:    row.ID,
		Name:  row.Name,
		Email: row.Email,
	}
}
