package sqlite

import (
	"context"

	"basegraph.app/taskhub/internal/model"
)

type userStore struct {
	q Querier
}

func (s *userStore) GetByID(ctx context.Context, id int64) (*model.User, error) {
	var u model.User
	err := s.q.QueryRowContext(ctx,
		`SELECT id, name, email FROM users WHERE id = ?`, id,
	).Scan(&u.ID, &u.Name, &u.Email)
	if err != nil {
		return nil, translateReadError(err)
	}
	return &u, nil
}

func (s *userStore) Create(ctx context.Context, user *model.User) error {
	err := s.q.QueryRowContext(ctx,
		`INSERT INTO users (name, email) VALUES (?, ?) RETURNING id, name, email`,
		user.Name, user.Email,
	).Scan(&user.ID, &user.Name, &user.Email)
	if err != nil {
		return translateWriteError(err)
	}
	return nil
}

func (s *userStore) List(ctx context.Context) ([]model.User, error) {
	rows, err := s.q.QueryContext(ctx, `SELECT id, name, email FROM users ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	users := []model.User{}
	for rows.Next() {
		var u model.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Email); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}
