package sqlite

import (
	"context"

	"basegraph.app/taskhub/internal/model"
)

type summaryStore struct {
	q Querier
}

func (s *summaryStore) Counts(ctx context.Context) (model.EntityCounts, error) {
	var c model.EntityCounts
	err := s.q.QueryRowContext(ctx, `SELECT
		(SELECT count(*) FROM users),
		(SELECT count(*) FROM workspaces),
		(SELECT count(*) FROM tasks),
		(SELECT count(*) FROM tasks WHERE completed = 1)`,
	).Scan(&c.Users, &c.Workspaces, &c.Tasks, &c.CompletedTasks)
	if err != nil {
		return model.EntityCounts{}, err
	}
	return c, nil
}
