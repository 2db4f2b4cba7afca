package store

import (
	"context"

	"basegraph.app/taskhub/core/db/sqlc"
	"basegraph.app/taskhub/internal/model"
)

type summaryStore struct {
	queries *sqlc.Queries
}

func newSummaryStore(queries *sqlc.Queries) SummaryStore {
	return &summaryStore{queries: queries}
}

func (s *summaryStore) Counts(ctx context.Context) (model.EntityCounts, error) {
	row, err := s.queries.CountEntities(ctx)
	if err != nil {
		return model.EntityCounts{}, err
	}
	return model.EntityCounts{
		Users:          row.Users,
		Workspaces:     row.Workspaces,
		Tasks:          row.Tasks,
		CompletedTasks: row.CompletedTasks,
	}, nil
}
