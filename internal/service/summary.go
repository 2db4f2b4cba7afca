package service

import (
	"context"
	"fmt"

	"basegraph.app/taskhub/internal/model"
)

type SummaryService interface {
	Get(ctx context.Context) (*model.Summary, error)
}

type summaryService struct {
	sessions SessionRunner
}

func NewSummaryService(sessions SessionRunner) SummaryService {
	return &summaryService{sessions: sessions}
}

// Get recomputes the summary from the current table contents on every call.
func (s *summaryService) Get(ctx context.Context) (*model.Summary, error) {
	var counts model.EntityCounts
	err := s.sessions.WithSession(ctx, func(stores StoreProvider) error {
		var err error
		counts, err = stores.Summary().Counts(ctx)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("counting entities: %w", err)
	}

	summary := model.Summarize(counts)
	return &summary, nil
}
