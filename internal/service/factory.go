package service

import (
	"context"
	"log/slog"

	"basegraph.app/taskhub/common/logger"
	"basegraph.app/taskhub/internal/queue"
)

type ServicesConfig struct {
	Sessions SessionRunner
	Events   queue.Producer
}

type Services struct {
	sessions SessionRunner
	events   queue.Producer
}

func NewServices(cfg ServicesConfig) *Services {
	events := cfg.Events
	if events == nil {
		events = queue.NewNoopProducer()
	}
	return &Services{
		sessions: cfg.Sessions,
		events:   events,
	}
}

func (s *Services) Users() UserService {
	return NewUserService(s.sessions, s.events)
}

func (s *Services) Workspaces() WorkspaceService {
	return NewWorkspaceService(s.sessions, s.events)
}

func (s *Services) Tasks() TaskService {
	return NewTaskService(s.sessions, s.events)
}

func (s *Services) Summary() SummaryService {
	return NewSummaryService(s.sessions)
}

// publish is best-effort: a failed publish is logged and never fails the write.
func publish(ctx context.Context, events queue.Producer, event queue.Event) {
	if event.RequestID == nil {
		event.RequestID = logger.GetLogFields(ctx).RequestID
	}
	if err := events.Publish(ctx, event); err != nil {
		slog.WarnContext(ctx, "failed to publish event",
			"error", err,
			"event_type", event.Type,
		)
	}
}
