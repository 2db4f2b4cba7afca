package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"basegraph.app/taskhub/common/logger"
	"basegraph.app/taskhub/internal/model"
	"basegraph.app/taskhub/internal/queue"
	"basegraph.app/taskhub/internal/store"
	"basegraph.app/taskhub/internal/validation"
)

type TaskService interface {
	Create(ctx context.Context, title string, description *string, workspaceID int64) (*model.Task, error)
	ListByWorkspace(ctx context.Context, workspaceID int64) ([]model.Task, error)
	MarkComplete(ctx context.Context, id int64) (*model.Task, error)
}

type taskService struct {
	sessions SessionRunner
	events   queue.Producer
}

func NewTaskService(sessions SessionRunner, events queue.Producer) TaskService {
	return &taskService{
		sessions: sessions,
		events:   events,
	}
}

func (s *taskService) Create(ctx context.Context, title string, description *string, workspaceID int64) (*model.Task, error) {
	ctx = logger.WithLogFields(ctx, logger.LogFields{
		WorkspaceID: &workspaceID,
		Component:   "taskhub.service.task",
	})

	in, err := validation.Task(title, description)
	if err != nil {
		return nil, err
	}

	sc := logger.StartSpan(ctx, "service.task.create")
	defer sc.End()
	ctx = sc.Context()

	task := &model.Task{
		Title:       in.Title,
		Description: in.Description,
		WorkspaceID: workspaceID,
	}
	err = s.sessions.WithSession(ctx, func(stores StoreProvider) error {
		if _, err := stores.Workspaces().GetByID(ctx, workspaceID); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrWorkspaceNotFound
			}
			return fmt.Errorf("getting workspace: %w", err)
		}

		if err := stores.Tasks().Create(ctx, task); err != nil {
			if errors.Is(err, store.ErrInvalidReference) {
				return ErrWorkspaceNotFound
			}
			return err
		}
		return nil
	})
	if err != nil {
		if isClientError(err) {
			return nil, err
		}
		sc.RecordError(err)
		slog.ErrorContext(ctx, "failed to create task", "error", err)
		return nil, fmt.Errorf("creating task: %w", err)
	}

	slog.InfoContext(ctx, "task created", "task_id", task.ID)
	publish(ctx, s.events, queue.Event{
		Type:        queue.EventTypeTaskCreated,
		WorkspaceID: &workspaceID,
		TaskID:      &task.ID,
	})
	return task, nil
}

func (s *taskService) ListByWorkspace(ctx context.Context, workspaceID int64) ([]model.Task, error) {
	var tasks []model.Task
	err := s.sessions.WithSession(ctx, func(stores StoreProvider) error {
		var err error
		tasks, err = stores.Tasks().ListByWorkspace(ctx, workspaceID)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("listing tasks: %w", err)
	}
	return tasks, nil
}

// MarkComplete sets completed=true. It does not toggle, so repeating it is harmless.
func (s *taskService) MarkComplete(ctx context.Context, id int64) (*model.Task, error) {
	ctx = logger.WithLogFields(ctx, logger.LogFields{
		TaskID:    &id,
		Component: "taskhub.service.task",
	})

	var task *model.Task
	err := s.sessions.WithSession(ctx, func(stores StoreProvider) error {
		var err error
		task, err = stores.Tasks().MarkCompleted(ctx, id)
		if errors.Is(err, store.ErrNotFound) {
			return ErrTaskNotFound
		}
		return err
	})
	if err != nil {
		if isClientError(err) {
			return nil, err
		}
		slog.ErrorContext(ctx, "failed to complete task", "error", err)
		return nil, fmt.Errorf("completing task: %w", err)
	}

	slog.InfoContext(ctx, "task completed")
	publish(ctx, s.events, queue.Event{
		Type:        queue.EventTypeTaskCompleted,
		WorkspaceID: &task.WorkspaceID,
		TaskID:      &task.ID,
	})
	return task, nil
}
