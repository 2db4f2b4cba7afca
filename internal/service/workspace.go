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

type WorkspaceService interface {
	Create(ctx context.Context, name string, description *string) (*model.Workspace, error)
	List(ctx context.Context) ([]model.Workspace, error)
	AssignUser(ctx context.Context, workspaceID, userID int64) (*model.WorkspaceUser, error)
}

type workspaceService struct {
	sessions SessionRunner
	events   queue.Producer
}

func NewWorkspaceService(sessions SessionRunner, events queue.Producer) WorkspaceService {
	return &workspaceService{
		sessions: sessions,
		events:   events,
	}
}

func (s *workspaceService) Create(ctx context.Context, name string, description *string) (*model.Workspace, error) {
	ctx = logger.WithLogFields(ctx, logger.LogFields{Component: "taskhub.service.workspace"})

	in, err := validation.Workspace(name, description)
	if err != nil {
		return nil, err
	}

	ws := &model.Workspace{Name: in.Name, Description: in.Description}
	err = s.sessions.WithSession(ctx, func(stores StoreProvider) error {
		return stores.Workspaces().Create(ctx, ws)
	})
	if err != nil {
		slog.ErrorContext(ctx, "failed to create workspace", "error", err)
		return nil, fmt.Errorf("creating workspace: %w", err)
	}

	slog.InfoContext(ctx, "workspace created", "workspace_id", ws.ID)
	publish(ctx, s.events, queue.Event{Type: queue.EventTypeWorkspaceCreated, WorkspaceID: &ws.ID})
	return ws, nil
}

func (s *workspaceService) List(ctx context.Context) ([]model.Workspace, error) {
	var workspaces []model.Workspace
	err := s.sessions.WithSession(ctx, func(stores StoreProvider) error {
		var err error
		workspaces, err = stores.Workspaces().List(ctx)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("listing workspaces: %w", err)
	}
	return workspaces, nil
}

// AssignUser adds userID to workspaceID. Both must exist and the pair must not
// already be assigned. The checks and the insert share one session but no
// transaction; the UNIQUE constraint catches a concurrent duplicate.
func (s *workspaceService) AssignUser(ctx context.Context, workspaceID, userID int64) (*model.WorkspaceUser, error) {
	ctx = logger.WithLogFields(ctx, logger.LogFields{
		WorkspaceID: &workspaceID,
		UserID:      &userID,
		Component:   "taskhub.service.workspace",
	})

	sc := logger.StartSpan(ctx, "service.workspace.assign_user")
	defer sc.End()
	ctx = sc.Context()

	membership := &model.WorkspaceUser{WorkspaceID: workspaceID, UserID: userID}
	err := s.sessions.WithSession(ctx, func(stores StoreProvider) error {
		if _, err := stores.Workspaces().GetByID(ctx, workspaceID); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrWorkspaceNotFound
			}
			return fmt.Errorf("getting workspace: %w", err)
		}

		if _, err := stores.Users().GetByID(ctx, userID); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrUserNotFound
			}
			return fmt.Errorf("getting user: %w", err)
		}

		_, err := stores.WorkspaceUsers().Get(ctx, workspaceID, userID)
		if err == nil {
			return ErrUserAlreadyAssigned
		}
		if !errors.Is(err, store.ErrNotFound) {
			return fmt.Errorf("checking membership: %w", err)
		}

		if err := stores.WorkspaceUsers().Create(ctx, membership); err != nil {
			if errors.Is(err, store.ErrAlreadyExists) {
				return ErrUserAlreadyAssigned
			}
			return fmt.Errorf("creating membership: %w", err)
		}
		return nil
	})
	if err != nil {
		if isClientError(err) {
			slog.InfoContext(ctx, "user assignment rejected", "reason", err)
			return nil, err
		}
		sc.RecordError(err)
		slog.ErrorContext(ctx, "failed to assign user to workspace", "error", err)
		return nil, fmt.Errorf("assigning user: %w", err)
	}

	slog.InfoContext(ctx, "user assigned to workspace")
	publish(ctx, s.events, queue.Event{
		Type:        queue.EventTypeWorkspaceUserAdded,
		WorkspaceID: &workspaceID,
		UserID:      &userID,
	})
	return membership, nil
}
