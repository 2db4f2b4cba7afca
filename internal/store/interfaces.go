package store

import (
	"context"
	"errors"

	"basegraph.app/taskhub/internal/model"
)

// ErrNotFound is returned when a requested entity does not exist
var ErrNotFound = errors.New("not found")

// ErrAlreadyExists is returned when a write violates a uniqueness constraint
var ErrAlreadyExists = errors.New("already exists")

// ErrInvalidReference is returned when a write points at a row that does not exist
var ErrInvalidReference = errors.New("invalid reference")

// UserStore defines the contract for user data access
type UserStore interface {
	GetByID(ctx context.Context, id int64) (*model.User, error)
	Create(ctx context.Context, user *model.User) error
	List(ctx context.Context) ([]model.User, error)
}

// WorkspaceStore defines the contract for workspace data access
type WorkspaceStore interface {
	GetByID(ctx context.Context, id int64) (*model.Workspace, error)
	Create(ctx context.Context, ws *model.Workspace) error
	List(ctx context.Context) ([]model.Workspace, error)
}

// WorkspaceUserStore defines the contract for workspace membership data access
type WorkspaceUserStore interface {
	Get(ctx context.Context, workspaceID, userID int64) (*model.WorkspaceUser, error)
	Create(ctx context.Context, wu *model.WorkspaceUser) error
}

// TaskStore defines the contract for task data access
type TaskStore interface {
	Create(ctx context.Context, task *model.Task) error
	ListByWorkspace(ctx context.Context, workspaceID int64) ([]model.Task, error)
	MarkCompleted(ctx context.Context, id int64) (*model.Task, error)
}

// SummaryStore reads aggregate counts across all tables
type SummaryStore interface {
	Counts(ctx context.Context) (model.EntityCounts, error)
}
