package service_test

import (
	"context"

	"basegraph.app/taskhub/internal/model"
	"basegraph.app/taskhub/internal/queue"
	"basegraph.app/taskhub/internal/service"
	"basegraph.app/taskhub/internal/store"
)

type mockUserStore struct {
	createFn  func(ctx context.Context, user *model.User) error
	getByIDFn func(ctx context.Context, id int64) (*model.User, error)
	listFn    func(ctx context.Context) ([]model.User, error)
}

func (m *mockUserStore) Create(ctx context.Context, user *model.User) error {
	if m.createFn != nil {
		return m.createFn(ctx, user)
	}
	return nil
}

func (m *mockUserStore) GetByID(ctx context.Context, id int64) (*model.User, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return &model.User{ID: id}, nil
}

func (m *mockUserStore) List(ctx context.Context) ([]model.User, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return []model.User{}, nil
}

type mockWorkspaceStore struct {
	createFn  func(ctx context.Context, ws *model.Workspace) error
	getByIDFn func(ctx context.Context, id int64) (*model.Workspace, error)
	listFn    func(ctx context.Context) ([]model.Workspace, error)
}

func (m *mockWorkspaceStore) Create(ctx context.Context, ws *model.Workspace) error {
	if m.createFn != nil {
		return m.createFn(ctx, ws)
	}
	return nil
}

func (m *mockWorkspaceStore) GetByID(ctx context.Context, id int64) (*model.Workspace, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return &model.Workspace{ID: id}, nil
}

func (m *mockWorkspaceStore) List(ctx context.Context) ([]model.Workspace, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return []model.Workspace{}, nil
}

type mockWorkspaceUserStore struct {
	getFn       func(ctx context.Context, workspaceID, userID int64) (*model.WorkspaceUser, error)
	createFn    func(ctx context.Context, wu *model.WorkspaceUser) error
	createCalls int
}

func (m *mockWorkspaceUserStore) Get(ctx context.Context, workspaceID, userID int64) (*model.WorkspaceUser, error) {
	if m.getFn != nil {
		return m.getFn(ctx, workspaceID, userID)
	}
	return nil, store.ErrNotFound
}

func (m *mockWorkspaceUserStore) Create(ctx context.Context, wu *model.WorkspaceUser) error {
	m.createCalls++
	if m.createFn != nil {
		return m.createFn(ctx, wu)
	}
	return nil
}

type mockTaskStore struct {
	createFn          func(ctx context.Context, task *model.Task) error
	listByWorkspaceFn func(ctx context.Context, workspaceID int64) ([]model.Task, error)
	markCompletedFn   func(ctx context.Context, id int64) (*model.Task, error)
}

func (m *mockTaskStore) Create(ctx context.Context, task *model.Task) error {
	if m.createFn != nil {
		return m.createFn(ctx, task)
	}
	return nil
}

func (m *mockTaskStore) ListByWorkspace(ctx context.Context, workspaceID int64) ([]model.Task, error) {
	if m.listByWorkspaceFn != nil {
		return m.listByWorkspaceFn(ctx, workspaceID)
	}
	return []model.Task{}, nil
}

func (m *mockTaskStore) MarkCompleted(ctx context.Context, id int64) (*model.Task, error) {
	if m.markCompletedFn != nil {
		return m.markCompletedFn(ctx, id)
	}
	return &model.Task{ID: id, Completed: true}, nil
}

type mockSummaryStore struct {
	countsFn func(ctx context.Context) (model.EntityCounts, error)
}

func (m *mockSummaryStore) Counts(ctx context.Context) (model.EntityCounts, error) {
	if m.countsFn != nil {
		return m.countsFn(ctx)
	}
	return model.EntityCounts{}, nil
}

type mockStoreProvider struct {
	users          *mockUserStore
	workspaces     *mockWorkspaceStore
	workspaceUsers *mockWorkspaceUserStore
	tasks          *mockTaskStore
	summary        *mockSummaryStore
}

func newMockStoreProvider() *mockStoreProvider {
	return &mockStoreProvider{
		users:          &mockUserStore{},
		workspaces:     &mockWorkspaceStore{},
		workspaceUsers: &mockWorkspaceUserStore{},
		tasks:          &mockTaskStore{},
		summary:        &mockSummaryStore{},
	}
}

func (m *mockStoreProvider) Users() store.UserStore                   { return m.users }
func (m *mockStoreProvider) Workspaces() store.WorkspaceStore         { return m.workspaces }
func (m *mockStoreProvider) WorkspaceUsers() store.WorkspaceUserStore { return m.workspaceUsers }
func (m *mockStoreProvider) Tasks() store.TaskStore                   { return m.tasks }
func (m *mockStoreProvider) Summary() store.SummaryStore              { return m.summary }

// mockSessionRunner hands the same provider to every session and counts them.
type mockSessionRunner struct {
	stores   *mockStoreProvider
	sessions int
}

func (m *mockSessionRunner) WithSession(_ context.Context, fn func(stores service.StoreProvider) error) error {
	m.sessions++
	return fn(m.stores)
}

type mockProducer struct {
	published []queue.Event
	err       error
}

func (m *mockProducer) Publish(_ context.Context, event queue.Event) error {
	m.published = append(m.published, event)
	return m.err
}

func (m *mockProducer) Close() error {
	return nil
}
