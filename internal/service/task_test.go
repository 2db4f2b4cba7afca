package service_test

import (
	"context"
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"basegraph.app/taskhub/internal/model"
	"basegraph.app/taskhub/internal/queue"
	"basegraph.app/taskhub/internal/service"
	"basegraph.app/taskhub/internal/store"
	"basegraph.app/taskhub/internal/validation"
)

var _ = Describe("TaskService", func() {
	var (
		ctx      context.Context
		stores   *mockStoreProvider
		sessions *mockSessionRunner
		events   *mockProducer
		svc      service.TaskService
	)

	BeforeEach(func() {
		ctx = context.Background()
		stores = newMockStoreProvider()
		sessions = &mockSessionRunner{stores: stores}
		events = &mockProducer{}
		svc = service.NewTaskService(sessions, events)
	})

	Describe("Create", func() {
		It("creates an incomplete task in the workspace", func() {
			desc := " first draft "
			stores.tasks.createFn = func(_ context.Context, t *model.Task) error {
				t.ID = 10
				return nil
			}

			task, err := svc.Create(ctx, " Write spec ", &desc, 1)

			Expect(err).NotTo(HaveOccurred())
			Expect(task.ID).To(Equal(int64(10)))
			Expect(task.Title).To(Equal("Write spec"))
			Expect(*task.Description).To(Equal("first draft"))
			Expect(task.WorkspaceID).To(Equal(int64(1)))
			Expect(task.Completed).To(BeFalse())

			Expect(events.published).To(HaveLen(1))
			Expect(events.published[0].Type).To(Equal(queue.EventTypeTaskCreated))
			Expect(*events.published[0].TaskID).To(Equal(int64(10)))
		})

		It("validates before checking the workspace", func() {
			_, err := svc.Create(ctx, "ab", nil, 1)

			var vErr *validation.Error
			Expect(errors.As(err, &vErr)).To(BeTrue())
			Expect(vErr.Field).To(Equal("title"))
			Expect(sessions.sessions).To(BeZero())
		})

		It("reports a missing workspace", func() {
			stores.workspaces.getByIDFn = func(_ context.Context, _ int64) (*model.Workspace, error) {
				return nil, store.ErrNotFound
			}

			_, err := svc.Create(ctx, "Write spec", nil, 42)

			Expect(err).To(MatchError(service.ErrWorkspaceNotFound))
		})

		It("maps a foreign key failure to a missing workspace", func() {
			stores.tasks.createFn = func(_ context.Context, _ *model.Task) error {
				return store.ErrInvalidReference
			}

			_, err := svc.Create(ctx, "Write spec", nil, 42)

			Expect(err).To(MatchError(service.ErrWorkspaceNotFound))
		})
	})

	Describe("ListByWorkspace", func() {
		It("passes the workspace filter through", func() {
			var filtered int64
			stores.tasks.listByWorkspaceFn = func(_ context.Context, workspaceID int64) ([]model.Task, error) {
				filtered = workspaceID
				return []model.Task{{ID: 1, WorkspaceID: workspaceID}}, nil
			}

			tasks, err := svc.ListByWorkspace(ctx, 7)

			Expect(err).NotTo(HaveOccurred())
			Expect(filtered).To(Equal(int64(7)))
			Expect(tasks).To(HaveLen(1))
		})
	})

	Describe("MarkComplete", func() {
		It("returns the completed task and publishes task.completed", func() {
			stores.tasks.markCompletedFn = func(_ context.Context, id int64) (*model.Task, error) {
				return &model.Task{ID: id, Title: "Write spec", WorkspaceID: 1, Completed: true}, nil
			}

			task, err := svc.MarkComplete(ctx, 4)

			Expect(err).NotTo(HaveOccurred())
			Expect(task.Completed).To(BeTrue())
			Expect(events.published).To(HaveLen(1))
			Expect(events.published[0].Type).To(Equal(queue.EventTypeTaskCompleted))
			Expect(*events.published[0].WorkspaceID).To(Equal(int64(1)))
		})

		It("reports a missing task", func() {
			stores.tasks.markCompletedFn = func(_ context.Context, _ int64) (*model.Task, error) {
				return nil, store.ErrNotFound
			}

			task, err := svc.MarkComplete(ctx, 404)

			Expect(err).To(MatchError(service.ErrTaskNotFound))
			Expect(task).To(BeNil())
			Expect(events.published).To(BeEmpty())
		})
	})
})
