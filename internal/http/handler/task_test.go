package handler_test

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"basegraph.app/taskhub/internal/http/handler"
	"basegraph.app/taskhub/internal/model"
	"basegraph.app/taskhub/internal/service"
)

var _ = Describe("TaskHandler", func() {
	var (
		router *gin.Engine
		svc    *mockTaskService
	)

	BeforeEach(func() {
		gin.SetMode(gin.TestMode)
		router = gin.New()
		svc = &mockTaskService{}
		h := handler.NewTaskHandler(svc)
		router.POST("/tasks", h.Create)
		router.GET("/tasks", h.List)
		router.PATCH("/tasks/:id", h.MarkComplete)
	})

	serve := func(method, path, body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
		if body != "" {
			req.Header.Set("Content-Type", "application/json")
		}
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	Describe("Create", func() {
		It("returns the new task", func() {
			svc.createFn = func(_ context.Context, title string, _ *string, workspaceID int64) (*model.Task, error) {
				return &model.Task{ID: 1, Title: title, WorkspaceID: workspaceID}, nil
			}

			w := serve(http.MethodPost, "/tasks", `{"title":"Write spec","workspace_id":1}`)

			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(w.Body.String()).To(MatchJSON(
				`{"id":1,"title":"Write spec","description":null,"workspace_id":1,"completed":false}`))
		})

		It("requires workspace_id", func() {
			w := serve(http.MethodPost, "/tasks", `{"title":"Write spec"}`)

			Expect(w.Code).To(Equal(http.StatusBadRequest))
			Expect(w.Body.String()).To(ContainSubstring("workspace_id"))
		})

		It("returns 404 when the workspace does not exist", func() {
			svc.createFn = func(_ context.Context, _ string, _ *string, _ int64) (*model.Task, error) {
				return nil, service.ErrWorkspaceNotFound
			}

			w := serve(http.MethodPost, "/tasks", `{"title":"Write spec","workspace_id":99}`)

			Expect(w.Code).To(Equal(http.StatusNotFound))
		})
	})

	Describe("List", func() {
		It("filters by workspaceId", func() {
			svc.listByWorkspaceFn = func(_ context.Context, workspaceID int64) ([]model.Task, error) {
				return []model.Task{{ID: 2, Title: "Deploy", WorkspaceID: workspaceID}}, nil
			}

			w := serve(http.MethodGet, "/tasks?workspaceId=4", "")

			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(w.Body.String()).To(MatchJSON(
				`[{"id":2,"title":"Deploy","description":null,"workspace_id":4,"completed":false}]`))
		})

		DescribeTable("rejects a bad workspaceId",
			func(query string) {
				w := serve(http.MethodGet, "/tasks"+query, "")
				Expect(w.Code).To(Equal(http.StatusBadRequest))
			},
			Entry("absent", ""),
			Entry("not a number", "?workspaceId=abc"),
			Entry("a fraction", "?workspaceId=1.5"),
		)

		DescribeTable("passes any integer workspaceId through",
			func(query string, want int64) {
				var got int64 = -99
				svc.listByWorkspaceFn = func(_ context.Context, workspaceID int64) ([]model.Task, error) {
					got = workspaceID
					return []model.Task{}, nil
				}

				w := serve(http.MethodGet, "/tasks"+query, "")

				Expect(w.Code).To(Equal(http.StatusOK))
				Expect(w.Body.String()).To(MatchJSON(`[]`))
				Expect(got).To(Equal(want))
			},
			Entry("zero", "?workspaceId=0", int64(0)),
			Entry("negative", "?workspaceId=-3", int64(-3)),
		)
	})

	Describe("MarkComplete", func() {
		It("returns the completed task", func() {
			svc.markCompleteFn = func(_ context.Context, id int64) (*model.Task, error) {
				return &model.Task{ID: id, Title: "Write spec", WorkspaceID: 1, Completed: true}, nil
			}

			w := serve(http.MethodPatch, "/tasks/1", "")

			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(w.Body.String()).To(ContainSubstring(`"completed":true`))
		})

		It("returns 404 for an unknown task", func() {
			svc.markCompleteFn = func(_ context.Context, id int64) (*model.Task, error) {
				return nil, fmt.Errorf("task %d: %w", id, service.ErrTaskNotFound)
			}

			w := serve(http.MethodPatch, "/tasks/77", "")

			Expect(w.Code).To(Equal(http.StatusNotFound))
			Expect(w.Body.String()).To(MatchJSON(`{"error":"Task not found"}`))
		})
	})
})
