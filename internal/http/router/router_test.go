package router_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"basegraph.app/taskhub/common/metrics"
	dbsqlite "basegraph.app/taskhub/core/db/sqlite"
	"basegraph.app/taskhub/internal/http/middleware"
	httprouter "basegraph.app/taskhub/internal/http/router"
	"basegraph.app/taskhub/internal/service"
)

var _ = Describe("API against SQLite", func() {
	var (
		engine   *gin.Engine
		database *dbsqlite.DB
	)

	BeforeEach(func() {
		var err error
		database, err = dbsqlite.Open(context.Background(), dbsqlite.Config{Path: dbsqlite.MemoryPath})
		Expect(err).NotTo(HaveOccurred())
		DeferCleanup(database.Close)

		services := service.NewServices(service.ServicesConfig{
			Sessions: service.NewSQLiteSessionRunner(database),
		})

		reg := metrics.NewRegistry()
		gin.SetMode(gin.TestMode)
		engine = gin.New()
		engine.Use(middleware.Recovery())
		engine.Use(middleware.Metrics(metrics.NewHTTP(reg)))
		httprouter.SetupRoutes(engine, services, httprouter.RouterConfig{
			MetricsHandler: metrics.Handler(reg),
		})
	})

	do := func(method, path string, body any) *httptest.ResponseRecorder {
		var buf bytes.Buffer
		if body != nil {
			Expect(json.NewEncoder(&buf).Encode(body)).To(Succeed())
		}
		req := httptest.NewRequest(method, path, &buf)
		if body != nil {
			req.Header.Set("Content-Type", "application/json")
		}
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)
		return w
	}

	It("runs the workspace, task and summary flow", func() {
		w := do(http.MethodPost, "/workspaces", map[string]any{"name": "Eng"})
		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(w.Body.String()).To(MatchJSON(`{"id":1,"name":"Eng","description":null}`))

		w = do(http.MethodPost, "/tasks", map[string]any{"title": "Write spec", "workspace_id": 1})
		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(w.Body.String()).To(MatchJSON(
			`{"id":1,"title":"Write spec","description":null,"workspace_id":1,"completed":false}`))

		w = do(http.MethodPatch, "/tasks/1", nil)
		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(w.Body.String()).To(ContainSubstring(`"completed":true`))

		w = do(http.MethodGet, "/summary", nil)
		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(w.Body.String()).To(MatchJSON(
			`{"users":0,"workspaces":1,"tasks":{"total":1,"completed":1,"pending":0}}`))
	})

	It("assigns a user once", func() {
		Expect(do(http.MethodPost, "/users", map[string]any{"name": "Ada", "email": "ada@example.com"}).Code).
			To(Equal(http.StatusOK))
		Expect(do(http.MethodPost, "/workspaces", map[string]any{"name": "Eng"}).Code).
			To(Equal(http.StatusOK))

		w := do(http.MethodPost, "/workspaces/1/users?user_id=1", nil)
		Expect(w.Code).To(Equal(http.StatusOK))

		w = do(http.MethodPost, "/workspaces/1/users", map[string]any{"user_id": 1})
		Expect(w.Code).To(Equal(http.StatusBadRequest))
		Expect(w.Body.String()).To(MatchJSON(`{"error":"User already assigned to workspace"}`))

		Expect(do(http.MethodPost, "/workspaces/1/users?user_id=9", nil).Code).To(Equal(http.StatusNotFound))
		Expect(do(http.MethodPost, "/workspaces/9/users?user_id=1", nil).Code).To(Equal(http.StatusNotFound))
	})

	It("writes nothing for a task in a missing workspace", func() {
		w := do(http.MethodPost, "/tasks", map[string]any{"title": "Orphan", "workspace_id": 42})
		Expect(w.Code).To(Equal(http.StatusNotFound))
		Expect(w.Body.String()).To(MatchJSON(`{"error":"Workspace not found"}`))

		w = do(http.MethodGet, "/summary", nil)
		Expect(w.Body.String()).To(ContainSubstring(`"total":0`))
	})

	It("validates before checking references", func() {
		w := do(http.MethodPost, "/users", map[string]any{"name": "A", "email": "ada@example.com"})
		Expect(w.Code).To(Equal(http.StatusBadRequest))
		Expect(w.Body.String()).To(MatchJSON(`{"error":"Name must be at least 2 characters long","field":"name"}`))

		w = do(http.MethodGet, "/users", nil)
		Expect(w.Body.String()).To(MatchJSON(`[]`))
	})

	It("keeps an empty description distinct from an absent one", func() {
		w := do(http.MethodPost, "/workspaces", map[string]any{"name": "Eng", "description": ""})
		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(w.Body.String()).To(MatchJSON(`{"id":1,"name":"Eng","description":""}`))

		w = do(http.MethodPost, "/tasks", map[string]any{"title": "Plan", "description": "  ", "workspace_id": 1})
		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(w.Body.String()).To(MatchJSON(
			`{"id":1,"title":"Plan","description":"","workspace_id":1,"completed":false}`))

		w = do(http.MethodGet, "/workspaces", nil)
		Expect(w.Body.String()).To(MatchJSON(`[{"id":1,"name":"Eng","description":""}]`))
	})

	It("lists tasks for any integer workspace id", func() {
		Expect(do(http.MethodPost, "/workspaces", map[string]any{"name": "Eng"}).Code).To(Equal(http.StatusOK))
		Expect(do(http.MethodPost, "/tasks", map[string]any{"title": "Plan", "workspace_id": 1}).Code).
			To(Equal(http.StatusOK))

		for _, query := range []string{"0", "-1", "2"} {
			w := do(http.MethodGet, "/tasks?workspaceId="+query, nil)
			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(w.Body.String()).To(MatchJSON(`[]`))
		}
		Expect(do(http.MethodGet, "/tasks?workspaceId=1", nil).Body.String()).To(ContainSubstring(`"title":"Plan"`))
	})

	It("serves health and metrics", func() {
		w := do(http.MethodGet, "/health", nil)
		Expect(w.Body.String()).To(MatchJSON(`{"status":"ok"}`))

		do(http.MethodGet, "/summary", nil)
		w = do(http.MethodGet, "/metrics", nil)
		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(w.Body.String()).To(ContainSubstring(`taskhub_http_requests_total{method="GET",route="/summary",status="200"} 1`))
	})
})
