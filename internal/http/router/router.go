package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"basegraph.app/taskhub/internal/http/handler"
	"basegraph.app/taskhub/internal/service"
)

type RouterConfig struct {
	// MetricsHandler is mounted on GET /metrics when set.
	MetricsHandler http.Handler
}

func SetupRoutes(router *gin.Engine, services *service.Services, cfg RouterConfig) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	if cfg.MetricsHandler != nil {
		router.GET("/metrics", gin.WrapH(cfg.MetricsHandler))
	}

	userHandler := handler.NewUserHandler(services.Users())
	UserRouter(router.Group("/users"), userHandler)

	workspaceHandler := handler.NewWorkspaceHandler(services.Workspaces())
	WorkspaceRouter(router.Group("/workspaces"), workspaceHandler)

	taskHandler := handler.NewTaskHandler(services.Tasks())
	TaskRouter(router.Group("/tasks"), taskHandler)

	summaryHandler := handler.NewSummaryHandler(services.Summary())
	router.GET("/summary", summaryHandler.Get)
}
