package router

import (
	"github.com/gin-gonic/gin"

	"basegraph.app/taskhub/internal/http/handler"
)

func WorkspaceRouter(rg *gin.RouterGroup, h *handler.WorkspaceHandler) {
	rg.POST("", h.Create)
	rg.GET("", h.List)
	rg.POST("/:id/users", h.AssignUser)
}
