package router

import (
	"github.com/gin-gonic/gin"

	"basegraph.app/taskhub/internal/http/handler"
)

func TaskRouter(rg *gin.RouterGroup, h *handler.TaskHandler) {
	rg.POST("", h.Create)
	rg.GET("", h.List)
	rg.PATCH("/:id", h.MarkComplete)
}
