package router

import (
	"github.com/gin-gonic/gin"

	"basegraph.app/taskhub/internal/http/handler"
)

func UserRouter(rg *gin.RouterGroup, h *handler.UserHandler) {
	rg.POST("", h.Create)
	rg.GET("", h.List)
}
