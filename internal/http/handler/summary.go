package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"basegraph.app/taskhub/internal/http/dto"
	"basegraph.app/taskhub/internal/service"
)

type SummaryHandler struct {
	summaryService service.SummaryService
}

func NewSummaryHandler(summaryService service.SummaryService) *SummaryHandler {
	return &SummaryHandler{summaryService: summaryService}
}

func (h *SummaryHandler) Get(c *gin.Context) {
	summary, err := h.summaryService.Get(c.Request.Context())
	if err != nil {
		respondError(c, err, "failed to build summary")
		return
	}

	c.JSON(http.StatusOK, dto.ToSummaryResponse(summary))
}
