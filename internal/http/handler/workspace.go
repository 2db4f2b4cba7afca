package handler

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"basegraph.app/taskhub/internal/http/dto"
	"basegraph.app/taskhub/internal/service"
)

type WorkspaceHandler struct {
	workspaceService service.WorkspaceService
}

func NewWorkspaceHandler(workspaceService service.WorkspaceService) *WorkspaceHandler {
	return &WorkspaceHandler{workspaceService: workspaceService}
}

func (h *WorkspaceHandler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.CreateWorkspaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.WarnContext(ctx, "invalid request body", "error", err)
		badRequest(c, "", errInvalidBody)
		return
	}

	ws, err := h.workspaceService.Create(ctx, req.Name, req.Description)
	if err != nil {
		respondError(c, err, "failed to create workspace")
		return
	}

	c.JSON(http.StatusOK, dto.ToWorkspaceResponse(ws))
}

func (h *WorkspaceHandler) List(c *gin.Context) {
	workspaces, err := h.workspaceService.List(c.Request.Context())
	if err != nil {
		respondError(c, err, "failed to list workspaces")
		return
	}

	c.JSON(http.StatusOK, dto.ToWorkspaceResponses(workspaces))
}

// AssignUser takes user_id from the query string, falling back to a JSON body.
func (h *WorkspaceHandler) AssignUser(c *gin.Context) {
	ctx := c.Request.Context()

	workspaceID, ok := parseID(c, c.Param("id"), "workspace_id")
	if !ok {
		return
	}

	rawUserID := c.Query("user_id")
	var userID int64
	if rawUserID != "" {
		if userID, ok = parseID(c, rawUserID, "user_id"); !ok {
			return
		}
	} else {
		var req dto.AssignUserRequest
		if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
			slog.WarnContext(ctx, "invalid request body", "error", err)
			badRequest(c, "", errInvalidBody)
			return
		}
		if req.UserID == nil {
			badRequest(c, "user_id", "user_id is required")
			return
		}
		if *req.UserID <= 0 {
			badRequest(c, "user_id", "user_id must be a positive integer")
			return
		}
		userID = *req.UserID
	}

	if _, err := h.workspaceService.AssignUser(ctx, workspaceID, userID); err != nil {
		respondError(c, err, "failed to assign user")
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "User assigned to workspace successfully"})
}
