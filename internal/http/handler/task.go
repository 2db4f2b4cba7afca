package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"basegraph.app/taskhub/internal/http/dto"
	"basegraph.app/taskhub/internal/service"
)

type TaskHandler struct {
	taskService service.TaskService
}

func NewTaskHandler(taskService service.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

func (h *TaskHandler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.WarnContext(ctx, "invalid request body", "error", err)
		badRequest(c, "", errInvalidBody)
		return
	}
	if req.WorkspaceID == nil {
		badRequest(c, "workspace_id", "workspace_id is required")
		return
	}

	task, err := h.taskService.Create(ctx, req.Title, req.Description, *req.WorkspaceID)
	if err != nil {
		respondError(c, err, "failed to create task")
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskResponse(task))
}

func (h *TaskHandler) List(c *gin.Context) {
	workspaceID, ok := parseIntQuery(c, "workspaceId")
	if !ok {
		return
	}

	tasks, err := h.taskService.ListByWorkspace(c.Request.Context(), workspaceID)
	if err != nil {
		respondError(c, err, "failed to list tasks")
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskResponses(tasks))
}

func (h *TaskHandler) MarkComplete(c *gin.Context) {
	taskID, ok := parseID(c, c.Param("id"), "task_id")
	if !ok {
		return
	}

	task, err := h.taskService.MarkComplete(c.Request.Context(), taskID)
	if err != nil {
		respondError(c, err, "failed to complete task")
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskResponse(task))
}
