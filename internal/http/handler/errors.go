package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"basegraph.app/taskhub/internal/http/response"
	"basegraph.app/taskhub/internal/service"
	"basegraph.app/taskhub/internal/validation"
)

const errInvalidBody = "Invalid request body"

// respondError maps service and validation errors to status codes. Anything
// unrecognized is logged and answered with fallback.
func respondError(c *gin.Context, err error, fallback string) {
	var vErr *validation.Error
	switch {
	case errors.As(err, &vErr):
		badRequest(c, vErr.Field, vErr.Message)
	case errors.Is(err, service.ErrWorkspaceNotFound):
		response.Error(c, http.StatusNotFound, "Workspace not found")
	case errors.Is(err, service.ErrUserNotFound):
		response.Error(c, http.StatusNotFound, "User not found")
	case errors.Is(err, service.ErrTaskNotFound):
		response.Error(c, http.StatusNotFound, "Task not found")
	case errors.Is(err, service.ErrUserAlreadyAssigned):
		response.Error(c, http.StatusBadRequest, "User already assigned to workspace")
	default:
		slog.ErrorContext(c.Request.Context(), fallback, "error", err)
		response.Error(c, http.StatusInternalServerError, fallback)
	}
}

func badRequest(c *gin.Context, field, message string) {
	response.FieldError(c, http.StatusBadRequest, field, message)
}

// parseID reads a positive integer id; ok is false when a 400 was already written.
func parseID(c *gin.Context, raw, field string) (int64, bool) {
	if raw == "" {
		badRequest(c, field, field+" is required")
		return 0, false
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		badRequest(c, field, field+" must be a positive integer")
		return 0, false
	}
	return id, true
}

// parseIntQuery reads a required integer filter. Any int64 is accepted; an id
// that matches nothing simply filters to an empty list.
func parseIntQuery(c *gin.Context, field string) (int64, bool) {
	raw := c.Query(field)
	if raw == "" {
		badRequest(c, field, field+" is required")
		return 0, false
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		badRequest(c, field, field+" must be an integer")
		return 0, false
	}
	return v, true
}
