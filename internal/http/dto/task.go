package dto

import "basegraph.app/taskhub/internal/model"

type CreateTaskRequest struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
	WorkspaceID *int64  `json:"workspace_id"`
}

type TaskResponse struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
	WorkspaceID int64   `json:"workspace_id"`
	Completed   bool    `json:"completed"`
}

func ToTaskResponse(t *model.Task) *TaskResponse {
	return &TaskResponse{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		WorkspaceID: t.WorkspaceID,
		Completed:   t.Completed,
	}
}

func ToTaskResponses(tasks []model.Task) []TaskResponse {
	out := make([]TaskResponse, 0, len(tasks))
	for i := range tasks {
		out = append(out, *ToTaskResponse(&tasks[i]))
	}
	return out
}
