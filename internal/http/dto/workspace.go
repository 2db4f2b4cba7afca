package dto

import "basegraph.app/taskhub/internal/model"

type CreateWorkspaceRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

// AssignUserRequest is the optional body of POST /workspaces/:id/users.
// A user_id query parameter takes precedence.
type AssignUserRequest struct {
	UserID *int64 `json:"user_id"`
}

type WorkspaceResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

func ToWorkspaceResponse(ws *model.Workspace) *WorkspaceResponse {
	return &WorkspaceResponse{
		ID:          ws.ID,
		Name:        ws.Name,
		Description: ws.Description,
	}
}

func ToWorkspaceResponses(workspaces []model.Workspace) []WorkspaceResponse {
	out := make([]WorkspaceResponse, 0, len(workspaces))
	for i := range workspaces {
		out = append(out, *ToWorkspaceResponse(&workspaces[i]))
	}
	return out
}
