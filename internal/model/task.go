package model

type Task struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
	WorkspaceID int64   `json:"workspace_id"`
	Completed   bool    `json:"completed"`
}
