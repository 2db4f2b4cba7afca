package model

// WorkspaceUser records that a user is a member of a workspace.
// There is at most one row per (WorkspaceID, UserID) pair.
type WorkspaceUser struct {
	ID          int64 `json:"id"`
	WorkspaceID int64 `json:"workspace_id"`
	UserID      int64 `json:"user_id"`
}
