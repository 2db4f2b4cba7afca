package queue

import "strconv"

// EventType names an activity event written to the stream.
type EventType string

const (
	EventTypeUserCreated        EventType = "user.created"
	EventTypeWorkspaceCreated   EventType = "workspace.created"
	EventTypeWorkspaceUserAdded EventType = "workspace.user_assigned"
	EventTypeTaskCreated        EventType = "task.created"
	EventTypeTaskCompleted      EventType = "task.completed"
)

// Event describes a completed write. Unset ids are omitted from the stream entry.
type Event struct {
	Type        EventType
	UserID      *int64
	WorkspaceID *int64
	TaskID      *int64
	RequestID   *string
}

func (e Event) fields() map[string]any {
	fields := map[string]any{
		"event_type": string(e.Type),
	}
	if e.UserID != nil {
		fields["user_id"] = strconv.FormatInt(*e.UserID, 10)
	}
	if e.WorkspaceID != nil {
		fields["workspace_id"] = strconv.FormatInt(*e.WorkspaceID, 10)
	}
	if e.TaskID != nil {
		fields["task_id"] = strconv.FormatInt(*e.TaskID, 10)
	}
	if e.RequestID != nil && *e.RequestID != "" {
		fields["request_id"] = *e.RequestID
	}
	return fields
}
