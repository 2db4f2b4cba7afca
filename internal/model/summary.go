package model

// EntityCounts are the raw row counts read from the store in one pass.
type EntityCounts struct {
	Users          int64
	Workspaces     int64
	Tasks          int64
	CompletedTasks int64
}

type TaskCounts struct {
	Total     int64 `json:"total"`
	Completed int64 `json:"completed"`
	Pending   int64 `json:"pending"`
}

type Summary struct {
	Users      int64      `json:"users"`
	Workspaces int64      `json:"workspaces"`
	Tasks      TaskCounts `json:"tasks"`
}

// Summarize derives the summary from raw counts. Pending is Total - Completed.
func Summarize(c EntityCounts) Summary {
	return Summary{
		Users:      c.Users,
		Workspaces: c.Workspaces,
		Tasks: TaskCounts{
			Total:     c.Tasks,
			Completed: c.CompletedTasks,
			Pending:   c.Tasks - c.CompletedTasks,
		},
	}
}
