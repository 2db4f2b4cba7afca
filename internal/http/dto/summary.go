package dto

import "basegraph.app/taskhub/internal/model"

type TaskCountsResponse struct {
	Total     int64 `json:"total"`
	Completed int64 `json:"completed"`
	Pending   int64 `json:"pending"`
}

type SummaryResponse struct {
	Users      int64              `json:"users"`
	Workspaces int64              `json:"workspaces"`
	Tasks      TaskCountsResponse `json:"tasks"`
}

func ToSummaryResponse(s *model.Summary) *SummaryResponse {
	return &SummaryResponse{
		Users:      s.Users,
		Workspaces: s.Workspaces,
		Tasks: TaskCountsResponse{
			Total:     s.Tasks.Total,
			Completed: s.Tasks.Completed,
			Pending:   s.Tasks.Pending,
		},
	}
}
