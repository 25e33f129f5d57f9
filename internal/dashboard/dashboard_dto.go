package dashboard

import "github.com/i-gitit/employee-dashboard/internal/employee"

// FilterIntentsRequest carries partial updates: only the fields present in
// the body are applied as intents. None of them is required or validated
// beyond shape — unexpected values degrade downstream.
type FilterIntentsRequest struct {
	SearchTerm *string `json:"search_term"`
	Department *string `json:"department"`
	SortBy     *string `json:"sort_by"`
	SortOrder  *string `json:"sort_order"`
}

type StateResponse struct {
	SearchTerm string `json:"search_term"`
	Department string `json:"department"`
	SortBy     string `json:"sort_by"`
	SortOrder  string `json:"sort_order"`
}

type SessionResponse struct {
	SessionID string        `json:"session_id"`
	State     StateResponse `json:"state"`
}

type ViewResponse struct {
	SessionID   string                      `json:"session_id"`
	State       StateResponse               `json:"state"`
	Departments []string                    `json:"departments"`
	Employees   []employee.EmployeeResponse `json:"employees"`
	TotalCount  int                         `json:"total_count"`
	ResultCount int                         `json:"result_count"`
}

func mapState(state employee.FilterSortState) StateResponse {
	return StateResponse{
		SearchTerm: state.SearchTerm,
		Department: state.Department,
		SortBy:     string(state.SortBy),
		SortOrder:  string(state.SortOrder),
	}
}

func mapView(sessionID string, view DerivedView) ViewResponse {
	return ViewResponse{
		SessionID:   sessionID,
		State:       mapState(view.State),
		Departments: view.Departments,
		Employees:   employee.ToListResponse(view.Employees),
		TotalCount:  view.TotalCount,
		ResultCount: view.ResultCount,
	}
}
