package employee

type EmployeeResponse struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	Email           string          `json:"email"`
	Department      string          `json:"department"`
	Position        string          `json:"position"`
	JoinDate        string          `json:"join_date"`
	Skills          []string        `json:"skills"`
	LeavesAvailed   int             `json:"leaves_availed"`
	LeavesAvailable int             `json:"leaves_available"`
	Address         AddressResponse `json:"address"`
	Phone           string          `json:"phone"`
	Avatar          string          `json:"avatar,omitempty"`
}

type AddressResponse struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zip_code"`
}

// LeaveBalanceResponse is the availed/available breakdown behind the leave
// chart on the detail view. Total may be zero; UsedPercent is then zero too.
type LeaveBalanceResponse struct {
	EmployeeID  string `json:"employee_id"`
	Availed     int    `json:"availed"`
	Available   int    `json:"available"`
	Total       int    `json:"total"`
	UsedPercent int    `json:"used_percent"`
}

// DirectoryResponse is the processed list view: filtered-then-sorted records
// plus the derived department options and counts.
type DirectoryResponse struct {
	Employees   []EmployeeResponse `json:"employees"`
	Departments []string           `json:"departments"`
	TotalCount  int                `json:"total_count"`
	ResultCount int                `json:"result_count"`
}

func ToResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:              e.ID,
		Name:            e.Name,
		Email:           e.Email,
		Department:      e.Department,
		Position:        e.Position,
		JoinDate:        e.JoinDate,
		Skills:          e.Skills,
		LeavesAvailed:   e.LeavesAvailed,
		LeavesAvailable: e.LeavesAvailable,
		Address: AddressResponse{
			Street:  e.Address.Street,
			City:    e.Address.City,
			State:   e.Address.State,
			ZipCode: e.Address.ZipCode,
		},
		Phone:  e.Phone,
		Avatar: e.Avatar,
	}
}

func ToListResponse(records []Employee) []EmployeeResponse {
	res := make([]EmployeeResponse, len(records))
	for i, e := range records {
		res[i] = ToResponse(e)
	}
	return res
}
