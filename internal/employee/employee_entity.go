package employee

import "strings"

// Employee is one record of the directory dataset. Records arrive already
// validated from the dataset source and are never mutated; every query
// operation works on copies. The json tags mirror the dataset document.
type Employee struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Email           string   `json:"email"`
	Department      string   `json:"department"`
	Position        string   `json:"position"`
	JoinDate        string   `json:"joinDate"`
	Skills          []string `json:"skills"`
	LeavesAvailed   int      `json:"leavesAvailed"`
	LeavesAvailable int      `json:"leavesAvailable"`
	Address         Address  `json:"address"`
	Phone           string   `json:"phone"`
	Avatar          string   `json:"avatar,omitempty"`
}

type Address struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zipCode"`
}

// DepartmentAll is the sentinel meaning "no department restriction".
const DepartmentAll = "all"

type SortKey string

const (
	SortByName       SortKey = "name"
	SortByJoinDate   SortKey = "joinDate"
	SortByDepartment SortKey = "department"
)

type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// FilterSortState carries the four user-controlled directory controls.
type FilterSortState struct {
	SearchTerm string
	Department string
	SortBy     SortKey
	SortOrder  SortOrder
}

func DefaultFilterSortState() FilterSortState {
	return FilterSortState{
		SearchTerm: "",
		Department: DepartmentAll,
		SortBy:     SortByName,
		SortOrder:  SortAsc,
	}
}

// NormalizeSortKey folds the accepted spellings of a sort key. Unknown values
// pass through unchanged: the sort degrades to a no-op rather than failing,
// which also covers the historical "salary" key.
func NormalizeSortKey(s string) SortKey {
	switch {
	case strings.EqualFold(s, "joindate"), strings.EqualFold(s, "join_date"):
		return SortByJoinDate
	case strings.EqualFold(s, string(SortByName)):
		return SortByName
	case strings.EqualFold(s, string(SortByDepartment)):
		return SortByDepartment
	default:
		return SortKey(s)
	}
}

// NormalizeSortOrder treats anything that is not "desc" as ascending.
func NormalizeSortOrder(s string) SortOrder {
	if strings.EqualFold(s, string(SortDesc)) {
		return SortDesc
	}
	return SortAsc
}
