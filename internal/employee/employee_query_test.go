package employee_test

import (
	"testing"

	"github.com/i-gitit/employee-dashboard/internal/employee"

	"github.com/stretchr/testify/assert"
)

func fixtureRecords() []employee.Employee {
	return []employee.Employee{
		{
			ID:         "EMP001",
			Name:       "Priya Sharma",
			Email:      "priya.sharma@acmetech.in",
			Department: "Engineering",
			Position:   "Senior Software Engineer",
			JoinDate:   "2021-06-10",
		},
		{
			ID:         "EMP002",
			Name:       "Rahul Verma",
			Email:      "rahul.verma@acmetech.in",
			Department: "Marketing",
			Position:   "Marketing Manager",
			JoinDate:   "2022-03-15",
		},
		{
			ID:         "EMP003",
			Name:       "Ananya Patel",
			Email:      "ananya.patel@acmetech.in",
			Department: "Engineering",
			Position:   "Frontend Developer",
			JoinDate:   "2023-01-20",
		},
	}
}

func names(records []employee.Employee) []string {
	out := make([]string, len(records))
	for i, e := range records {
		out[i] = e.Name
	}
	return out
}

func TestFilterEmployees_Search(t *testing.T) {
	records := fixtureRecords()

	t.Run("case-insensitive name match", func(t *testing.T) {
		got := employee.FilterEmployees(records, "pRiYa", employee.DepartmentAll)
		assert.Equal(t, []string{"Priya Sharma"}, names(got))
	})

	t.Run("matches email", func(t *testing.T) {
		got := employee.FilterEmployees(records, "rahul.verma@", employee.DepartmentAll)
		assert.Equal(t, []string{"Rahul Verma"}, names(got))
	})

	t.Run("matches position", func(t *testing.T) {
		got := employee.FilterEmployees(records, "frontend", employee.DepartmentAll)
		assert.Equal(t, []string{"Ananya Patel"}, names(got))
	})

	t.Run("empty term keeps everything in order", func(t *testing.T) {
		got := employee.FilterEmployees(records, "", employee.DepartmentAll)
		assert.Equal(t, names(records), names(got))
	})

	t.Run("no match yields empty, not nil panic", func(t *testing.T) {
		got := employee.FilterEmployees(records, "zzz-not-here", employee.DepartmentAll)
		assert.Empty(t, got)
	})

	t.Run("empty input yields empty output", func(t *testing.T) {
		got := employee.FilterEmployees(nil, "priya", employee.DepartmentAll)
		assert.Empty(t, got)
	})
}

func TestFilterEmployees_Department(t *testing.T) {
	records := fixtureRecords()

	t.Run("exact match only", func(t *testing.T) {
		got := employee.FilterEmployees(records, "", "Engineering")
		assert.Equal(t, []string{"Priya Sharma", "Ananya Patel"}, names(got))
	})

	t.Run("case-sensitive", func(t *testing.T) {
		got := employee.FilterEmployees(records, "", "engineering")
		assert.Empty(t, got)
	})

	t.Run("all sentinel disables the check", func(t *testing.T) {
		got := employee.FilterEmployees(records, "", employee.DepartmentAll)
		assert.Equal(t, names(records), names(got))
	})

	t.Run("both predicates must hold", func(t *testing.T) {
		got := employee.FilterEmployees(records, "priya", "Marketing")
		assert.Empty(t, got)
	})
}

func TestFilterEmployees_DoesNotMutateInput(t *testing.T) {
	records := fixtureRecords()
	before := names(records)

	_ = employee.FilterEmployees(records, "priya", "Engineering")

	assert.Equal(t, before, names(records))
}

func TestSortEmployees_Name(t *testing.T) {
	records := fixtureRecords()

	asc := employee.SortEmployees(records, employee.SortByName, employee.SortAsc)
	assert.Equal(t, []string{"Ananya Patel", "Priya Sharma", "Rahul Verma"}, names(asc))

	desc := employee.SortEmployees(records, employee.SortByName, employee.SortDesc)
	assert.Equal(t, []string{"Rahul Verma", "Priya Sharma", "Ananya Patel"}, names(desc))

	// Input untouched.
	assert.Equal(t, []string{"Priya Sharma", "Rahul Verma", "Ananya Patel"}, names(records))
}

func TestSortEmployees_JoinDate(t *testing.T) {
	records := fixtureRecords()

	asc := employee.SortEmployees(records, employee.SortByJoinDate, employee.SortAsc)
	assert.Equal(t, []string{"Priya Sharma", "Rahul Verma", "Ananya Patel"}, names(asc))

	desc := employee.SortEmployees(records, employee.SortByJoinDate, employee.SortDesc)
	assert.Equal(t, []string{"Ananya Patel", "Rahul Verma", "Priya Sharma"}, names(desc))
}

func TestSortEmployees_Stability(t *testing.T) {
	// Two Engineering records share the department key; their relative order
	// must survive the sort in both directions.
	records := fixtureRecords()

	asc := employee.SortEmployees(records, employee.SortByDepartment, employee.SortAsc)
	assert.Equal(t, []string{"Priya Sharma", "Ananya Patel", "Rahul Verma"}, names(asc))

	desc := employee.SortEmployees(records, employee.SortByDepartment, employee.SortDesc)
	assert.Equal(t, []string{"Rahul Verma", "Priya Sharma", "Ananya Patel"}, names(desc))
}

func TestSortEmployees_UnknownKeyIsNoOp(t *testing.T) {
	records := fixtureRecords()

	for _, order := range []employee.SortOrder{employee.SortAsc, employee.SortDesc} {
		got := employee.SortEmployees(records, employee.SortKey("salary"), order)
		assert.Equal(t, names(records), names(got), "order %s", order)
	}
}

func TestSortEmployees_UnparseableJoinDate(t *testing.T) {
	records := []employee.Employee{
		{ID: "a", Name: "A", JoinDate: "not-a-date"},
		{ID: "b", Name: "B", JoinDate: "2022-03-15"},
		{ID: "c", Name: "C", JoinDate: "also-bad"},
		{ID: "d", Name: "D", JoinDate: "2021-06-10"},
	}

	got := employee.SortEmployees(records, employee.SortByJoinDate, employee.SortAsc)

	// Bad dates compare as zero instants: grouped first in input order, the
	// valid dates correctly ordered after them.
	assert.Equal(t, []string{"A", "C", "D", "B"}, names(got))
}

func TestProcessEmployees(t *testing.T) {
	records := fixtureRecords()

	t.Run("filter then sort end to end", func(t *testing.T) {
		state := employee.FilterSortState{
			SearchTerm: "",
			Department: "Engineering",
			SortBy:     employee.SortByName,
			SortOrder:  employee.SortAsc,
		}
		got := employee.ProcessEmployees(records, state)
		assert.Equal(t, []string{"Ananya Patel", "Priya Sharma"}, names(got))
	})

	t.Run("idempotent", func(t *testing.T) {
		state := employee.FilterSortState{
			SearchTerm: "a",
			Department: employee.DepartmentAll,
			SortBy:     employee.SortByJoinDate,
			SortOrder:  employee.SortDesc,
		}
		once := employee.ProcessEmployees(records, state)
		twice := employee.ProcessEmployees(once, state)
		assert.Equal(t, once, twice)
	})
}

func TestDepartments(t *testing.T) {
	records := fixtureRecords()

	assert.Equal(t, []string{"Engineering", "Marketing"}, employee.Departments(records))
	assert.Empty(t, employee.Departments(nil))
}

func TestNormalizeSortKey(t *testing.T) {
	assert.Equal(t, employee.SortByJoinDate, employee.NormalizeSortKey("joinDate"))
	assert.Equal(t, employee.SortByJoinDate, employee.NormalizeSortKey("join_date"))
	assert.Equal(t, employee.SortByName, employee.NormalizeSortKey("Name"))
	assert.Equal(t, employee.SortByDepartment, employee.NormalizeSortKey("department"))
	// Unknown keys pass through so the sort can degrade to a no-op.
	assert.Equal(t, employee.SortKey("salary"), employee.NormalizeSortKey("salary"))
}

func TestNormalizeSortOrder(t *testing.T) {
	assert.Equal(t, employee.SortDesc, employee.NormalizeSortOrder("desc"))
	assert.Equal(t, employee.SortDesc, employee.NormalizeSortOrder("DESC"))
	assert.Equal(t, employee.SortAsc, employee.NormalizeSortOrder("asc"))
	assert.Equal(t, employee.SortAsc, employee.NormalizeSortOrder("sideways"))
}
