package dashboard_test

import (
	"testing"
	"time"

	"github.com/i-gitit/employee-dashboard/internal/dashboard"
	"github.com/i-gitit/employee-dashboard/internal/employee"

	"github.com/stretchr/testify/assert"
)

func fixtureRecords() []employee.Employee {
	return []employee.Employee{
		{ID: "EMP001", Name: "Priya Sharma", Email: "priya.sharma@acmetech.in", Department: "Engineering", Position: "Senior Software Engineer", JoinDate: "2021-06-10"},
		{ID: "EMP002", Name: "Rahul Verma", Email: "rahul.verma@acmetech.in", Department: "Marketing", Position: "Marketing Manager", JoinDate: "2022-03-15"},
		{ID: "EMP003", Name: "Ananya Patel", Email: "ananya.patel@acmetech.in", Department: "Engineering", Position: "Frontend Developer", JoinDate: "2023-01-20"},
	}
}

func viewNames(view dashboard.DerivedView) []string {
	out := make([]string, len(view.Employees))
	for i, e := range view.Employees {
		out[i] = e.Name
	}
	return out
}

func TestController_Defaults(t *testing.T) {
	ctrl := dashboard.NewController()

	state := ctrl.State()
	assert.Equal(t, "", state.SearchTerm)
	assert.Equal(t, employee.DepartmentAll, state.Department)
	assert.Equal(t, employee.SortByName, state.SortBy)
	assert.Equal(t, employee.SortAsc, state.SortOrder)
}

func TestController_IntentsRecomputeView(t *testing.T) {
	ctrl := dashboard.NewController()
	records := fixtureRecords()

	ctrl.SetDepartment("Engineering")
	view := ctrl.View(records)
	assert.Equal(t, []string{"Ananya Patel", "Priya Sharma"}, viewNames(view))
	assert.Equal(t, 3, view.TotalCount)
	assert.Equal(t, 2, view.ResultCount)

	ctrl.SetSearchTerm("priya")
	view = ctrl.View(records)
	assert.Equal(t, []string{"Priya Sharma"}, viewNames(view))

	ctrl.SetSortBy(employee.SortByJoinDate)
	ctrl.SetSortOrder(employee.SortDesc)
	ctrl.SetSearchTerm("")
	ctrl.SetDepartment(employee.DepartmentAll)
	view = ctrl.View(records)
	assert.Equal(t, []string{"Ananya Patel", "Rahul Verma", "Priya Sharma"}, viewNames(view))
}

func TestController_DepartmentsIgnoreFilter(t *testing.T) {
	ctrl := dashboard.NewController()
	ctrl.SetDepartment("Marketing")

	view := ctrl.View(fixtureRecords())

	// Options come from the unfiltered collection.
	assert.Equal(t, []string{"Engineering", "Marketing"}, view.Departments)
	assert.Equal(t, []string{"Rahul Verma"}, viewNames(view))
}

func TestController_ResetRestoresDefaults(t *testing.T) {
	ctrl := dashboard.NewController()
	records := fixtureRecords()

	ctrl.SetSearchTerm("rahul")
	ctrl.SetDepartment("Marketing")
	ctrl.SetSortBy(employee.SortByJoinDate)
	ctrl.SetSortOrder(employee.SortDesc)

	ctrl.Reset()

	assert.Equal(t, employee.DefaultFilterSortState(), ctrl.State())

	// After reset, the view equals a plain name-ascending sort.
	view := ctrl.View(records)
	expected := employee.SortEmployees(records, employee.SortByName, employee.SortAsc)
	assert.Equal(t, expected, view.Employees)
}

func TestController_UnknownValuesDegrade(t *testing.T) {
	ctrl := dashboard.NewController()
	records := fixtureRecords()

	// A department nobody has filters everything out but never errors.
	ctrl.SetDepartment("Astrology")
	view := ctrl.View(records)
	assert.Equal(t, 0, view.ResultCount)

	// The historical salary key leaves the filtered order untouched.
	ctrl.SetDepartment(employee.DepartmentAll)
	ctrl.SetSortBy(employee.SortKey("salary"))
	view = ctrl.View(records)
	assert.Equal(t, []string{"Priya Sharma", "Rahul Verma", "Ananya Patel"}, viewNames(view))
}

func TestController_ViewIsFreshPerRecordSet(t *testing.T) {
	ctrl := dashboard.NewController()

	first := ctrl.View(fixtureRecords())
	assert.Equal(t, 3, first.TotalCount)

	// A newly fetched, smaller collection fully replaces the old view.
	second := ctrl.View(fixtureRecords()[:1])
	assert.Equal(t, 1, second.TotalCount)
	assert.Equal(t, []string{"Engineering"}, second.Departments)
}

func TestSessionStore(t *testing.T) {
	t.Run("create and get", func(t *testing.T) {
		store := dashboard.NewSessionStore(time.Minute)

		sess := store.Create()
		assert.NotEmpty(t, sess.ID)

		got, ok := store.Get(sess.ID)
		assert.True(t, ok)
		assert.Same(t, sess, got)
	})

	t.Run("unknown id", func(t *testing.T) {
		store := dashboard.NewSessionStore(time.Minute)

		_, ok := store.Get("nope")
		assert.False(t, ok)
	})

	t.Run("idle sessions expire", func(t *testing.T) {
		store := dashboard.NewSessionStore(10 * time.Millisecond)

		sess := store.Create()
		time.Sleep(25 * time.Millisecond)

		_, ok := store.Get(sess.ID)
		assert.False(t, ok)
		assert.Equal(t, 0, store.Len())
	})

	t.Run("create sweeps expired sessions", func(t *testing.T) {
		store := dashboard.NewSessionStore(10 * time.Millisecond)

		store.Create()
		store.Create()
		time.Sleep(25 * time.Millisecond)

		fresh := store.Create()
		assert.Equal(t, 1, store.Len())

		_, ok := store.Get(fresh.ID)
		assert.True(t, ok)
	})
}
