package dashboard

import (
	"sync"

	"github.com/i-gitit/employee-dashboard/internal/employee"
)

// Controller owns one dashboard's filter/sort state. Intents mutate single
// fields; no intent is ever rejected — unknown sort keys or departments
// degrade inside the query engine instead of failing here.
type Controller struct {
	mu    sync.RWMutex
	state employee.FilterSortState
}

func NewController() *Controller {
	return &Controller{
		state: employee.DefaultFilterSortState(),
	}
}

func (c *Controller) SetSearchTerm(s string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.SearchTerm = s
}

func (c *Controller) SetDepartment(d string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.Department = d
}

func (c *Controller) SetSortBy(k employee.SortKey) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.SortBy = k
}

func (c *Controller) SetSortOrder(o employee.SortOrder) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.SortOrder = o
}

// Reset restores all four controls to their defaults in one intent.
func (c *Controller) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = employee.DefaultFilterSortState()
}

func (c *Controller) State() employee.FilterSortState {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state
}

// DerivedView is everything the presentation layer renders: the processed
// collection plus department options and counts.
type DerivedView struct {
	State       employee.FilterSortState
	Departments []string
	Employees   []employee.Employee
	TotalCount  int
	ResultCount int
}

// View recomputes the derived state from scratch against the given records.
// It is a pure function of (records, state); nothing is patched
// incrementally, so the view can never go stale relative to its inputs.
func (c *Controller) View(records []employee.Employee) DerivedView {
	state := c.State()
	processed := employee.ProcessEmployees(records, state)

	return DerivedView{
		State:       state,
		Departments: employee.Departments(records),
		Employees:   processed,
		TotalCount:  len(records),
		ResultCount: len(processed),
	}
}
