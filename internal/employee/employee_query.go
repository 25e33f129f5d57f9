package employee

import (
	"sort"
	"strings"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// FilterEmployees retains records whose name, email, or position contains
// searchTerm (case-insensitive) and whose department matches exactly, with
// DepartmentAll disabling the department check. The input slice is untouched
// and relative order is preserved.
func FilterEmployees(records []Employee, searchTerm, department string) []Employee {
	term := strings.ToLower(searchTerm)

	out := make([]Employee, 0, len(records))
	for _, e := range records {
		matchesSearch := strings.Contains(strings.ToLower(e.Name), term) ||
			strings.Contains(strings.ToLower(e.Email), term) ||
			strings.Contains(strings.ToLower(e.Position), term)

		matchesDepartment := department == DepartmentAll || e.Department == department

		if matchesSearch && matchesDepartment {
			out = append(out, e)
		}
	}
	return out
}

// SortEmployees returns a new slice ordered by sortBy. Name and department
// compare with locale-aware collation, joinDate by the parsed instant. An
// unknown key (the historical "salary" among them) compares everything equal,
// so the stable sort leaves the incoming order intact. Descending negates the
// comparator instead of reversing afterwards, which keeps the tie-break order
// of equal records.
func SortEmployees(records []Employee, sortBy SortKey, sortOrder SortOrder) []Employee {
	sorted := append([]Employee(nil), records...)

	var cmp func(a, b Employee) int
	switch sortBy {
	case SortByName:
		col := collate.New(language.English)
		cmp = func(a, b Employee) int { return col.CompareString(a.Name, b.Name) }
	case SortByDepartment:
		col := collate.New(language.English)
		cmp = func(a, b Employee) int { return col.CompareString(a.Department, b.Department) }
	case SortByJoinDate:
		cmp = func(a, b Employee) int { return compareJoinDates(a.JoinDate, b.JoinDate) }
	default:
		cmp = func(a, b Employee) int { return 0 }
	}

	sort.SliceStable(sorted, func(i, j int) bool {
		c := cmp(sorted[i], sorted[j])
		if sortOrder == SortDesc {
			c = -c
		}
		return c < 0
	})

	return sorted
}

// ProcessEmployees applies the full pipeline: filter, then sort. Pure and
// deterministic, so it can be re-run from scratch on every input change.
func ProcessEmployees(records []Employee, state FilterSortState) []Employee {
	filtered := FilterEmployees(records, state.SearchTerm, state.Department)
	return SortEmployees(filtered, state.SortBy, state.SortOrder)
}

// Departments collects the distinct department values of the unfiltered
// collection, sorted ascending.
func Departments(records []Employee) []string {
	seen := make(map[string]struct{}, len(records))
	depts := make([]string, 0, len(records))
	for _, e := range records {
		if _, ok := seen[e.Department]; ok {
			continue
		}
		seen[e.Department] = struct{}{}
		depts = append(depts, e.Department)
	}
	sort.Strings(depts)
	return depts
}

func compareJoinDates(a, b string) int {
	ta := parseJoinDate(a)
	tb := parseJoinDate(b)
	switch {
	case ta.Before(tb):
		return -1
	case ta.After(tb):
		return 1
	default:
		// Unparseable dates land here as zero instants: equal among
		// themselves, ordered before any valid date.
		return 0
	}
}

func parseJoinDate(s string) time.Time {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t
	}
	return time.Time{}
}
