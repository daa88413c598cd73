package dashboard

import (
	"github.com/worksphere/worksphere-backend-go/internal/domain/employee"
	"github.com/worksphere/worksphere-backend-go/internal/pkg/validator"
)

// FilterAll disables the department filter.
const FilterAll = "all"

type SortKey string

const (
	SortNameAsc    SortKey = "name-asc"
	SortNameDesc   SortKey = "name-desc"
	SortDeptAsc    SortKey = "dept-asc"
	SortDeptDesc   SortKey = "dept-desc"
	SortSalaryHigh SortKey = "salary-high"
	SortSalaryLow  SortKey = "salary-low"
)

func (k SortKey) IsValid() bool {
	switch k {
	case SortNameAsc, SortNameDesc, SortDeptAsc, SortDeptDesc, SortSalaryHigh, SortSalaryLow:
		return true
	}
	return false
}

type ViewMode string

const (
	ViewGrid ViewMode = "grid"
	ViewList ViewMode = "list"
)

func (m ViewMode) IsValid() bool {
	return m == ViewGrid || m == ViewList
}

type Status string

const (
	StatusAvailable Status = "Available"
	StatusAway      Status = "Away"
	StatusOnLeave   Status = "On Leave"
)

// ViewState is the admin directory's filter, search, sort and layout.
type ViewState struct {
	FilterDepartment string   `json:"filter_department"`
	SortKey          SortKey  `json:"sort_key"`
	SearchTerm       string   `json:"search_term"`
	ViewMode         ViewMode `json:"view_mode"`
}

func DefaultViewState() ViewState {
	return ViewState{
		FilterDepartment: FilterAll,
		SortKey:          SortNameAsc,
		ViewMode:         ViewGrid,
	}
}

// Normalize fills blanks with defaults so a partial query behaves like the dashboard.
func (v ViewState) Normalize() ViewState {
	if validator.IsEmpty(v.FilterDepartment) {
		v.FilterDepartment = FilterAll
	}
	if v.SortKey == "" {
		v.SortKey = SortNameAsc
	}
	if v.ViewMode == "" {
		v.ViewMode = ViewGrid
	}
	return v
}

// MatchesDepartment reports whether d passes the filter. The filter may be a slug or a name.
func (v ViewState) MatchesDepartment(d employee.Department) bool {
	if v.FilterDepartment == "" || employee.DepartmentSlug(v.FilterDepartment) == FilterAll {
		return true
	}
	return employee.DepartmentSlug(v.FilterDepartment) == d.Slug()
}
