package models

// ComarcaAll is the sentinel comarca value meaning "no location filter".
const ComarcaAll = "all"

// DashboardFilter represents the shared filter parameters for dashboard queries
type DashboardFilter struct {
	YearMin int    `form:"yearMin"` // Inclusive; 0 means the observed minimum
	YearMax int    `form:"yearMax"` // Inclusive; 0 means the observed maximum
	Comarca string `form:"comarca"` // Exact label, "" or "all" for no filter
}

// IsComarcaFiltered reports whether an exact comarca match is requested.
func (f DashboardFilter) IsComarcaFiltered() bool {
	return f.Comarca != "" && f.Comarca != ComarcaAll
}
