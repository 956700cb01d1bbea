package models

// Summary represents the headline metrics for the current working set
type Summary struct {
	TotalFilings   int    `json:"total_filings"`
	TotalFormatted string `json:"total_filings_formatted"`
	YearMin        int    `json:"year_min"`
	YearMax        int    `json:"year_max"`
	YearsCovered   int    `json:"years_covered"` // Distinct years present
	ComarcaCount   int    `json:"comarca_count"`

	// Set when an exact comarca filter is active.
	SelectedComarca string `json:"selected_comarca,omitempty"`
}

// DatasetInfo describes the loaded record set, independent of any filter.
// It backs the filter widgets: observed year bounds for the range slider and
// the sorted comarca list for the dropdown.
type DatasetInfo struct {
	TotalRecords   int      `json:"total_records"`
	TotalFormatted string   `json:"total_records_formatted"`
	YearMin        int      `json:"year_min"`
	YearMax        int      `json:"year_max"`
	ClassCount     int      `json:"class_count"`
	SubjectCount   int      `json:"subject_count"`
	ComarcaCount   int      `json:"comarca_count"`
	Comarcas       []string `json:"comarcas"`
}

// SubjectDetail is the drill-down view for a single subject.
type SubjectDetail struct {
	Subject    string           `json:"assunto"`
	Total      int              `json:"total"`
	Yearly     []YearCount      `json:"yearly"`
	TopClasses []FrequencyEntry `json:"top_classes"`
}
