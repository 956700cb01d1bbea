package models

// Record represents one validated case filing row from the dataset.
// Records are immutable once loaded; the loaded set is the single source of
// truth for a session.
type Record struct {
	CaseNumber string `json:"processo"`
	Class      string `json:"classe"`
	Subject    string `json:"assunto"`
	Comarca    string `json:"comarca"`

	// Year is nil when the source value was missing, non-numeric, or outside
	// the accepted 1900-2100 range. Such records are excluded from
	// year-filtered views but remain usable where the year is irrelevant.
	Year *int `json:"ano"`
}

// HasYear reports whether the record carries a valid filing year.
func (r Record) HasYear() bool {
	return r.Year != nil
}
