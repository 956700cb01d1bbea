package models

// FrequencyEntry is one (key, count) pair of a frequency table. Entries are
// produced in the order requested by the caller; keys are unique within a
// table and counts sum to the size of the grouped non-blank subset.
type FrequencyEntry struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
}

// YearCount is one point of the temporal series, keyed by filing year.
type YearCount struct {
	Year  int `json:"year"`
	Count int `json:"count"`
}
