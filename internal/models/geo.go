package models

// GeoPoint is a plot-ready municipality marker for the map view.
type GeoPoint struct {
	Municipality string  `json:"municipality"`
	Lat          float64 `json:"lat"`
	Lng          float64 `json:"lng"`
	Count        int     `json:"count"`
	MarkerSize   float64 `json:"marker_size"` // 20-80, linear in count
	ColorValue   float64 `json:"color_value"` // Raw count; scale domain is log10
}

// MapDiagnostics summarizes the joined count distribution for the map view.
type MapDiagnostics struct {
	MinCount           int     `json:"min_count"`
	MaxCount           int     `json:"max_count"`
	MeanCount          float64 `json:"mean_count"`
	MedianCount        float64 `json:"median_count"`
	TopMunicipality    string  `json:"top_municipality,omitempty"`
	BottomMunicipality string  `json:"bottom_municipality,omitempty"`
}

// MapViewport is the bounding box and center the map renderer should frame.
type MapViewport struct {
	MinLat    float64 `json:"min_lat"`
	MaxLat    float64 `json:"max_lat"`
	MinLng    float64 `json:"min_lng"`
	MaxLng    float64 `json:"max_lng"`
	CenterLat float64 `json:"center_lat"`
	CenterLng float64 `json:"center_lng"`
}

// MapResponse represents the map API response
type MapResponse struct {
	Points         []GeoPoint      `json:"points"`
	Count          int             `json:"count"`
	TotalFilings   int             `json:"total_filings"`
	TotalFormatted string          `json:"total_filings_formatted"`
	ColorDomainMin float64         `json:"color_domain_min"`
	ColorDomainMax float64         `json:"color_domain_max"`
	Diagnostics    *MapDiagnostics `json:"diagnostics,omitempty"`
	Viewport       *MapViewport    `json:"viewport,omitempty"`

	// Resolved municipality names with no entry in the coordinate index.
	// They cannot be plotted; listed here so the gap is visible to operators.
	UnmatchedMunicipalities []string `json:"unmatched_municipalities,omitempty"`
}
