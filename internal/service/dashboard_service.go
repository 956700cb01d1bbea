package service

import (
	"fmt"
	"sort"

	"github.com/adrianocesar/processos-backend-go/internal/analysis"
	"github.com/adrianocesar/processos-backend-go/internal/geo"
	"github.com/adrianocesar/processos-backend-go/internal/models"
	"github.com/adrianocesar/processos-backend-go/internal/stats"
	"github.com/adrianocesar/processos-backend-go/pkg/format"
)

// DefaultTopK is the ranking depth the dashboard charts use.
const DefaultTopK = 10

// DefaultPreviewLimit bounds the raw-data preview.
const DefaultPreviewLimit = 100

// DashboardService derives every dashboard table from the loaded record set.
// The set is immutable for the session; each call recomputes its derived
// table in full, which is cheap at this data size and always correct.
type DashboardService struct {
	records []models.Record
	binner  *geo.Binner

	// Observed year bounds over the valid records, used when a filter
	// leaves a bound unset.
	yearMin int
	yearMax int
}

// NewDashboardService creates a dashboard service over the loaded record set.
func NewDashboardService(records []models.Record, binner *geo.Binner) *DashboardService {
	s := &DashboardService{records: records, binner: binner}
	s.yearMin, s.yearMax, _ = analysis.YearBounds(records)
	return s
}

// workingSet applies the filter, substituting observed bounds for unset ones.
func (s *DashboardService) workingSet(f models.DashboardFilter) ([]models.Record, models.DashboardFilter, error) {
	if f.YearMin == 0 {
		f.YearMin = s.yearMin
	}
	if f.YearMax == 0 {
		f.YearMax = s.yearMax
	}
	if f.YearMin > f.YearMax {
		return nil, f, fmt.Errorf("yearMin %d must not exceed yearMax %d", f.YearMin, f.YearMax)
	}
	return analysis.Filter(s.records, f.YearMin, f.YearMax, f.Comarca), f, nil
}

// Meta returns dataset-wide information backing the filter widgets.
func (s *DashboardService) Meta() models.DatasetInfo {
	total := len(s.records)
	return models.DatasetInfo{
		TotalRecords:   total,
		TotalFormatted: format.Int(total),
		YearMin:        s.yearMin,
		YearMax:        s.yearMax,
		ClassCount:     analysis.DistinctCount(s.records, analysis.ByClass),
		SubjectCount:   analysis.DistinctCount(s.records, analysis.BySubject),
		ComarcaCount:   analysis.DistinctCount(s.records, analysis.ByComarca),
		Comarcas:       analysis.DistinctValues(s.records, analysis.ByComarca),
	}
}

// Summary returns the headline metrics for the working set.
func (s *DashboardService) Summary(f models.DashboardFilter) (*models.Summary, error) {
	ws, f, err := s.workingSet(f)
	if err != nil {
		return nil, err
	}

	summary := &models.Summary{
		TotalFilings:   len(ws),
		TotalFormatted: format.Int(len(ws)),
		YearMin:        f.YearMin,
		YearMax:        f.YearMax,
		YearsCovered:   len(analysis.YearlyCounts(ws)),
	}
	if f.IsComarcaFiltered() {
		summary.SelectedComarca = f.Comarca
		summary.ComarcaCount = 1
	} else {
		summary.ComarcaCount = analysis.DistinctCount(s.records, analysis.ByComarca)
	}
	return summary, nil
}

// Yearly returns the per-year filing counts for the temporal trend view,
// ascending by year.
func (s *DashboardService) Yearly(f models.DashboardFilter) ([]models.YearCount, error) {
	ws, _, err := s.workingSet(f)
	if err != nil {
		return nil, err
	}
	return analysis.YearlyCounts(ws), nil
}

// TopSubjects returns the topK most frequent subjects in the working set.
func (s *DashboardService) TopSubjects(f models.DashboardFilter, topK int, order analysis.Order) ([]models.FrequencyEntry, error) {
	ws, _, err := s.workingSet(f)
	if err != nil {
		return nil, err
	}
	return analysis.CountBy(ws, analysis.BySubject, topK, order), nil
}

// TopClasses returns the topK most frequent classes in the working set.
func (s *DashboardService) TopClasses(f models.DashboardFilter, topK int, order analysis.Order) ([]models.FrequencyEntry, error) {
	ws, _, err := s.workingSet(f)
	if err != nil {
		return nil, err
	}
	return analysis.CountBy(ws, analysis.ByClass, topK, order), nil
}

// SubjectsByClass cross-tabulates: the topK subjects among filings of the
// given class.
func (s *DashboardService) SubjectsByClass(f models.DashboardFilter, class string, topK int, order analysis.Order) ([]models.FrequencyEntry, error) {
	ws, _, err := s.workingSet(f)
	if err != nil {
		return nil, err
	}
	var subset []models.Record
	for _, r := range ws {
		if r.Class == class {
			subset = append(subset, r)
		}
	}
	return analysis.CountBy(subset, analysis.BySubject, topK, order), nil
}

// ClassesBySubject cross-tabulates: the topK classes among filings of the
// given subject.
func (s *DashboardService) ClassesBySubject(f models.DashboardFilter, subject string, topK int, order analysis.Order) ([]models.FrequencyEntry, error) {
	ws, _, err := s.workingSet(f)
	if err != nil {
		return nil, err
	}
	var subset []models.Record
	for _, r := range ws {
		if r.Subject == subject {
			subset = append(subset, r)
		}
	}
	return analysis.CountBy(subset, analysis.ByClass, topK, order), nil
}

// SubjectDetail returns the drill-down view for a single subject: its yearly
// series and the classes it most often appears under.
func (s *DashboardService) SubjectDetail(f models.DashboardFilter, subject string) (*models.SubjectDetail, error) {
	ws, _, err := s.workingSet(f)
	if err != nil {
		return nil, err
	}
	var subset []models.Record
	for _, r := range ws {
		if r.Subject == subject {
			subset = append(subset, r)
		}
	}
	return &models.SubjectDetail{
		Subject:    subject,
		Total:      len(subset),
		Yearly:     analysis.YearlyCounts(subset),
		TopClasses: analysis.CountBy(subset, analysis.ByClass, DefaultTopK, analysis.Descending),
	}, nil
}

// Records returns the raw preview: the most recent limit rows of the working
// set, ordered year-descending.
func (s *DashboardService) Records(f models.DashboardFilter, limit int) ([]models.Record, error) {
	ws, _, err := s.workingSet(f)
	if err != nil {
		return nil, err
	}

	preview := make([]models.Record, len(ws))
	copy(preview, ws)
	sort.SliceStable(preview, func(i, j int) bool {
		return *preview[i].Year > *preview[j].Year
	})

	if limit <= 0 {
		limit = DefaultPreviewLimit
	}
	if limit < len(preview) {
		preview = preview[:limit]
	}
	return preview, nil
}

// Map returns the geospatial density view: plotted points with their visual
// encoding, the color-scale domain, distribution diagnostics, and the
// viewport to frame.
func (s *DashboardService) Map(f models.DashboardFilter) (*models.MapResponse, error) {
	ws, _, err := s.workingSet(f)
	if err != nil {
		return nil, err
	}

	points, unmatched := s.binner.Bin(ws)
	resp := &models.MapResponse{
		Points:                  points,
		Count:                   len(points),
		UnmatchedMunicipalities: unmatched,
		Viewport:                geo.Viewport(points),
	}

	if len(points) == 0 {
		// Empty is a legitimate result; consumers render a "no data" state.
		resp.TotalFormatted = format.Int(0)
		return resp, nil
	}

	counts := make([]float64, len(points))
	total := 0
	countMin, countMax := points[0].Count, points[0].Count
	for i, p := range points {
		counts[i] = float64(p.Count)
		total += p.Count
		if p.Count < countMin {
			countMin = p.Count
		}
		if p.Count > countMax {
			countMax = p.Count
		}
	}

	resp.TotalFilings = total
	resp.TotalFormatted = format.Int(total)
	resp.ColorDomainMin, resp.ColorDomainMax = geo.ColorDomain(countMin, countMax)
	resp.Diagnostics = s.diagnostics(points, counts)
	return resp, nil
}

func (s *DashboardService) diagnostics(points []models.GeoPoint, counts []float64) *models.MapDiagnostics {
	countMin := int(stats.Min(counts))
	countMax := int(stats.Max(counts))
	diag := &models.MapDiagnostics{
		MinCount:    countMin,
		MaxCount:    countMax,
		MeanCount:   stats.Mean(counts),
		MedianCount: stats.Median(counts),
	}
	for _, p := range points {
		if p.Count == countMax && diag.TopMunicipality == "" {
			diag.TopMunicipality = p.Municipality
		}
		if p.Count == countMin && diag.BottomMunicipality == "" {
			diag.BottomMunicipality = p.Municipality
		}
	}
	return diag
}
