package service

import (
	"math"
	"reflect"
	"strings"
	"testing"

	"github.com/adrianocesar/processos-backend-go/internal/analysis"
	"github.com/adrianocesar/processos-backend-go/internal/dataset"
	"github.com/adrianocesar/processos-backend-go/internal/geo"
	"github.com/adrianocesar/processos-backend-go/internal/models"
)

// The scenario exercised end to end: two Manaus filings in 2020, a tribunal
// filing in 2021, and a structurally invalid row that must never surface.
const scenarioCSV = `Processo,Classe,Assunto,Comarca,Ano
1,Procedimento Comum,Concurso público,Comarca de Manaus,2020
2,Procedimento Comum,Dívida Ativa,Comarca de Manaus,2020
3,Execução Fiscal,Dívida Ativa,Tribunal De Justiça,2021
,Procedimento Comum,Concurso público,Comarca de Coari,2020
`

func newTestService(t *testing.T) *DashboardService {
	t.Helper()
	records, err := dataset.Parse(strings.NewReader(scenarioCSV))
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("got %d valid records, want 3", len(records))
	}
	resolver := geo.NewResolver(geo.DefaultTribunalExclusions())
	binner := geo.NewBinner(resolver, geo.DefaultMunicipalityIndex())
	return NewDashboardService(records, binner)
}

func TestSummary(t *testing.T) {
	s := newTestService(t)

	summary, err := s.Summary(models.DashboardFilter{})
	if err != nil {
		t.Fatalf("Summary returned error: %v", err)
	}
	if summary.TotalFilings != 3 {
		t.Errorf("TotalFilings = %d, want 3", summary.TotalFilings)
	}
	if summary.YearMin != 2020 || summary.YearMax != 2021 {
		t.Errorf("period = %d-%d, want 2020-2021", summary.YearMin, summary.YearMax)
	}
	if summary.YearsCovered != 2 {
		t.Errorf("YearsCovered = %d, want 2", summary.YearsCovered)
	}
	if summary.ComarcaCount != 2 {
		t.Errorf("ComarcaCount = %d, want 2", summary.ComarcaCount)
	}
}

func TestSummaryRejectsInvertedRange(t *testing.T) {
	s := newTestService(t)
	if _, err := s.Summary(models.DashboardFilter{YearMin: 2021, YearMax: 2020}); err == nil {
		t.Fatal("Summary should reject yearMin > yearMax")
	}
}

func TestYearly(t *testing.T) {
	s := newTestService(t)

	yearly, err := s.Yearly(models.DashboardFilter{})
	if err != nil {
		t.Fatalf("Yearly returned error: %v", err)
	}
	want := []models.YearCount{
		{Year: 2020, Count: 2},
		{Year: 2021, Count: 1},
	}
	if !reflect.DeepEqual(yearly, want) {
		t.Errorf("got %v, want %v", yearly, want)
	}
}

func TestCrossTab(t *testing.T) {
	s := newTestService(t)

	subjects, err := s.SubjectsByClass(models.DashboardFilter{}, "Procedimento Comum", DefaultTopK, analysis.Descending)
	if err != nil {
		t.Fatalf("SubjectsByClass returned error: %v", err)
	}
	want := []models.FrequencyEntry{
		{Key: "Concurso público", Count: 1},
		{Key: "Dívida Ativa", Count: 1},
	}
	if !reflect.DeepEqual(subjects, want) {
		t.Errorf("got %v, want %v", subjects, want)
	}

	classes, err := s.ClassesBySubject(models.DashboardFilter{}, "Dívida Ativa", DefaultTopK, analysis.Descending)
	if err != nil {
		t.Fatalf("ClassesBySubject returned error: %v", err)
	}
	if len(classes) != 2 {
		t.Fatalf("got %d classes, want 2", len(classes))
	}
}

func TestSubjectDetail(t *testing.T) {
	s := newTestService(t)

	detail, err := s.SubjectDetail(models.DashboardFilter{}, "Dívida Ativa")
	if err != nil {
		t.Fatalf("SubjectDetail returned error: %v", err)
	}
	if detail.Total != 2 {
		t.Errorf("Total = %d, want 2", detail.Total)
	}
	wantYearly := []models.YearCount{
		{Year: 2020, Count: 1},
		{Year: 2021, Count: 1},
	}
	if !reflect.DeepEqual(detail.Yearly, wantYearly) {
		t.Errorf("Yearly = %v, want %v", detail.Yearly, wantYearly)
	}
}

func TestRecordsPreview(t *testing.T) {
	s := newTestService(t)

	records, err := s.Records(models.DashboardFilter{}, 2)
	if err != nil {
		t.Fatalf("Records returned error: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2 (limit)", len(records))
	}
	// Most recent first.
	if *records[0].Year != 2021 {
		t.Errorf("first preview year = %d, want 2021", *records[0].Year)
	}
}

func TestMapScenario(t *testing.T) {
	s := newTestService(t)

	resp, err := s.Map(models.DashboardFilter{})
	if err != nil {
		t.Fatalf("Map returned error: %v", err)
	}

	// Only Manaus joins: the tribunal label resolves to nothing, and the
	// Coari row was structurally invalid and never loaded.
	if resp.Count != 1 || len(resp.Points) != 1 {
		t.Fatalf("got %d points, want 1", len(resp.Points))
	}
	p := resp.Points[0]
	if p.Municipality != "Manaus" || p.Count != 2 {
		t.Errorf("point = %+v, want Manaus with count 2", p)
	}
	if p.MarkerSize != geo.MarkerSizeMax {
		t.Errorf("sole joined point size = %v, want %v", p.MarkerSize, geo.MarkerSizeMax)
	}

	// Collapsed count distribution: both domain bounds land on log10(2).
	wantBound := math.Log10(2)
	if math.Abs(resp.ColorDomainMin-wantBound) > 1e-12 || math.Abs(resp.ColorDomainMax-wantBound) > 1e-12 {
		t.Errorf("color domain = (%v, %v), want both %v", resp.ColorDomainMin, resp.ColorDomainMax, wantBound)
	}

	if resp.TotalFilings != 2 || resp.TotalFormatted != "2" {
		t.Errorf("totals = (%d, %q), want (2, \"2\")", resp.TotalFilings, resp.TotalFormatted)
	}
	if resp.Diagnostics == nil || resp.Diagnostics.TopMunicipality != "Manaus" {
		t.Errorf("diagnostics = %+v, want Manaus on top", resp.Diagnostics)
	}
	if resp.Viewport == nil || resp.Viewport.CenterLat > 0 {
		t.Errorf("viewport = %+v, want a southern-hemisphere center", resp.Viewport)
	}
	if len(resp.UnmatchedMunicipalities) != 0 {
		t.Errorf("unmatched = %v, want none", resp.UnmatchedMunicipalities)
	}
}

func TestMapEmptyWorkingSet(t *testing.T) {
	s := newTestService(t)

	resp, err := s.Map(models.DashboardFilter{YearMin: 1950, YearMax: 1960})
	if err != nil {
		t.Fatalf("Map returned error: %v", err)
	}
	if len(resp.Points) != 0 || resp.Diagnostics != nil || resp.Viewport != nil {
		t.Errorf("empty working set should produce an empty map response, got %+v", resp)
	}
}

func TestMeta(t *testing.T) {
	s := newTestService(t)

	meta := s.Meta()
	if meta.TotalRecords != 3 {
		t.Errorf("TotalRecords = %d, want 3", meta.TotalRecords)
	}
	if meta.ClassCount != 2 || meta.SubjectCount != 2 || meta.ComarcaCount != 2 {
		t.Errorf("distinct counts = (%d, %d, %d), want (2, 2, 2)", meta.ClassCount, meta.SubjectCount, meta.ComarcaCount)
	}
	wantComarcas := []string{"Comarca de Manaus", "Tribunal De Justiça"}
	if !reflect.DeepEqual(meta.Comarcas, wantComarcas) {
		t.Errorf("Comarcas = %v, want %v", meta.Comarcas, wantComarcas)
	}
}
