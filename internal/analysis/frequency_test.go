package analysis

import (
	"reflect"
	"testing"

	"github.com/adrianocesar/processos-backend-go/internal/models"
)

func subjects(values ...string) []models.Record {
	records := make([]models.Record, len(values))
	for i, v := range values {
		records[i] = models.Record{CaseNumber: "x", Subject: v}
	}
	return records
}

func TestCountByDescending(t *testing.T) {
	records := subjects("a", "b", "a", "c", "b", "a")

	got := CountBy(records, BySubject, 0, Descending)
	want := []models.FrequencyEntry{
		{Key: "a", Count: 3},
		{Key: "b", Count: 2},
		{Key: "c", Count: 1},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}

	// Counts sum to the size of the grouped subset.
	sum := 0
	for _, e := range got {
		sum += e.Count
	}
	if sum != len(records) {
		t.Errorf("counts sum to %d, want %d", sum, len(records))
	}
}

func TestCountByExcludesBlanks(t *testing.T) {
	records := subjects("a", "", "  ", "a", "b")

	got := CountBy(records, BySubject, 0, Descending)
	want := []models.FrequencyEntry{
		{Key: "a", Count: 2},
		{Key: "b", Count: 1},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestCountByTopKPrefix(t *testing.T) {
	records := subjects("a", "b", "a", "c", "b", "a", "d")

	full := CountBy(records, BySubject, 0, Descending)
	for topK := 1; topK <= len(full); topK++ {
		truncated := CountBy(records, BySubject, topK, Descending)
		if !reflect.DeepEqual(truncated, full[:topK]) {
			t.Errorf("topK=%d: got %v, want prefix %v", topK, truncated, full[:topK])
		}
	}
}

func TestCountByStableTies(t *testing.T) {
	// b and c tie; b was encountered first and must win the boundary slot.
	records := subjects("a", "a", "b", "c", "b", "c")

	got := CountBy(records, BySubject, 2, Descending)
	want := []models.FrequencyEntry{
		{Key: "a", Count: 2},
		{Key: "b", Count: 2},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestCountByAscending(t *testing.T) {
	records := subjects("a", "b", "a", "c", "b", "a")

	// topK selects the highest counts even when ascending order is requested.
	got := CountBy(records, BySubject, 2, Ascending)
	want := []models.FrequencyEntry{
		{Key: "b", Count: 2},
		{Key: "a", Count: 3},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestCountByEmpty(t *testing.T) {
	if got := CountBy(nil, BySubject, 10, Descending); len(got) != 0 {
		t.Errorf("got %v, want empty table", got)
	}
	if got := CountBy(subjects("", " "), BySubject, 10, Descending); len(got) != 0 {
		t.Errorf("got %v, want empty table after blank exclusion", got)
	}
}

func TestYearlyCounts(t *testing.T) {
	years := []int{2020, 2018, 2020, 2019, 2020, 2018}
	records := make([]models.Record, 0, len(years)+1)
	for i := range years {
		records = append(records, models.Record{CaseNumber: "x", Year: &years[i]})
	}
	records = append(records, models.Record{CaseNumber: "no-year"})

	got := YearlyCounts(records)
	want := []models.YearCount{
		{Year: 2018, Count: 2},
		{Year: 2019, Count: 1},
		{Year: 2020, Count: 3},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestDistinctValues(t *testing.T) {
	records := []models.Record{
		{Comarca: "Comarca de Tefé"},
		{Comarca: "Comarca de Manaus"},
		{Comarca: ""},
		{Comarca: "Comarca de Manaus"},
	}

	got := DistinctValues(records, ByComarca)
	want := []string{"Comarca de Manaus", "Comarca de Tefé"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}

	if n := DistinctCount(records, ByComarca); n != 2 {
		t.Errorf("DistinctCount = %d, want 2", n)
	}
}
