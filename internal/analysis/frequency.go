package analysis

import (
	"sort"
	"strings"

	"github.com/adrianocesar/processos-backend-go/internal/models"
)

// Order selects the list order of a frequency table.
type Order int

const (
	// Descending orders by count, highest first (ranking use).
	Descending Order = iota
	// Ascending orders by count, lowest first. Horizontal-bar charts render
	// "largest on top" from an ascending list with a reversed axis.
	Ascending
)

// Accessors for the groupable Record fields.
var (
	ByClass   = func(r models.Record) string { return r.Class }
	BySubject = func(r models.Record) string { return r.Subject }
	ByComarca = func(r models.Record) string { return r.Comarca }
)

// CountBy groups records by the accessor's string value and counts
// occurrences. Blank values are excluded from the grouping rather than
// counted under an empty key.
//
// topK > 0 keeps only the topK highest-count keys regardless of the requested
// order; ties at the boundary break by first-encountered input order, so
// truncation is deterministic.
func CountBy(records []models.Record, key func(models.Record) string, topK int, order Order) []models.FrequencyEntry {
	counts := make(map[string]int)
	var keys []string // first-encounter order

	for _, r := range records {
		k := strings.TrimSpace(key(r))
		if k == "" {
			continue
		}
		if _, seen := counts[k]; !seen {
			keys = append(keys, k)
		}
		counts[k]++
	}

	entries := make([]models.FrequencyEntry, 0, len(keys))
	for _, k := range keys {
		entries = append(entries, models.FrequencyEntry{Key: k, Count: counts[k]})
	}

	// Stable sort over first-encounter order gives the deterministic
	// tie-break the truncation contract requires.
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Count > entries[j].Count
	})

	if topK > 0 && topK < len(entries) {
		entries = entries[:topK]
	}

	if order == Ascending {
		sort.SliceStable(entries, func(i, j int) bool {
			return entries[i].Count < entries[j].Count
		})
	}

	return entries
}

// YearlyCounts returns per-year filing counts sorted ascending by year, for
// the temporal trend view. Records without a valid year are skipped.
func YearlyCounts(records []models.Record) []models.YearCount {
	counts := make(map[int]int)
	for _, r := range records {
		if r.HasYear() {
			counts[*r.Year]++
		}
	}

	years := make([]int, 0, len(counts))
	for y := range counts {
		years = append(years, y)
	}
	sort.Ints(years)

	out := make([]models.YearCount, 0, len(years))
	for _, y := range years {
		out = append(out, models.YearCount{Year: y, Count: counts[y]})
	}
	return out
}

// DistinctCount returns the number of distinct non-blank values of the
// accessor over records.
func DistinctCount(records []models.Record, key func(models.Record) string) int {
	seen := make(map[string]struct{})
	for _, r := range records {
		k := strings.TrimSpace(key(r))
		if k == "" {
			continue
		}
		seen[k] = struct{}{}
	}
	return len(seen)
}

// DistinctValues returns the sorted distinct non-blank values of the accessor
// over records, for filter dropdowns.
func DistinctValues(records []models.Record, key func(models.Record) string) []string {
	seen := make(map[string]struct{})
	var values []string
	for _, r := range records {
		k := strings.TrimSpace(key(r))
		if k == "" {
			continue
		}
		if _, ok := seen[k]; !ok {
			seen[k] = struct{}{}
			values = append(values, k)
		}
	}
	sort.Strings(values)
	return values
}
