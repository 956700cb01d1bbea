package analysis

import (
	"github.com/adrianocesar/processos-backend-go/internal/models"
)

// Filter derives the working set: records whose year falls inside the
// inclusive [yearMin, yearMax] range and, when an exact comarca filter is
// active, whose comarca label matches it verbatim (case-sensitive, matching
// the upstream free-text values). Records without a valid year are excluded
// from year-filtered views.
//
// Filter never narrows an already-filtered set further when reapplied with
// the same bounds, and an empty result is legitimate.
func Filter(records []models.Record, yearMin, yearMax int, comarca string) []models.Record {
	f := models.DashboardFilter{YearMin: yearMin, YearMax: yearMax, Comarca: comarca}

	out := make([]models.Record, 0, len(records))
	for _, r := range records {
		if !r.HasYear() {
			continue
		}
		if *r.Year < yearMin || *r.Year > yearMax {
			continue
		}
		if f.IsComarcaFiltered() && r.Comarca != f.Comarca {
			continue
		}
		out = append(out, r)
	}
	return out
}

// YearBounds returns the observed year range over records with a valid year.
// ok is false when no record carries a year.
func YearBounds(records []models.Record) (yearMin, yearMax int, ok bool) {
	for _, r := range records {
		if !r.HasYear() {
			continue
		}
		y := *r.Year
		if !ok {
			yearMin, yearMax, ok = y, y, true
			continue
		}
		if y < yearMin {
			yearMin = y
		}
		if y > yearMax {
			yearMax = y
		}
	}
	return yearMin, yearMax, ok
}
