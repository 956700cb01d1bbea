package geo

import (
	"math"

	"github.com/adrianocesar/processos-backend-go/internal/analysis"
	"github.com/adrianocesar/processos-backend-go/internal/models"
)

// Marker size bounds for the map view.
const (
	MarkerSizeMin = 20.0
	MarkerSizeMax = 80.0
)

// Binner joins resolved municipality counts to fixed coordinates and computes
// the visual-encoding parameters (marker size, color value) for the map view.
type Binner struct {
	resolver *Resolver
	index    MunicipalityIndex
}

// NewBinner creates a binner over the given resolver and coordinate index.
func NewBinner(resolver *Resolver, index MunicipalityIndex) *Binner {
	return &Binner{resolver: resolver, index: index}
}

// Bin resolves every record's comarca, counts filings per municipality, and
// joins the counts onto the coordinate index. Resolved names with no
// coordinate entry cannot be plotted and are returned in unmatched; that is
// a known precision gap, not an error.
//
// Points come back count-descending, but map rendering is order-independent.
func (b *Binner) Bin(records []models.Record) (points []models.GeoPoint, unmatched []string) {
	entries := analysis.CountBy(records, func(r models.Record) string {
		name, ok := b.resolver.Resolve(r.Comarca)
		if !ok {
			return ""
		}
		return name
	}, 0, analysis.Descending)

	points = make([]models.GeoPoint, 0, len(entries))
	for _, e := range entries {
		coord, ok := b.index[e.Key]
		if !ok {
			unmatched = append(unmatched, e.Key)
			continue
		}
		points = append(points, models.GeoPoint{
			Municipality: e.Key,
			Lat:          coord.Lat,
			Lng:          coord.Lng,
			Count:        e.Count,
			ColorValue:   float64(e.Count),
		})
	}

	if len(points) == 0 {
		return points, unmatched
	}

	countMin, countMax := points[0].Count, points[0].Count
	for _, p := range points[1:] {
		if p.Count < countMin {
			countMin = p.Count
		}
		if p.Count > countMax {
			countMax = p.Count
		}
	}
	for i := range points {
		points[i].MarkerSize = MarkerSize(points[i].Count, countMin, countMax)
	}

	return points, unmatched
}

// MarkerSize linearly interpolates a count into the [MarkerSizeMin,
// MarkerSizeMax] range. When every count in the set is identical (including
// the single-point case) all markers take the maximum size, which avoids the
// zero division while keeping equal-magnitude points visually maximal.
func MarkerSize(count, countMin, countMax int) float64 {
	if countMax == countMin {
		return MarkerSizeMax
	}
	ratio := float64(count-countMin) / float64(countMax-countMin)
	return MarkerSizeMin + ratio*(MarkerSizeMax-MarkerSizeMin)
}

// ColorDomain returns the log10 color-scale bounds for a joined count
// distribution. The log compression keeps low-count municipalities visually
// distinguishable when the set mixes very small and very large counts. Zero
// and negative counts have no logarithm, so the lower bound clamps to 0 and
// the upper to 1 in those cases.
func ColorDomain(countMin, countMax int) (lo, hi float64) {
	lo = 0
	if countMin > 0 {
		lo = math.Log10(float64(countMin))
	}
	hi = 1
	if countMax > 0 {
		hi = math.Log10(float64(countMax))
	}
	return lo, hi
}
