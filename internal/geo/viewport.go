package geo

import (
	"github.com/golang/geo/s2"

	"github.com/adrianocesar/processos-backend-go/internal/models"
)

// Viewport computes the bounding rectangle and center the map renderer should
// frame for the plotted points. Returns nil when there is nothing to frame.
func Viewport(points []models.GeoPoint) *models.MapViewport {
	if len(points) == 0 {
		return nil
	}

	rect := s2.EmptyRect()
	for _, p := range points {
		rect = rect.AddPoint(s2.LatLngFromDegrees(p.Lat, p.Lng))
	}

	lo, hi, center := rect.Lo(), rect.Hi(), rect.Center()
	return &models.MapViewport{
		MinLat:    lo.Lat.Degrees(),
		MaxLat:    hi.Lat.Degrees(),
		MinLng:    lo.Lng.Degrees(),
		MaxLng:    hi.Lng.Degrees(),
		CenterLat: center.Lat.Degrees(),
		CenterLng: center.Lng.Degrees(),
	}
}
