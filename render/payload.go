package render

import (
	"encoding/json"
	"time"

	"gitlab.com/begraf/fahrtwetter/geo"
	"gitlab.com/begraf/fahrtwetter/track"
	"gitlab.com/begraf/fahrtwetter/weather"
)

// ForecastEntry is the JSON shape of one annotated point as consumed by the
// map page's marker script.
type ForecastEntry struct {
	LatLng      geo.Point `json:"latlng"`
	Time        time.Time `json:"time"`
	DistanceKm  float64   `json:"distanceKm"`
	Temperature float64   `json:"temperature"`
	WindSpeed   float64   `json:"windSpeed"`
	Code        int       `json:"code"`
	Color       string    `json:"color"`
}

// MapPayload builds the JSON payload for a leaflet map: the full track as a
// polyline plus the weather-annotated samples as markers. Marker colors come
// from a temperature scale spanning the annotated points.
func MapPayload(trk track.Track, points []weather.Point) ([]byte, error) {
	scale := ScaleFromPoints(points)

	entries := make([]ForecastEntry, len(points))
	for i, p := range points {
		entries[i] = ForecastEntry{
			LatLng:      geo.Point{Lat: p.Lat, Lon: p.Lon},
			Time:        p.Time,
			DistanceKm:  p.Distance / 1000,
			Temperature: p.Temperature,
			WindSpeed:   p.WindSpeed,
			Code:        p.Code,
			Color:       scale.HexColor(p.Temperature),
		}
	}

	payload := map[string]any{
		"track":  trk,
		"points": entries,
	}

	return json.Marshal(payload)
}
