package weather

import (
	"fmt"
	"log"
	"time"

	"gitlab.com/begraf/fahrtwetter/geo"
	"gitlab.com/begraf/fahrtwetter/track"
)

// Sample is a forecast reading for a single place and time.
type Sample struct {
	Temperature float64 `json:"temperature"`
	WindSpeed   float64 `json:"windSpeed"`
	Code        int     `json:"code"`
}

// Point is a timed track point merged with its forecast.
type Point struct {
	track.TimedPoint
	Sample
}

// LookupFunc obtains a forecast for a position at a target time. The
// annotator has no knowledge of what sits behind it; transport, endpoint,
// timeout and retry policy all belong to the implementation.
type LookupFunc func(p geo.Point, at time.Time) (Sample, error)

// LookupError reports a failed forecast lookup for a single point.
type LookupError struct {
	Point geo.Point
	At    time.Time
	Err   error
}

func (e *LookupError) Error() string {
	return fmt.Sprintf(
		"weather lookup at %.5f,%.5f for %s: %s",
		e.Point.Lat, e.Point.Lon, e.At.Format(time.RFC3339), e.Err,
	)
}

func (e *LookupError) Unwrap() error { return e.Err }

// Annotate fetches a forecast for every point, strictly in input order and
// one lookup at a time. A failed lookup is logged and its point omitted from
// the result; the remaining points are still processed. No placeholder or
// stale value ever stands in for a missing reading.
func Annotate(points []track.TimedPoint, lookup LookupFunc) []Point {
	var annotated []Point

	for _, p := range points {
		position := geo.Point{Lat: p.Lat, Lon: p.Lon}

		sample, err := lookup(position, p.Time)
		if err != nil {
			log.Println(&LookupError{Point: position, At: p.Time, Err: err})
			continue
		}

		annotated = append(annotated, Point{TimedPoint: p, Sample: sample})
	}

	return annotated
}
