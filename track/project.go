package track

import (
	"errors"
	"fmt"
	"math"
	"time"
)

var ErrInvalidSpeed = errors.New("average speed must be positive")

// TimedPoint is a sampled point carrying its estimated arrival time.
type TimedPoint struct {
	Point
	Time time.Time
}

// ProjectTimes derives an estimated arrival time for every point from its
// cumulative distance, a departure time and an average speed in km/h. Fails
// with ErrInvalidSpeed for a non-positive or non-finite speed.
func ProjectTimes(points []Point, start time.Time, speedKmh float64) ([]TimedPoint, error) {
	if speedKmh <= 0 || math.IsNaN(speedKmh) || math.IsInf(speedKmh, 0) {
		return nil, fmt.Errorf("project times: %w", ErrInvalidSpeed)
	}

	timed := make([]TimedPoint, len(points))

	for i, p := range points {
		hours := p.Distance / 1000 / speedKmh
		timed[i] = TimedPoint{
			Point: p,
			Time:  start.Add(time.Duration(hours * float64(time.Hour))),
		}
	}

	return timed, nil
}
