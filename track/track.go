package track

import (
	"errors"

	"gitlab.com/begraf/fahrtwetter/geo"
)

var ErrEmptyTrack = errors.New("track contains no points")

// Point is a position on a track together with the path distance traveled
// from the track's first point, in meters.
type Point struct {
	geo.Point
	Distance float64
}

// Track is an ordered sequence of points with non-decreasing cumulative
// distances. The first point's distance is always zero. A track is built
// once and not mutated afterwards.
type Track []Point

// Build annotates an ordered point sequence with cumulative path distances.
// Fails with ErrEmptyTrack when no points are given.
func Build(points []geo.Point) (Track, error) {
	if len(points) == 0 {
		return nil, ErrEmptyTrack
	}

	t := make(Track, len(points))
	t[0] = Point{Point: points[0]}

	for i := 1; i < len(points); i++ {
		t[i] = Point{
			Point:    points[i],
			Distance: t[i-1].Distance + geo.Distance(points[i-1], points[i]),
		}
	}

	return t, nil
}

// Total returns the track's full path length in meters.
func (t Track) Total() float64 {
	if len(t) == 0 {
		return 0
	}

	return t[len(t)-1].Distance
}
