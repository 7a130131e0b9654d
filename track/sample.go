package track

import "gitlab.com/begraf/fahrtwetter/geo"

// Sample reduces the track to points spaced intervalMeters apart along its
// path. Points falling exactly on an interval boundary are emitted verbatim;
// otherwise a point is linearly interpolated between the two neighboring
// track points. The track's final point is always part of the result, even
// when the interval does not evenly divide the total distance.
//
// For a non-positive interval or an empty track the original points are
// returned unchanged.
//
// The blend of lat/lon is planar rather than geodesic; adequate at
// sampling-interval scale.
func (t Track) Sample(intervalMeters float64) []Point {
	if len(t) == 0 || intervalMeters <= 0 {
		return t
	}

	total := t.Total()

	var samples []Point

	// The cursor only ever moves forward: offsets are strictly increasing,
	// so each scan resumes where the previous one stopped.
	cursor := 0

	for offset := 0.0; offset <= total; offset += intervalMeters {
		for cursor < len(t) && t[cursor].Distance < offset {
			cursor++
		}

		if cursor == len(t) {
			break
		}

		curr := t[cursor]
		if cursor == 0 || curr.Distance == offset {
			samples = append(samples, curr)
			continue
		}

		prev := t[cursor-1]
		ratio := (offset - prev.Distance) / (curr.Distance - prev.Distance)

		samples = append(samples, Point{
			Point: geo.Point{
				Lat: prev.Lat + ratio*(curr.Lat-prev.Lat),
				Lon: prev.Lon + ratio*(curr.Lon-prev.Lon),
			},
			Distance: offset,
		})
	}

	if len(samples) == 0 || samples[len(samples)-1].Distance < total {
		samples = append(samples, t[len(t)-1])
	}

	return samples
}
