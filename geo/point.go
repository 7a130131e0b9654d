package geo

import "encoding/json"

// Point is a geographic position in degrees.
type Point struct {
	Lat, Lon float64
}

// MarshalJSON emits the point as a [lat, lon] pair, the form Leaflet expects.
func (p Point) MarshalJSON() ([]byte, error) {
	return json.Marshal([]float64{p.Lat, p.Lon})
}

func (p *Point) UnmarshalJSON(data []byte) error {
	var pair [2]float64
	if err := json.Unmarshal(data, &pair); err != nil {
		return err
	}

	p.Lat = pair[0]
	p.Lon = pair[1]

	return nil
}
