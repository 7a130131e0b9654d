package geotrack

import (
	"math"
	"os"
	"path/filepath"
	"testing"
)

const gpxFixture = `<?xml version="1.0" encoding="UTF-8"?>
<gpx version="1.1" creator="test" xmlns="http://www.topografix.com/GPX/1/1">
  <trk>
    <name>Morning ride</name>
    <trkseg>
      <trkpt lat="48.1000" lon="11.5000"><time>2024-01-01T08:00:00Z</time></trkpt>
      <trkpt lat="48.1100" lon="11.5100"><time>2024-01-01T08:05:00Z</time></trkpt>
      <trkpt lat="48.1200" lon="11.5300"><time>2024-01-01T08:12:00Z</time></trkpt>
    </trkseg>
  </trk>
</gpx>`

const nmeaFixture = "$GPRMC,123519,A,4807.038,N,01131.000,E,022.4,084.4,230394,003.1,W*6A\n"

func writeFixture(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0666); err != nil {
		t.Fatal(err)
	}

	return path
}

func TestLoadTrackGPX(t *testing.T) {
	path := writeFixture(t, "ride.gpx", gpxFixture)

	points, err := LoadTrack(path)
	if err != nil {
		t.Fatal(err)
	}

	if len(points) != 3 {
		t.Fatalf("expected 3 points, got %d", len(points))
	}

	if points[0].Lat != 48.1 || points[0].Lon != 11.5 {
		t.Fatalf("unexpected first point: %+v", points[0])
	}

	// Order must follow the file.
	if points[2].Lat != 48.12 || points[2].Lon != 11.53 {
		t.Fatalf("unexpected last point: %+v", points[2])
	}
}

func TestLoadTrackNMEA(t *testing.T) {
	path := writeFixture(t, "ride.nmea", nmeaFixture)

	points, err := LoadTrack(path)
	if err != nil {
		t.Fatal(err)
	}

	if len(points) != 1 {
		t.Fatalf("expected 1 point, got %d", len(points))
	}

	if math.Abs(points[0].Lat-48.1173) > 1e-4 || math.Abs(points[0].Lon-11.5167) > 1e-4 {
		t.Fatalf("unexpected point: %+v", points[0])
	}
}

func TestLoadTrackUnknownExtension(t *testing.T) {
	path := writeFixture(t, "ride.kml", "<kml/>")

	_, err := LoadTrack(path)
	if err == nil {
		t.Fatal("expected an error for unknown extension")
	}
}
