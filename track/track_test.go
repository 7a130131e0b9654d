package track

import (
	"errors"
	"math"
	"testing"

	"gitlab.com/begraf/fahrtwetter/geo"
)

func TestBuildEmptyInput(t *testing.T) {
	trk, err := Build(nil)
	if !errors.Is(err, ErrEmptyTrack) {
		t.Fatalf("expected ErrEmptyTrack, got %v", err)
	}
	if trk != nil {
		t.Fatalf("expected no track, got %v", trk)
	}
}

func TestBuildSinglePoint(t *testing.T) {
	trk, err := Build([]geo.Point{{Lat: 48.1, Lon: 11.5}})
	if err != nil {
		t.Fatal(err)
	}

	if len(trk) != 1 {
		t.Fatalf("expected 1 point, got %d", len(trk))
	}
	if trk[0].Distance != 0 {
		t.Fatalf("first distance must be 0, got %v", trk[0].Distance)
	}
}

func TestBuildCumulativeDistances(t *testing.T) {
	points := []geo.Point{
		{Lat: 48.0, Lon: 11.0},
		{Lat: 48.1, Lon: 11.0},
		{Lat: 48.1, Lon: 11.2},
		{Lat: 48.0, Lon: 11.2},
	}

	trk, err := Build(points)
	if err != nil {
		t.Fatal(err)
	}

	if len(trk) != len(points) {
		t.Fatalf("expected %d points, got %d", len(points), len(trk))
	}

	if trk[0].Distance != 0 {
		t.Fatalf("first distance must be 0, got %v", trk[0].Distance)
	}

	for i := 1; i < len(trk); i++ {
		if trk[i].Point != points[i] {
			t.Fatalf("point %d: order not preserved", i)
		}

		if trk[i].Distance < trk[i-1].Distance {
			t.Fatalf("distances not non-decreasing at %d: %v < %v", i, trk[i].Distance, trk[i-1].Distance)
		}

		segment := geo.Distance(points[i-1], points[i])
		got := trk[i].Distance - trk[i-1].Distance
		if math.Abs(got-segment) > 1e-9 {
			t.Fatalf("segment %d: expected %v, got %v", i, segment, got)
		}
	}
}

func TestTotal(t *testing.T) {
	if got := (Track{}).Total(); got != 0 {
		t.Fatalf("empty track total: %v", got)
	}

	trk := Track{
		{Distance: 0},
		{Distance: 1200},
	}
	if got := trk.Total(); got != 1200 {
		t.Fatalf("expected 1200, got %v", got)
	}
}
