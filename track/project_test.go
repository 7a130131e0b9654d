package track

import (
	"errors"
	"math"
	"testing"
	"time"
)

func TestProjectTimes(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	points := []Point{
		{Distance: 0},
		{Distance: 15000},
	}

	timed, err := ProjectTimes(points, start, 30)
	if err != nil {
		t.Fatal(err)
	}

	if len(timed) != len(points) {
		t.Fatalf("expected %d points, got %d", len(points), len(timed))
	}

	if !timed[0].Time.Equal(start) {
		t.Fatalf("start point time: %v", timed[0].Time)
	}

	// 15 km at 30 km/h is half an hour.
	want := start.Add(30 * time.Minute)
	if !timed[1].Time.Equal(want) {
		t.Fatalf("expected %v, got %v", want, timed[1].Time)
	}
}

func TestProjectTimesMonotonic(t *testing.T) {
	start := time.Date(2024, 6, 15, 8, 0, 0, 0, time.UTC)
	points := []Point{
		{Distance: 0},
		{Distance: 750},
		{Distance: 750},
		{Distance: 4200},
	}

	timed, err := ProjectTimes(points, start, 18.5)
	if err != nil {
		t.Fatal(err)
	}

	for i := 1; i < len(timed); i++ {
		if timed[i].Time.Before(timed[i-1].Time) {
			t.Fatalf("times not monotonic at %d: %v before %v", i, timed[i].Time, timed[i-1].Time)
		}
	}
}

func TestProjectTimesInvalidSpeed(t *testing.T) {
	points := []Point{{Distance: 1000}}

	for _, speed := range []float64{0, -5, math.NaN(), math.Inf(1)} {
		_, err := ProjectTimes(points, time.Now(), speed)
		if !errors.Is(err, ErrInvalidSpeed) {
			t.Fatalf("speed %v: expected ErrInvalidSpeed, got %v", speed, err)
		}
	}
}

func TestProjectTimesEmptyInput(t *testing.T) {
	timed, err := ProjectTimes(nil, time.Now(), 25)
	if err != nil {
		t.Fatal(err)
	}
	if len(timed) != 0 {
		t.Fatalf("expected no points, got %d", len(timed))
	}
}
