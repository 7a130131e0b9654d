package render

import (
	"github.com/lucasb-eyer/go-colorful"
	"gitlab.com/begraf/fahrtwetter/weather"
)

// TemperatureScale maps temperatures onto a cold-to-warm color gradient.
// The scale owns its bounds; nothing here is process-wide state.
type TemperatureScale struct {
	cold, warm colorful.Color
	min, max   float64
}

func NewTemperatureScale(min, max float64) *TemperatureScale {
	cold, _ := colorful.Hex("#2c7bb6")
	warm, _ := colorful.Hex("#d7191c")

	if max < min {
		min, max = max, min
	}

	return &TemperatureScale{
		cold: cold,
		warm: warm,
		min:  min,
		max:  max,
	}
}

// ScaleFromPoints spans a scale over the temperatures of the given points.
func ScaleFromPoints(points []weather.Point) *TemperatureScale {
	if len(points) == 0 {
		return NewTemperatureScale(0, 0)
	}

	min := points[0].Temperature
	max := points[0].Temperature

	for _, p := range points[1:] {
		if p.Temperature < min {
			min = p.Temperature
		}
		if p.Temperature > max {
			max = p.Temperature
		}
	}

	return NewTemperatureScale(min, max)
}

func (s *TemperatureScale) HexColor(temperature float64) string {
	t := 0.5
	if s.max > s.min {
		t = (temperature - s.min) / (s.max - s.min)
	}

	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}

	return s.cold.BlendLab(s.warm, t).Clamped().Hex()
}
