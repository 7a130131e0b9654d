package weather

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"gitlab.com/begraf/fahrtwetter/geo"
)

// DefaultBaseURL points at the public open-meteo forecast endpoint.
const DefaultBaseURL = "https://api.open-meteo.com/v1/forecast"

const hourlyTimeLayout = "2006-01-02T15:04"

// Client fetches hourly forecasts from an open-meteo style API. Its Lookup
// method satisfies LookupFunc.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

type forecastResponse struct {
	Hourly struct {
		Time        []string  `json:"time"`
		Temperature []float64 `json:"temperature_2m"`
		WindSpeed   []float64 `json:"wind_speed_10m"`
		Code        []int     `json:"weather_code"`
	} `json:"hourly"`
}

// Lookup requests the hourly forecast for the point's day and returns the
// reading closest to the target time.
func (c *Client) Lookup(p geo.Point, at time.Time) (sample Sample, err error) {
	day := at.UTC().Format("2006-01-02")

	query := url.Values{}
	query.Set("latitude", strconv.FormatFloat(p.Lat, 'f', 5, 64))
	query.Set("longitude", strconv.FormatFloat(p.Lon, 'f', 5, 64))
	query.Set("hourly", "temperature_2m,wind_speed_10m,weather_code")
	query.Set("timezone", "UTC")
	query.Set("start_date", day)
	query.Set("end_date", day)

	resp, err := c.http.Get(c.baseURL + "?" + query.Encode())
	if err != nil {
		return sample, fmt.Errorf("forecast request: %w", err)
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return sample, fmt.Errorf("forecast request failed with status %s", resp.Status)
	}

	var payload forecastResponse
	if err = json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return sample, fmt.Errorf("decode forecast response: %w", err)
	}

	return nearestHour(&payload, at)
}

// nearestHour picks the hourly reading closest to the target time.
func nearestHour(payload *forecastResponse, at time.Time) (sample Sample, err error) {
	hourly := payload.Hourly

	if len(hourly.Time) == 0 {
		return sample, fmt.Errorf("forecast response contains no hourly data")
	}
	if len(hourly.Temperature) != len(hourly.Time) ||
		len(hourly.WindSpeed) != len(hourly.Time) ||
		len(hourly.Code) != len(hourly.Time) {
		return sample, fmt.Errorf("forecast response series lengths differ")
	}

	absDuration := func(d time.Duration) time.Duration {
		if d < 0 {
			return -d
		}
		return d
	}

	durBest := time.Duration(1 << 62)
	iBest := 0

	for i, raw := range hourly.Time {
		hour, err := time.Parse(hourlyTimeLayout, raw)
		if err != nil {
			return sample, fmt.Errorf("parse forecast hour '%s': %w", raw, err)
		}

		durI := absDuration(at.UTC().Sub(hour))
		if durI < durBest {
			durBest = durI
			iBest = i
		}
	}

	return Sample{
		Temperature: hourly.Temperature[iBest],
		WindSpeed:   hourly.WindSpeed[iBest],
		Code:        hourly.Code[iBest],
	}, nil
}
