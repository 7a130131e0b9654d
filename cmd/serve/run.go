package serve

import (
	"fmt"
	"html/template"
	"log"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/goodsign/monday"
	"github.com/spf13/cobra"
	"gitlab.com/begraf/fahrtwetter/config"
	"gitlab.com/begraf/fahrtwetter/weather"
)

func RunServeCmd(cmd *cobra.Command, args []string) error {
	speed, err := cmd.Flags().GetFloat64("speed")
	if err != nil {
		return err
	}
	if speed <= 0 {
		if !config.HasAverageSpeed() {
			return fmt.Errorf("no average speed configured")
		}
		speed = config.AverageSpeedKmh()
	}

	interval, err := cmd.Flags().GetFloat64("interval")
	if err != nil {
		return err
	}
	if interval <= 0 {
		interval = config.DefaultSampleIntervalKm()
		if config.HasSampleInterval() {
			interval = config.SampleIntervalKm()
		}
	}

	startRaw, err := cmd.Flags().GetString("start")
	if err != nil {
		return err
	}
	start, err := parseStart(startRaw)
	if err != nil {
		return err
	}

	registry := newTrackRegistry()
	for _, arg := range args {
		registry.Add(arg)
	}

	client := weather.NewClient(config.WeatherBaseURL())

	api := newServeAPI(registry, client.Lookup, start, speed, interval*1000)

	r := gin.New()

	r.GET("/", api.ServeIndex)
	r.GET("/map/:GUID", api.ServeMap)
	r.GET("/track/:GUID", api.ServeTrack)
	r.GET("/forecast/:GUID", api.ServeForecast)

	r.SetFuncMap(template.FuncMap{
		"timeDisplay": func(t time.Time) string {
			return monday.Format(t, "Monday, 2. January 15:04", monday.LocaleDeDE)
		},
	})

	r.LoadHTMLGlob("./res/templates/*")
	r.Static("/static", "./res/static")

	if err = r.Run(config.ListenAddress()); err != nil {
		log.Fatal(err)
	}

	return nil
}

// parseStart parses the departure time flag. An unset flag means "now",
// resolved per request so a long-running server stays current.
func parseStart(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, nil
	}

	for _, layout := range []string{time.RFC3339, "2006-01-02 15:04", "2006-01-02T15:04"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("could not parse start time '%s'", raw)
}
