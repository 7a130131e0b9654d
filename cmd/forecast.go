package cmd

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/spf13/cobra"
	"gitlab.com/begraf/fahrtwetter/config"
	"gitlab.com/begraf/fahrtwetter/geotrack"
	"gitlab.com/begraf/fahrtwetter/track"
	"gitlab.com/begraf/fahrtwetter/weather"
)

// forecastCmd represents the forecast command
var forecastCmd = &cobra.Command{
	Use:   "forecast TRACK-FILE",
	Short: "Sample a track and print the forecast along it",
	Long: `Forecast loads a GPX or NMEA track, reduces it to evenly spaced samples,
estimates an arrival time for every sample from the departure time and the
average speed, and prints the weather expected at each sample.`,
	Args: cobra.ExactArgs(1),
	RunE: runForecast,
}

func init() {
	rootCmd.AddCommand(forecastCmd)

	forecastCmd.Flags().StringP("start", "s", "", "Departure time (RFC 3339 or '2006-01-02 15:04'), defaults to now")
	forecastCmd.Flags().Float64P("speed", "v", 0, "Average speed in km/h")
	forecastCmd.Flags().Float64P("interval", "i", 0, "Sampling interval in kilometers")
}

func runForecast(cmd *cobra.Command, args []string) error {
	points, err := geotrack.LoadTrack(args[0])
	if err != nil {
		return fmt.Errorf("load track: %w", err)
	}

	trk, err := track.Build(points)
	if err != nil {
		return fmt.Errorf("build track: %w", err)
	}

	start, err := startTime(cmd)
	if err != nil {
		return err
	}

	speed, err := cmd.Flags().GetFloat64("speed")
	if err != nil {
		return err
	}
	if speed <= 0 {
		speed = averageSpeed()
	}

	interval, err := cmd.Flags().GetFloat64("interval")
	if err != nil {
		return err
	}
	if interval <= 0 {
		interval = sampleInterval()
	}

	samples := trk.Sample(interval * 1000)

	timed, err := track.ProjectTimes(samples, start, speed)
	if err != nil {
		return err
	}

	client := weather.NewClient(config.WeatherBaseURL())
	annotated := weather.Annotate(timed, client.Lookup)

	printForecast(trk, annotated)

	if skipped := len(timed) - len(annotated); skipped > 0 {
		log.Printf("%d of %d points had no forecast and were skipped", skipped, len(timed))
	}

	return nil
}

func printForecast(trk track.Track, points []weather.Point) {
	fmt.Printf("Track length: %.1f km, %d forecast points\n\n", trk.Total()/1000, len(points))

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "TIME\tKM\tPOSITION\tTEMP\tWIND\tCODE")

	for _, p := range points {
		fmt.Fprintf(
			w,
			"%s\t%.1f\t%.5f,%.5f\t%.1f°C\t%.0f km/h\t%d\n",
			p.Time.Format("Mon 15:04"),
			p.Distance/1000,
			p.Lat, p.Lon,
			p.Temperature,
			p.WindSpeed,
			p.Code,
		)
	}

	_ = w.Flush()
}

// startTime parses the --start flag, defaulting to now.
func startTime(cmd *cobra.Command) (time.Time, error) {
	raw, err := cmd.Flags().GetString("start")
	if err != nil {
		return time.Time{}, err
	}

	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Now(), nil
	}

	for _, layout := range []string{time.RFC3339, "2006-01-02 15:04", "2006-01-02T15:04"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("could not parse start time '%s'", raw)
}

// averageSpeed falls back from configuration to an interactive prompt.
func averageSpeed() float64 {
	if config.HasAverageSpeed() {
		return config.AverageSpeedKmh()
	}

	return promptPositiveFloat("Average speed (km/h)")
}

func sampleInterval() float64 {
	if config.HasSampleInterval() {
		return config.SampleIntervalKm()
	}

	return config.DefaultSampleIntervalKm()
}

func promptPositiveFloat(message string) float64 {
	prompt := survey.Input{
		Message: message,
	}

	value := ""
	err := survey.AskOne(
		&prompt,
		&value,
		survey.WithValidator(survey.Required),
		survey.WithValidator(
			func(ans interface{}) error {
				f, err := strconv.ParseFloat(strings.TrimSpace(ans.(string)), 64)
				if err != nil || f <= 0 {
					return fmt.Errorf("enter a positive number")
				}
				return nil
			},
		),
	)
	exitOnInterrupt(err)

	f, _ := strconv.ParseFloat(strings.TrimSpace(value), 64)

	return f
}

func exitOnInterrupt(err error) {
	if err == terminal.InterruptErr {
		os.Exit(1)
	}
}
