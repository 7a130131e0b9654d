package cmd

import (
	"github.com/spf13/cobra"
	"gitlab.com/begraf/fahrtwetter/cmd/serve"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve TRACK-FILE...",
	Short: "Serve tracks and their forecasts on a local map",
	Args:  cobra.MinimumNArgs(1),
	RunE:  serve.RunServeCmd,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringP("start", "s", "", "Departure time (RFC 3339 or '2006-01-02 15:04'), defaults to now")
	serveCmd.Flags().Float64P("speed", "v", 0, "Average speed in km/h")
	serveCmd.Flags().Float64P("interval", "i", 0, "Sampling interval in kilometers")
}
