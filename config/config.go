package config

import "github.com/spf13/viper"

var (
	KeyWeatherBaseURL = "weather.baseurl"
	KeyAverageSpeed   = "route.speed"
	KeyInterval       = "route.interval"
	KeyListenAddress  = "serve.address"
)

func WeatherBaseURL() string {
	return viper.GetString(KeyWeatherBaseURL)
}

func HasAverageSpeed() bool {
	return viper.IsSet(KeyAverageSpeed) && viper.GetFloat64(KeyAverageSpeed) > 0
}

// AverageSpeedKmh is the configured travel speed in km/h.
func AverageSpeedKmh() float64 {
	return viper.GetFloat64(KeyAverageSpeed)
}

func HasSampleInterval() bool {
	return viper.IsSet(KeyInterval) && viper.GetFloat64(KeyInterval) > 0
}

// SampleIntervalKm is the configured sampling interval in kilometers.
func SampleIntervalKm() float64 {
	return viper.GetFloat64(KeyInterval)
}

func ListenAddress() string {
	if viper.IsSet(KeyListenAddress) {
		return viper.GetString(KeyListenAddress)
	}

	return DefaultListenAddress()
}

func DefaultListenAddress() string {
	return ":8000"
}

func DefaultSampleIntervalKm() float64 {
	return 10
}

func GPXExtensions() []string {
	return []string{".gpx"}
}

func NMEAExtensions() []string {
	return []string{".nmea", ".txt", ".log"}
}
