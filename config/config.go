package config

import (
	"time"

	"github.com/spf13/viper"
)

var (
	KeyOutputFile   = "output.file"
	KeyServeListen  = "serve.listen"
	KeySamplingRate = "activity.samplingrate"
)

func OutputFile() string {
	if s := viper.GetString(KeyOutputFile); s != "" {
		return s
	}

	return DefaultOutputFile()
}

func ServeListen() string {
	if s := viper.GetString(KeyServeListen); s != "" {
		return s
	}

	return DefaultServeListen()
}

// SamplingRate is the fallback for manifest entries that do not declare their
// own activity sampling rate.
func SamplingRate() time.Duration {
	if d := viper.GetDuration(KeySamplingRate); d > 0 {
		return d
	}

	return DefaultSamplingRate()
}

func DefaultOutputFile() string {
	return "LocationHistory.json"
}

func DefaultServeListen() string {
	return ":8000"
}

func DefaultSamplingRate() time.Duration {
	return 60 * time.Second
}

func DefaultAccuracy() int {
	return 80
}

func DefaultConfidence() int {
	return 50
}

func GPXExtensions() []string {
	return []string{".gpx"}
}

func NMEAExtensions() []string {
	return []string{".nmea", ".log", ".txt"}
}
