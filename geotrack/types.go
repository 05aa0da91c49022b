package geotrack

import (
	"encoding/json"
	"time"
)

type Point struct {
	Lat, Lon float64
}

func (p Point) MarshalJSON() ([]byte, error) {
	return json.Marshal([]float64{p.Lat, p.Lon})
}

// Track is one recorded excursion: an ordered, non-empty point sequence and
// the interval during which it was tracked. End is strictly after Start.
type Track struct {
	Source       string
	Points       []Point
	Start, End   time.Time
	SamplingRate time.Duration
}

func (t *Track) Duration() time.Duration {
	return t.End.Sub(t.Start)
}
