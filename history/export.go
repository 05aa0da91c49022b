package history

import (
	"encoding/json"
	"math"
	"strconv"
	"time"

	"gitlab.com/begraf/verlauf/config"
)

// The output schema follows the JSON produced by Google's location history
// takeout, which is what the downstream heatmap and timeline visualizers
// consume: a "locations" array of E7 fixed-point coordinates with
// millisecond timestamps and nested activity records.

type locationRecord struct {
	TimestampMs string           `json:"timestampMs"`
	LatitudeE7  int64            `json:"latitudeE7"`
	LongitudeE7 int64            `json:"longitudeE7"`
	Accuracy    int              `json:"accuracy"`
	Activity    []activityRecord `json:"activity,omitempty"`
}

type activityRecord struct {
	TimestampMs string          `json:"timestampMs"`
	Activity    []activityGuess `json:"activity"`
}

type activityGuess struct {
	Type       string `json:"type"`
	Confidence int    `json:"confidence"`
}

func (h *History) MarshalJSON() ([]byte, error) {
	locations := make([]locationRecord, len(h.points))

	for i, p := range h.points {
		records := make([]activityRecord, len(p.ActivityRecords))
		for j, t := range p.ActivityRecords {
			records[j] = activityRecord{
				TimestampMs: timestampMs(t),
				Activity: []activityGuess{
					{Type: p.Activity.String(), Confidence: config.DefaultConfidence()},
				},
			}
		}

		locations[i] = locationRecord{
			TimestampMs: timestampMs(p.Time),
			LatitudeE7:  coordE7(p.Point.Lat),
			LongitudeE7: coordE7(p.Point.Lon),
			Accuracy:    config.DefaultAccuracy(),
			Activity:    records,
		}
	}

	return json.Marshal(map[string]interface{}{
		"locations": locations,
	})
}

func timestampMs(t time.Time) string {
	return strconv.FormatInt(t.UnixMilli(), 10)
}

func coordE7(degrees float64) int64 {
	return int64(math.Round(degrees * 1e7))
}
