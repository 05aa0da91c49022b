package history

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/begraf/verlauf/geotrack"
)

type exportedDocument struct {
	Locations []struct {
		TimestampMs string `json:"timestampMs"`
		LatitudeE7  int64  `json:"latitudeE7"`
		LongitudeE7 int64  `json:"longitudeE7"`
		Accuracy    int    `json:"accuracy"`
		Activity    []struct {
			TimestampMs string `json:"timestampMs"`
			Activity    []struct {
				Type       string `json:"type"`
				Confidence int    `json:"confidence"`
			} `json:"activity"`
		} `json:"activity"`
	} `json:"locations"`
}

func TestAssembleConcatenatesInOrder(t *testing.T) {
	start := time.Date(2021, 6, 12, 9, 0, 0, 0, time.UTC)

	walk := geotrack.Track{
		Source: "walk.gpx",
		Points: []geotrack.Point{
			{Lat: 48.0000, Lon: 11.0},
			{Lat: 48.0009, Lon: 11.0},
		},
		Start: start,
		End:   start.Add(200 * time.Second),
	}

	// Overlaps the first track's interval; manifest order still wins.
	drive := geotrack.Track{
		Source: "drive.gpx",
		Points: []geotrack.Point{
			{Lat: 47.0, Lon: 10.0},
			{Lat: 47.1, Lon: 10.0},
			{Lat: 47.2, Lon: 10.0},
		},
		Start: start.Add(100 * time.Second),
		End:   start.Add(1100 * time.Second),
	}

	h := Assemble([]geotrack.Track{walk, drive})

	require.Equal(t, 5, h.Len())

	points := h.Points()
	assert.Equal(t, walk.Points[0], points[0].Point)
	assert.Equal(t, walk.Points[1], points[1].Point)
	assert.Equal(t, drive.Points[0], points[2].Point)
	assert.Equal(t, ActivityWalking, points[0].Activity)
	assert.Equal(t, ActivityDriving, points[2].Activity)
}

func TestHistoryExportSchema(t *testing.T) {
	start := time.Date(2021, 6, 12, 9, 0, 0, 0, time.UTC)

	track := geotrack.Track{
		Source: "walk.gpx",
		Points: []geotrack.Point{
			{Lat: 48.123456789, Lon: 11.0},
			{Lat: 48.1243, Lon: 11.0},
		},
		Start:        start,
		End:          start.Add(200 * time.Second),
		SamplingRate: time.Minute,
	}

	h := Assemble([]geotrack.Track{track})

	raw, err := json.Marshal(h)
	require.NoError(t, err)

	var doc exportedDocument
	require.NoError(t, json.Unmarshal(raw, &doc))

	require.Len(t, doc.Locations, 2)

	first := doc.Locations[0]
	assert.Equal(t, strconv.FormatInt(start.UnixMilli(), 10), first.TimestampMs)
	assert.Equal(t, int64(481234568), first.LatitudeE7)
	assert.Equal(t, int64(110000000), first.LongitudeE7)
	assert.Equal(t, 80, first.Accuracy)

	require.NotEmpty(t, first.Activity)
	assert.Equal(t, first.TimestampMs, first.Activity[0].TimestampMs)
	require.Len(t, first.Activity[0].Activity, 1)
	assert.Equal(t, "WALKING", first.Activity[0].Activity[0].Type)
	assert.Equal(t, 50, first.Activity[0].Activity[0].Confidence)
}

func TestHistoryWriteFile(t *testing.T) {
	start := time.Date(2021, 6, 12, 9, 0, 0, 0, time.UTC)

	h := Assemble([]geotrack.Track{{
		Source: "walk.gpx",
		Points: []geotrack.Point{{Lat: 48.0, Lon: 11.0}},
		Start:  start,
		End:    start.Add(time.Hour),
	}})

	outFile := filepath.Join(t.TempDir(), "LocationHistory.json")
	require.NoError(t, h.WriteFile(outFile))

	raw, err := os.ReadFile(outFile)
	require.NoError(t, err)

	var doc exportedDocument
	require.NoError(t, json.Unmarshal(raw, &doc))
	assert.Len(t, doc.Locations, 1)
}

func TestOverlappingSources(t *testing.T) {
	start := time.Date(2021, 6, 12, 9, 0, 0, 0, time.UTC)

	mk := func(source string, from, to time.Duration) geotrack.Track {
		return geotrack.Track{
			Source: source,
			Points: []geotrack.Point{{Lat: 48, Lon: 11}},
			Start:  start.Add(from),
			End:    start.Add(to),
		}
	}

	disjoint := []geotrack.Track{
		mk("a.gpx", 0, time.Hour),
		mk("b.gpx", 2*time.Hour, 3*time.Hour),
	}
	assert.Empty(t, OverlappingSources(disjoint))

	overlapping := []geotrack.Track{
		mk("a.gpx", 0, time.Hour),
		mk("b.gpx", 30*time.Minute, 2*time.Hour),
	}
	pairs := OverlappingSources(overlapping)
	require.Len(t, pairs, 1)
	assert.Equal(t, [2]string{"a.gpx", "b.gpx"}, pairs[0])
}
