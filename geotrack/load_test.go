package geotrack

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testGPX = `<?xml version="1.0" encoding="UTF-8"?>
<gpx version="1.1" creator="verlauf-test">
  <trk>
    <trkseg>
      <trkpt lat="48.0000" lon="11.0000"></trkpt>
      <trkpt lat="48.0009" lon="11.0000"></trkpt>
    </trkseg>
    <trkseg>
      <trkpt lat="48.0018" lon="11.0000"></trkpt>
    </trkseg>
  </trk>
</gpx>
`

const testNMEA = `$GPRMC,123519,A,4807.038,N,01131.000,E,022.4,084.4,230394,003.1,W*6A
$GPGGA,123519,4807.038,N,01131.000,E,1,08,0.9,545.4,M,46.9,M,,*47
$GPRMC,123520,A,4807.100,N,01131.100,E,022.4,084.4,230394,003.1,W*6B
`

func writeTempTrack(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o666))

	return path
}

func TestLoadTrackGPX(t *testing.T) {
	points, err := LoadTrack(writeTempTrack(t, "track.gpx", testGPX))
	require.NoError(t, err)

	// Points of all segments, in document order.
	require.Len(t, points, 3)
	assert.Equal(t, Point{Lat: 48.0, Lon: 11.0}, points[0])
	assert.Equal(t, Point{Lat: 48.0018, Lon: 11.0}, points[2])
}

func TestLoadTrackNMEA(t *testing.T) {
	points, err := LoadTrack(writeTempTrack(t, "track.nmea", testNMEA))
	require.NoError(t, err)

	// Only the two RMC sentences yield points; the GGA sentence is skipped.
	require.Len(t, points, 2)
	assert.InDelta(t, 48.1173, points[0].Lat, 1e-3)
	assert.InDelta(t, 11.5167, points[0].Lon, 1e-3)
}

func TestLoadTrackUnknownExtension(t *testing.T) {
	_, err := LoadTrack(writeTempTrack(t, "track.csv", "48.0,11.0\n"))
	assert.Error(t, err)
}

func TestLoadTrackEmptyGPX(t *testing.T) {
	const emptyGPX = `<?xml version="1.0" encoding="UTF-8"?>
<gpx version="1.1" creator="verlauf-test"><trk><trkseg></trkseg></trk></gpx>
`

	points, err := LoadTrack(writeTempTrack(t, "empty.gpx", emptyGPX))
	require.NoError(t, err)
	assert.Empty(t, points)
}
