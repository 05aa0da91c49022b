package geotrack

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDistance(t *testing.T) {
	// Munich city center to Nuremberg city center, roughly 150 km.
	munich := Point{Lat: 48.1371, Lon: 11.5754}
	nuremberg := Point{Lat: 49.4521, Lon: 11.0767}

	d := Distance(munich, nuremberg)

	assert.InDelta(t, 150_000, d, 5_000)
	assert.Zero(t, Distance(munich, munich))
}

func TestCumulativeDistances(t *testing.T) {
	points := []Point{
		{Lat: 48.0, Lon: 11.0},
		{Lat: 48.0009, Lon: 11.0},
		{Lat: 48.0009, Lon: 11.0},
		{Lat: 48.0018, Lon: 11.0},
	}

	dists := CumulativeDistances(points)
	require.Len(t, dists, len(points))

	assert.Zero(t, dists[0])

	for i := 1; i < len(dists); i++ {
		assert.GreaterOrEqual(t, dists[i], dists[i-1])
	}

	// 0.0009 degrees of latitude are roughly 100 m.
	assert.InDelta(t, 100, dists[1], 1)
	assert.InDelta(t, dists[1], dists[2], 1e-9)
	assert.InDelta(t, 200, dists[3], 2)

	assert.InDelta(t, dists[3], TotalDistance(points), 1e-9)
}

func TestTotalDistanceEmpty(t *testing.T) {
	assert.Zero(t, TotalDistance(nil))
	assert.Zero(t, TotalDistance([]Point{{Lat: 48, Lon: 11}}))
}
