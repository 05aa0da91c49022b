package geotrack

import "github.com/jftuga/geodist"

// Distance returns the great-circle distance between two points in meters.
func Distance(p, q Point) float64 {
	_, km := geodist.HaversineDistance(
		geodist.Coord{Lat: p.Lat, Lon: p.Lon},
		geodist.Coord{Lat: q.Lat, Lon: q.Lon},
	)

	return km * 1000
}

// CumulativeDistances returns the running path length in meters at every
// point of the chain. The first element is always 0, the last is the total
// track length. The result is non-decreasing.
func CumulativeDistances(points []Point) []float64 {
	dists := make([]float64, len(points))

	for i := 1; i < len(points); i++ {
		dists[i] = dists[i-1] + Distance(points[i-1], points[i])
	}

	return dists
}

// TotalDistance is the full path length of the point chain in meters.
func TotalDistance(points []Point) float64 {
	if len(points) == 0 {
		return 0
	}

	dists := CumulativeDistances(points)

	return dists[len(dists)-1]
}
