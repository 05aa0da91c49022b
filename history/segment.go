package history

import (
	"time"

	"gitlab.com/begraf/verlauf/geotrack"
)

// TimestampedPoint is one point of the output sequence: a coordinate, its
// interpolated instant and the activity of the track it belongs to.
type TimestampedPoint struct {
	Point    geotrack.Point
	Time     time.Time
	Activity Activity

	// ActivityRecords holds the instants at which activity records are
	// emitted for this point: the point's own instant, plus padding records
	// at the track's sampling rate whenever the gap to the next point
	// exceeds it.
	ActivityRecords []time.Time
}

// ProcessTrack converts one track into its timestamped point sequence. Every
// input point yields exactly one output point, in input order, and all
// points of a track share one activity: the classification of the track's
// mean velocity.
//
// Timestamps are interpolated linearly over cumulative path distance, so the
// first point falls on the track's start instant and the last on its end
// instant. A track without any spatial extent (a single point, or all points
// coinciding) collapses every timestamp onto the start instant.
func ProcessTrack(track geotrack.Track) ([]TimestampedPoint, Activity) {
	dists := geotrack.CumulativeDistances(track.Points)
	total := dists[len(dists)-1]
	duration := track.Duration()

	activity := ClassifyVelocity(MeanVelocity(track))

	points := make([]TimestampedPoint, len(track.Points))

	for i, p := range track.Points {
		var ts time.Time
		if total == 0 {
			ts = track.Start
		} else {
			ts = track.Start.Add(time.Duration(float64(duration) * dists[i] / total))
		}

		points[i] = TimestampedPoint{
			Point:    p,
			Time:     ts,
			Activity: activity,
		}
	}

	for i := range points {
		points[i].ActivityRecords = activityRecordTimes(points, i, track.SamplingRate)
	}

	return points, activity
}

// MeanVelocity is the track's average speed in m/s, assuming the whole path
// length was covered uniformly over the tracking interval.
func MeanVelocity(track geotrack.Track) float64 {
	return geotrack.TotalDistance(track.Points) / track.Duration().Seconds()
}

// activityRecordTimes pads long stretches between consecutive points with
// activity records at the sampling rate, so visualizers see a continuous
// activity signal rather than two records separated by minutes.
func activityRecordTimes(points []TimestampedPoint, i int, rate time.Duration) []time.Time {
	times := []time.Time{points[i].Time}

	if rate <= 0 || i+1 >= len(points) {
		return times
	}

	gap := points[i+1].Time.Sub(points[i].Time)
	for j := 1; j < int(gap/rate); j++ {
		times = append(times, points[i].Time.Add(time.Duration(j)*rate))
	}

	return times
}
