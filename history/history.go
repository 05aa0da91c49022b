package history

import (
	"encoding/json"
	"fmt"
	"os"

	"gitlab.com/begraf/verlauf/geotrack"
)

// History is the merged output of all processed tracks, in manifest order.
// Tracks are independent excursions, so points are never reordered or
// deduplicated across tracks, even when intervals overlap.
type History struct {
	points []TimestampedPoint
}

// Assemble processes every track and concatenates the results in the given
// order.
func Assemble(tracks []geotrack.Track) *History {
	h := &History{}

	for _, track := range tracks {
		points, _ := ProcessTrack(track)
		h.Append(points)
	}

	return h
}

func (h *History) Append(points []TimestampedPoint) {
	h.points = append(h.points, points...)
}

func (h *History) Points() []TimestampedPoint {
	return h.points
}

func (h *History) Len() int {
	return len(h.points)
}

// WriteFile serializes the history to the location-history JSON schema and
// writes it to the given path.
func (h *History) WriteFile(outPath string) error {
	payload, err := json.Marshal(h)
	if err != nil {
		return fmt.Errorf("serialize history: %w", err)
	}

	if err := os.WriteFile(outPath, payload, 0o666); err != nil {
		return fmt.Errorf("write history: %w", err)
	}

	return nil
}

// OverlappingSources reports pairs of tracks whose tracking intervals
// overlap. Overlap is legal, but usually a sign of a mistyped manifest.
func OverlappingSources(tracks []geotrack.Track) [][2]string {
	var pairs [][2]string

	for i := 0; i < len(tracks); i++ {
		for j := i + 1; j < len(tracks); j++ {
			a, b := tracks[i], tracks[j]
			if !a.Start.After(b.End) && !b.Start.After(a.End) {
				pairs = append(pairs, [2]string{a.Source, b.Source})
			}
		}
	}

	return pairs
}
