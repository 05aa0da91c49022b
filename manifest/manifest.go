package manifest

import (
	"encoding/json"
	"fmt"
	"os"
	"path"
	"strings"
	"time"

	"gitlab.com/begraf/verlauf/config"
	"gitlab.com/begraf/verlauf/filesystem"
	"gitlab.com/begraf/verlauf/geotrack"
	"gopkg.in/yaml.v2"
)

const instantLayout = "2006-01-02 15:04:05"

// Entry declares one track file together with its tracking interval. The
// field names follow the manifest format of the original exporter.
type Entry struct {
	File  string `json:"filename" yaml:"filename"`
	Start string `json:"startOfTracking" yaml:"startOfTracking"`
	End   string `json:"endOfTracking" yaml:"endOfTracking"`

	// ActivitySamplingRate is the spacing of padding activity records in
	// seconds. Optional; the configured default applies when zero.
	ActivitySamplingRate int `json:"activitySamplingRate,omitempty" yaml:"activitySamplingRate,omitempty"`
}

type document struct {
	Input []Entry `json:"input" yaml:"input"`
}

// Load reads a manifest file and returns its entries in document order.
// YAML manifests are recognized by extension, everything else is parsed as
// JSON.
func Load(manifestPath string) ([]Entry, error) {
	raw, err := os.ReadFile(manifestPath)
	if err != nil {
		return nil, &ManifestError{Path: manifestPath, Err: err}
	}

	var doc document

	ext := strings.ToLower(path.Ext(manifestPath))
	if ext == ".yaml" || ext == ".yml" {
		err = yaml.Unmarshal(raw, &doc)
	} else {
		err = json.Unmarshal(raw, &doc)
	}

	if err != nil {
		return nil, &ManifestError{Path: manifestPath, Err: err}
	}

	if len(doc.Input) == 0 {
		return nil, &ManifestError{Path: manifestPath, Err: fmt.Errorf("no input entries")}
	}

	return doc.Input, nil
}

// Write serializes entries to a manifest file. YAML output is chosen by
// extension, everything else is written as indented JSON.
func Write(manifestPath string, entries []Entry) error {
	doc := document{Input: entries}

	var (
		raw []byte
		err error
	)

	ext := strings.ToLower(path.Ext(manifestPath))
	if ext == ".yaml" || ext == ".yml" {
		raw, err = yaml.Marshal(doc)
	} else {
		raw, err = json.MarshalIndent(doc, "", "  ")
	}

	if err != nil {
		return fmt.Errorf("serialize manifest: %w", err)
	}

	return os.WriteFile(manifestPath, raw, 0o666)
}

// Tracks resolves manifest entries into loaded tracks, in entry order.
// It validates every entry's interval and parses every referenced track
// file; the first defect aborts resolution.
func Tracks(entries []Entry) ([]geotrack.Track, error) {
	tracks := make([]geotrack.Track, 0, len(entries))

	for _, entry := range entries {
		track, err := resolve(entry)
		if err != nil {
			return nil, err
		}

		tracks = append(tracks, track)
	}

	return tracks, nil
}

// LoadTracks is Load followed by Tracks.
func LoadTracks(manifestPath string) ([]geotrack.Track, error) {
	entries, err := Load(manifestPath)
	if err != nil {
		return nil, err
	}

	return Tracks(entries)
}

func resolve(entry Entry) (track geotrack.Track, err error) {
	start, err := ParseInstant(entry.Start)
	if err != nil {
		return track, &ManifestError{
			Path: entry.File,
			Err:  fmt.Errorf("start of tracking: %w", err),
		}
	}

	end, err := ParseInstant(entry.End)
	if err != nil {
		return track, &ManifestError{
			Path: entry.File,
			Err:  fmt.Errorf("end of tracking: %w", err),
		}
	}

	if !end.After(start) {
		return track, &IntervalError{Path: entry.File, Start: start, End: end}
	}

	if !filesystem.Exists(entry.File) {
		return track, &ManifestError{Path: entry.File, Err: fmt.Errorf("track file cannot be opened")}
	}

	points, err := geotrack.LoadTrack(entry.File)
	if err != nil {
		return track, &ParseError{Path: entry.File, Err: err}
	}

	if len(points) == 0 {
		return track, &ParseError{Path: entry.File, Err: fmt.Errorf("no track points")}
	}

	samplingRate := config.SamplingRate()
	if entry.ActivitySamplingRate > 0 {
		samplingRate = time.Duration(entry.ActivitySamplingRate) * time.Second
	}

	return geotrack.Track{
		Source:       entry.File,
		Points:       points,
		Start:        start,
		End:          end,
		SamplingRate: samplingRate,
	}, nil
}

// ParseInstant accepts RFC 3339 instants as well as the original exporter's
// local "2006-01-02 15:04:05" layout.
func ParseInstant(s string) (time.Time, error) {
	s = strings.TrimSpace(s)

	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}

	t, err := time.ParseInLocation(instantLayout, s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("unrecognized instant '%s'", s)
	}

	return t, nil
}

// FormatInstant renders an instant in the manifest's default layout.
func FormatInstant(t time.Time) string {
	return t.Format(instantLayout)
}
