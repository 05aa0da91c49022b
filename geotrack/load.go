package geotrack

import (
	"fmt"
	"path"
	"slices"
	"strings"

	"gitlab.com/begraf/verlauf/config"
)

// LoadTrack reads the ordered point sequence from a track file. The file
// format is chosen by extension: GPX or NMEA sentence logs.
func LoadTrack(trackFilePath string) (points []Point, err error) {
	ext := strings.ToLower(path.Ext(trackFilePath))
	if slices.Contains(config.GPXExtensions(), ext) {
		points, err = loadGPXTrack(trackFilePath)
	} else if slices.Contains(config.NMEAExtensions(), ext) {
		points, err = loadNMEATrack(trackFilePath)
	} else {
		return nil, fmt.Errorf("unknown track extension '%s'", ext)
	}

	return
}
