package geotrack

import (
	"fmt"
	"path"
	"slices"
	"strings"

	"gitlab.com/begraf/fahrtwetter/config"
	"gitlab.com/begraf/fahrtwetter/geo"
)

// LoadTrack reads an ordered point sequence from a track file, dispatching
// on the file extension.
func LoadTrack(trackFilePath string) (points []geo.Point, err error) {
	ext := strings.ToLower(path.Ext(trackFilePath))
	if slices.Contains(config.GPXExtensions(), ext) {
		points, err = loadGPXTrack(trackFilePath)
	} else if slices.Contains(config.NMEAExtensions(), ext) {
		points, err = loadNMEATrack(trackFilePath)
	} else {
		return nil, fmt.Errorf("unknown track extension '%s'", ext)
	}

	if err != nil {
		return
	}

	return
}
