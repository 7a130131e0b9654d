package serve

import (
	"net/http"
	"path"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gitlab.com/begraf/fahrtwetter/geotrack"
	"gitlab.com/begraf/fahrtwetter/render"
	"gitlab.com/begraf/fahrtwetter/track"
	"gitlab.com/begraf/fahrtwetter/weather"
)

type serveAPI struct {
	registry       *trackRegistry
	lookup         weather.LookupFunc
	start          time.Time
	speedKmh       float64
	intervalMeters float64
}

func newServeAPI(registry *trackRegistry, lookup weather.LookupFunc, start time.Time, speedKmh, intervalMeters float64) *serveAPI {
	return &serveAPI{
		registry:       registry,
		lookup:         lookup,
		start:          start,
		speedKmh:       speedKmh,
		intervalMeters: intervalMeters,
	}
}

func (api *serveAPI) startTime() time.Time {
	if api.start.IsZero() {
		return time.Now()
	}

	return api.start
}

// loadTrack resolves a GUID parameter to a built track.
func (api *serveAPI) loadTrack(c *gin.Context) (track.Track, bool) {
	guid, err := uuid.Parse(c.Param("GUID"))
	if err != nil {
		c.String(http.StatusNotFound, "not found")
		return nil, false
	}

	trackFilePath, ok := api.registry.PathFromID(guid)
	if !ok {
		c.String(http.StatusNotFound, "not found")
		return nil, false
	}

	points, err := geotrack.LoadTrack(trackFilePath)
	if err != nil {
		_ = c.Error(err)
		c.String(http.StatusInternalServerError, "error during track reading")
		return nil, false
	}

	trk, err := track.Build(points)
	if err != nil {
		_ = c.Error(err)
		c.String(http.StatusUnprocessableEntity, "track contains no points")
		return nil, false
	}

	return trk, true
}

func (api *serveAPI) ServeIndex(c *gin.Context) {
	type trackEntry struct {
		Name string
		GUID string
	}

	var tracks []trackEntry
	for _, guid := range api.registry.IDs() {
		trackFilePath, _ := api.registry.PathFromID(guid)
		tracks = append(tracks, trackEntry{
			Name: path.Base(trackFilePath),
			GUID: guid.String(),
		})
	}

	c.HTML(
		http.StatusOK,
		"index.html",
		gin.H{
			"Tracks": tracks,
			"Start":  api.startTime(),
			"Speed":  api.speedKmh,
		},
	)
}

func (api *serveAPI) ServeMap(c *gin.Context) {
	guid, err := uuid.Parse(c.Param("GUID"))
	if err != nil {
		c.String(http.StatusNotFound, "not found")
		return
	}

	trackFilePath, ok := api.registry.PathFromID(guid)
	if !ok {
		c.String(http.StatusNotFound, "not found")
		return
	}

	c.HTML(
		http.StatusOK,
		"map.html",
		gin.H{
			"Name":  path.Base(trackFilePath),
			"GUID":  guid.String(),
			"Start": api.startTime(),
		},
	)
}

// ServeTrack returns the full, unsampled track for the route display.
func (api *serveAPI) ServeTrack(c *gin.Context) {
	trk, ok := api.loadTrack(c)
	if !ok {
		return
	}

	c.JSON(
		http.StatusOK,
		gin.H{
			"track": trk,
		},
	)
}

// ServeForecast runs the sampling pipeline over the track and returns the
// annotated points together with the track polyline.
func (api *serveAPI) ServeForecast(c *gin.Context) {
	trk, ok := api.loadTrack(c)
	if !ok {
		return
	}

	samples := trk.Sample(api.intervalMeters)

	timed, err := track.ProjectTimes(samples, api.startTime(), api.speedKmh)
	if err != nil {
		_ = c.Error(err)
		c.String(http.StatusInternalServerError, "error during time projection")
		return
	}

	annotated := weather.Annotate(timed, api.lookup)

	payload, err := render.MapPayload(trk, annotated)
	if err != nil {
		_ = c.Error(err)
		c.String(http.StatusInternalServerError, "error during payload rendering")
		return
	}

	c.Data(http.StatusOK, "application/json; charset=utf-8", payload)
}
