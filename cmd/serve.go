package cmd

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gitlab.com/begraf/verlauf/config"
	"gitlab.com/begraf/verlauf/geotrack"
	"gitlab.com/begraf/verlauf/history"
	"gitlab.com/begraf/verlauf/manifest"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the converted history and per-track points as JSON for map front ends",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringP("manifest", "m", "", "Manifest describing track files and intervals")
	if err := serveCmd.MarkFlagRequired("manifest"); err != nil {
		panic(err)
	}

	serveCmd.Flags().String("listen", "", "Listen address")
	if err := viper.BindPFlag(config.KeyServeListen, serveCmd.Flags().Lookup("listen")); err != nil {
		panic(err)
	}
}

type trackResource struct {
	GUID     uuid.UUID `json:"guid"`
	Source   string    `json:"source"`
	Points   int       `json:"points"`
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
	Distance float64   `json:"distanceMeters"`
	Activity string    `json:"activity"`
}

func runServe(cmd *cobra.Command, args []string) error {
	manifestPath, err := cmd.Flags().GetString("manifest")
	if err != nil {
		return err
	}

	tracks, err := manifest.LoadTracks(manifestPath)
	if err != nil {
		return err
	}

	h := history.Assemble(tracks)

	resources := make([]trackResource, len(tracks))
	pointsByGUID := make(map[uuid.UUID][]geotrack.Point)

	for i, track := range tracks {
		guid := uuid.New()
		resources[i] = trackResource{
			GUID:     guid,
			Source:   track.Source,
			Points:   len(track.Points),
			Start:    track.Start,
			End:      track.End,
			Distance: geotrack.TotalDistance(track.Points),
			Activity: history.ClassifyVelocity(history.MeanVelocity(track)).String(),
		}
		pointsByGUID[guid] = track.Points
	}

	r := gin.New()

	r.GET("/history", func(c *gin.Context) {
		c.JSON(http.StatusOK, h)
	})

	r.GET("/tracks", func(c *gin.Context) {
		c.JSON(http.StatusOK, resources)
	})

	r.GET("/track/:GUID", func(c *gin.Context) {
		guid, err := uuid.Parse(c.Param("GUID"))
		if err != nil {
			c.String(http.StatusNotFound, "not found")
			return
		}

		points, ok := pointsByGUID[guid]
		if !ok {
			c.String(http.StatusNotFound, "not found")
			return
		}

		c.JSON(http.StatusOK, gin.H{"track": points})
	})

	return r.Run(config.ServeListen())
}
