package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"gitlab.com/begraf/verlauf/geotrack"
	"gitlab.com/begraf/verlauf/history"
	"gitlab.com/begraf/verlauf/manifest"
)

// inspectCmd represents the inspect command
var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Show per-track distance, mean velocity and activity without writing output",
	RunE:  runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)

	inspectCmd.Flags().StringP("manifest", "m", "", "Manifest describing track files and intervals")
	if err := inspectCmd.MarkFlagRequired("manifest"); err != nil {
		panic(err)
	}
}

func runInspect(cmd *cobra.Command, args []string) error {
	manifestPath, err := cmd.Flags().GetString("manifest")
	if err != nil {
		return err
	}

	tracks, err := manifest.LoadTracks(manifestPath)
	if err != nil {
		return err
	}

	for _, track := range tracks {
		velocity := history.MeanVelocity(track)

		fmt.Printf(
			"%s\n  points: %d\n  interval: %s .. %s (%s)\n  distance: %.3f km\n  mean velocity: %.2f m/s\n  activity: %s\n",
			track.Source,
			len(track.Points),
			manifest.FormatInstant(track.Start),
			manifest.FormatInstant(track.End),
			track.Duration(),
			geotrack.TotalDistance(track.Points)/1000,
			velocity,
			history.ClassifyVelocity(velocity),
		)
	}

	return nil
}
