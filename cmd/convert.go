package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"
	"gitlab.com/begraf/verlauf/config"
	"gitlab.com/begraf/verlauf/filesystem"
	"gitlab.com/begraf/verlauf/history"
	"gitlab.com/begraf/verlauf/manifest"
)

// convertCmd represents the convert command
var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert the manifest's track files into one location history file",
	Long: `Convert reads a manifest of track files with their tracking intervals,
derives each track's activity from its mean velocity, interpolates per-point
timestamps over the interval and writes the merged location history.`,
	RunE: runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)

	convertCmd.Flags().StringP("manifest", "m", "", "Manifest describing track files and intervals")
	if err := convertCmd.MarkFlagRequired("manifest"); err != nil {
		panic(err)
	}
}

func runConvert(cmd *cobra.Command, args []string) error {
	manifestPath, err := cmd.Flags().GetString("manifest")
	if err != nil {
		return err
	}

	tracks, err := manifest.LoadTracks(filesystem.Abs(manifestPath))
	if err != nil {
		return err
	}

	for _, pair := range history.OverlappingSources(tracks) {
		log.Printf("warning: tracking intervals of '%s' and '%s' overlap", pair[0], pair[1])
	}

	h := history.Assemble(tracks)

	outFile := config.OutputFile()
	if err := h.WriteFile(outFile); err != nil {
		return fmt.Errorf("write '%s': %w", outFile, err)
	}

	log.Printf("wrote %d locations from %d tracks to %s", h.Len(), len(tracks), outFile)

	return nil
}
