package cmd

import (
	"github.com/spf13/cobra"
)

// genCmd represents the gen command
var genCmd = &cobra.Command{
	Use:   "gen",
	Short: "Generate manifests and other inputs",
	Long:  `Generate collects procedures to ease the authoring of input files.`,
}

func init() {
	rootCmd.AddCommand(genCmd)
}
