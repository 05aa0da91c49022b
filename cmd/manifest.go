package cmd

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/spf13/cobra"
	"gitlab.com/begraf/verlauf/config"
	"gitlab.com/begraf/verlauf/manifest"
)

// manifestCmd represents the manifest command
var manifestCmd = &cobra.Command{
	Use:   "manifest [MANIFEST-FILE]",
	Short: "Interactive process to author a track manifest",
	RunE:  runGenManifest,
}

func init() {
	genCmd.AddCommand(manifestCmd)
}

func exitOnInterrupt(err error) {
	if err == terminal.InterruptErr {
		fmt.Println("interrupted")
		os.Exit(0)
	} else if err != nil {
		log.Fatal(err)
	}
}

func runGenManifest(cmd *cobra.Command, args []string) error {
	if len(args) > 1 {
		return fmt.Errorf("too many arguments")
	}

	manifestFile := "manifest.json"
	if len(args) == 1 {
		manifestFile = strings.TrimSpace(args[0])
	}

	var entries []manifest.Entry

	for {
		entry, ok := promptEntry()
		if !ok {
			break
		}

		entries = append(entries, entry)
		fmt.Println()
	}

	if len(entries) == 0 {
		return fmt.Errorf("no entries given")
	}

	isConfirmed := true
	{
		prompt := &survey.Confirm{
			Message: fmt.Sprintf("Write %d entries to '%s'", len(entries), manifestFile),
			Default: isConfirmed,
		}
		err := survey.AskOne(prompt, &isConfirmed)
		exitOnInterrupt(err)
	}

	if !isConfirmed {
		fmt.Println("aborted")
		return nil
	}

	if err := manifest.Write(manifestFile, entries); err != nil {
		return err
	}

	log.Printf("wrote manifest: %s", manifestFile)

	return nil
}

// promptEntry asks for one manifest entry. An empty track file finishes the
// dialogue.
func promptEntry() (entry manifest.Entry, ok bool) {
	{
		prompt := &survey.Input{
			Message: "Track file (empty to finish)",
		}
		err := survey.AskOne(
			prompt,
			&entry.File,
			survey.WithValidator(
				func(ans interface{}) error {
					file := strings.TrimSpace(ans.(string))
					if file == "" {
						return nil
					}
					if _, err := os.Stat(file); err != nil {
						return fmt.Errorf("cannot open '%s'", file)
					}
					return nil
				},
			),
		)
		exitOnInterrupt(err)

		entry.File = strings.TrimSpace(entry.File)
		if entry.File == "" {
			return entry, false
		}
	}

	{
		prompt := &survey.Input{
			Message: "Start of tracking",
		}
		err := survey.AskOne(
			prompt,
			&entry.Start,
			survey.WithValidator(survey.Required),
			survey.WithValidator(validInstant),
		)
		exitOnInterrupt(err)
	}

	{
		prompt := &survey.Input{
			Message: "End of tracking",
		}
		err := survey.AskOne(
			prompt,
			&entry.End,
			survey.WithValidator(survey.Required),
			survey.WithValidator(validInstant),
			survey.WithValidator(
				func(ans interface{}) error {
					start, err := manifest.ParseInstant(entry.Start)
					if err != nil {
						return err
					}
					end, err := manifest.ParseInstant(ans.(string))
					if err != nil {
						return err
					}
					if !end.After(start) {
						return fmt.Errorf("end of tracking must be after start of tracking")
					}
					return nil
				},
			),
		)
		exitOnInterrupt(err)
	}

	{
		rate := ""
		prompt := &survey.Input{
			Message: "Activity sampling rate in seconds",
			Default: strconv.Itoa(int(config.DefaultSamplingRate().Seconds())),
		}
		err := survey.AskOne(
			prompt,
			&rate,
			survey.WithValidator(
				func(ans interface{}) error {
					n, err := strconv.Atoi(strings.TrimSpace(ans.(string)))
					if err != nil || n <= 0 {
						return fmt.Errorf("expected a positive number of seconds")
					}
					return nil
				},
			),
		)
		exitOnInterrupt(err)

		entry.ActivitySamplingRate, _ = strconv.Atoi(strings.TrimSpace(rate))
	}

	return entry, true
}

func validInstant(ans interface{}) error {
	_, err := manifest.ParseInstant(ans.(string))
	return err
}
