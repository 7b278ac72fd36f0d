package cmd

import (
	"context"
	"fmt"

	"github.com/PolarWolf314/envdeck/internal/ui"
	"github.com/PolarWolf314/envdeck/internal/workflows"
	"github.com/spf13/cobra"
)

var listReveal bool

func init() {
	envListCmd.Flags().BoolVar(&listReveal, "reveal", false, "decrypt sealed values for display")
}

var envListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the entries of an env file",
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting env list command")
		spinner, cleanup := startSpinner("Reading entries...", verbose, debug)
		defer cleanup()

		result, err := workflows.ListEntries(context.Background(), workflows.ListEntriesOptions{
			Workspace: envFolder,
			File:      envFile,
			Reveal:    listReveal,
		})
		if err != nil {
			spinner.FinalMSG = formatEntryError(err)
			if !isExpectedEntryError(err) {
				return err
			}
			return nil
		}
		Logger.Debugf("Listed %d entries from %s", len(result.Entries), result.File)

		spinner.FinalMSG = ""
		if len(result.Entries) == 0 {
			fmt.Printf("%s %s has no entries\n", ui.Info.Sprint("ℹ"), ui.Path.Sprint(result.File))
			return nil
		}

		for _, entry := range result.Entries {
			switch {
			case entry.Encrypted && !result.Revealed:
				fmt.Printf("%s=%s\n", ui.Key.Sprint(entry.Key), ui.Muted.Sprint("encrypted"))
			default:
				fmt.Printf("%s=%s\n", ui.Key.Sprint(entry.Key), entry.Value)
			}
		}
		return nil
	},
}
