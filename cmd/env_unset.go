package cmd

import (
	"context"

	"github.com/PolarWolf314/envdeck/internal/ui"
	"github.com/PolarWolf314/envdeck/internal/workflows"
	"github.com/spf13/cobra"
)

var envUnsetCmd = &cobra.Command{
	Use:   "unset <key>",
	Short: "Delete one entry",
	Long:  `Removes the entry's line from the file. Comments and blank lines stay put.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		key := args[0]
		Logger.Infof("Starting env unset command for %s", key)
		spinner, cleanup := startSpinner("Deleting entry...", verbose, debug)
		defer cleanup()

		result, err := workflows.DeleteEntry(context.Background(), workflows.DeleteEntryOptions{
			Workspace: envFolder,
			File:      envFile,
			Key:       key,
		})
		if err != nil {
			spinner.FinalMSG = formatEntryError(err)
			if !isExpectedEntryError(err) {
				return err
			}
			return nil
		}

		spinner.FinalMSG = ui.Success.Sprint("✓") + " Deleted " + ui.Key.Sprint(key) +
			" from " + ui.Path.Sprint(result.File)
		return nil
	},
}
