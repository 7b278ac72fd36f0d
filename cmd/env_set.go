package cmd

import (
	"context"
	"errors"

	kerrors "github.com/PolarWolf314/envdeck/internal/errors"
	"github.com/PolarWolf314/envdeck/internal/ui"
	"github.com/PolarWolf314/envdeck/internal/workflows"
	"github.com/spf13/cobra"
)

var setNoClobber bool

func init() {
	envSetCmd.Flags().BoolVar(&setNoClobber, "no-clobber", false, "fail instead of overwriting an existing entry")
}

var envSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Add or update one entry",
	Long: `Adds the entry when the key is new and updates it in place when it
already exists. With --no-clobber an existing key is an error.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, value := args[0], args[1]
		Logger.Infof("Starting env set command for %s", key)
		spinner, cleanup := startSpinner("Writing entry...", verbose, debug)
		defer cleanup()

		added, err := workflows.AddEntry(context.Background(), workflows.AddEntryOptions{
			Workspace: envFolder,
			File:      envFile,
			Key:       key,
			Value:     value,
		})
		if err == nil {
			spinner.FinalMSG = ui.Success.Sprint("✓") + " Added " + ui.Key.Sprint(key) +
				" to " + ui.Path.Sprint(added.File)
			return nil
		}
		if !errors.Is(err, kerrors.ErrDuplicateKey) || setNoClobber {
			spinner.FinalMSG = formatEntryError(err)
			if !isExpectedEntryError(err) {
				return err
			}
			return nil
		}

		Logger.Debugf("Key %s exists, updating in place", key)
		updated, err := workflows.UpdateEntry(context.Background(), workflows.UpdateEntryOptions{
			Workspace: envFolder,
			File:      envFile,
			Key:       key,
			Value:     value,
		})
		if err != nil {
			spinner.FinalMSG = formatEntryError(err)
			if !isExpectedEntryError(err) {
				return err
			}
			return nil
		}

		spinner.FinalMSG = ui.Success.Sprint("✓") + " Updated " + ui.Key.Sprint(key) +
			" in " + ui.Path.Sprint(updated.File)
		return nil
	},
}
