package cmd

import (
	"context"

	"github.com/PolarWolf314/envdeck/internal/ui"
	"github.com/PolarWolf314/envdeck/internal/workflows"
	"github.com/spf13/cobra"
)

var envEncryptCmd = &cobra.Command{
	Use:   "encrypt <key>",
	Short: "Encrypt one entry's value in place",
	Long: `Replaces the entry's plaintext value with a sealed one, using the
workspace key. The rest of the file is untouched.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		key := args[0]
		Logger.Infof("Starting env encrypt command for %s", key)
		spinner, cleanup := startSpinner("Encrypting value...", verbose, debug)
		defer cleanup()

		result, err := workflows.EncryptEntry(context.Background(), workflows.EncryptEntryOptions{
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

		spinner.FinalMSG = ui.Success.Sprint("✓") + " Encrypted " + ui.Key.Sprint(key) +
			" in " + ui.Path.Sprint(result.File)
		return nil
	},
}
