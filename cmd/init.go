package cmd

import (
	"context"
	"errors"

	kerrors "github.com/PolarWolf314/envdeck/internal/errors"
	logger "github.com/PolarWolf314/envdeck/internal/logging"
	"github.com/PolarWolf314/envdeck/internal/ui"
	"github.com/PolarWolf314/envdeck/internal/workflows"
	"github.com/spf13/cobra"
)

var (
	initFolder string
	initForce  bool
)

func init() {
	InitCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	InitCmd.Flags().BoolVarP(&debug, "debug", "d", false, "enable debug output")
	InitCmd.Flags().StringVarP(&initFolder, "folder", "C", ".", "workspace folder")
	InitCmd.Flags().BoolVar(&initForce, "force", false, "replace an existing key; values sealed with it become unrecoverable")
}

// resetInitCommandState resets the init command's global state for testing.
func resetInitCommandState() {
	initFolder = "."
	initForce = false
}

var InitCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a workspace for encryption",
	Long: `Creates the .envdeck directory inside the workspace folder and
generates the key used to seal and open entry values.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		Logger = logger.Logger{Verbose: verbose, Debug: debug}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting init command")
		spinner, cleanup := startSpinner("Initializing workspace...", verbose, debug)
		defer cleanup()

		result, err := workflows.InitWorkspace(context.Background(), workflows.InitOptions{
			Workspace: initFolder,
			Force:     initForce,
		})
		if errors.Is(err, kerrors.ErrWorkspaceAlreadyInitialized) {
			spinner.FinalMSG = ui.Error.Sprint("✗") + " This workspace already has a key\n" +
				ui.Info.Sprint("→") + " Run " + ui.Code.Sprint("envdeck init --force") + " to replace it"
			return nil
		}
		if err != nil {
			spinner.FinalMSG = formatEntryError(err)
			if !isExpectedEntryError(err) {
				return err
			}
			return nil
		}

		finalMessage := ui.Success.Sprint("✓") + " Workspace initialized\n" +
			ui.Info.Sprint("→") + " Key written to " + ui.Path.Sprint(result.KeyPath)
		if result.Regenerated {
			finalMessage += "\n" + ui.Warning.Sprint("!") +
				" The previous key was replaced; values sealed with it can no longer be opened"
		}
		spinner.FinalMSG = finalMessage
		return nil
	},
}
