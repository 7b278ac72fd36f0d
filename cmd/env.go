package cmd

import (
	logger "github.com/PolarWolf314/envdeck/internal/logging"
	"github.com/spf13/cobra"
)

var (
	verbose bool
	debug   bool
	Logger  logger.Logger

	envFolder string
	envFile   string

	EnvCmd = &cobra.Command{
		Use:   "env",
		Short: "Inspect and edit env file entries",
		Long:  `Lists, reads, writes, and selectively encrypts the entries of an env file.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			Logger = logger.Logger{
				Verbose: verbose,
				Debug:   debug,
			}
			Logger.Debugf("Initializing env command with verbose=%t, debug=%t", verbose, debug)
		},
	}
)

func init() {
	EnvCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	EnvCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug output")
	EnvCmd.PersistentFlags().StringVarP(&envFolder, "folder", "C", ".", "workspace folder")
	EnvCmd.PersistentFlags().StringVarP(&envFile, "file", "f", ".env", "env file, relative to the folder")

	EnvCmd.AddCommand(envListCmd)
	EnvCmd.AddCommand(envGetCmd)
	EnvCmd.AddCommand(envSetCmd)
	EnvCmd.AddCommand(envUnsetCmd)
	EnvCmd.AddCommand(envEncryptCmd)
	EnvCmd.AddCommand(envDecryptCmd)
}

// Helper functions for testing

// GetEnvCmd returns the EnvCmd for testing.
func GetEnvCmd() *cobra.Command {
	return EnvCmd
}

// ResetGlobalState resets all global variables to their default values for testing.
func ResetGlobalState() {
	verbose = false
	debug = false
	envFolder = "."
	envFile = ".env"
	listReveal = false
	setNoClobber = false
	resetInitCommandState()
	resetServeCommandState()
	resetLogCommandState()
}

// SetLogger sets the logger for testing.
func SetLogger(l logger.Logger) {
	Logger = l
}
