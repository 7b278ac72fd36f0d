package main

import (
	"fmt"
	"os"

	"github.com/PolarWolf314/envdeck/cmd"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "envdeck",
	Short: "envdeck - Browse, edit, and selectively encrypt .env files.",
	Long: `envdeck is a local, single-user tool for working with the .env files of a
project folder. It keeps each file's comments, blank lines, and ordering
intact while letting you edit entries and seal individual values with a
per-workspace key.

Features:
  - Edit entries without disturbing the rest of the file
  - Encrypt and decrypt individual values in place
  - A local web UI over the same operations

Usage:
  envdeck <command> [flags]

Available Commands:
  serve      Start the local web UI
  init       Initialize a workspace for encryption
  env        Inspect and edit env file entries
  log        View the workspace audit log

Run 'envdeck help <command>' for more details on a specific command.
`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("Welcome to envdeck! Run 'envdeck --help' to see available commands.")
	},
}

func main() {
	rootCmd.AddCommand(cmd.ServeCmd)
	rootCmd.AddCommand(cmd.InitCmd)
	rootCmd.AddCommand(cmd.EnvCmd)
	rootCmd.AddCommand(cmd.LogCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
