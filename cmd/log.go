package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	logger "github.com/PolarWolf314/envdeck/internal/logging"
	"github.com/PolarWolf314/envdeck/internal/workflows"
	"github.com/spf13/cobra"
)

var (
	logFolder string
	logLimit  int
	logJSON   bool
)

func init() {
	LogCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	LogCmd.Flags().BoolVarP(&debug, "debug", "d", false, "enable debug output")
	LogCmd.Flags().StringVarP(&logFolder, "folder", "C", ".", "workspace folder")
	LogCmd.Flags().IntVarP(&logLimit, "number", "n", 0, "limit number of entries shown, newest kept")
	LogCmd.Flags().BoolVar(&logJSON, "json", false, "output entries as JSON")
}

// resetLogCommandState resets the log command's global state for testing.
func resetLogCommandState() {
	logFolder = "."
	logLimit = 0
	logJSON = false
}

var LogCmd = &cobra.Command{
	Use:   "log",
	Short: "View the workspace audit log",
	Long: `Displays the record of mutations made through envdeck, oldest first.

Examples:
  envdeck log            # Full log
  envdeck log -n 10      # Last 10 entries
  envdeck log --json     # JSON output`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		Logger = logger.Logger{Verbose: verbose, Debug: debug}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting log command")

		result, err := workflows.AuditLog(context.Background(), workflows.AuditLogOptions{
			Workspace: logFolder,
			Limit:     logLimit,
		})
		if err != nil {
			fmt.Println(formatEntryError(err))
			if !isExpectedEntryError(err) {
				return err
			}
			return nil
		}
		Logger.Debugf("Read %d entries from audit log", len(result.Entries))

		if len(result.Entries) == 0 {
			fmt.Println("No audit log entries found.")
			return nil
		}

		if logJSON {
			data, err := json.MarshalIndent(result.Entries, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal entries to JSON: %w", err)
			}
			fmt.Println(string(data))
			return nil
		}

		for _, e := range result.Entries {
			detail := e.File
			if e.Key != "" {
				detail = fmt.Sprintf("%s %s", e.File, e.Key)
			}
			fmt.Printf("%-27s  %-8s  %s\n", e.Timestamp, e.Operation, detail)
		}
		return nil
	},
}
