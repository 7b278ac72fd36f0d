package cmd

import (
	"context"
	"fmt"

	kerrors "github.com/PolarWolf314/envdeck/internal/errors"
	"github.com/PolarWolf314/envdeck/internal/workflows"
	"github.com/spf13/cobra"
)

var envGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Print the value of one entry",
	Long: `Prints the entry's value to stdout, nothing else, so it can be piped.
Encrypted values are decrypted first, which requires the workspace key.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		key := args[0]
		Logger.Infof("Starting env get command for %s", key)

		result, err := workflows.ListEntries(context.Background(), workflows.ListEntriesOptions{
			Workspace: envFolder,
			File:      envFile,
		})
		if err != nil {
			fmt.Println(formatEntryError(err))
			if !isExpectedEntryError(err) {
				return err
			}
			return nil
		}

		var found *workflows.EntryView
		for i := range result.Entries {
			if result.Entries[i].Key == key {
				found = &result.Entries[i]
				break
			}
		}
		if found == nil {
			fmt.Println(formatEntryError(fmt.Errorf("%w: %s", kerrors.ErrEntryNotFound, key)))
			return nil
		}

		// Encrypted values are withheld by the plain listing; fetch the
		// plaintext in a second pass so a missing key fails cleanly.
		if found.Encrypted {
			revealed, err := workflows.ListEntries(context.Background(), workflows.ListEntriesOptions{
				Workspace: envFolder,
				File:      envFile,
				Reveal:    true,
			})
			if err != nil {
				fmt.Println(formatEntryError(err))
				if !isExpectedEntryError(err) {
					return err
				}
				return nil
			}
			for _, entry := range revealed.Entries {
				if entry.Key == key {
					fmt.Println(entry.Value)
					return nil
				}
			}
			return nil
		}

		fmt.Println(found.Value)
		return nil
	},
}
