package cmd

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	kerrors "github.com/PolarWolf314/envdeck/internal/errors"
	"github.com/PolarWolf314/envdeck/internal/ui"
	"github.com/briandowns/spinner"
)

// startSpinner creates and starts a spinner with the given message when not
// in verbose or debug mode. Returns the spinner and a function that should
// be deferred to clean up.
//
// IMPORTANT: spinner.FinalMSG values do NOT need trailing newlines. The
// cleanup function automatically calls ui.EnsureNewline() on the final
// message before printing it.
func startSpinner(message string, verbose, debugFlag bool) (*spinner.Spinner, func()) {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.Suffix = " " + message

	// Ignore color errors - continue without colored spinner if it fails.
	_ = s.Color("cyan")

	if !verbose && !debugFlag {
		s.Start()
		// Ensure log output is discarded unless in verbose mode.
		log.SetOutput(io.Discard)
	}

	cleanup := func() {
		// Restore log output first.
		if !verbose && !debugFlag {
			log.SetOutput(os.Stdout)
		}

		// Ensure final message ends with a newline.
		finalMsg := ""
		if s.FinalMSG != "" {
			finalMsg = ui.EnsureNewline(s.FinalMSG)
			// Clear FinalMSG so s.Stop() doesn't print it.
			s.FinalMSG = ""
		}

		// Stop the spinner first to clear the spinner line.
		if !verbose && !debugFlag {
			s.Stop()
		}

		// Print final message to stdout (for tests to capture).
		if finalMsg != "" {
			fmt.Print(finalMsg)
		}
	}

	return s, cleanup
}

// formatEntryError formats an entry workflow error for display to the user.
func formatEntryError(err error) string {
	switch {
	case errors.Is(err, kerrors.ErrFolderNotFound):
		return ui.Error.Sprint("✗") + " Folder not found\n" +
			ui.Error.Sprint("Error: ") + err.Error()

	case errors.Is(err, kerrors.ErrFileNotFound):
		return ui.Error.Sprint("✗") + " Env file not found\n" +
			ui.Info.Sprint("→") + " Pass " + ui.Code.Sprint("--file") + " to pick a different file"

	case errors.Is(err, kerrors.ErrNotEnvFile):
		return ui.Error.Sprint("✗") + " Not an env file: " + err.Error()

	case errors.Is(err, kerrors.ErrOutsideWorkspace):
		return ui.Error.Sprint("✗") + " File is outside the workspace folder"

	case errors.Is(err, kerrors.ErrInvalidKeyName):
		return ui.Error.Sprint("✗") + " " + err.Error() + "\n" +
			ui.Info.Sprint("→") + " Keys start with a letter or underscore and use letters, digits, and underscores"

	case errors.Is(err, kerrors.ErrEntryNotFound):
		return ui.Error.Sprint("✗") + " " + err.Error()

	case errors.Is(err, kerrors.ErrDuplicateKey):
		return ui.Error.Sprint("✗") + " " + err.Error() + "\n" +
			ui.Info.Sprint("→") + " Run " + ui.Code.Sprint("envdeck env set") + " without " + ui.Code.Sprint("--no-clobber") + " to overwrite"

	case errors.Is(err, kerrors.ErrKeyNotFound):
		return ui.Error.Sprint("✗") + " This workspace has no encryption key\n" +
			ui.Info.Sprint("→") + " Run " + ui.Code.Sprint("envdeck init") + " first"

	case errors.Is(err, kerrors.ErrValueAlreadyEncrypted):
		return ui.Error.Sprint("✗") + " " + err.Error()

	case errors.Is(err, kerrors.ErrValueNotEncrypted):
		return ui.Error.Sprint("✗") + " " + err.Error()

	case errors.Is(err, kerrors.ErrDecryptFailed):
		return ui.Error.Sprint("✗") + " " + err.Error() + "\n" +
			ui.Info.Sprint("→") + " The value may have been sealed with a different key"

	default:
		return ui.Error.Sprint("✗") + " " + err.Error()
	}
}

// isExpectedEntryError reports whether the error is a user-facing condition
// that should exit zero after being printed.
func isExpectedEntryError(err error) bool {
	switch {
	case errors.Is(err, kerrors.ErrFolderNotFound),
		errors.Is(err, kerrors.ErrFileNotFound),
		errors.Is(err, kerrors.ErrNotEnvFile),
		errors.Is(err, kerrors.ErrOutsideWorkspace),
		errors.Is(err, kerrors.ErrInvalidKeyName),
		errors.Is(err, kerrors.ErrEntryNotFound),
		errors.Is(err, kerrors.ErrDuplicateKey),
		errors.Is(err, kerrors.ErrKeyNotFound),
		errors.Is(err, kerrors.ErrValueAlreadyEncrypted),
		errors.Is(err, kerrors.ErrValueNotEncrypted),
		errors.Is(err, kerrors.ErrDecryptFailed):
		return true
	default:
		return false
	}
}
