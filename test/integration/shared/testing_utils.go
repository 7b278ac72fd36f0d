// Package shared contains testing utilities shared between integration tests.
// This file provides common functions for setting up test environments,
// capturing output, and building a CLI instance to drive.
package shared

import (
	"bytes"
	"io"
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/PolarWolf314/envdeck/cmd"
	"github.com/PolarWolf314/envdeck/internal/configs"
	logger "github.com/PolarWolf314/envdeck/internal/logging"
	"github.com/spf13/cobra"
)

// SetupUserConfigDir points per-user config I/O at a temporary directory and
// restores the original settings when the test finishes.
func SetupUserConfigDir(t *testing.T, tempUserDir string) {
	t.Helper()
	original := configs.UserEnvdeckSettings
	t.Cleanup(func() {
		configs.UserEnvdeckSettings = original
	})

	configs.UserEnvdeckSettings = &configs.UserSettings{
		UserConfigsPath: filepath.Join(tempUserDir, "envdeck"),
	}
}

// CaptureOutput captures both stdout and stderr during function execution.
func CaptureOutput(fn func() error) (string, error) {
	// Save original stdout and stderr
	originalStdout := os.Stdout
	originalStderr := os.Stderr

	// Create pipes to capture output
	stdoutReader, stdoutWriter, _ := os.Pipe()
	stderrReader, stderrWriter, _ := os.Pipe()

	// Replace stdout and stderr
	os.Stdout = stdoutWriter
	os.Stderr = stderrWriter

	// Channel to collect output
	outputChan := make(chan string, 2)

	// Start goroutines to read from pipes
	go func() {
		var buf bytes.Buffer
		if _, err := io.Copy(&buf, stdoutReader); err != nil {
			log.Fatalf("Failed to copy stdout: %s", err)
		}
		outputChan <- buf.String()
	}()

	go func() {
		var buf bytes.Buffer
		if _, err := io.Copy(&buf, stderrReader); err != nil {
			log.Fatalf("Failed to copy stderr: %s", err)
		}
		outputChan <- buf.String()
	}()

	// Execute the function
	err := fn()

	// Close writers to signal EOF
	stdoutWriter.Close()
	stderrWriter.Close()

	// Restore original stdout and stderr
	os.Stdout = originalStdout
	os.Stderr = originalStderr

	// Collect output
	stdout := <-outputChan
	stderr := <-outputChan

	return stdout + stderr, err
}

// CreateTestCLI creates a complete CLI instance for testing with the given
// arguments. Global command state is reset first so tests stay independent.
func CreateTestCLI(args ...string) *cobra.Command {
	cmd.ResetGlobalState()
	cmd.SetLogger(logger.Logger{})

	rootCmd := &cobra.Command{
		Use:           "envdeck",
		Short:         "envdeck - Browse, edit, and selectively encrypt .env files.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.AddCommand(cmd.ServeCmd)
	rootCmd.AddCommand(cmd.InitCmd)
	rootCmd.AddCommand(cmd.EnvCmd)
	rootCmd.AddCommand(cmd.LogCmd)
	rootCmd.SetArgs(args)
	return rootCmd
}

// WriteEnvFile writes an env file into dir and returns its path.
func WriteEnvFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write env file: %v", err)
	}
	return path
}

// ReadFile returns the file's content as a string.
func ReadFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read %s: %v", path, err)
	}
	return string(data)
}
