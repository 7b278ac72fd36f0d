package workflows

import (
	"fmt"
	"os"
	"path/filepath"

	kerrors "github.com/PolarWolf314/envdeck/internal/errors"
	"github.com/PolarWolf314/envdeck/internal/workspace"
)

// workspaceRoot normalizes a user-supplied folder to an absolute path and
// verifies it exists.
func workspaceRoot(folder string) (string, error) {
	if folder == "" {
		folder = "."
	}
	root, err := filepath.Abs(folder)
	if err != nil {
		return "", fmt.Errorf("failed to resolve folder %s: %w", folder, err)
	}

	info, err := os.Stat(root)
	if os.IsNotExist(err) {
		return "", fmt.Errorf("%w: %s", kerrors.ErrFolderNotFound, folder)
	}
	if err != nil {
		return "", fmt.Errorf("failed to stat folder %s: %w", folder, err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("%w: %s is not a directory", kerrors.ErrFolderNotFound, folder)
	}

	return root, nil
}

// resolveEnvFile resolves a file reference against the workspace root and
// verifies it names an existing env file inside the workspace.
func resolveEnvFile(root, file string) (string, error) {
	path, err := workspace.ResolveWithin(root, file)
	if err != nil {
		return "", err
	}
	if !workspace.IsEnvFile(path) {
		return "", fmt.Errorf("%w: %s", kerrors.ErrNotEnvFile, file)
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return "", fmt.Errorf("%w: %s", kerrors.ErrFileNotFound, file)
	}
	return path, nil
}
