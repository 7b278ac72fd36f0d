package workflows

import (
	"context"
	"fmt"
	"os"

	"github.com/PolarWolf314/envdeck/internal/audit"
	"github.com/PolarWolf314/envdeck/internal/configs"
	kerrors "github.com/PolarWolf314/envdeck/internal/errors"
	"github.com/PolarWolf314/envdeck/internal/secrets"
)

// InitOptions configures the init workflow.
type InitOptions struct {
	// Workspace is the folder to initialize.
	Workspace string

	// Force regenerates the key even when one exists. Values sealed with
	// the old key become unrecoverable.
	Force bool
}

// InitResult contains the outcome of an init operation.
type InitResult struct {
	// Workspace is the absolute path of the initialized folder.
	Workspace string

	// KeyPath is where the workspace key was written.
	KeyPath string

	// Regenerated indicates an existing key was replaced.
	Regenerated bool
}

// InitWorkspace creates the .envdeck directory and a fresh workspace key.
//
// Returns ErrWorkspaceAlreadyInitialized if a key exists and Force is not
// set.
func InitWorkspace(ctx context.Context, opts InitOptions) (*InitResult, error) {
	root, err := workspaceRoot(opts.Workspace)
	if err != nil {
		return nil, err
	}
	ws := configs.WorkspaceSettingsFor(root)

	_, statErr := os.Stat(ws.KeyPath)
	keyExists := statErr == nil
	if keyExists && !opts.Force {
		return nil, fmt.Errorf("%w: %s", kerrors.ErrWorkspaceAlreadyInitialized, root)
	}

	key, err := secrets.GenerateWorkspaceKey()
	if err != nil {
		return nil, err
	}
	if err := secrets.SaveWorkspaceKey(ws.KeyPath, key); err != nil {
		return nil, err
	}

	audit.Log(ws, audit.Entry{Operation: "init"})

	return &InitResult{
		Workspace:   root,
		KeyPath:     ws.KeyPath,
		Regenerated: keyExists,
	}, nil
}
