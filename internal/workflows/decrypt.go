package workflows

import (
	"context"
	"fmt"

	"github.com/PolarWolf314/envdeck/internal/audit"
	"github.com/PolarWolf314/envdeck/internal/configs"
	"github.com/PolarWolf314/envdeck/internal/envfile"
	kerrors "github.com/PolarWolf314/envdeck/internal/errors"
	"github.com/PolarWolf314/envdeck/internal/secrets"
)

// DecryptEntryOptions configures the decrypt workflow.
type DecryptEntryOptions struct {
	// Workspace is the folder containing the env file.
	Workspace string

	// File is the env file, relative to the workspace or absolute.
	File string

	// Key names the entry whose value gets opened.
	Key string
}

// DecryptEntryResult contains the outcome of a decrypt operation.
type DecryptEntryResult struct {
	// File is the resolved path of the mutated file.
	File string

	// Key is the opened entry's name.
	Key string
}

// DecryptEntry opens one sealed entry value and stores the plaintext back
// in place.
//
// Returns ErrKeyNotFound when the workspace has no key, ErrEntryNotFound
// when the key is absent from the file, ErrValueNotEncrypted when the
// entry is plaintext, and ErrDecryptFailed when the value was sealed with
// a different key.
func DecryptEntry(ctx context.Context, opts DecryptEntryOptions) (*DecryptEntryResult, error) {
	root, err := workspaceRoot(opts.Workspace)
	if err != nil {
		return nil, err
	}
	path, err := resolveEnvFile(root, opts.File)
	if err != nil {
		return nil, err
	}

	ws := configs.WorkspaceSettingsFor(root)
	symKey, err := secrets.LoadWorkspaceKey(ws.KeyPath)
	if err != nil {
		return nil, err
	}

	doc, err := envfile.Load(path)
	if err != nil {
		return nil, err
	}
	entry, ok := doc.Get(opts.Key)
	if !ok {
		return nil, fmt.Errorf("%w: %s", kerrors.ErrEntryNotFound, opts.Key)
	}

	plaintext, err := secrets.DecryptValue(symKey, entry.Value)
	if err != nil {
		return nil, err
	}
	if err := doc.Update(opts.Key, plaintext); err != nil {
		return nil, err
	}
	if err := doc.Save(); err != nil {
		return nil, err
	}

	audit.Log(ws, audit.Entry{Operation: "decrypt", File: opts.File, Key: opts.Key})

	return &DecryptEntryResult{File: path, Key: opts.Key}, nil
}
