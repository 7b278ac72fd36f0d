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

// EncryptEntryOptions configures the encrypt workflow.
type EncryptEntryOptions struct {
	// Workspace is the folder containing the env file.
	Workspace string

	// File is the env file, relative to the workspace or absolute.
	File string

	// Key names the entry whose value gets sealed.
	Key string
}

// EncryptEntryResult contains the outcome of an encrypt operation.
type EncryptEntryResult struct {
	// File is the resolved path of the mutated file.
	File string

	// Key is the sealed entry's name.
	Key string
}

// EncryptEntry seals one entry's value with the workspace key and stores
// the sealed form in place.
//
// Returns ErrKeyNotFound when the workspace has no key, ErrEntryNotFound
// when the key is absent from the file, and ErrValueAlreadyEncrypted when
// the entry is already sealed.
func EncryptEntry(ctx context.Context, opts EncryptEntryOptions) (*EncryptEntryResult, error) {
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

	sealed, err := secrets.EncryptValue(symKey, entry.Value)
	if err != nil {
		return nil, err
	}
	if err := doc.Update(opts.Key, sealed); err != nil {
		return nil, err
	}
	if err := doc.Save(); err != nil {
		return nil, err
	}

	audit.Log(ws, audit.Entry{Operation: "encrypt", File: opts.File, Key: opts.Key})

	return &EncryptEntryResult{File: path, Key: opts.Key}, nil
}
