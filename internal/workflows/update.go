package workflows

import (
	"context"

	"github.com/PolarWolf314/envdeck/internal/audit"
	"github.com/PolarWolf314/envdeck/internal/configs"
	"github.com/PolarWolf314/envdeck/internal/envfile"
)

// UpdateEntryOptions configures the update workflow.
type UpdateEntryOptions struct {
	// Workspace is the folder containing the env file.
	Workspace string

	// File is the env file, relative to the workspace or absolute.
	File string

	// Key names the entry to update.
	Key string

	// Value is the replacement value.
	Value string
}

// UpdateEntryResult contains the outcome of an update operation.
type UpdateEntryResult struct {
	// File is the resolved path of the mutated file.
	File string

	// Key is the updated entry's name.
	Key string

	// Encrypted indicates the new value carries the encrypted marker.
	Encrypted bool
}

// UpdateEntry replaces the value of an existing entry in place; the entry
// keeps its position in the file.
//
// Returns ErrEntryNotFound when the key is absent; the file is unchanged
// on failure.
func UpdateEntry(ctx context.Context, opts UpdateEntryOptions) (*UpdateEntryResult, error) {
	root, err := workspaceRoot(opts.Workspace)
	if err != nil {
		return nil, err
	}
	path, err := resolveEnvFile(root, opts.File)
	if err != nil {
		return nil, err
	}

	doc, err := envfile.Load(path)
	if err != nil {
		return nil, err
	}
	if err := doc.Update(opts.Key, opts.Value); err != nil {
		return nil, err
	}
	if err := doc.Save(); err != nil {
		return nil, err
	}

	entry, _ := doc.Get(opts.Key)
	audit.Log(configs.WorkspaceSettingsFor(root), audit.Entry{
		Operation: "update", File: opts.File, Key: opts.Key,
	})

	return &UpdateEntryResult{File: path, Key: opts.Key, Encrypted: entry.Encrypted}, nil
}
