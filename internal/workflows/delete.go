package workflows

import (
	"context"

	"github.com/PolarWolf314/envdeck/internal/audit"
	"github.com/PolarWolf314/envdeck/internal/configs"
	"github.com/PolarWolf314/envdeck/internal/envfile"
)

// DeleteEntryOptions configures the delete workflow.
type DeleteEntryOptions struct {
	// Workspace is the folder containing the env file.
	Workspace string

	// File is the env file, relative to the workspace or absolute.
	File string

	// Key names the entry to delete.
	Key string
}

// DeleteEntryResult contains the outcome of a delete operation.
type DeleteEntryResult struct {
	// File is the resolved path of the mutated file.
	File string

	// Key is the deleted entry's name.
	Key string
}

// DeleteEntry removes an entry line from an env file. Surrounding blank
// and comment lines stay, even when a comment referred to the deleted key.
//
// Returns ErrEntryNotFound when the key is absent; the file is unchanged
// on failure.
func DeleteEntry(ctx context.Context, opts DeleteEntryOptions) (*DeleteEntryResult, error) {
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
	if err := doc.Delete(opts.Key); err != nil {
		return nil, err
	}
	if err := doc.Save(); err != nil {
		return nil, err
	}

	audit.Log(configs.WorkspaceSettingsFor(root), audit.Entry{
		Operation: "delete", File: opts.File, Key: opts.Key,
	})

	return &DeleteEntryResult{File: path, Key: opts.Key}, nil
}
