package workflows

import (
	"context"
	"fmt"

	"github.com/PolarWolf314/envdeck/internal/audit"
	"github.com/PolarWolf314/envdeck/internal/configs"
	"github.com/PolarWolf314/envdeck/internal/envfile"
	kerrors "github.com/PolarWolf314/envdeck/internal/errors"
)

// AddEntryOptions configures the add workflow.
type AddEntryOptions struct {
	// Workspace is the folder containing the env file.
	Workspace string

	// File is the env file, relative to the workspace or absolute.
	File string

	// Key is the new entry's name. Must match the accepted key syntax.
	Key string

	// Value is the new entry's value, stored as supplied.
	Value string
}

// AddEntryResult contains the outcome of an add operation.
type AddEntryResult struct {
	// File is the resolved path of the mutated file.
	File string

	// Key is the added entry's name.
	Key string

	// Encrypted indicates the supplied value already carried the
	// encrypted marker.
	Encrypted bool
}

// AddEntry appends a new entry to the end of an env file.
//
// Returns ErrInvalidKeyName for a malformed key and ErrDuplicateKey when
// the key exists anywhere in the file; the file is unchanged on failure.
func AddEntry(ctx context.Context, opts AddEntryOptions) (*AddEntryResult, error) {
	if !envfile.IsValidKey(opts.Key) {
		return nil, fmt.Errorf("%w: %q", kerrors.ErrInvalidKeyName, opts.Key)
	}

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
	if err := doc.Add(opts.Key, opts.Value); err != nil {
		return nil, err
	}
	if err := doc.Save(); err != nil {
		return nil, err
	}

	entry, _ := doc.Get(opts.Key)
	audit.Log(configs.WorkspaceSettingsFor(root), audit.Entry{
		Operation: "add", File: opts.File, Key: opts.Key,
	})

	return &AddEntryResult{File: path, Key: opts.Key, Encrypted: entry.Encrypted}, nil
}
