package workflows

import (
	"context"

	"github.com/PolarWolf314/envdeck/internal/configs"
	"github.com/PolarWolf314/envdeck/internal/envfile"
	"github.com/PolarWolf314/envdeck/internal/secrets"
)

// ListEntriesOptions configures the entry listing workflow.
type ListEntriesOptions struct {
	// Workspace is the folder containing the env file.
	Workspace string

	// File is the env file, relative to the workspace or absolute.
	File string

	// Reveal decrypts encrypted values for display. Requires the
	// workspace key.
	Reveal bool
}

// EntryView is one entry as shown to the user.
type EntryView struct {
	// Key is the entry's name.
	Key string

	// Value is the display value. For an encrypted entry this is empty
	// unless the listing was made with Reveal, in which case it is the
	// decrypted plaintext.
	Value string

	// Encrypted indicates the stored value carries the encrypted marker.
	Encrypted bool
}

// ListEntriesResult contains the outcome of an entry listing.
type ListEntriesResult struct {
	// File is the resolved path of the listed file.
	File string

	// Entries are the file's entries in document order, duplicates
	// included when the file is malformed.
	Entries []EntryView

	// Revealed indicates encrypted values were decrypted for display.
	Revealed bool
}

// ListEntries parses one env file and projects its entries.
//
// Encrypted values are withheld from the listing by default; whether a
// value is displayable in clear text is decided solely by the presence of
// the workspace key. Returns ErrKeyNotFound when Reveal is requested
// without a key.
func ListEntries(ctx context.Context, opts ListEntriesOptions) (*ListEntriesResult, error) {
	root, err := workspaceRoot(opts.Workspace)
	if err != nil {
		return nil, err
	}
	path, err := resolveEnvFile(root, opts.File)
	if err != nil {
		return nil, err
	}

	var symKey []byte
	if opts.Reveal {
		ws := configs.WorkspaceSettingsFor(root)
		if symKey, err = secrets.LoadWorkspaceKey(ws.KeyPath); err != nil {
			return nil, err
		}
	}

	doc, err := envfile.Load(path)
	if err != nil {
		return nil, err
	}

	result := &ListEntriesResult{File: path, Revealed: opts.Reveal}
	for _, entry := range doc.Entries() {
		view := EntryView{Key: entry.Key, Encrypted: entry.Encrypted}
		switch {
		case !entry.Encrypted:
			view.Value = entry.Value
		case opts.Reveal:
			plaintext, err := secrets.DecryptValue(symKey, entry.Value)
			if err != nil {
				return nil, err
			}
			view.Value = plaintext
		}
		result.Entries = append(result.Entries, view)
	}

	return result, nil
}
