package workflows

import (
	"context"
	"os"
	"path/filepath"

	"github.com/PolarWolf314/envdeck/internal/configs"
	"github.com/PolarWolf314/envdeck/internal/envfile"
	"github.com/PolarWolf314/envdeck/internal/workspace"
)

// ListFilesOptions configures the file listing workflow.
type ListFilesOptions struct {
	// Workspace is the folder to scan.
	Workspace string

	// Patterns narrows discovery to specific paths or globs. Empty means
	// every env file in the workspace.
	Patterns []string
}

// FileInfo summarizes one discovered env file.
type FileInfo struct {
	// Path is the file's path relative to the workspace root.
	Path string

	// Entries is the number of key-value entries in the file.
	Entries int

	// Encrypted is the number of entries carrying the encrypted marker.
	Encrypted int
}

// ListFilesResult contains the outcome of a file listing.
type ListFilesResult struct {
	// Workspace is the absolute workspace root.
	Workspace string

	// Files describes each discovered env file, in walk order.
	Files []FileInfo

	// KeyPresent indicates the workspace has an encryption key.
	KeyPresent bool
}

// ListFiles discovers the env files in a workspace and summarizes each one.
func ListFiles(ctx context.Context, opts ListFilesOptions) (*ListFilesResult, error) {
	root, err := workspaceRoot(opts.Workspace)
	if err != nil {
		return nil, err
	}

	paths, err := workspace.ResolveFiles(opts.Patterns, root)
	if err != nil {
		return nil, err
	}
	if paths == nil {
		if paths, err = workspace.FindEnvFiles(root); err != nil {
			return nil, err
		}
	}

	result := &ListFilesResult{Workspace: root}

	ws := configs.WorkspaceSettingsFor(root)
	if _, err := os.Stat(ws.KeyPath); err == nil {
		result.KeyPresent = true
	}

	for _, path := range paths {
		doc, err := envfile.Load(path)
		if err != nil {
			return nil, err
		}

		info := FileInfo{Path: path}
		if rel, err := filepath.Rel(root, path); err == nil {
			info.Path = rel
		}
		for _, entry := range doc.Entries() {
			info.Entries++
			if entry.Encrypted {
				info.Encrypted++
			}
		}
		result.Files = append(result.Files, info)
	}

	return result, nil
}
