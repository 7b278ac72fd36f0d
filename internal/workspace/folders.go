package workspace

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	kerrors "github.com/PolarWolf314/envdeck/internal/errors"
)

// Folder describes one subdirectory shown by the folder browser.
type Folder struct {
	Name        string
	Path        string
	HasEnvFiles bool
}

// ListFolders returns the immediate subdirectories of path, sorted by
// name, each flagged with whether it directly contains env files. Hidden
// directories are included so the browser can reach them, but discovery
// never descends into them.
func ListFolders(path string) ([]Folder, error) {
	entries, err := os.ReadDir(path)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", kerrors.ErrFolderNotFound, path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read folder %s: %w", path, err)
	}

	var folders []Folder
	for _, entry := range entries {
		if !entry.IsDir() || entry.Name() == deckDirName {
			continue
		}
		sub := filepath.Join(path, entry.Name())
		folders = append(folders, Folder{
			Name:        entry.Name(),
			Path:        sub,
			HasEnvFiles: hasDirectEnvFiles(sub),
		})
	}

	sort.Slice(folders, func(i, j int) bool { return folders[i].Name < folders[j].Name })
	return folders, nil
}

// hasDirectEnvFiles checks only the immediate children: the browser flag
// is a hint, not a recursive scan.
func hasDirectEnvFiles(dir string) bool {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return false
	}
	for _, entry := range entries {
		if !entry.IsDir() && IsEnvFile(entry.Name()) {
			return true
		}
	}
	return false
}

// ResolveWithin cleans an env-file path relative to the workspace root and
// rejects anything that escapes it. Both front ends route every file access
// through this so a crafted path like ../../etc/passwd never leaves the
// workspace.
func ResolveWithin(root string, file string) (string, error) {
	path := file
	if !filepath.IsAbs(path) {
		path = filepath.Join(root, path)
	}
	path = filepath.Clean(path)

	rel, err := filepath.Rel(root, path)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%w: %s", kerrors.ErrOutsideWorkspace, file)
	}
	return path, nil
}
